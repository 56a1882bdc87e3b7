package extract

import (
	"regexp"
	"strings"

	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

var licenseKVRe = regexp.MustCompile(`^\s*([^:]+?):\s*(.*)$`)

// A blank-line separated block is a license record only when it carries all
// of these labels, in any order and case.
var licenseSentinels = []string{
	"component name",
	"valid",
	"serial number",
	"product description",
	"part number",
}

// Licensing turns each qualifying block of the Licensing Statistics section
// into one component: every "Label: value" line becomes a key-value pair
// with the label lowercased and its whitespace collapsed to underscores.
func Licensing(r *types.Report) {
	body, ok := r.Section(licensingStatistics)
	if !ok {
		return
	}

	for _, block := range blankLineBlocks(body) {
		lower := strings.ToLower(block)
		qualifies := true
		for _, s := range licenseSentinels {
			if !strings.Contains(lower, s) {
				qualifies = false
				break
			}
		}
		if !qualifies {
			continue
		}

		comp := types.LicenseComponent{}
		for _, line := range strings.Split(block, "\n") {
			m := licenseKVRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			key := strings.ToLower(strings.Join(strings.Fields(m[1]), "_"))
			comp[key] = strings.TrimSpace(m[2])
		}
		if len(comp) > 0 {
			r.LicenseComponents = append(r.LicenseComponents, comp)
		}
	}
}

func blankLineBlocks(s string) []string {
	var blocks []string
	var cur []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, strings.Join(cur, "\n"))
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, strings.Join(cur, "\n"))
	}
	return blocks
}
