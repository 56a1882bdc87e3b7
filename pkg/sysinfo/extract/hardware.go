package extract

import (
	"regexp"
	"strings"

	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

var (
	modelRe       = regexp.MustCompile(`Model:[ \t]*(.+)`)
	unsupportedRe = regexp.MustCompile(`(?i)\s*\(unsupported configuration\)`)
	hwIfaceRe     = regexp.MustCompile(`Interface (\d+:\d+):`)
	macRe         = regexp.MustCompile(`\(MAC ([0-9a-fA-F:]+)\)`)
	runningAtRe   = regexp.MustCompile(`running at (.+?) \(MAC`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// HardwareInfo extracts the model number, the per-interface hardware facts
// and the SSL accelerator description from the Hardware Information section.
func HardwareInfo(r *types.Report) {
	body, ok := r.Section(hardwareInformation)
	if !ok {
		return
	}

	if m := modelRe.FindStringSubmatch(body); m != nil {
		model := strings.TrimSpace(m[1])
		if unsupportedRe.MatchString(model) {
			r.ModelNumber = strings.TrimSpace(unsupportedRe.ReplaceAllString(model, ""))
			r.SupportedConfiguration = false
		} else {
			r.ModelNumber = model
			r.SupportedConfiguration = true
		}
	}

	hardwareInterfaces(r, body)
	sslAccelerator(r, body)
}

// hardwareInterfaces scans the block between "Network:" and "Accelerators"
// for one interface per line.
func hardwareInterfaces(r *types.Report, body string) {
	start := strings.Index(body, "Network:")
	if start < 0 {
		return
	}
	block := body[start:]
	if end := strings.Index(block, "Accelerators"); end >= 0 {
		block = block[:end]
	}

	for _, line := range strings.Split(block, "\n") {
		m := hwIfaceRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		id := m[1]

		if r.Interfaces == nil {
			r.Interfaces = map[string]types.Interface{}
		}
		iface := r.Interfaces[id]
		iface.ID = id

		if mm := macRe.FindStringSubmatch(line); mm != nil {
			iface.MACAddress = mm[1]
		}

		rest := line
		if i := strings.Index(line, id+":"); i >= 0 {
			rest = line[i+len(id)+1:]
		}

		switch {
		case strings.Contains(line, "running at"):
			if mm := runningAtRe.FindStringSubmatch(line); mm != nil {
				iface.LinkStatus = strings.TrimSpace(mm[1])
			}
			if i := strings.Index(rest, "running at"); i >= 0 {
				iface.Capabilities = whitespaceRe.ReplaceAllString(rest[:i], "")
			}
		case strings.Contains(line, "no link"):
			iface.LinkStatus = "no link"
			if i := strings.Index(rest, "with no link"); i >= 0 {
				iface.Capabilities = whitespaceRe.ReplaceAllString(rest[:i], "")
			}
		}

		r.Interfaces[id] = iface
	}
}

// sslAccelerator takes the first accelerator listed after "Accelerators:".
// Only the header line present means no accelerator is installed.
func sslAccelerator(r *types.Report, body string) {
	idx := strings.Index(body, "Accelerators:")
	if idx < 0 {
		return
	}

	rest := body[idx+len("Accelerators:"):]
	if t := headLine(rest); t != "" {
		r.SSLAccelerator = t
		return
	}
	if i := strings.Index(rest, "\n"); i >= 0 {
		for _, line := range strings.Split(rest[i+1:], "\n") {
			t := strings.TrimSpace(line)
			if t == "" {
				break
			}
			r.SSLAccelerator = t
			return
		}
	}
	r.SSLAccelerator = "none"
}

func headLine(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
