package section

import (
	"regexp"
	"strings"
)

// The chunks of a sysinfo dump are separated by a line of exactly 74
// underscores. The first chunk carries only report metadata; every later
// chunk is a named section.
var delimiter = strings.Repeat("_", 74)

var formatVersionRe = regexp.MustCompile(`Version (\d+)\.(\d+)`)

// Names of the sections with extra fixed-offset trim rules.
const (
	SoftwareConfiguration = "Software Configuration"
	RoutingTable          = "TCP/IP Routing Table"
)

// Split divides normalized text into named raw sections.
//
// Generic rule per chunk: the first two lines are boilerplate, the third line
// is the section name. Software Configuration drops three more leading lines
// and one trailing line, the routing table drops five more leading lines.
// One further line (the source-URL marker) is always discarded after the
// name-specific trims. All trims saturate; a chunk shorter than a rule
// expects never fails.
func Split(text string) (formatVersion string, sections map[string]string) {
	sections = map[string]string{}

	chunks := chunk(text)
	if len(chunks) == 0 {
		return "", sections
	}

	if m := formatVersionRe.FindStringSubmatch(strings.Join(chunks[0], "\n")); m != nil {
		formatVersion = m[1] + "." + m[2]
	}

	for _, lines := range chunks[1:] {
		lines = drop(lines, 2)
		if len(lines) == 0 {
			continue
		}
		name := strings.TrimSpace(lines[0])
		lines = drop(lines, 1)

		switch name {
		case SoftwareConfiguration:
			lines = drop(lines, 3)
			lines = dropTail(lines, 1)
		case RoutingTable:
			lines = drop(lines, 5)
		}
		lines = drop(lines, 1)

		if name == "" {
			continue
		}
		sections[name] = strings.Join(lines, "\n")
	}

	return formatVersion, sections
}

func chunk(text string) [][]string {
	var chunks [][]string
	cur := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line == delimiter {
			chunks = append(chunks, cur)
			cur = []string{}
			continue
		}
		cur = append(cur, line)
	}
	return append(chunks, cur)
}

func drop(lines []string, n int) []string {
	if n > len(lines) {
		n = len(lines)
	}
	return lines[n:]
}

func dropTail(lines []string, n int) []string {
	if n > len(lines) {
		n = len(lines)
	}
	return lines[:len(lines)-n]
}
