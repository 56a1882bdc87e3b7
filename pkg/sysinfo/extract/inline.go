package extract

import (
	"regexp"
	"strings"
)

// SGOS embeds multi-line configuration between a declaration carrying a
// numbered end marker and a line repeating that marker, e.g.
//
//	inline accelerated-pac end-398382380-inline
//	...body...
//	end-398382380-inline
//
// The marker id differs per block, so a foreign "end-N-inline" line inside a
// body stays part of that body.

var inlineMarkerRe = regexp.MustCompile(`"?(end-\d+-inline)"?\s*$`)

type inlineBlock struct {
	// name is the first token between the directive and the marker, e.g.
	// the certificate name. Empty when the declaration has none.
	name string
	body string
}

type inlineState int

const (
	inlineSeeking inlineState = iota
	inlineInBlock
)

// inlineBlocks scans lines for declarations starting with directive
// ("inline ca-certificate", "inline wccp-settings", ...) and returns every
// block found. A block whose end marker never repeats runs to the end of the
// input; the partial body is still returned.
func inlineBlocks(lines []string, directive string) []inlineBlock {
	var (
		blocks []inlineBlock
		cur    inlineBlock
		marker string
		body   []string
		state  = inlineSeeking
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch state {
		case inlineSeeking:
			if !strings.HasPrefix(trimmed, directive) {
				continue
			}
			m := inlineMarkerRe.FindStringSubmatch(trimmed)
			if m == nil {
				continue
			}
			marker = m[1]
			cur = inlineBlock{name: blockName(trimmed, directive, marker)}
			body = nil
			state = inlineInBlock
		case inlineInBlock:
			if trimmed == marker {
				cur.body = strings.Join(body, "\n")
				blocks = append(blocks, cur)
				state = inlineSeeking
				continue
			}
			body = append(body, line)
		}
	}

	if state == inlineInBlock {
		cur.body = strings.Join(body, "\n")
		blocks = append(blocks, cur)
	}

	return blocks
}

func blockName(decl, directive, marker string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(decl, directive))
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	name := strings.Trim(fields[0], `"`)
	if name == marker {
		return ""
	}
	return name
}
