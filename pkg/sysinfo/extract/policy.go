package extract

import (
	"strings"

	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

// Policy keeps the whole Policy section verbatim as the VPM CPL text.
func Policy(r *types.Report) {
	if body, ok := r.Section(policy); ok {
		r.VPMCPL = body
	}
}

// PACFile extracts the inline accelerated-pac block. No marker means no PAC
// file is installed.
func PACFile(r *types.Report) {
	body, ok := r.Section(softwareConfiguration)
	if !ok {
		return
	}
	blocks := inlineBlocks(strings.Split(body, "\n"), "inline accelerated-pac")
	if len(blocks) == 0 {
		return
	}
	r.PACFile = blocks[0].body
}
