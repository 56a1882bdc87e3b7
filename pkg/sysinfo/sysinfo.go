// Package sysinfo parses the diagnostic sysinfo dump of Blue Coat SGOS
// appliances into a queryable report. Parsing is a pure computation over the
// supplied text; acquiring the text (HTTP, file) lives in pkg/fetch and
// pkg/sysinfo/load.
package sysinfo

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/swg-tools/sginfo/pkg/sysinfo/extract"
	"github.com/swg-tools/sginfo/pkg/sysinfo/section"
	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

// ErrNoData is returned when the input is empty or below the minimal size of
// a parseable dump. It is the only parse-level failure; everything else
// degrades to absent fields.
var ErrNoData = errors.New("not enough sysinfo data to parse")

const minSize = 10

// Parse normalizes line endings, splits the dump into named sections and
// runs every field extractor. Concurrent calls on independent inputs are
// safe; Parse touches no shared state.
func Parse(text string) (*types.Report, error) {
	text = normalize(text)
	if len(text) < minSize {
		return nil, ErrNoData
	}

	r := &types.Report{}
	r.FormatVersion, r.Sections = section.Split(text)
	extract.Run(r)
	return r, nil
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
