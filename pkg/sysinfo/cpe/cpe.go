package cpe

import (
	"strings"

	"github.com/knqyf263/go-cpe/common"
	"github.com/knqyf263/go-cpe/naming"
	"github.com/pkg/errors"

	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

// FromReport binds a cpe:2.3 formatted string for the SGOS release of a
// parsed report, e.g. cpe:2.3:o:bluecoat:sgos:6.2.5.1:*:*:*:*:*:*:*.
func FromReport(r *types.Report) (string, error) {
	if r.SGOSVersion == "" {
		return "", errors.New("report has no SGOS version")
	}

	wfn := common.NewWellFormedName()
	for _, av := range []struct {
		attribute string
		value     string
	}{
		{common.AttributePart, "o"},
		{common.AttributeVendor, "bluecoat"},
		{common.AttributeProduct, "sgos"},
		{common.AttributeVersion, strings.ReplaceAll(r.SGOSVersion, ".", `\.`)},
	} {
		if err := wfn.Set(av.attribute, av.value); err != nil {
			return "", errors.Wrapf(err, "set %s to %q", av.attribute, av.value)
		}
	}

	return naming.BindToFS(wfn), nil
}
