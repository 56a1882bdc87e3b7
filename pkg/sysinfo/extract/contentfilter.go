package extract

import (
	"regexp"
	"strings"

	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

var labeledLineRe = regexp.MustCompile(`^\s*([^:]+?):\s*(.*)$`)

// ContentFilter keeps the text between "Provider:" and "Download log:" of
// the Content Filter Status section and parses its labeled fields, including
// the nested Dynamic Categorization sub-block.
func ContentFilter(r *types.Report) {
	body, ok := r.Section(contentFilterStatus)
	if !ok {
		return
	}

	start := strings.Index(body, "Provider:")
	if start < 0 {
		return
	}
	blob := body[start:]
	if end := strings.Index(blob, "Download log:"); end >= 0 {
		blob = blob[:end]
	}
	blob = strings.TrimRight(blob, "\n")
	r.ContentFilterStatus = blob

	cf := &types.ContentFilter{}
	inDynamic := false

	for _, line := range strings.Split(blob, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "Dynamic Categorization:" {
			cf.Dynamic = &types.DynamicCategorization{}
			inDynamic = true
			continue
		}
		if inDynamic && !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			inDynamic = false
		}

		m := labeledLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		label, value := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])

		if inDynamic {
			switch label {
			case "Service":
				cf.Dynamic.Service = value
			case "Mode":
				cf.Dynamic.Mode = value
			case "Secure":
				cf.Dynamic.Secure = value
			case "Forward/SOCKS gateway":
				cf.Dynamic.Gateway = value
			case "Errors":
				cf.Dynamic.Errors = value
			}
			continue
		}

		switch label {
		case "Provider":
			cf.Provider = value
		case "Status":
			cf.Status = value
		case "Download URL":
			cf.DownloadURL = value
		case "Download Username":
			cf.DownloadUsername = value
		case "Automatic download":
			cf.AutomaticDownload = value
		case "Lookup mode":
			cf.LookupMode = value
		case "Database version":
			cf.DatabaseVersion = value
		case "Database date":
			cf.DatabaseDate = value
		case "Database expires":
			cf.DatabaseExpires = value
		case "Database size":
			cf.DatabaseSize = value
		}
	}

	r.ContentFilter = cf
}
