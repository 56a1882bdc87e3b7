package extract

import (
	"regexp"
	"strings"

	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

// A static route line carries destination, netmask and gateway.
var routeLineRe = regexp.MustCompile(`\d{1,3}(?:\.\d{1,3}){3}\s+\d{1,3}(?:\.\d{1,3}){3}\s+\d{1,3}(?:\.\d{1,3}){3}`)

// StaticRouteTable extracts the static route table, preferring the inline
// static-route-table block of the software configuration and falling back to
// the TCP/IP Routing Table section. Comment lines starting with ";" are
// skipped.
func StaticRouteTable(r *types.Report) {
	if body, ok := r.Section(softwareConfiguration); ok {
		blocks := inlineBlocks(strings.Split(body, "\n"), "inline static-route-table")
		if len(blocks) > 0 {
			r.StaticRouteTable = routeLines(blocks[0].body)
		}
	}
	if r.StaticRouteTable != "" {
		return
	}
	if body, ok := r.Section(routingTable); ok {
		r.StaticRouteTable = routeLines(body)
	}
}

func routeLines(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ";") {
			continue
		}
		if routeLineRe.MatchString(trimmed) {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}
