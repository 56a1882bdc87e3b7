package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

var serviceGroupRe = regexp.MustCompile(`^service-group\s+(\d+)`)

// WCCP extracts the inline wccp-settings block: the enable flag, protocol
// version and every "service-group <n> ... end" record.
func WCCP(r *types.Report) {
	body, ok := r.Section(softwareConfiguration)
	if !ok {
		return
	}
	blocks := inlineBlocks(strings.Split(body, "\n"), "inline wccp-settings")
	if len(blocks) == 0 {
		return
	}
	raw := blocks[0].body
	r.WCCPRawConfig = raw

	var (
		group   types.WCCPServiceGroup
		inGroup bool
	)
	flush := func() {
		if inGroup {
			r.WCCPServiceGroups = append(r.WCCPServiceGroups, group)
			inGroup = false
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		switch trimmed {
		case "wccp enable":
			t := true
			r.WCCPEnabled = &t
			continue
		case "wccp disable":
			f := false
			r.WCCPEnabled = &f
			continue
		case "end":
			flush()
			continue
		}

		if m := serviceGroupRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			group = types.WCCPServiceGroup{ID: atoi(m[1])}
			inGroup = true
			continue
		}

		key, value, found := strings.Cut(trimmed, " ")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		if !inGroup {
			if key == "wccp" {
				if v, ok := strings.CutPrefix(value, "version "); ok {
					r.WCCPVersion = atoi(strings.TrimSpace(v))
				} else if n, err := strconv.Atoi(value); err == nil {
					r.WCCPVersion = n
				}
			}
			continue
		}

		switch key {
		case "forwarding-type":
			group.ForwardingType = value
		case "multicast-ttl":
			group.MulticastTTL = atoi(value)
		case "priority":
			group.Priority = atoi(value)
		case "protocol":
			group.Protocol = atoi(value)
		case "router-affinity":
			group.RouterAffinity = value
		case "interface":
			group.Interface = value
		case "assignment-type":
			group.AssignmentType = value
		case "mask-scheme":
			group.MaskScheme = value
		case "primary-hash-weight":
			group.PrimaryHashWeight = value
		case "mask-value":
			group.MaskValue = value
		case "service-flags":
			group.ServiceFlags = append(group.ServiceFlags, value)
		case "home-router":
			group.HomeRouters = append(group.HomeRouters, value)
		case "ports":
			for _, p := range strings.Fields(value) {
				if n, err := strconv.Atoi(p); err == nil {
					group.Ports = append(group.Ports, n)
				}
			}
		}
	}

	// a group whose "end" never came still counts, truncated dumps happen
	flush()
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
