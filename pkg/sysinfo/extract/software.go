package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

var (
	applianceNameRe = regexp.MustCompile(`^\s*appliance-name\s+(.+?)\s*$`)
	hostnameRe      = regexp.MustCompile(`^\s*hostname\s+(\S+)`)
	swIfaceRe       = regexp.MustCompile(`^\s*interface\s+(\S+?)\s*;`)
	ipAddressRe     = regexp.MustCompile(`^\s*ip-address\s+(\d+\.\d+\.\d+\.\d+)(?:\s+(\d+\.\d+\.\d+\.\d+))?`)
	subnetMaskRe    = regexp.MustCompile(`^\s*subnet-mask\s+(\d+\.\d+\.\d+\.\d+)`)
	gatewayRe       = regexp.MustCompile(`ip-default-gateway\s+(\S+)`)
	timezoneRe      = regexp.MustCompile(`timezone set (\S+)`)
)

// SoftwareConfig extracts the appliance name, per-interface addresses, the
// static bypass list, default gateway, timezone and the VPM XML policy from
// the Software Configuration section.
func SoftwareConfig(r *types.Report) {
	body, ok := r.Section(softwareConfiguration)
	if !ok {
		return
	}
	lines := strings.Split(body, "\n")

	applianceName(r, lines)
	interfaceAddresses(r, lines)
	staticBypass(r, lines)

	if m := gatewayRe.FindStringSubmatch(body); m != nil {
		r.DefaultGateway = m[1]
	}

	timezone(r, body)
	vpmXML(r, body)
}

// applianceName takes the first appliance-name or hostname directive,
// whichever comes first; surrounding quotes are stripped.
func applianceName(r *types.Report, lines []string) {
	for _, line := range lines {
		if m := applianceNameRe.FindStringSubmatch(line); m != nil {
			r.ApplianceName = strings.Trim(m[1], `"`)
			return
		}
		if m := hostnameRe.FindStringSubmatch(line); m != nil {
			r.ApplianceName = strings.Trim(m[1], `"`)
			return
		}
	}
}

// interfaceAddresses pairs ip-address and subnet-mask lines with the
// surrounding "interface <id> ;" context. Once both ip and mask are captured
// for an id longer than one character the pair is committed and the context
// consumed. The captured netmask deliberately survives the commit: an SGOS
// quirk lets a later interface that only sets ip-address pair with the
// previous mask, and existing fixtures depend on it.
func interfaceAddresses(r *types.Report, lines []string) {
	var cur, ip, mask string

	for _, line := range lines {
		if m := swIfaceRe.FindStringSubmatch(line); m != nil {
			// a dangling partial capture is silently dropped here
			cur = m[1]
			ip = ""
			continue
		}
		if m := ipAddressRe.FindStringSubmatch(line); m != nil {
			ip = m[1]
			if m[2] != "" {
				mask = m[2]
			}
		} else if m := subnetMaskRe.FindStringSubmatch(line); m != nil {
			mask = m[1]
		} else {
			continue
		}

		if len(cur) > 1 && ip != "" && mask != "" {
			if r.Interfaces == nil {
				r.Interfaces = map[string]types.Interface{}
			}
			iface := r.Interfaces[cur]
			iface.ID = cur
			iface.IPAddress = ip
			iface.Netmask = mask
			r.Interfaces[cur] = iface

			cur = ""
			ip = ""
		}
	}
}

type bypassState int

const (
	bypassSeeking bypassState = iota
	bypassInBlock
	bypassDone
)

// staticBypass collects the lines between the static-bypass directive and
// the next "exit" line, stripping the leading "add " of each entry.
func staticBypass(r *types.Report, lines []string) {
	var kept []string
	state := bypassSeeking

	for _, line := range lines {
		switch state {
		case bypassSeeking:
			if strings.Contains(line, "static-bypass") {
				state = bypassInBlock
			}
		case bypassInBlock:
			if strings.TrimSpace(line) == "exit" {
				state = bypassDone
				continue
			}
			kept = append(kept, strings.TrimPrefix(strings.TrimSpace(line), "add "))
		case bypassDone:
		}
	}

	if len(kept) > 0 {
		r.StaticBypassList = strings.Join(kept, "\n")
	}
}

// timezone reads "timezone set <value>", defaulting to UTC, and derives the
// UTC offset by localizing the sysinfo epoch into that zone. The offset
// stays 0 when the epoch is unknown or the zone name cannot be resolved.
func timezone(r *types.Report, body string) {
	tz := "UTC"
	if m := timezoneRe.FindStringSubmatch(body); m != nil {
		tz = strings.Trim(m[1], `"`)
	}
	r.Timezone = tz

	if r.SysinfoEpoch == 0 {
		return
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return
	}
	t := time.Unix(r.SysinfoEpoch, 0).In(loc)
	_, offset := t.Zone()
	r.TimezoneOffset = offset
	r.SysinfoTime = &t
}

// vpmXML takes the text between the "<?xml" start and the closing
// "</vpmapp>" or "</empty>" tag and strips control characters outside the
// valid XML ranges.
func vpmXML(r *types.Report, body string) {
	start := strings.Index(body, "<?xml")
	if start < 0 {
		return
	}
	rest := body[start:]

	for _, closing := range []string{"</vpmapp>", "</empty>"} {
		i := strings.Index(rest, closing)
		if i < 0 {
			continue
		}
		r.VPMXML = stripControl(rest[:i+len(closing)])
		return
	}
}

func stripControl(s string) string {
	return strings.Map(func(c rune) rune {
		if c <= 0x08 || c == 0x0B || c == 0x0C || (c >= 0x0E && c <= 0x1F) {
			return -1
		}
		return c
	}, s)
}
