package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

var (
	sgosVersionRe = regexp.MustCompile(`Version:\s*SGOS\s+((\d+)\.(\d+)\.\d+\.\d+)`)
	releaseIDRe   = regexp.MustCompile(`Release [iI][dD]:\s*(\d+)`)
	serialRe      = regexp.MustCompile(`Serial number is (\d{10})`)
	currentTimeRe = regexp.MustCompile(`The current time is (.+?) \(`)
	hwRebootRe    = regexp.MustCompile(`last hardware rebooted (.+?) ago`)
	swRebootRe    = regexp.MustCompile(`last software rebooted (.+?) ago`)

	daysRe    = regexp.MustCompile(`(\d+)\s+days?`)
	hoursRe   = regexp.MustCompile(`(\d+)\s+hours?`)
	minutesRe = regexp.MustCompile(`(\d+)\s+minutes?`)
	secondsRe = regexp.MustCompile(`(\d+)\s+seconds?`)
)

// Layouts seen in "The current time is ..." across firmware releases.
var currentTimeLayouts = []string{
	time.ANSIC,
	time.UnixDate,
	"Mon, 02 Jan 2006 15:04:05",
}

// VersionInfo extracts version, release id, serial number, sysinfo time and
// the reboot durations from the Version Information section.
func VersionInfo(r *types.Report) {
	body, ok := r.Section(versionInformation)
	if !ok {
		return
	}

	if m := sgosVersionRe.FindStringSubmatch(body); m != nil {
		r.SGOSVersion = m[1]
		r.SGOSMajorVersion = m[2] + "." + m[3]
	}
	if m := releaseIDRe.FindStringSubmatch(body); m != nil {
		r.SGOSReleaseID = m[1]
	}
	if m := serialRe.FindStringSubmatch(body); m != nil {
		r.SerialNumber = m[1]
	}

	if m := currentTimeRe.FindStringSubmatch(body); m != nil {
		for _, layout := range currentTimeLayouts {
			t, err := time.Parse(layout, strings.TrimSpace(m[1]))
			if err != nil {
				continue
			}
			t = t.UTC()
			r.SysinfoTime = &t
			r.SysinfoEpoch = t.Unix()
			break
		}
	}

	if m := hwRebootRe.FindStringSubmatch(body); m != nil {
		d := durationSeconds(m[1])
		r.HardwareRebootDuration = &d
	}
	if m := swRebootRe.FindStringSubmatch(body); m != nil {
		d := durationSeconds(m[1])
		r.SoftwareRebootDuration = &d
	}
}

// durationSeconds sums a free-text "N days, N hours, N minutes, and N
// seconds" phrase. Each unit is independently optional and defaults to 0.
func durationSeconds(s string) int64 {
	var total int64
	for _, u := range []struct {
		re     *regexp.Regexp
		factor int64
	}{
		{daysRe, 24 * 3600},
		{hoursRe, 3600},
		{minutesRe, 60},
		{secondsRe, 1},
	} {
		m := u.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		total += n * u.factor
	}
	return total
}
