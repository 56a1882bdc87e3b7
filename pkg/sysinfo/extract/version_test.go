package extract_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/swg-tools/sginfo/pkg/sysinfo/extract"
	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

func TestVersionInfo(t *testing.T) {
	sysinfoTime := time.Date(2015, time.January, 2, 15, 4, 5, 0, time.UTC)
	hwReboot := int64(2*24*3600 + 3*3600 + 4*60 + 5)
	swReboot := int64(45)

	type args struct {
		r *types.Report
	}
	tests := []struct {
		name string
		args args
		want *types.Report
	}{
		{
			name: "no section",
			args: args{r: &types.Report{}},
			want: &types.Report{},
		},
		{
			name: "full",
			args: args{r: &types.Report{Sections: map[string]string{
				"Version Information": "Version: SGOS 6.5.10.1 Proxy Edition\n" +
					"Release id: 123456\n" +
					"Serial number is 4211123456\n" +
					"The current time is Fri Jan  2 15:04:05 2015 (UTC)\n" +
					"The ProxySG Appliance was last hardware rebooted 2 days, 3 hours, 4 minutes, and 5 seconds ago.\n" +
					"The ProxySG Appliance was last software rebooted 45 seconds ago.",
			}}},
			want: &types.Report{
				Sections: map[string]string{
					"Version Information": "Version: SGOS 6.5.10.1 Proxy Edition\n" +
						"Release id: 123456\n" +
						"Serial number is 4211123456\n" +
						"The current time is Fri Jan  2 15:04:05 2015 (UTC)\n" +
						"The ProxySG Appliance was last hardware rebooted 2 days, 3 hours, 4 minutes, and 5 seconds ago.\n" +
						"The ProxySG Appliance was last software rebooted 45 seconds ago.",
				},
				SGOSVersion:            "6.5.10.1",
				SGOSMajorVersion:       "6.5",
				SGOSReleaseID:          "123456",
				SerialNumber:           "4211123456",
				SysinfoTime:            &sysinfoTime,
				SysinfoEpoch:           sysinfoTime.Unix(),
				HardwareRebootDuration: &hwReboot,
				SoftwareRebootDuration: &swReboot,
			},
		},
		{
			name: "unknown time layout is skipped",
			args: args{r: &types.Report{Sections: map[string]string{
				"Version Information": "Version: SGOS 5.4.1.1\nThe current time is someday soon (UTC)",
			}}},
			want: &types.Report{
				Sections: map[string]string{
					"Version Information": "Version: SGOS 5.4.1.1\nThe current time is someday soon (UTC)",
				},
				SGOSVersion:      "5.4.1.1",
				SGOSMajorVersion: "5.4",
			},
		},
		{
			name: "serial shorter than ten digits is ignored",
			args: args{r: &types.Report{Sections: map[string]string{
				"Version Information": "Serial number is 1234\n",
			}}},
			want: &types.Report{
				Sections: map[string]string{
					"Version Information": "Serial number is 1234\n",
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extract.VersionInfo(tt.args.r)
			if diff := cmp.Diff(tt.want, tt.args.r); diff != "" {
				t.Errorf("VersionInfo() (-expected +got):\n%s", diff)
			}
		})
	}
}
