package sysinfo_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/swg-tools/sginfo/pkg/sysinfo"
	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

var delimiter = strings.Repeat("_", 74)

func miniDump(sep string) string {
	return strings.Join([]string{
		"Blue Coat Systems ProxySG Appliance sysinfo",
		"Sysinfo Version 4.6",
		delimiter,
		"",
		"",
		"Version Information",
		"URL_PATH: /Diagnostics/Version/Info",
		"Version: SGOS 6.5.10.1 Proxy Edition",
		"Release id: 123456",
		"Serial number is 4211123456",
		"The current time is Fri Jan  2 15:04:05 2015 (UTC)",
		"The ProxySG Appliance was last hardware rebooted 2 days, 3 hours, 4 minutes, and 5 seconds ago.",
		"The ProxySG Appliance was last software rebooted 1 day, 1 minute ago.",
		delimiter,
		"",
		"",
		"Hardware Information",
		"URL_PATH: /Diagnostics/Hardware/Info",
		"Model: 200-B",
		"Network:",
		"  Interface 0:0: Bypass 10/100 with no link  (MAC 00:d0:83:04:ca:11)",
		"  Interface 1:0: Intel Gigabit running at 1 Gbps full duplex (MAC 00:d0:83:04:ca:12)",
		"Accelerators:",
		"  Cavium CN1010 SSL Accelerator",
		delimiter,
		"",
		"",
		"Software Configuration",
		"The current software configuration is displayed.",
		"Settings that are at their default values are not shown.",
		"",
		"URL_PATH: /SYSINFO/Config",
		"appliance-name \"ProxySG01\"",
		"interface 0:0 ;mode",
		"ip-address 10.1.2.3 255.255.255.0",
		"exit",
		"ip-default-gateway 10.1.2.1 ;gateway",
		"static-bypass",
		"add 192.0.2.1",
		"exit",
		"timezone set \"UTC\"",
		"%- end of configuration",
		delimiter,
		"",
		"",
		"Policy",
		"URL_PATH: /policy",
		"define policy",
		" allow",
		"end",
	}, sep)
}

func TestParse(t *testing.T) {
	sysinfoTime := time.Date(2015, time.January, 2, 15, 4, 5, 0, time.UTC)
	hwReboot := int64(2*24*3600 + 3*3600 + 4*60 + 5)
	swReboot := int64(24*3600 + 60)

	wantReport := func() *types.Report {
		return &types.Report{
			FormatVersion:          "4.6",
			ApplianceName:          "ProxySG01",
			ModelNumber:            "200-B",
			SupportedConfiguration: true,
			SerialNumber:           "4211123456",
			SGOSVersion:            "6.5.10.1",
			SGOSMajorVersion:       "6.5",
			SGOSReleaseID:          "123456",
			SysinfoTime:            &sysinfoTime,
			SysinfoEpoch:           sysinfoTime.Unix(),
			Timezone:               "UTC",
			HardwareRebootDuration: &hwReboot,
			SoftwareRebootDuration: &swReboot,
			DefaultGateway:         "10.1.2.1",
			SSLAccelerator:         "Cavium CN1010 SSL Accelerator",
			Interfaces: map[string]types.Interface{
				"0:0": {
					ID:           "0:0",
					MACAddress:   "00:d0:83:04:ca:11",
					LinkStatus:   "no link",
					Capabilities: "Bypass10/100",
					IPAddress:    "10.1.2.3",
					Netmask:      "255.255.255.0",
				},
				"1:0": {
					ID:           "1:0",
					MACAddress:   "00:d0:83:04:ca:12",
					LinkStatus:   "1 Gbps full duplex",
					Capabilities: "IntelGigabit",
				},
			},
			StaticBypassList: "192.0.2.1",
			VPMCPL:           "define policy\n allow\nend",
		}
	}

	type args struct {
		text string
	}
	tests := []struct {
		name    string
		args    args
		want    *types.Report
		wantErr error
	}{
		{
			name:    "empty",
			args:    args{text: ""},
			wantErr: sysinfo.ErrNoData,
		},
		{
			name:    "too short",
			args:    args{text: "sysinfo"},
			wantErr: sysinfo.ErrNoData,
		},
		{
			name: "mini dump",
			args: args{text: miniDump("\n")},
			want: wantReport(),
		},
		{
			name: "mini dump with crlf line endings",
			args: args{text: miniDump("\r\n")},
			want: wantReport(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sysinfo.Parse(tt.args.text)
			if (err != nil) != (tt.wantErr != nil) {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			got.Sections = nil
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	first, err := sysinfo.Parse(miniDump("\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, err := sysinfo.Parse(miniDump("\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Parse() is not deterministic (-first +second):\n%s", diff)
	}
}
