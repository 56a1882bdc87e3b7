package section_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/swg-tools/sginfo/pkg/sysinfo/section"
)

var delimiter = strings.Repeat("_", 74)

func TestSplit(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name              string
		args              args
		wantFormatVersion string
		wantSections      map[string]string
	}{
		{
			name:              "empty",
			args:              args{text: ""},
			wantFormatVersion: "",
			wantSections:      map[string]string{},
		},
		{
			name: "header only",
			args: args{text: strings.Join([]string{
				"Blue Coat Systems ProxySG Appliance sysinfo",
				"Sysinfo Version 4.6",
			}, "\n")},
			wantFormatVersion: "4.6",
			wantSections:      map[string]string{},
		},
		{
			name: "generic section",
			args: args{text: strings.Join([]string{
				"Sysinfo Version 4.6",
				delimiter,
				"",
				"",
				"Version Information",
				"URL_PATH: /Diagnostics/Version/Info",
				"Version: SGOS 6.5.10.1",
				"Release id: 123456",
			}, "\n")},
			wantFormatVersion: "4.6",
			wantSections: map[string]string{
				"Version Information": "Version: SGOS 6.5.10.1\nRelease id: 123456",
			},
		},
		{
			name: "software configuration trims",
			args: args{text: strings.Join([]string{
				"Sysinfo Version 4.6",
				delimiter,
				"",
				"",
				"Software Configuration",
				"The current software configuration is displayed.",
				"Settings that are at their default values are not shown.",
				"",
				"URL_PATH: /SYSINFO/Config",
				"appliance-name \"ProxySG01\"",
				"exit",
				"%- end of configuration",
			}, "\n")},
			wantFormatVersion: "4.6",
			wantSections: map[string]string{
				"Software Configuration": "appliance-name \"ProxySG01\"\nexit",
			},
		},
		{
			name: "routing table trims",
			args: args{text: strings.Join([]string{
				"Sysinfo Version 4.6",
				delimiter,
				"",
				"",
				"TCP/IP Routing Table",
				"",
				"Kernel routing table",
				"",
				"Destination     Netmask         Gateway",
				"",
				"URL_PATH: /TCP/IP-routing",
				"10.0.0.0        255.0.0.0       10.1.2.1",
			}, "\n")},
			wantFormatVersion: "4.6",
			wantSections: map[string]string{
				"TCP/IP Routing Table": "10.0.0.0        255.0.0.0       10.1.2.1",
			},
		},
		{
			name: "duplicate names last wins",
			args: args{text: strings.Join([]string{
				"Sysinfo Version 4.6",
				delimiter,
				"",
				"",
				"Policy",
				"URL_PATH: /policy",
				"first",
				delimiter,
				"",
				"",
				"Policy",
				"URL_PATH: /policy",
				"second",
			}, "\n")},
			wantFormatVersion: "4.6",
			wantSections: map[string]string{
				"Policy": "second",
			},
		},
		{
			name: "chunk shorter than the trim rules",
			args: args{text: strings.Join([]string{
				"Sysinfo Version 4.6",
				delimiter,
				"",
			}, "\n")},
			wantFormatVersion: "4.6",
			wantSections:      map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFormatVersion, gotSections := section.Split(tt.args.text)
			if gotFormatVersion != tt.wantFormatVersion {
				t.Errorf("Split() formatVersion = %v, want %v", gotFormatVersion, tt.wantFormatVersion)
			}
			if diff := cmp.Diff(tt.wantSections, gotSections); diff != "" {
				t.Errorf("Split() sections (-expected +got):\n%s", diff)
			}
		})
	}
}
