package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/swg-tools/sginfo/pkg/config"
	"github.com/swg-tools/sginfo/pkg/config/types"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    types.Config
		wantErr bool
	}{
		{
			name: "defaults applied",
			content: `{"appliances": {
				"proxysg01": {"host": "192.0.2.10"},
				"proxysg02": {"host": "192.0.2.11", "port": 8443, "user": "ops", "password": "secret", "insecure": true}
			}}`,
			want: types.Config{Appliances: map[string]types.Appliance{
				"proxysg01": {Host: "192.0.2.10", Port: 8082, User: "admin"},
				"proxysg02": {Host: "192.0.2.11", Port: 8443, User: "ops", Password: "secret", Insecure: true},
			}},
		},
		{
			name:    "no appliances",
			content: `{}`,
			want:    types.Config{Appliances: map[string]types.Appliance{}},
		},
		{
			name:    "appliance without host",
			content: `{"appliances": {"proxysg01": {"user": "admin"}}}`,
			wantErr: true,
		},
		{
			name:    "broken json",
			content: `{`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(p, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			got, err := config.Open(p)
			if (err != nil) != tt.wantErr {
				t.Errorf("Open() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Open() (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := config.Open(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Open() error = nil, want an error")
	}
}
