package boltdb_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/swg-tools/sginfo/pkg/archive/common/boltdb"
	archiveTypes "github.com/swg-tools/sginfo/pkg/archive/common/types"
	sysinfoTypes "github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

func open(t *testing.T) *boltdb.Connection {
	t.Helper()
	c := &boltdb.Connection{Config: &boltdb.Config{Path: filepath.Join(t.TempDir(), "archive.db")}}
	if err := c.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return c
}

func TestConnectionMetadata(t *testing.T) {
	c := open(t)

	metadata := archiveTypes.Metadata{
		SchemaVersion: 1,
		CreatedBy:     "sginfo",
		LastModified:  time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC),
	}
	if err := c.PutMetadata(metadata); err != nil {
		t.Fatalf("PutMetadata() error = %v", err)
	}

	got, err := c.GetMetadata()
	if err != nil {
		t.Fatalf("GetMetadata() error = %v", err)
	}
	if diff := cmp.Diff(&metadata, got); diff != "" {
		t.Errorf("GetMetadata() (-expected +got):\n%s", diff)
	}
}

func TestConnectionEntries(t *testing.T) {
	c := open(t)

	entries := []archiveTypes.Entry{
		{
			ID:            "e1",
			Serial:        "4211123456",
			ApplianceName: "ProxySG01",
			SGOSVersion:   "6.5.10.1",
			StoredAt:      time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC),
			Report:        sysinfoTypes.Report{SerialNumber: "4211123456"},
		},
		{
			ID:            "e2",
			ApplianceName: "ProxySG02",
			SGOSVersion:   "6.7.4.1",
			StoredAt:      time.Date(2026, time.August, 29, 13, 0, 0, 0, time.UTC),
		},
	}
	for _, e := range entries {
		if err := c.PutEntry(e); err != nil {
			t.Fatalf("PutEntry() error = %v", err)
		}
	}

	got, err := c.GetEntry("4211123456")
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if diff := cmp.Diff(&entries[0], got); diff != "" {
		t.Errorf("GetEntry() (-expected +got):\n%s", diff)
	}

	// the serial-less entry is keyed by its id
	got, err = c.GetEntry("e2")
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if diff := cmp.Diff(&entries[1], got); diff != "" {
		t.Errorf("GetEntry() (-expected +got):\n%s", diff)
	}

	got, err = c.GetEntry("no-such-serial")
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetEntry() = %v, want nil", got)
	}

	var listed []archiveTypes.Entry
	for e, err := range c.GetEntries() {
		if err != nil {
			t.Fatalf("GetEntries() error = %v", err)
		}
		listed = append(listed, e)
	}
	if len(listed) != len(entries) {
		t.Errorf("GetEntries() returned %d entries, want %d", len(listed), len(entries))
	}
}

func TestConnectionDeleteAll(t *testing.T) {
	c := open(t)

	if err := c.PutEntry(archiveTypes.Entry{ID: "e1", Serial: "4211123456"}); err != nil {
		t.Fatalf("PutEntry() error = %v", err)
	}
	if err := c.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}

	got, err := c.GetEntry("4211123456")
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetEntry() after DeleteAll = %v, want nil", got)
	}
}
