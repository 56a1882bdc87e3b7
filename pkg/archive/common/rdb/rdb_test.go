package rdb_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/swg-tools/sginfo/pkg/archive/common/rdb"
	archiveTypes "github.com/swg-tools/sginfo/pkg/archive/common/types"
)

func open(t *testing.T) *rdb.Connection {
	t.Helper()
	c := &rdb.Connection{Config: &rdb.Config{Type: "sqlite3", Path: filepath.Join(t.TempDir(), "archive.sqlite3")}}
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

func TestConnectionOpenUnknownType(t *testing.T) {
	c := &rdb.Connection{Config: &rdb.Config{Type: "oracle", Path: "archive"}}
	if err := c.Open(); err == nil {
		t.Error("Open() error = nil, want an error")
	}
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

	entry := archiveTypes.Entry{
		ID:            "e1",
		Serial:        "4211123456",
		ApplianceName: "ProxySG01",
		SGOSVersion:   "6.5.10.1",
		StoredAt:      time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC),
	}
	if err := c.PutEntry(entry); err != nil {
		t.Fatalf("PutEntry() error = %v", err)
	}

	got, err := c.GetEntry("4211123456")
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if diff := cmp.Diff(&entry, got); diff != "" {
		t.Errorf("GetEntry() (-expected +got):\n%s", diff)
	}

	got, err = c.GetEntry("no-such-serial")
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetEntry() = %v, want nil", got)
	}

	var n int
	for _, err := range c.GetEntries() {
		if err != nil {
			t.Fatalf("GetEntries() error = %v", err)
		}
		n++
	}
	if n != 1 {
		t.Errorf("GetEntries() returned %d entries, want 1", n)
	}
}
