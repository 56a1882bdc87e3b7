package load_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/swg-tools/sginfo/pkg/sysinfo/load"
)

var delimiter = strings.Repeat("_", 74)

func dump() string {
	return strings.Join([]string{
		"Sysinfo Version 4.6",
		delimiter,
		"",
		"",
		"Version Information",
		"URL_PATH: /Diagnostics/Version/Info",
		"Version: SGOS 6.5.10.1",
		"Serial number is 4211123456",
	}, "\n")
}

func TestFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "proxysg01.sysinfo")
	if err := os.WriteFile(plain, []byte(dump()), 0644); err != nil {
		t.Fatalf("write %s: %v", plain, err)
	}

	gzipped := filepath.Join(dir, "proxysg01.sysinfo.gz")
	f, err := os.Create(gzipped)
	if err != nil {
		t.Fatalf("create %s: %v", gzipped, err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(dump())); err != nil {
		t.Fatalf("write gzip: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", gzipped, err)
	}

	for _, path := range []string{plain, gzipped} {
		r, err := load.File(path)
		if err != nil {
			t.Fatalf("File(%s) error = %v", path, err)
		}
		if r.SGOSVersion != "6.5.10.1" {
			t.Errorf("File(%s) SGOSVersion = %v, want %v", path, r.SGOSVersion, "6.5.10.1")
		}
		if r.SerialNumber != "4211123456" {
			t.Errorf("File(%s) SerialNumber = %v, want %v", path, r.SerialNumber, "4211123456")
		}
	}
}

func TestFileMissing(t *testing.T) {
	if _, err := load.File(filepath.Join(t.TempDir(), "missing.sysinfo")); err == nil {
		t.Error("File() error = nil, want an error")
	}
}

func TestFileCorruptGzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.sysinfo.gz")
	if err := os.WriteFile(p, []byte("not gzip at all"), 0644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	if _, err := load.File(p); err == nil {
		t.Error("File() error = nil, want an error")
	}
}
