package load

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/swg-tools/sginfo/pkg/sysinfo"
	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

// File reads a sysinfo dump from disk and parses it. Dumps archived with
// gzip (.gz) are decompressed transparently.
func File(path string) (*types.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var rd io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "new gzip reader for %s", path)
		}
		defer zr.Close()
		rd = zr
	}

	bs, err := io.ReadAll(rd)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	r, err := sysinfo.Parse(string(bs))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return r, nil
}
