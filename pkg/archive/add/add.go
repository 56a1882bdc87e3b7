package add

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	db "github.com/swg-tools/sginfo/pkg/archive/common"
	archiveTypes "github.com/swg-tools/sginfo/pkg/archive/common/types"
	"github.com/swg-tools/sginfo/pkg/sysinfo/load"
	utilos "github.com/swg-tools/sginfo/pkg/util/os"
)

type options struct {
	dbtype string
	dbpath string

	debug bool
}

type Option interface {
	apply(*options)
}

type dbtypeOption string

func (o dbtypeOption) apply(opts *options) {
	opts.dbtype = string(o)
}

func WithDBType(dbtype string) Option {
	return dbtypeOption(dbtype)
}

type dbpathOption string

func (o dbpathOption) apply(opts *options) {
	opts.dbpath = string(o)
}

func WithDBPath(dbpath string) Option {
	return dbpathOption(dbpath)
}

type debugOption bool

func (o debugOption) apply(opts *options) {
	opts.debug = bool(o)
}

func WithDebug(debug bool) Option {
	return debugOption(debug)
}

// Add parses each sysinfo dump and stores the result in the archive, keyed
// by appliance serial number. A dump without a serial gets a random ID.
func Add(paths []string, opts ...Option) error {
	options := &options{
		dbtype: "boltdb",
		dbpath: filepath.Join(utilos.UserCacheDir(), "archive.db"),
		debug:  false,
	}
	for _, o := range opts {
		o.apply(options)
	}

	dbc, err := (&db.Config{
		Type:  options.dbtype,
		Path:  options.dbpath,
		Debug: options.debug,
	}).New()
	if err != nil {
		return errors.Wrap(err, "new db connection")
	}
	if err := dbc.Open(); err != nil {
		return errors.Wrap(err, "open db")
	}
	defer dbc.Close()

	slog.Info("Get Metadata")
	meta, err := dbc.GetMetadata()
	if err != nil {
		return errors.Wrap(err, "get metadata")
	}
	if meta == nil {
		return errors.New("metadata not found")
	}
	if meta.SchemaVersion != db.SchemaVersion {
		return errors.Errorf("unexpected schema version. expected: %d, actual: %d", db.SchemaVersion, meta.SchemaVersion)
	}

	for _, path := range paths {
		r, err := load.File(path)
		if err != nil {
			return errors.Wrapf(err, "load %s", path)
		}

		id := r.SerialNumber
		if id == "" {
			id = uuid.NewString()
		}

		slog.Info("Put Report", "path", path, "serial", r.SerialNumber, "appliance", r.ApplianceName)
		if err := dbc.PutEntry(archiveTypes.Entry{
			ID:            id,
			Serial:        r.SerialNumber,
			ApplianceName: r.ApplianceName,
			ModelNumber:   r.ModelNumber,
			SGOSVersion:   r.SGOSVersion,
			StoredAt:      time.Now().UTC(),
			Report:        *r,
		}); err != nil {
			return errors.Wrapf(err, "put %s", path)
		}
	}

	meta.LastModified = time.Now().UTC()
	if err := dbc.PutMetadata(*meta); err != nil {
		return errors.Wrap(err, "put metadata")
	}

	return nil
}
