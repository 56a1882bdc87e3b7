package search

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	db "github.com/swg-tools/sginfo/pkg/archive/common"
	archiveTypes "github.com/swg-tools/sginfo/pkg/archive/common/types"
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

// Search prints archive contents as indented JSON to stdout.
func Search(searchType archiveTypes.SearchType, queries []string, opts ...Option) error {
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

	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	e.SetEscapeHTML(false)

	switch searchType {
	case archiveTypes.SearchMetadata:
		slog.Info("Get Metadata")
		meta, err := dbc.GetMetadata()
		if err != nil {
			return errors.Wrap(err, "get metadata")
		}
		if meta == nil {
			return errors.New("metadata not found")
		}
		if err := e.Encode(meta); err != nil {
			return errors.Wrap(err, "encode metadata")
		}
		return nil
	case archiveTypes.SearchSerial:
		for _, q := range queries {
			slog.Info("Get Report", "serial", q)
			entry, err := dbc.GetEntry(q)
			if err != nil {
				return errors.Wrapf(err, "get %s", q)
			}
			if entry == nil {
				return errors.Errorf("no report for serial %s", q)
			}
			if err := e.Encode(entry); err != nil {
				return errors.Wrapf(err, "encode %s", q)
			}
		}
		return nil
	case archiveTypes.SearchList:
		slog.Info("Get Reports")
		for entry, err := range dbc.GetEntries() {
			if err != nil {
				return errors.Wrap(err, "get entries")
			}
			if err := e.Encode(struct {
				ID            string `json:"id,omitempty"`
				Serial        string `json:"serial,omitempty"`
				ApplianceName string `json:"appliance_name,omitempty"`
				ModelNumber   string `json:"model_number,omitempty"`
				SGOSVersion   string `json:"sgos_version,omitempty"`
			}{
				ID:            entry.ID,
				Serial:        entry.Serial,
				ApplianceName: entry.ApplianceName,
				ModelNumber:   entry.ModelNumber,
				SGOSVersion:   entry.SGOSVersion,
			}); err != nil {
				return errors.Wrapf(err, "encode %s", entry.ID)
			}
		}
		return nil
	default:
		return errors.Errorf("unexpected search type. accepts: %q, actual: %q", []archiveTypes.SearchType{archiveTypes.SearchSerial, archiveTypes.SearchList, archiveTypes.SearchMetadata}, searchType)
	}
}
