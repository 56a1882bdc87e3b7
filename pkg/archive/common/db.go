package common

import (
	"iter"

	"github.com/cockroachdb/pebble/v2"
	"github.com/pkg/errors"
	"github.com/redis/rueidis"
	bolt "go.etcd.io/bbolt"
	"gorm.io/gorm"

	archiveTypes "github.com/swg-tools/sginfo/pkg/archive/common/types"
	boltdbArchive "github.com/swg-tools/sginfo/pkg/archive/common/boltdb"
	pebbleArchive "github.com/swg-tools/sginfo/pkg/archive/common/pebble"
	rdbArchive "github.com/swg-tools/sginfo/pkg/archive/common/rdb"
	redisArchive "github.com/swg-tools/sginfo/pkg/archive/common/redis"
)

const (
	SchemaVersion = 1
)

// DB is a report archive backend. Entries are keyed by appliance serial
// number (or the fallback entry ID).
type DB interface {
	Open() error
	Close() error

	GetMetadata() (*archiveTypes.Metadata, error)
	PutMetadata(archiveTypes.Metadata) error

	GetEntry(serial string) (*archiveTypes.Entry, error)
	PutEntry(archiveTypes.Entry) error
	GetEntries() iter.Seq2[archiveTypes.Entry, error]

	DeleteAll() error
	Initialize() error
}

type Config struct {
	Type    string
	Path    string
	Debug   bool
	Options DBOptions
}

type DBOptions struct {
	BoltDB *bolt.Options
	Pebble *pebble.Options
	Redis  *rueidis.ClientOption
	RDB    []gorm.Option
}

func (c *Config) New() (DB, error) {
	switch c.Type {
	case "boltdb":
		return &boltdbArchive.Connection{Config: &boltdbArchive.Config{Path: c.Path, Options: c.Options.BoltDB}}, nil
	case "pebble":
		return &pebbleArchive.Connection{Config: &pebbleArchive.Config{Path: c.Path, Options: c.Options.Pebble}}, nil
	case "redis":
		conf := c.Options.Redis
		if conf == nil {
			conf = &rueidis.ClientOption{InitAddress: []string{c.Path}}
		}
		return &redisArchive.Connection{Config: conf}, nil
	case "sqlite3", "mysql", "postgres":
		return &rdbArchive.Connection{Config: &rdbArchive.Config{Type: c.Type, Path: c.Path, Options: c.Options.RDB}}, nil
	default:
		return nil, errors.Errorf("%s is not support dbtype", c.Type)
	}
}
