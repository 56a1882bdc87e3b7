package boltdb

import (
	"iter"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	archiveTypes "github.com/swg-tools/sginfo/pkg/archive/common/types"
	"github.com/swg-tools/sginfo/pkg/archive/common/util"
)

// boltdb: BUCKET: "metadata" KEY: "db" VALUE: archiveTypes.Metadata

// boltdb: BUCKET: "entry" KEY: <serial> VALUE: zstd(archiveTypes.Entry)

type Config struct {
	Path    string
	Options *bolt.Options
}

type Connection struct {
	Config *Config

	conn *bolt.DB
}

func (c *Connection) Open() error {
	if c.Config == nil {
		return errors.New("connection config is not set")
	}

	db, err := bolt.Open(c.Config.Path, 0600, c.Config.Options)
	if err != nil {
		return errors.WithStack(err)
	}
	c.conn = db
	return nil
}

func (c *Connection) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Connection) GetMetadata() (*archiveTypes.Metadata, error) {
	var v archiveTypes.Metadata
	if err := c.conn.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("metadata"))
		if b == nil {
			return errors.Errorf("bucket:%q is not exists", "metadata")
		}

		if err := util.Unmarshal(b.Get([]byte("db")), false, &v); err != nil {
			return errors.Wrap(err, "unmarshal metadata:db")
		}

		return nil
	}); err != nil {
		return nil, errors.WithStack(err)
	}
	return &v, nil
}

func (c *Connection) PutMetadata(metadata archiveTypes.Metadata) error {
	return c.conn.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("metadata"))
		if err != nil {
			return errors.Wrapf(err, "create bucket:%q if not exists", "metadata")
		}

		bs, err := util.Marshal(metadata, false)
		if err != nil {
			return errors.Wrap(err, "marshal metadata")
		}

		if err := b.Put([]byte("db"), bs); err != nil {
			return errors.Wrap(err, "put metadata:db")
		}

		return nil
	})
}

func (c *Connection) GetEntry(serial string) (*archiveTypes.Entry, error) {
	var v *archiveTypes.Entry
	if err := c.conn.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("entry"))
		if b == nil {
			return nil
		}

		bs := b.Get([]byte(serial))
		if bs == nil {
			return nil
		}

		var e archiveTypes.Entry
		if err := util.Unmarshal(bs, true, &e); err != nil {
			return errors.Wrapf(err, "unmarshal entry:%s", serial)
		}
		v = &e

		return nil
	}); err != nil {
		return nil, errors.WithStack(err)
	}
	return v, nil
}

func (c *Connection) PutEntry(entry archiveTypes.Entry) error {
	return c.conn.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("entry"))
		if err != nil {
			return errors.Wrapf(err, "create bucket:%q if not exists", "entry")
		}

		bs, err := util.Marshal(entry, true)
		if err != nil {
			return errors.Wrapf(err, "marshal entry:%s", entry.ID)
		}

		key := entry.Serial
		if key == "" {
			key = entry.ID
		}
		if err := b.Put([]byte(key), bs); err != nil {
			return errors.Wrapf(err, "put entry:%s", key)
		}

		return nil
	})
}

func (c *Connection) GetEntries() iter.Seq2[archiveTypes.Entry, error] {
	return func(yield func(archiveTypes.Entry, error) bool) {
		stop := errors.New("stop iteration")
		if err := c.conn.View(func(tx *bolt.Tx) error {
			b := tx.Bucket([]byte("entry"))
			if b == nil {
				return nil
			}

			return b.ForEach(func(k, v []byte) error {
				var e archiveTypes.Entry
				if err := util.Unmarshal(v, true, &e); err != nil {
					if !yield(archiveTypes.Entry{}, errors.Wrapf(err, "unmarshal entry:%s", string(k))) {
						return stop
					}
					return nil
				}
				if !yield(e, nil) {
					return stop
				}
				return nil
			})
		}); err != nil && !errors.Is(err, stop) {
			yield(archiveTypes.Entry{}, errors.WithStack(err))
		}
	}
}

func (c *Connection) DeleteAll() error {
	return c.conn.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{[]byte("metadata"), []byte("entry")} {
			if tx.Bucket(name) == nil {
				continue
			}
			if err := tx.DeleteBucket(name); err != nil {
				return errors.Wrapf(err, "delete bucket:%q", string(name))
			}
		}
		return nil
	})
}

func (c *Connection) Initialize() error {
	return c.conn.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{[]byte("metadata"), []byte("entry")} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return errors.Wrapf(err, "create bucket:%q if not exists", string(name))
			}
		}
		return nil
	})
}
