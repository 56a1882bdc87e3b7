package pebble

import (
	"fmt"
	"iter"

	"github.com/cockroachdb/pebble/v2"
	"github.com/pkg/errors"

	archiveTypes "github.com/swg-tools/sginfo/pkg/archive/common/types"
	"github.com/swg-tools/sginfo/pkg/archive/common/util"
)

// pebble: KEY: "metadata#db" VALUE: archiveTypes.Metadata

// pebble: KEY: "entry#<serial>" VALUE: zstd(archiveTypes.Entry)

type Config struct {
	Path    string
	Options *pebble.Options
}

type Connection struct {
	Config *Config

	conn *pebble.DB
}

func (c *Connection) Open() error {
	if c.Config == nil {
		return errors.New("connection config is not set")
	}

	db, err := pebble.Open(c.Config.Path, c.Config.Options)
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
	bs, closer, err := c.conn.Get([]byte("metadata#db"))
	if err != nil {
		return nil, errors.Wrap(err, "get metadata#db")
	}
	defer closer.Close()

	var v archiveTypes.Metadata
	if err := util.Unmarshal(bs, false, &v); err != nil {
		return nil, errors.Wrap(err, "unmarshal metadata#db")
	}

	return &v, nil
}

func (c *Connection) PutMetadata(metadata archiveTypes.Metadata) error {
	bs, err := util.Marshal(metadata, false)
	if err != nil {
		return errors.Wrap(err, "marshal metadata")
	}

	if err := c.conn.Set([]byte("metadata#db"), bs, pebble.Sync); err != nil {
		return errors.Wrap(err, "set metadata#db")
	}

	return nil
}

func (c *Connection) GetEntry(serial string) (*archiveTypes.Entry, error) {
	bs, closer, err := c.conn.Get([]byte(fmt.Sprintf("entry#%s", serial)))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get entry#%s", serial)
	}
	defer closer.Close()

	var e archiveTypes.Entry
	if err := util.Unmarshal(bs, true, &e); err != nil {
		return nil, errors.Wrapf(err, "unmarshal entry#%s", serial)
	}

	return &e, nil
}

func (c *Connection) PutEntry(entry archiveTypes.Entry) error {
	bs, err := util.Marshal(entry, true)
	if err != nil {
		return errors.Wrapf(err, "marshal entry:%s", entry.ID)
	}

	key := entry.Serial
	if key == "" {
		key = entry.ID
	}
	if err := c.conn.Set([]byte(fmt.Sprintf("entry#%s", key)), bs, pebble.Sync); err != nil {
		return errors.Wrapf(err, "set entry#%s", key)
	}

	return nil
}

func (c *Connection) GetEntries() iter.Seq2[archiveTypes.Entry, error] {
	return func(yield func(archiveTypes.Entry, error) bool) {
		it, err := c.conn.NewIter(&pebble.IterOptions{
			LowerBound: []byte("entry#"),
			UpperBound: []byte("entry$"),
		})
		if err != nil {
			yield(archiveTypes.Entry{}, errors.Wrap(err, "new iterator"))
			return
		}
		defer it.Close()

		for it.First(); it.Valid(); it.Next() {
			var e archiveTypes.Entry
			if err := util.Unmarshal(it.Value(), true, &e); err != nil {
				if !yield(archiveTypes.Entry{}, errors.Wrapf(err, "unmarshal %s", string(it.Key()))) {
					return
				}
				continue
			}
			if !yield(e, nil) {
				return
			}
		}
	}
}

func (c *Connection) DeleteAll() error {
	if err := c.conn.DeleteRange([]byte("entry#"), []byte("entry$"), pebble.Sync); err != nil {
		return errors.Wrap(err, "delete range entry")
	}
	if err := c.conn.Delete([]byte("metadata#db"), pebble.Sync); err != nil {
		return errors.Wrap(err, "delete metadata#db")
	}
	return nil
}

func (c *Connection) Initialize() error {
	return nil
}
