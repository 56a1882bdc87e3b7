package redis

import (
	"context"
	"iter"

	"github.com/pkg/errors"
	"github.com/redis/rueidis"

	archiveTypes "github.com/swg-tools/sginfo/pkg/archive/common/types"
	"github.com/swg-tools/sginfo/pkg/archive/common/util"
)

// redis: HASH KEY: "metadata" FIELD: "db" VALUE: archiveTypes.Metadata

// redis: HASH KEY: "entry" FIELD: <serial> VALUE: zstd(archiveTypes.Entry)

type Connection struct {
	Config *rueidis.ClientOption

	conn rueidis.Client
}

func (c *Connection) Open() error {
	if c.Config == nil {
		return errors.New("connection config is not set")
	}

	client, err := rueidis.NewClient(*c.Config)
	if err != nil {
		return errors.WithStack(err)
	}
	c.conn = client
	return nil
}

func (c *Connection) Close() error {
	if c.conn == nil {
		return nil
	}
	c.conn.Close()
	return nil
}

func (c *Connection) GetMetadata() (*archiveTypes.Metadata, error) {
	bs, err := c.conn.Do(context.TODO(), c.conn.B().Hget().Key("metadata").Field("db").Build()).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "HGET %s %s", "metadata", "db")
	}

	var v archiveTypes.Metadata
	if err := util.Unmarshal(bs, false, &v); err != nil {
		return nil, errors.Wrap(err, "unmarshal metadata -> db")
	}

	return &v, nil
}

func (c *Connection) PutMetadata(metadata archiveTypes.Metadata) error {
	bs, err := util.Marshal(metadata, false)
	if err != nil {
		return errors.Wrap(err, "marshal metadata")
	}

	if err := c.conn.Do(context.TODO(), c.conn.B().Hset().Key("metadata").FieldValue().FieldValue("db", string(bs)).Build()).Error(); err != nil {
		return errors.Wrapf(err, "HSET %s %s", "metadata", "db")
	}

	return nil
}

func (c *Connection) GetEntry(serial string) (*archiveTypes.Entry, error) {
	bs, err := c.conn.Do(context.TODO(), c.conn.B().Hget().Key("entry").Field(serial).Build()).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "HGET %s %s", "entry", serial)
	}

	var e archiveTypes.Entry
	if err := util.Unmarshal(bs, true, &e); err != nil {
		return nil, errors.Wrapf(err, "unmarshal entry -> %s", serial)
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
	if err := c.conn.Do(context.TODO(), c.conn.B().Hset().Key("entry").FieldValue().FieldValue(key, string(bs)).Build()).Error(); err != nil {
		return errors.Wrapf(err, "HSET %s %s", "entry", key)
	}

	return nil
}

func (c *Connection) GetEntries() iter.Seq2[archiveTypes.Entry, error] {
	return func(yield func(archiveTypes.Entry, error) bool) {
		m, err := c.conn.Do(context.TODO(), c.conn.B().Hgetall().Key("entry").Build()).AsStrMap()
		if err != nil {
			yield(archiveTypes.Entry{}, errors.Wrapf(err, "HGETALL %s", "entry"))
			return
		}

		for serial, v := range m {
			var e archiveTypes.Entry
			if err := util.Unmarshal([]byte(v), true, &e); err != nil {
				if !yield(archiveTypes.Entry{}, errors.Wrapf(err, "unmarshal entry -> %s", serial)) {
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
	if err := c.conn.Do(context.TODO(), c.conn.B().Del().Key("metadata", "entry").Build()).Error(); err != nil {
		return errors.Wrapf(err, "DEL %s %s", "metadata", "entry")
	}
	return nil
}

func (c *Connection) Initialize() error {
	return nil
}
