package rdb

import (
	"iter"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	archiveTypes "github.com/swg-tools/sginfo/pkg/archive/common/types"
	"github.com/swg-tools/sginfo/pkg/archive/common/util"
)

type Config struct {
	Type    string
	Path    string
	Options []gorm.Option
}

type Connection struct {
	Config *Config

	conn *gorm.DB
}

type metadataModel struct {
	ID   uint `gorm:"primaryKey"`
	Data []byte
}

func (metadataModel) TableName() string {
	return "metadata"
}

type entryModel struct {
	ID     string `gorm:"primaryKey"`
	Serial string `gorm:"index"`
	Data   []byte
}

func (entryModel) TableName() string {
	return "entries"
}

func (c *Connection) Open() error {
	if c.Config == nil {
		return errors.New("connection config is not set")
	}

	switch c.Config.Type {
	case "sqlite3":
		db, err := gorm.Open(sqlite.Open(c.Config.Path), c.Config.Options...)
		if err != nil {
			return errors.WithStack(err)
		}
		c.conn = db
		return nil
	case "mysql":
		db, err := gorm.Open(mysql.Open(c.Config.Path), c.Config.Options...)
		if err != nil {
			return errors.WithStack(err)
		}
		c.conn = db
		return nil
	case "postgres":
		db, err := gorm.Open(postgres.Open(c.Config.Path), c.Config.Options...)
		if err != nil {
			return errors.WithStack(err)
		}
		c.conn = db
		return nil
	default:
		return errors.Errorf("%s is not support rdb dbtype", c.Config.Type)
	}
}

func (c *Connection) Close() error {
	if c.conn == nil {
		return nil
	}
	db, err := c.conn.DB()
	if err != nil {
		return errors.Wrap(err, "get *sql.DB")
	}
	return db.Close()
}

func (c *Connection) GetMetadata() (*archiveTypes.Metadata, error) {
	var m metadataModel
	if err := c.conn.First(&m).Error; err != nil {
		return nil, errors.Wrap(err, "select metadata")
	}

	var v archiveTypes.Metadata
	if err := util.Unmarshal(m.Data, false, &v); err != nil {
		return nil, errors.Wrap(err, "unmarshal metadata")
	}

	return &v, nil
}

func (c *Connection) PutMetadata(metadata archiveTypes.Metadata) error {
	bs, err := util.Marshal(metadata, false)
	if err != nil {
		return errors.Wrap(err, "marshal metadata")
	}

	if err := c.conn.Save(&metadataModel{ID: 1, Data: bs}).Error; err != nil {
		return errors.Wrap(err, "save metadata")
	}

	return nil
}

func (c *Connection) GetEntry(serial string) (*archiveTypes.Entry, error) {
	var m entryModel
	if err := c.conn.Where("serial = ?", serial).Or("id = ?", serial).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "select entry %s", serial)
	}

	var e archiveTypes.Entry
	if err := util.Unmarshal(m.Data, true, &e); err != nil {
		return nil, errors.Wrapf(err, "unmarshal entry %s", serial)
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
	if err := c.conn.Save(&entryModel{ID: key, Serial: entry.Serial, Data: bs}).Error; err != nil {
		return errors.Wrapf(err, "save entry %s", key)
	}

	return nil
}

func (c *Connection) GetEntries() iter.Seq2[archiveTypes.Entry, error] {
	return func(yield func(archiveTypes.Entry, error) bool) {
		var ms []entryModel
		if err := c.conn.Find(&ms).Error; err != nil {
			yield(archiveTypes.Entry{}, errors.Wrap(err, "select entries"))
			return
		}

		for _, m := range ms {
			var e archiveTypes.Entry
			if err := util.Unmarshal(m.Data, true, &e); err != nil {
				if !yield(archiveTypes.Entry{}, errors.Wrapf(err, "unmarshal entry %s", m.ID)) {
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
	for _, m := range []any{&metadataModel{}, &entryModel{}} {
		if !c.conn.Migrator().HasTable(m) {
			continue
		}
		if err := c.conn.Migrator().DropTable(m); err != nil {
			return errors.Wrap(err, "drop table")
		}
	}
	return nil
}

func (c *Connection) Initialize() error {
	if err := c.conn.AutoMigrate(&metadataModel{}, &entryModel{}); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}
