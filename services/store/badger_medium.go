package store

import (
	"errors"
	"fmt"
	"os"

	"naraintegration/pkg/logger"

	"github.com/dgraph-io/badger/v4"
)

// BadgerMedium persists collections in an embedded badger database. The schema version is
// carried in each entry's user metadata byte.
type BadgerMedium struct {
	db *badger.DB
}

// OpenBadgerMedium opens a badger database at path, or in memory when path is empty.
func OpenBadgerMedium(path string) (*BadgerMedium, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0750); err != nil {
			return nil, fmt.Errorf("create badger directory %s: %w", path, err)
		}
		opts = badger.DefaultOptions(path).WithSyncWrites(true)
	}
	opts = opts.WithNumVersionsToKeep(1).WithLogger(badgerLogger{})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerMedium{db: db}, nil
}

func (m *BadgerMedium) Load(key string) ([]byte, int, bool, error) {
	var (
		value   []byte
		version int
	)
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		version = int(item.UserMeta())
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, err
	}
	return value, version, true, nil
}

func (m *BadgerMedium) Save(key string, value []byte, version int) error {
	if version < 0 || version > 255 {
		return fmt.Errorf("schema version %d does not fit the entry metadata", version)
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), value).WithMeta(byte(version)))
	})
}

func (m *BadgerMedium) Remove(key string) error {
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close flushes and closes the database.
func (m *BadgerMedium) Close() error {
	return m.db.Close()
}

// badgerLogger routes badger's internal logging to the application logger.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	logger.Errorf("[badger] "+format, args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	logger.Warnf("[badger] "+format, args...)
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	logger.Debugf("[badger] "+format, args...)
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	logger.Debugf("[badger] "+format, args...)
}
