package store

import (
	"errors"
	"sync"

	"naraintegration/models"
	"naraintegration/repository"

	"gorm.io/datatypes"
)

// Medium is the persistent backend behind a Store: one string value per collection key.
type Medium interface {
	// Load returns the stored value and its schema version; ok is false when the key is absent.
	Load(key string) (value []byte, version int, ok bool, err error)
	Save(key string, value []byte, version int) error
	Remove(key string) error
}

// DatabaseMedium persists collections through the store entry repository.
type DatabaseMedium struct {
	repo repository.StoreEntryRepository
}

// NewDatabaseMedium wraps repo as a Medium.
func NewDatabaseMedium(repo repository.StoreEntryRepository) *DatabaseMedium {
	return &DatabaseMedium{repo: repo}
}

func (m *DatabaseMedium) Load(key string) ([]byte, int, bool, error) {
	entry, err := m.repo.GetByKey(nil, key)
	if err != nil {
		return nil, 0, false, err
	}
	if entry == nil {
		return nil, 0, false, nil
	}
	return []byte(entry.Value), entry.SchemaVersion, true, nil
}

func (m *DatabaseMedium) Save(key string, value []byte, version int) error {
	return m.repo.Upsert(nil, &models.StoreEntry{
		CollectionKey: key,
		Value:         datatypes.JSON(value),
		SchemaVersion: version,
	})
}

func (m *DatabaseMedium) Remove(key string) error {
	return m.repo.DeleteByKey(nil, key)
}

// ErrQuotaExceeded is returned by a MemoryMedium whose quota would be exceeded by a write.
var ErrQuotaExceeded = errors.New("store quota exceeded")

type memoryValue struct {
	data    []byte
	version int
}

// MemoryMedium keeps values in process memory. A positive Quota caps the total stored bytes.
type MemoryMedium struct {
	Quota int

	mu     sync.Mutex
	values map[string]memoryValue
}

// NewMemoryMedium returns an empty, unbounded MemoryMedium.
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{values: make(map[string]memoryValue)}
}

func (m *MemoryMedium) Load(key string) ([]byte, int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, 0, false, nil
	}
	return append([]byte(nil), v.data...), v.version, true, nil
}

func (m *MemoryMedium) Save(key string, value []byte, version int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]memoryValue)
	}
	if m.Quota > 0 {
		total := len(value)
		for k, v := range m.values {
			if k != key {
				total += len(v.data)
			}
		}
		if total > m.Quota {
			return ErrQuotaExceeded
		}
	}
	m.values[key] = memoryValue{data: append([]byte(nil), value...), version: version}
	return nil
}

func (m *MemoryMedium) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Put stores a raw value, bypassing serialization. Used to plant blobs written by other clients.
func (m *MemoryMedium) Put(key, raw string, version int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]memoryValue)
	}
	m.values[key] = memoryValue{data: []byte(raw), version: version}
}
