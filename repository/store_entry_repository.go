package repository

import (
	"errors"
	"time"

	"naraintegration/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreEntryRepository provides data access for serialized integration collections.
type StoreEntryRepository interface {
	// GetByKey returns the entry for key, or nil without error when the key was never written.
	GetByKey(tx *gorm.DB, key string) (*models.StoreEntry, error)
	Upsert(tx *gorm.DB, entry *models.StoreEntry) error
	DeleteByKey(tx *gorm.DB, key string) error
}

type storeEntryRepository struct {
	db *gorm.DB
}

// NewStoreEntryRepository creates a new store entry repository bound to db.
func NewStoreEntryRepository(db *gorm.DB) StoreEntryRepository {
	return &storeEntryRepository{
		db: db,
	}
}

func (r *storeEntryRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *storeEntryRepository) GetByKey(tx *gorm.DB, key string) (*models.StoreEntry, error) {
	var entry models.StoreEntry
	err := r.conn(tx).Where("collection_key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *storeEntryRepository) Upsert(tx *gorm.DB, entry *models.StoreEntry) error {
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = time.Now().UTC()
	}
	return r.conn(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "schema_version", "updated_at"}),
	}).Create(entry).Error
}

func (r *storeEntryRepository) DeleteByKey(tx *gorm.DB, key string) error {
	return r.conn(tx).Where("collection_key = ?", key).Delete(&models.StoreEntry{}).Error
}
