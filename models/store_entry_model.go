package models

import (
	"time"

	"gorm.io/datatypes"
)

// StoreEntry holds one serialized collection in the integration store table.
// SchemaVersion tags the record shape of Value so incompatible blobs can be ignored.
type StoreEntry struct {
	CollectionKey string         `gorm:"primaryKey;column:collection_key;size:128" json:"collection_key"`
	Value         datatypes.JSON `gorm:"column:value" json:"value"`
	SchemaVersion int            `gorm:"column:schema_version" json:"schema_version"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the static table name for GORM.
func (StoreEntry) TableName() string {
	return "integration_store"
}
