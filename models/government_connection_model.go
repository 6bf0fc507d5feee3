package models

import "time"

// ConnectionStatus is the lifecycle state of a government database connection.
type ConnectionStatus string

// Connection statuses shown in the government database section.
const (
	ConnectionActive      ConnectionStatus = "active"
	ConnectionInactive    ConnectionStatus = "inactive"
	ConnectionPending     ConnectionStatus = "pending"
	ConnectionMaintenance ConnectionStatus = "maintenance"
	ConnectionError       ConnectionStatus = "error"
)

// GovernmentConnection represents an API connector to a government agency database.
// SyncFrequencyHours is expected in 1..168 but only the HTTP layer enforces it.
type GovernmentConnection struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	ConnectionURL      string           `json:"connection_url"`
	DataFormat         string           `json:"data_format"`    // json, xml, csv, binary
	SecurityLevel      string           `json:"security_level"` // public, internal, confidential, classified
	SyncFrequencyHours int              `json:"sync_frequency_hours"`
	ConnectionStatus   ConnectionStatus `json:"connection_status"`
	CreatedAt          time.Time        `json:"created_at"`
	LastSyncedAt       *time.Time       `json:"last_synced_at"`
}
