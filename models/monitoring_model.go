package models

import "time"

// IntegrationMonitoringEntry is the normalized health record of one integration.
// It is derived on every aggregation and never persisted.
type IntegrationMonitoringEntry struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	System                 string     `json:"system"`
	Status                 string     `json:"status"`
	HealthScore            int        `json:"health_score"`
	AlertThresholdBreached bool       `json:"alert_threshold_breached"`
	LastSyncedAt           *time.Time `json:"last_synced_at"`
}
