// Package monitoring projects the live integration collections into normalized health entries.
package monitoring

import (
	"context"
	"time"

	"naraintegration/models"
	"naraintegration/pkg/logger"
	"naraintegration/services/integration"
	"naraintegration/services/store"
)

// Systems reported on monitoring entries.
const (
	SystemGovernment = "Government database"
	SystemAPIGateway = "API gateway"
	SystemSatellite  = "Satellite ingest"
)

// Health scores per source kind, and the error rate above which an endpoint alerts.
const (
	governmentHealthy   = 96
	governmentDegraded  = 72
	endpointHealthy     = 92
	endpointDegraded    = 60
	satelliteHealthy    = 88
	satelliteDegraded   = 70
	endpointMaxErrorPct = 1.0
)

// Collections read by the aggregator.
type (
	GovernmentSource interface {
		Snapshot() []models.GovernmentConnection
	}
	EndpointSource interface {
		Snapshot() []models.APIEndpoint
	}
	SatelliteSource interface {
		SnapshotSources() []models.SatelliteDataSource
	}
)

// Service serves the monitoring view consumed by the dashboard.
type Service interface {
	GetDashboardData(ctx context.Context) ([]models.IntegrationMonitoringEntry, error)
}

type aggregator struct {
	government GovernmentSource
	endpoints  EndpointSource
	satellites SatelliteSource
	latency    integration.Latency
	now        func() time.Time
}

// NewService builds the aggregator over the registry's live collections.
func NewService(reg *integration.Registry, opts integration.Options) Service {
	return NewServiceWithDeps(reg.Government, reg.APIEndpoints, reg.Satellite, opts)
}

// NewServiceWithDeps builds the aggregator over explicit sources.
func NewServiceWithDeps(gov GovernmentSource, endpoints EndpointSource, satellites SatelliteSource, opts integration.Options) Service {
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &aggregator{
		government: gov,
		endpoints:  endpoints,
		satellites: satellites,
		latency:    opts.Latency,
		now:        now,
	}
}

func (a *aggregator) GetDashboardData(ctx context.Context) ([]models.IntegrationMonitoringEntry, error) {
	entries := BuildMonitoringView(a.government.Snapshot(), a.endpoints.Snapshot(), a.satellites.SnapshotSources(), a.now())
	logger.Debugf("Aggregated %d monitoring entries", len(entries))
	if err := a.latency.Wait(ctx); err != nil {
		return nil, err
	}
	return store.Clone(entries), nil
}

// BuildMonitoringView projects government connections, API endpoints and satellite sources, in
// that order, into monitoring entries. Satellites that never ingested report asOf.
func BuildMonitoringView(gov []models.GovernmentConnection, apis []models.APIEndpoint, sats []models.SatelliteDataSource, asOf time.Time) []models.IntegrationMonitoringEntry {
	entries := make([]models.IntegrationMonitoringEntry, 0, len(gov)+len(apis)+len(sats))

	for _, c := range gov {
		active := c.ConnectionStatus == models.ConnectionActive
		entries = append(entries, models.IntegrationMonitoringEntry{
			ID:                     c.ID,
			Name:                   c.Name,
			System:                 SystemGovernment,
			Status:                 string(c.ConnectionStatus),
			HealthScore:            score(active, governmentHealthy, governmentDegraded),
			AlertThresholdBreached: !active,
			LastSyncedAt:           copyTime(c.LastSyncedAt),
		})
	}

	for _, e := range apis {
		status := "inactive"
		if e.IsActive {
			status = "active"
		}
		created := e.CreatedAt
		entries = append(entries, models.IntegrationMonitoringEntry{
			ID:                     e.ID,
			Name:                   e.Name,
			System:                 SystemAPIGateway,
			Status:                 status,
			HealthScore:            score(e.IsActive, endpointHealthy, endpointDegraded),
			AlertThresholdBreached: !e.IsActive || e.ErrorRate > endpointMaxErrorPct,
			LastSyncedAt:           &created,
		})
	}

	for _, s := range sats {
		active := s.Status == "active"
		synced := asOf
		if s.LastIngestedAt != nil {
			synced = *s.LastIngestedAt
		}
		entries = append(entries, models.IntegrationMonitoringEntry{
			ID:                     s.ID,
			Name:                   s.SatelliteName,
			System:                 SystemSatellite,
			Status:                 s.Status,
			HealthScore:            score(active, satelliteHealthy, satelliteDegraded),
			AlertThresholdBreached: !active,
			LastSyncedAt:           &synced,
		})
	}

	return entries
}

func score(active bool, healthy, degraded int) int {
	if active {
		return healthy
	}
	return degraded
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
