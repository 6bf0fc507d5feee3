// Package dashboard keeps the latest monitoring view together with its derived summary and alerts.
package dashboard

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"naraintegration/models"
	"naraintegration/pkg/logger"
	"naraintegration/services/monitoring"
	"naraintegration/services/store"
)

// State is the lifecycle of the dashboard data.
type State string

// Dashboard states.
const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// MaxAlerts is the number of alerts shown on the dashboard.
const MaxAlerts = 5

// StatusBreakdown counts entries per status. Unknown statuses count as inactive.
type StatusBreakdown struct {
	Active      int `json:"active"`
	Maintenance int `json:"maintenance"`
	Error       int `json:"error"`
	Inactive    int `json:"inactive"`
}

// Summary holds the aggregate figures shown in the dashboard header.
type Summary struct {
	StatusBreakdown   StatusBreakdown `json:"statusBreakdown"`
	ActiveConnections int             `json:"activeConnections"`
	AvgHealthScore    int             `json:"avgHealthScore"`
	AlertsCount       int             `json:"alertsCount"`
	UptimeEstimate    int             `json:"uptimeEstimate"`
}

// View is a consistent copy of the dashboard state.
type View struct {
	Entries     []models.IntegrationMonitoringEntry `json:"entries"`
	Summary     Summary                             `json:"summary"`
	Alerts      []models.IntegrationMonitoringEntry `json:"alerts"`
	LastUpdated *time.Time                          `json:"last_updated"`
	IsLoading   bool                                `json:"is_loading"`
	State       State                               `json:"state"`
	Error       string                              `json:"error,omitempty"`
}

// Service refreshes and serves the dashboard view.
type Service struct {
	source monitoring.Service
	now    func() time.Time

	mu          sync.RWMutex
	state       State
	entries     []models.IntegrationMonitoringEntry
	summary     Summary
	alerts      []models.IntegrationMonitoringEntry
	lastUpdated *time.Time
	lastErr     error
	inFlight    int

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewService creates an idle dashboard fed by source.
func NewService(source monitoring.Service) *Service {
	return NewServiceWithClock(source, func() time.Time { return time.Now().UTC() })
}

// NewServiceWithClock creates an idle dashboard using now for last-updated stamps.
func NewServiceWithClock(source monitoring.Service, now func() time.Time) *Service {
	return &Service{
		source:  source,
		now:     now,
		state:   StateIdle,
		entries: []models.IntegrationMonitoringEntry{},
		summary: Summarize(nil),
		alerts:  []models.IntegrationMonitoringEntry{},
		stopCh:  make(chan struct{}),
	}
}

// Refresh fetches a new monitoring view. On failure the entries are cleared and the error is
// kept in the view. Concurrent calls are allowed and the last one to settle wins.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.inFlight++
	s.state = StateLoading
	s.lastErr = nil
	s.mu.Unlock()

	entries, err := s.source.GetDashboardData(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	if err != nil {
		logger.Warnf("Dashboard refresh failed: %v", err)
		s.setEntries(nil)
		s.lastErr = err
		s.state = StateError
		return err
	}

	s.setEntries(entries)
	now := s.now()
	s.lastUpdated = &now
	s.state = StateReady
	logger.Debugf("Dashboard refreshed: %d entries, %d alerts", len(s.entries), s.summary.AlertsCount)
	return nil
}

// setEntries stores entries and recomputes the derived values. Caller holds mu.
func (s *Service) setEntries(entries []models.IntegrationMonitoringEntry) {
	if entries == nil {
		entries = []models.IntegrationMonitoringEntry{}
	}
	s.entries = entries
	s.summary = Summarize(entries)
	s.alerts = TopAlerts(entries, MaxAlerts)
}

// View returns a copy of the current dashboard state.
func (s *Service) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := View{
		Entries:   store.Clone(s.entries),
		Summary:   s.summary,
		Alerts:    store.Clone(s.alerts),
		IsLoading: s.inFlight > 0,
		State:     s.state,
	}
	if view.IsLoading {
		view.State = StateLoading
	}
	if s.lastUpdated != nil {
		t := *s.lastUpdated
		view.LastUpdated = &t
	}
	if s.lastErr != nil {
		view.Error = s.lastErr.Error()
	}
	return view
}

// Start refreshes once and then every interval until ctx is done or Stop is called.
// A zero interval only performs the initial refresh.
func (s *Service) Start(ctx context.Context, interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.Refresh(ctx)
		if interval <= 0 {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		logger.Infof("Dashboard auto-refresh started, interval %v", interval)
		for {
			select {
			case <-ticker.C:
				s.Refresh(ctx)
			case <-ctx.Done():
				return
			case <-s.stopCh:
				logger.Infof("Dashboard auto-refresh stopped")
				return
			}
		}
	}()
}

// Stop ends the auto-refresh loop and waits for it to exit.
func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// Summarize derives the header figures from entries.
func Summarize(entries []models.IntegrationMonitoringEntry) Summary {
	var summary Summary
	healthTotal := 0
	for _, e := range entries {
		switch strings.ToLower(e.Status) {
		case "active":
			summary.StatusBreakdown.Active++
		case "maintenance":
			summary.StatusBreakdown.Maintenance++
		case "error":
			summary.StatusBreakdown.Error++
		default:
			summary.StatusBreakdown.Inactive++
		}
		healthTotal += e.HealthScore
		if e.AlertThresholdBreached {
			summary.AlertsCount++
		}
	}

	summary.ActiveConnections = summary.StatusBreakdown.Active
	if len(entries) > 0 {
		summary.AvgHealthScore = int(math.Round(float64(healthTotal) / float64(len(entries))))
	}
	uptime := 100 - float64(summary.AlertsCount)/float64(max(1, len(entries)))*12
	summary.UptimeEstimate = min(100, max(0, int(math.Round(uptime))))
	return summary
}

// TopAlerts returns up to limit breached entries, healthiest first. Ties keep their input order.
func TopAlerts(entries []models.IntegrationMonitoringEntry, limit int) []models.IntegrationMonitoringEntry {
	alerts := make([]models.IntegrationMonitoringEntry, 0, len(entries))
	for _, e := range entries {
		if e.AlertThresholdBreached {
			alerts = append(alerts, e)
		}
	}
	slices.SortStableFunc(alerts, func(a, b models.IntegrationMonitoringEntry) int {
		return cmp.Compare(b.HealthScore, a.HealthScore)
	})
	if len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts
}
