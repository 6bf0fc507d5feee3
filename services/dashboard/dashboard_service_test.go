package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"naraintegration/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refreshedAt = time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)

type sourceFunc func(ctx context.Context) ([]models.IntegrationMonitoringEntry, error)

func (f sourceFunc) GetDashboardData(ctx context.Context) ([]models.IntegrationMonitoringEntry, error) {
	return f(ctx)
}

func staticSource(entries []models.IntegrationMonitoringEntry) sourceFunc {
	return func(context.Context) ([]models.IntegrationMonitoringEntry, error) { return entries, nil }
}

func newTestService(source sourceFunc) *Service {
	return NewServiceWithClock(source, func() time.Time { return refreshedAt })
}

func entry(id, status string, health int, alert bool) models.IntegrationMonitoringEntry {
	return models.IntegrationMonitoringEntry{ID: id, Name: id, Status: status, HealthScore: health, AlertThresholdBreached: alert}
}

func TestNewService_Idle(t *testing.T) {
	svc := newTestService(staticSource(nil))

	view := svc.View()
	assert.Equal(t, StateIdle, view.State)
	assert.False(t, view.IsLoading)
	assert.Nil(t, view.LastUpdated)
	assert.Empty(t, view.Entries)
	assert.Equal(t, 100, view.Summary.UptimeEstimate)
}

func TestRefresh_EmptyEntries(t *testing.T) {
	svc := newTestService(staticSource([]models.IntegrationMonitoringEntry{}))

	require.NoError(t, svc.Refresh(context.Background()))

	view := svc.View()
	assert.Equal(t, StateReady, view.State)
	assert.Equal(t, Summary{UptimeEstimate: 100}, view.Summary)
	assert.Empty(t, view.Alerts)
	require.NotNil(t, view.LastUpdated)
	assert.Equal(t, refreshedAt, *view.LastUpdated)
}

func TestRefresh_SingleErroredConnection(t *testing.T) {
	svc := newTestService(staticSource([]models.IntegrationMonitoringEntry{entry("gov-1", "error", 72, true)}))

	require.NoError(t, svc.Refresh(context.Background()))

	summary := svc.View().Summary
	assert.Equal(t, StatusBreakdown{Error: 1}, summary.StatusBreakdown)
	assert.Equal(t, 72, summary.AvgHealthScore)
	assert.Equal(t, 1, summary.AlertsCount)
	assert.Equal(t, 88, summary.UptimeEstimate)
	assert.Len(t, svc.View().Alerts, 1)
}

func TestRefresh_FailureClearsEntries(t *testing.T) {
	fail := false
	svc := newTestService(func(context.Context) ([]models.IntegrationMonitoringEntry, error) {
		if fail {
			return nil, errors.New("aggregator unavailable")
		}
		return []models.IntegrationMonitoringEntry{entry("gov-1", "active", 96, false)}, nil
	})
	ctx := context.Background()

	require.NoError(t, svc.Refresh(ctx))
	require.Len(t, svc.View().Entries, 1)

	fail = true
	err := svc.Refresh(ctx)
	require.Error(t, err)

	view := svc.View()
	assert.Equal(t, StateError, view.State)
	assert.Equal(t, "aggregator unavailable", view.Error)
	assert.Empty(t, view.Entries)
	assert.Empty(t, view.Alerts)
	assert.Equal(t, 0, view.Summary.AvgHealthScore)

	fail = false
	require.NoError(t, svc.Refresh(ctx))
	assert.Empty(t, svc.View().Error, "a new refresh clears the error")
	assert.Equal(t, StateReady, svc.View().State)
}

func TestRefresh_ConcurrentLastSettledWins(t *testing.T) {
	releases := []chan struct{}{make(chan struct{}), make(chan struct{})}
	var calls atomic.Int32
	svc := newTestService(func(context.Context) ([]models.IntegrationMonitoringEntry, error) {
		n := calls.Add(1) - 1
		<-releases[n]
		return []models.IntegrationMonitoringEntry{entry([]string{"first", "second"}[n], "active", 90, false)}, nil
	})
	ctx := context.Background()

	done := make(chan struct{}, 2)
	go func() { svc.Refresh(ctx); done <- struct{}{} }()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	go func() { svc.Refresh(ctx); done <- struct{}{} }()
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)

	assert.True(t, svc.View().IsLoading)
	assert.Equal(t, StateLoading, svc.View().State)

	close(releases[1])
	<-done
	assert.True(t, svc.View().IsLoading, "still loading while the first call is in flight")
	assert.Equal(t, "second", svc.View().Entries[0].ID)

	close(releases[0])
	<-done
	view := svc.View()
	assert.False(t, view.IsLoading)
	assert.Equal(t, StateReady, view.State)
	assert.Equal(t, "first", view.Entries[0].ID, "the last call to settle wins")
}

func TestView_ReturnsCopy(t *testing.T) {
	svc := newTestService(staticSource([]models.IntegrationMonitoringEntry{entry("api-2", "inactive", 60, true)}))
	require.NoError(t, svc.Refresh(context.Background()))

	view := svc.View()
	view.Entries[0].Name = "mutated"
	view.Alerts[0].Name = "mutated"

	assert.Equal(t, "api-2", svc.View().Entries[0].Name)
	assert.Equal(t, "api-2", svc.View().Alerts[0].Name)
}

func TestSummarize(t *testing.T) {
	entries := []models.IntegrationMonitoringEntry{
		entry("a", "ACTIVE", 96, false),
		entry("b", "maintenance", 72, true),
		entry("c", "error", 70, true),
		entry("d", "pending", 60, true),
		entry("e", "", 88, false),
	}

	summary := Summarize(entries)
	assert.Equal(t, StatusBreakdown{Active: 1, Maintenance: 1, Error: 1, Inactive: 2}, summary.StatusBreakdown)
	assert.Equal(t, 1, summary.ActiveConnections)
	assert.Equal(t, 77, summary.AvgHealthScore)
	assert.Equal(t, 3, summary.AlertsCount)
	assert.Equal(t, 93, summary.UptimeEstimate)
}

func TestSummarize_UptimeNeverNegative(t *testing.T) {
	entries := []models.IntegrationMonitoringEntry{entry("a", "error", 10, true)}
	summary := Summarize(entries)
	assert.GreaterOrEqual(t, summary.UptimeEstimate, 0)
	assert.LessOrEqual(t, summary.UptimeEstimate, 100)
}

func TestTopAlerts(t *testing.T) {
	entries := []models.IntegrationMonitoringEntry{
		entry("a", "error", 60, true),
		entry("b", "active", 96, false),
		entry("c", "maintenance", 72, true),
		entry("d", "inactive", 72, true),
		entry("e", "inactive", 60, true),
		entry("f", "inactive", 88, true),
		entry("g", "inactive", 70, true),
	}

	alerts := TopAlerts(entries, MaxAlerts)
	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"f", "c", "d", "g", "a"}, ids)
}

func TestStartStop(t *testing.T) {
	var calls atomic.Int32
	svc := newTestService(func(context.Context) ([]models.IntegrationMonitoringEntry, error) {
		calls.Add(1)
		return []models.IntegrationMonitoringEntry{}, nil
	})

	svc.Start(context.Background(), 5*time.Millisecond)
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	svc.Stop()

	stopped := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())
	assert.Equal(t, StateReady, svc.View().State)
}

func TestStart_ZeroIntervalRefreshesOnce(t *testing.T) {
	var calls atomic.Int32
	svc := newTestService(func(context.Context) ([]models.IntegrationMonitoringEntry, error) {
		calls.Add(1)
		return nil, nil
	})

	svc.Start(context.Background(), 0)
	svc.Stop()
	assert.Equal(t, int32(1), calls.Load())
}
