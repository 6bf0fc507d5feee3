package integration

import (
	"context"
	"strings"
	"testing"

	"naraintegration/models"
	"naraintegration/services/dto"
	"naraintegration/services/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIEndpointService_CreateEndpoint_Defaults(t *testing.T) {
	svc := NewAPIEndpointService(store.New(nil), nil, testOptions())

	created, err := svc.CreateEndpoint(context.Background(), dto.APIEndpointCreate{
		Name:        "Tide gauge feed",
		EndpointURL: "https://api.example.org/tides",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "api-"))
	assert.True(t, created.IsActive)
	assert.Equal(t, 250, created.AverageLatencyMs)
	assert.Equal(t, 0, created.RequestsToday)
	assert.Equal(t, 0.0, created.ErrorRate)
	assert.Equal(t, "GET", created.Method)
	assert.Equal(t, fixedNow, created.CreatedAt)
}

func TestAPIEndpointService_CreateEndpoint_ExplicitValuesWin(t *testing.T) {
	svc := NewAPIEndpointService(store.New(nil), nil, testOptions())

	created, err := svc.CreateEndpoint(context.Background(), dto.APIEndpointCreate{
		Name:             "Draft endpoint",
		EndpointURL:      "https://api.example.org/draft",
		IsActive:         ptr(false),
		AverageLatencyMs: ptr(80),
	})
	require.NoError(t, err)
	assert.False(t, created.IsActive)
	assert.Equal(t, 80, created.AverageLatencyMs)
}

func TestAPIEndpointService_ToggleEndpointStatus(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	result, err := reg.APIEndpoints.ToggleEndpointStatus(ctx, "api-2", true)
	require.NoError(t, err)
	assert.Equal(t, Found, result)
	assert.True(t, reg.APIEndpoints.Snapshot()[1].IsActive)

	result, err = reg.APIEndpoints.ToggleEndpointStatus(ctx, "api-404", true)
	require.NoError(t, err)
	assert.Equal(t, NotFound, result)
}

func TestAPIEndpointService_GetUsageAnalytics(t *testing.T) {
	reg, _ := newTestRegistry()

	tests := []struct {
		rangeKey string
		total    int
	}{
		{rangeKey: Range24Hours, total: 20296},
		{rangeKey: Range7Days, total: 20296 * 7},
		{rangeKey: Range30Days, total: 20296 * 30},
		{rangeKey: "quarter", total: 20296 * 30},
	}
	for _, tt := range tests {
		t.Run(tt.rangeKey, func(t *testing.T) {
			got, err := reg.APIEndpoints.GetUsageAnalytics(context.Background(), tt.rangeKey)
			require.NoError(t, err)
			assert.Equal(t, tt.rangeKey, got.Range)
			assert.Equal(t, tt.total, got.TotalRequests)
			assert.Equal(t, 330, got.AverageLatency)
			assert.InDelta(t, 0.8, got.ErrorRate, 1e-9)
			assert.Equal(t, fixedNow, got.GeneratedAt)
		})
	}
}

func TestBuildUsageAnalytics_Empty(t *testing.T) {
	got := buildUsageAnalytics(nil, "")
	assert.Equal(t, Range24Hours, got.Range)
	assert.Zero(t, got.TotalRequests)
	assert.Zero(t, got.AverageLatency)
	assert.Zero(t, got.ErrorRate)
}

func TestBuildUsageAnalytics_Rounding(t *testing.T) {
	endpoints := []models.APIEndpoint{
		{AverageLatencyMs: 100, ErrorRate: 0.333},
		{AverageLatencyMs: 101, ErrorRate: 0.333},
		{AverageLatencyMs: 101, ErrorRate: 0.335},
	}
	got := buildUsageAnalytics(endpoints, Range24Hours)
	assert.Equal(t, 101, got.AverageLatency)
	assert.InDelta(t, 0.33, got.ErrorRate, 1e-9)
}

func TestRegistry_Reset(t *testing.T) {
	reg, medium := newTestRegistry()
	ctx := context.Background()
	_, err := reg.Government.Delete(ctx, "gov-1")
	require.NoError(t, err)

	reg.Reset(emptySamples())

	assert.Empty(t, reg.Government.Snapshot())
	assert.Empty(t, reg.APIEndpoints.Snapshot())
	_, _, ok, _ := medium.Load(store.KeyGovernment)
	assert.False(t, ok)
}
