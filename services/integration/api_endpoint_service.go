package integration

import (
	"context"
	"math"

	"naraintegration/models"
	"naraintegration/pkg/logger"
	"naraintegration/services/dto"
	"naraintegration/services/store"
	"naraintegration/utils"
)

// Usage analytics ranges.
const (
	Range24Hours = "24h"
	Range7Days   = "7d"
	Range30Days  = "30d"
)

// APIEndpointService manages endpoints published through the gateway.
type APIEndpointService interface {
	GetAllEndpoints(ctx context.Context) ([]models.APIEndpoint, error)
	CreateEndpoint(ctx context.Context, req dto.APIEndpointCreate) (*models.APIEndpoint, error)
	ToggleEndpointStatus(ctx context.Context, id string, enabled bool) (Result, error)
	// GetUsageAnalytics scales today's traffic to rangeKey: 24h, 7d, anything else counts as 30 days.
	GetUsageAnalytics(ctx context.Context, rangeKey string) (*models.UsageAnalytics, error)

	Snapshot() []models.APIEndpoint
	Reset(seed []models.APIEndpoint)
}

type apiEndpointService struct {
	items *collection[models.APIEndpoint]
	opts  Options
}

// NewAPIEndpointService loads the endpoint collection from st, seeding it with seed when absent.
func NewAPIEndpointService(st *store.Store, seed []models.APIEndpoint, opts Options) APIEndpointService {
	return &apiEndpointService{
		items: newCollection(st, store.KeyAPIEndpoints, seed, func(e *models.APIEndpoint) string { return e.ID }),
		opts:  opts,
	}
}

func (s *apiEndpointService) GetAllEndpoints(ctx context.Context) ([]models.APIEndpoint, error) {
	return respond(ctx, s.opts, s.items.snapshot())
}

func (s *apiEndpointService) CreateEndpoint(ctx context.Context, req dto.APIEndpointCreate) (*models.APIEndpoint, error) {
	endpoint := models.APIEndpoint{
		ID:                 utils.CreateID("api"),
		Name:               req.Name,
		Description:        req.Description,
		EndpointURL:        req.EndpointURL,
		Method:             defaultString(req.Method, "GET"),
		AuthenticationType: req.AuthenticationType,
		RateLimitPerMinute: req.RateLimitPerMinute,
		TimeoutSeconds:     req.TimeoutSeconds,
		IntegrationType:    req.IntegrationType,
		AccessLevel:        req.AccessLevel,
		IsActive:           true,
		AverageLatencyMs:   250,
		CreatedAt:          s.opts.now(),
	}
	if req.IsActive != nil {
		endpoint.IsActive = *req.IsActive
	}
	if req.AverageLatencyMs != nil {
		endpoint.AverageLatencyMs = *req.AverageLatencyMs
	}

	created := s.items.prepend(endpoint)
	logger.Infof("Created API endpoint %s (%s %s)", created.ID, created.Method, created.EndpointURL)
	return respond(ctx, s.opts, &created)
}

func (s *apiEndpointService) ToggleEndpointStatus(ctx context.Context, id string, enabled bool) (Result, error) {
	result, _ := s.items.update(id, func(e *models.APIEndpoint) {
		e.IsActive = enabled
	})
	logger.Debugf("API endpoint %s active=%t: %s", id, enabled, result)
	return respond(ctx, s.opts, result)
}

func (s *apiEndpointService) GetUsageAnalytics(ctx context.Context, rangeKey string) (*models.UsageAnalytics, error) {
	endpoints := s.items.snapshot()
	analytics := buildUsageAnalytics(endpoints, rangeKey)
	analytics.GeneratedAt = s.opts.now()
	return respond(ctx, s.opts, &analytics)
}

func (s *apiEndpointService) Snapshot() []models.APIEndpoint {
	return s.items.snapshot()
}

func (s *apiEndpointService) Reset(seed []models.APIEndpoint) {
	s.items.reset(seed)
}

func rangeFactor(rangeKey string) int {
	switch rangeKey {
	case Range24Hours:
		return 1
	case Range7Days:
		return 7
	default:
		return 30
	}
}

func buildUsageAnalytics(endpoints []models.APIEndpoint, rangeKey string) models.UsageAnalytics {
	if rangeKey == "" {
		rangeKey = Range24Hours
	}
	var requests, latency int
	var errorRate float64
	for _, e := range endpoints {
		requests += e.RequestsToday
		latency += e.AverageLatencyMs
		errorRate += e.ErrorRate
	}
	n := float64(max(1, len(endpoints)))
	return models.UsageAnalytics{
		Range:          rangeKey,
		TotalRequests:  requests * rangeFactor(rangeKey),
		AverageLatency: int(math.Round(float64(latency) / n)),
		ErrorRate:      math.Round(errorRate/n*100) / 100,
	}
}
