package models

import "time"

// APIEndpoint is a third-party API published through the agency gateway.
type APIEndpoint struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	EndpointURL        string    `json:"endpoint_url"`
	Method             string    `json:"method"`
	AuthenticationType string    `json:"authentication_type"`
	RateLimitPerMinute int       `json:"rate_limit_per_minute"`
	TimeoutSeconds     int       `json:"timeout_seconds"`
	IntegrationType    string    `json:"integration_type"`
	AccessLevel        string    `json:"access_level,omitempty"`
	IsActive           bool      `json:"is_active"`
	AverageLatencyMs   int       `json:"average_latency_ms"`
	RequestsToday      int       `json:"requests_today"`
	ErrorRate          float64   `json:"error_rate"`
	CreatedAt          time.Time `json:"created_at"`
}

// UsageAnalytics summarises gateway traffic over a reporting range.
type UsageAnalytics struct {
	Range          string    `json:"range"`
	TotalRequests  int       `json:"totalRequests"`
	AverageLatency int       `json:"averageLatency"`
	ErrorRate      float64   `json:"errorRate"`
	GeneratedAt    time.Time `json:"generatedAt"`
}
