package dto

import (
	"time"

	"naraintegration/models"
)

// GovernmentConnectionCreate is the payload for registering a government database connector.
// Omitted fields take their documented defaults: json, internal, 24 hours, pending.
type GovernmentConnectionCreate struct {
	Name               string                  `json:"name" validate:"required"`
	Description        string                  `json:"description"`
	ConnectionURL      string                  `json:"connection_url" validate:"omitempty,url"`
	DataFormat         string                  `json:"data_format" validate:"omitempty,oneof=json xml csv binary geojson"`
	SecurityLevel      string                  `json:"security_level" validate:"omitempty,oneof=public internal confidential classified"`
	SyncFrequencyHours int                     `json:"sync_frequency_hours" validate:"omitempty,min=1,max=168"`
	ConnectionStatus   models.ConnectionStatus `json:"connection_status" validate:"omitempty,oneof=active inactive pending maintenance error"`
}

// GovernmentConnectionPatch updates the given fields of a connection. Nil fields are left untouched.
type GovernmentConnectionPatch struct {
	Name               *string `json:"name" validate:"omitempty,min=1"`
	Description        *string `json:"description"`
	ConnectionURL      *string `json:"connection_url" validate:"omitempty,url"`
	DataFormat         *string `json:"data_format" validate:"omitempty,oneof=json xml csv binary geojson"`
	SecurityLevel      *string `json:"security_level" validate:"omitempty,oneof=public internal confidential classified"`
	SyncFrequencyHours *int    `json:"sync_frequency_hours" validate:"omitempty,min=1,max=168"`
}

// ConnectionStatusUpdate sets the lifecycle status of a government connection.
type ConnectionStatusUpdate struct {
	Status models.ConnectionStatus `json:"status" validate:"required,oneof=active inactive pending maintenance error"`
}

// ResearchInstitutionCreate is the payload for registering a research partner.
type ResearchInstitutionCreate struct {
	Name              string                   `json:"name" validate:"required"`
	Country           string                   `json:"country"`
	WebsiteURL        string                   `json:"website_url" validate:"omitempty,url"`
	ContactEmail      string                   `json:"contact_email" validate:"omitempty,email"`
	ResearchAreas     []string                 `json:"research_areas"`
	PartnershipStatus models.PartnershipStatus `json:"partnership_status" validate:"omitempty,oneof=active pending inactive"`
	EstablishedAt     *time.Time               `json:"established_at"`
}

// PartnershipStatusUpdate sets the partnership status of an institution.
type PartnershipStatusUpdate struct {
	Status models.PartnershipStatus `json:"status" validate:"required,oneof=active pending inactive"`
}

// ResearchAreaAdd appends one research area to an institution.
type ResearchAreaAdd struct {
	Area string `json:"area" validate:"required"`
}

// DataSharingAgreementCreate appends an agreement to an institution.
type DataSharingAgreementCreate struct {
	Title    string     `json:"title" validate:"required"`
	Status   string     `json:"status" validate:"omitempty,oneof=draft pending signed expired"`
	SignedAt *time.Time `json:"signed_at"`
}

// SatelliteSourceCreate is the payload for registering a satellite feed.
type SatelliteSourceCreate struct {
	SatelliteName          string  `json:"satellite_name" validate:"required"`
	SatelliteType          string  `json:"satellite_type" validate:"omitempty,oneof=earth_observation weather communication navigation scientific"`
	OperatorOrganization   string  `json:"operator_organization"`
	DataFeedURL            string  `json:"data_feed_url" validate:"omitempty,url"`
	APIEndpoint            string  `json:"api_endpoint"`
	DataProduct            string  `json:"data_product"`
	ResolutionMeters       float64 `json:"resolution_meters" validate:"gte=0"`
	CoverageArea           string  `json:"coverage_area"`
	UpdateFrequencyMinutes int     `json:"update_frequency_minutes" validate:"omitempty,min=1"`
	Status                 string  `json:"status"`
}

// SourceStatusUpdate sets the status of a satellite data source.
type SourceStatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

// ProcessingJobCreate submits a processing job against a data source.
type ProcessingJobCreate struct {
	DataSourceID    string                 `json:"data_source_id" validate:"required"`
	JobName         string                 `json:"job_name" validate:"required"`
	ProcessingType  string                 `json:"processing_type"`
	InputParameters map[string]interface{} `json:"input_parameters"`
}

// ProcessingStatusUpdate moves a job to a new status. ErrorMessage is kept only for the error status.
type ProcessingStatusUpdate struct {
	Status       models.ProcessingStatus `json:"status" validate:"required,oneof=queued processing paused completed error"`
	ErrorMessage *string                 `json:"error_message"`
}

// APIEndpointCreate is the payload for publishing an API endpoint.
// IsActive defaults to true and AverageLatencyMs to 250 when omitted.
type APIEndpointCreate struct {
	Name               string `json:"name" validate:"required"`
	Description        string `json:"description"`
	EndpointURL        string `json:"endpoint_url" validate:"required,url"`
	Method             string `json:"method" validate:"omitempty,oneof=GET POST PUT PATCH DELETE"`
	AuthenticationType string `json:"authentication_type" validate:"omitempty,oneof=none api_key bearer_token oauth2 jwt basic"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute" validate:"omitempty,min=1,max=10000"`
	TimeoutSeconds     int    `json:"timeout_seconds" validate:"omitempty,min=1,max=300"`
	IntegrationType    string `json:"integration_type"`
	AccessLevel        string `json:"access_level"`
	IsActive           *bool  `json:"is_active"`
	AverageLatencyMs   *int   `json:"average_latency_ms" validate:"omitempty,min=0"`
}

// EndpointToggle enables or disables an endpoint.
type EndpointToggle struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// UpdateResult is returned by update and delete operations. Found is false when the id matched nothing.
type UpdateResult struct {
	Success bool `json:"success"`
	Found   bool `json:"found"`
}
