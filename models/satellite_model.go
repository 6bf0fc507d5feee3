package models

import "time"

// Satellite types offered by the satellite data section.
const (
	SatelliteEarthObservation = "earth_observation"
	SatelliteWeather          = "weather"
	SatelliteCommunication    = "communication"
	SatelliteNavigation       = "navigation"
	SatelliteScientific       = "scientific"
)

// SatelliteDataSource is a satellite feed ingested by the agency.
type SatelliteDataSource struct {
	ID                     string     `json:"id"`
	SatelliteName          string     `json:"satellite_name"`
	SatelliteType          string     `json:"satellite_type"`
	OperatorOrganization   string     `json:"operator_organization"`
	DataFeedURL            string     `json:"data_feed_url"`
	APIEndpoint            string     `json:"api_endpoint"`
	DataProduct            string     `json:"data_product"`
	ResolutionMeters       float64    `json:"resolution_meters"`
	CoverageArea           string     `json:"coverage_area"`
	UpdateFrequencyMinutes int        `json:"update_frequency_minutes"`
	Status                 string     `json:"status"`
	CreatedAt              time.Time  `json:"created_at"`
	LastIngestedAt         *time.Time `json:"last_ingested_at"`
}

// ProcessingStatus is the state of a satellite processing job.
type ProcessingStatus string

// Processing job statuses.
const (
	ProcessingQueued    ProcessingStatus = "queued"
	ProcessingRunning   ProcessingStatus = "processing"
	ProcessingPaused    ProcessingStatus = "paused"
	ProcessingCompleted ProcessingStatus = "completed"
	ProcessingError     ProcessingStatus = "error"
)

// SatelliteProcessingJob is a processing run over one data source.
// CompletedAt is only set on a transition to completed, ErrorMessage only on a transition to error.
type SatelliteProcessingJob struct {
	ID               string                 `json:"id"`
	DataSourceID     string                 `json:"data_source_id"`
	JobName          string                 `json:"job_name"`
	ProcessingType   string                 `json:"processing_type"`
	InputParameters  map[string]interface{} `json:"input_parameters,omitempty"`
	ProcessingStatus ProcessingStatus       `json:"processing_status"`
	SubmittedAt      time.Time              `json:"submitted_at"`
	StartedAt        *time.Time             `json:"started_at"`
	CompletedAt      *time.Time             `json:"completed_at"`
	ErrorMessage     *string                `json:"error_message"`
}

// ProcessingJobView is a job joined with its data source, nil when the reference dangles.
type ProcessingJobView struct {
	SatelliteProcessingJob
	DataSource *SatelliteDataSource `json:"data_source"`
}
