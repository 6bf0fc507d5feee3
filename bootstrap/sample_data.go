// Package bootstrap holds the built-in datasets used to seed empty integration collections.
package bootstrap

import (
	"time"

	"naraintegration/models"
)

// Samples groups the seed dataset of every collection.
type Samples struct {
	Government       []models.GovernmentConnection
	Research         []models.ResearchInstitution
	SatelliteSources []models.SatelliteDataSource
	SatelliteJobs    []models.SatelliteProcessingJob
	APIEndpoints     []models.APIEndpoint
}

// LoadSamples returns fresh sample data, or empty collections when enabled is false.
func LoadSamples(enabled bool) Samples {
	if !enabled {
		return Samples{
			Government:       []models.GovernmentConnection{},
			Research:         []models.ResearchInstitution{},
			SatelliteSources: []models.SatelliteDataSource{},
			SatelliteJobs:    []models.SatelliteProcessingJob{},
			APIEndpoints:     []models.APIEndpoint{},
		}
	}
	return Samples{
		Government:       sampleGovernment(),
		Research:         sampleResearch(),
		SatelliteSources: sampleSatelliteSources(),
		SatelliteJobs:    sampleSatelliteJobs(),
		APIEndpoints:     sampleAPIEndpoints(),
	}
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(value string) *time.Time {
	t := ts(value)
	return &t
}

func sampleGovernment() []models.GovernmentConnection {
	return []models.GovernmentConnection{
		{
			ID:                 "gov-1",
			Name:               "Department of Fisheries Registry",
			Description:        "National vessel registry and licensing database with weekly sync",
			ConnectionURL:      "https://api.gov.lk/fisheries/vessels",
			DataFormat:         "json",
			SecurityLevel:      "internal",
			SyncFrequencyHours: 24,
			ConnectionStatus:   models.ConnectionActive,
			LastSyncedAt:       tsPtr("2024-06-12T06:00:00Z"),
			CreatedAt:          ts("2024-03-01T00:00:00Z"),
		},
		{
			ID:                 "gov-2",
			Name:               "Coastal Risk Information System",
			Description:        "Hazard layers, bathymetry, and shoreline change indicators",
			ConnectionURL:      "https://coastal.gov.lk/api/risk-layer",
			DataFormat:         "geojson",
			SecurityLevel:      "confidential",
			SyncFrequencyHours: 6,
			ConnectionStatus:   models.ConnectionMaintenance,
			LastSyncedAt:       tsPtr("2024-06-11T18:00:00Z"),
			CreatedAt:          ts("2024-02-14T00:00:00Z"),
		},
	}
}

func sampleResearch() []models.ResearchInstitution {
	return []models.ResearchInstitution{
		{
			ID:                "res-1",
			Name:              "Norwegian Institute of Marine Research",
			Country:           "Norway",
			WebsiteURL:        "https://www.hi.no",
			ContactEmail:      "partnerships@hi.no",
			ResearchAreas:     []string{"Fisheries modelling", "Acoustic surveys", "Climate dynamics"},
			PartnershipStatus: models.PartnershipActive,
			EstablishedAt:     ts("2022-08-01T00:00:00Z"),
			DataSharingAgreements: []models.DataSharingAgreement{
				{
					ID:       "dsa-1",
					Title:    "North Indian Ocean Pelagic Monitoring",
					Status:   "active",
					SignedAt: tsPtr("2023-02-15T00:00:00Z"),
				},
			},
		},
		{
			ID:                    "res-2",
			Name:                  "CSIRO Oceans and Atmosphere",
			Country:               "Australia",
			WebsiteURL:            "https://www.csiro.au",
			ContactEmail:          "oceans-partners@csiro.au",
			ResearchAreas:         []string{"Ocean observations", "Satellites", "Forecast systems"},
			PartnershipStatus:     models.PartnershipPending,
			EstablishedAt:         ts("2023-06-20T00:00:00Z"),
			DataSharingAgreements: []models.DataSharingAgreement{},
		},
	}
}

func sampleSatelliteSources() []models.SatelliteDataSource {
	return []models.SatelliteDataSource{
		{
			ID:                     "sat-1",
			SatelliteName:          "Sentinel-2",
			SatelliteType:          models.SatelliteEarthObservation,
			OperatorOrganization:   "ESA",
			DataProduct:            "CoastalImagery",
			ResolutionMeters:       10,
			CoverageArea:           "Sri Lanka EEZ",
			UpdateFrequencyMinutes: 720,
			Status:                 "active",
			CreatedAt:              ts("2024-01-10T00:00:00Z"),
		},
		{
			ID:                     "sat-2",
			SatelliteName:          "NOAA-20",
			SatelliteType:          models.SatelliteWeather,
			OperatorOrganization:   "NOAA",
			DataProduct:            "SeaSurfaceTemperature",
			ResolutionMeters:       750,
			CoverageArea:           "Indian Ocean",
			UpdateFrequencyMinutes: 360,
			Status:                 "active",
			CreatedAt:              ts("2024-01-12T00:00:00Z"),
		},
	}
}

func sampleSatelliteJobs() []models.SatelliteProcessingJob {
	return []models.SatelliteProcessingJob{
		{
			ID:               "job-1",
			DataSourceID:     "sat-1",
			JobName:          "Daily coastal bloom detection",
			ProcessingType:   "chlorophyll_detection",
			ProcessingStatus: models.ProcessingRunning,
			SubmittedAt:      ts("2024-06-12T03:00:00Z"),
			StartedAt:        tsPtr("2024-06-12T03:02:00Z"),
		},
		{
			ID:               "job-2",
			DataSourceID:     "sat-2",
			JobName:          "Nightly SST anomaly tiles",
			ProcessingType:   "sst_anomaly",
			ProcessingStatus: models.ProcessingCompleted,
			SubmittedAt:      ts("2024-06-11T19:00:00Z"),
			StartedAt:        tsPtr("2024-06-11T19:01:00Z"),
			CompletedAt:      tsPtr("2024-06-11T19:40:00Z"),
		},
	}
}

func sampleAPIEndpoints() []models.APIEndpoint {
	return []models.APIEndpoint{
		{
			ID:                 "api-1",
			Name:               "Tide Gauge API",
			Description:        "Live sea-level and tidal harmonics for coastal stations",
			EndpointURL:        "https://api.nara.lk/v1/tide-gauge",
			Method:             "GET",
			AuthenticationType: "api_key",
			RateLimitPerMinute: 100,
			TimeoutSeconds:     30,
			IntegrationType:    "api_gateway",
			AccessLevel:        "partner",
			IsActive:           true,
			AverageLatencyMs:   240,
			RequestsToday:      12876,
			ErrorRate:          0.4,
			CreatedAt:          ts("2023-12-01T00:00:00Z"),
		},
		{
			ID:                 "api-2",
			Name:               "Fisheries Forecast API",
			Description:        "Predicted catch-per-unit-effort across fishing zones",
			EndpointURL:        "https://api.nara.lk/v1/fisheries-forecast",
			Method:             "GET",
			AuthenticationType: "bearer_token",
			RateLimitPerMinute: 60,
			TimeoutSeconds:     30,
			IntegrationType:    "api_gateway",
			AccessLevel:        "restricted",
			IsActive:           false,
			AverageLatencyMs:   420,
			RequestsToday:      7420,
			ErrorRate:          1.2,
			CreatedAt:          ts("2024-02-18T00:00:00Z"),
		},
	}
}
