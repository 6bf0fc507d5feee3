package controllers

import (
	"naraintegration/models"
	"naraintegration/services/dashboard"
	"naraintegration/services/dto"
)

// Example request/response models for Swagger documentation

// AgreementResponse is returned when a data sharing agreement is added. Agreement is null when
// the institution was not found.
type AgreementResponse struct {
	dto.UpdateResult
	Agreement *models.DataSharingAgreement `json:"agreement"`
}

// ResetResponse represents the response of the admin reset
type ResetResponse struct {
	Message string `json:"message" example:"Integration data reset to samples"`
}

// MonitoringEntriesResponse represents the monitoring entries response
type MonitoringEntriesResponse struct {
	Success bool                                `json:"success" example:"true"`
	Message string                              `json:"message" example:"Monitoring entries retrieved successfully"`
	Data    []models.IntegrationMonitoringEntry `json:"data"`
}

// DashboardViewResponse represents the dashboard response
type DashboardViewResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message" example:"Dashboard retrieved successfully"`
	Data    dashboard.View `json:"data"`
}

// Error response models
// utils.ErrorResponse() returns {"error": "message", "details": ["field: rule"]}

// StandardErrorResponse represents standard error responses from utils.ErrorResponse()
type StandardErrorResponse struct {
	Error string `json:"error" example:"invalid character '}' looking for beginning of object key string"`
}

// ValidationErrorResponse represents validation errors
type ValidationErrorResponse struct {
	Error   string   `json:"error" example:"Key: 'GovernmentConnectionCreate.sync_frequency_hours' Error:Field validation for 'sync_frequency_hours' failed on the 'max' tag"`
	Details []string `json:"details" example:"sync_frequency_hours: max=168"`
}
