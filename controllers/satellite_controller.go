package controllers

import (
	"net/http"

	"naraintegration/services/dto"
	"naraintegration/services/integration"
	"naraintegration/utils"

	"github.com/gin-gonic/gin"
)

var satelliteSrv integration.SatelliteService

// SetSatelliteService initializes the satellite service instance.
func SetSatelliteService(srv integration.SatelliteService) {
	satelliteSrv = srv
}

// @Summary List satellite data sources
// @Tags Satellite
// @Produce json
// @Success 200 {array} models.SatelliteDataSource
// @Router /integrations/satellite/sources [get]
func listSatelliteSources(c *gin.Context) {
	items, err := satelliteSrv.GetAllSources(c.Request.Context())
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, items)
}

// @Summary Create satellite data source
// @Tags Satellite
// @Accept json
// @Produce json
// @Param source body dto.SatelliteSourceCreate true "Source"
// @Success 201 {object} models.SatelliteDataSource
// @Failure 400 {object} ValidationErrorResponse
// @Router /integrations/satellite/sources [post]
func createSatelliteSource(c *gin.Context) {
	var req dto.SatelliteSourceCreate
	if !bindJSON(c, &req) {
		return
	}
	created, err := satelliteSrv.CreateSource(c.Request.Context(), req)
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, created)
}

// @Summary Update satellite source status
// @Tags Satellite
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Param status body dto.SourceStatusUpdate true "New status"
// @Success 200 {object} dto.UpdateResult
// @Router /integrations/satellite/sources/{id}/status [patch]
func updateSatelliteSourceStatus(c *gin.Context) {
	var req dto.SourceStatusUpdate
	if !bindJSON(c, &req) {
		return
	}
	result, err := satelliteSrv.UpdateSourceStatus(c.Request.Context(), c.Param("id"), req.Status)
	updateResponse(c, result, err)
}

// @Summary Record a completed ingest
// @Tags Satellite
// @Produce json
// @Param id path string true "Source ID"
// @Success 200 {object} dto.UpdateResult
// @Router /integrations/satellite/sources/{id}/ingestions [post]
func recordSatelliteIngestion(c *gin.Context) {
	result, err := satelliteSrv.RecordIngestion(c.Request.Context(), c.Param("id"))
	updateResponse(c, result, err)
}

// @Summary List processing jobs with their data sources
// @Tags Satellite
// @Produce json
// @Success 200 {array} models.ProcessingJobView
// @Router /integrations/satellite/jobs [get]
func listProcessingJobs(c *gin.Context) {
	items, err := satelliteSrv.GetProcessingJobs(c.Request.Context())
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, items)
}

// @Summary Queue a processing job
// @Tags Satellite
// @Accept json
// @Produce json
// @Param job body dto.ProcessingJobCreate true "Job"
// @Success 201 {object} models.SatelliteProcessingJob
// @Failure 400 {object} ValidationErrorResponse
// @Router /integrations/satellite/jobs [post]
func createProcessingJob(c *gin.Context) {
	var req dto.ProcessingJobCreate
	if !bindJSON(c, &req) {
		return
	}
	created, err := satelliteSrv.CreateProcessingJob(c.Request.Context(), req)
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, created)
}

// @Summary Update processing job status
// @Tags Satellite
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param status body dto.ProcessingStatusUpdate true "New status"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /integrations/satellite/jobs/{id}/status [patch]
func updateProcessingJobStatus(c *gin.Context) {
	var req dto.ProcessingStatusUpdate
	if !bindJSON(c, &req) {
		return
	}
	result, err := satelliteSrv.UpdateProcessingStatus(c.Request.Context(), c.Param("id"), req.Status, req.ErrorMessage)
	updateResponse(c, result, err)
}

// RegisterSatelliteRoutes registers the satellite source and processing job endpoints.
func RegisterSatelliteRoutes(rg *gin.RouterGroup) {
	satellite := rg.Group("/satellite")
	{
		satellite.GET("/sources", listSatelliteSources)
		satellite.POST("/sources", createSatelliteSource)
		satellite.PATCH("/sources/:id/status", updateSatelliteSourceStatus)
		satellite.POST("/sources/:id/ingestions", recordSatelliteIngestion)
		satellite.GET("/jobs", listProcessingJobs)
		satellite.POST("/jobs", createProcessingJob)
		satellite.PATCH("/jobs/:id/status", updateProcessingJobStatus)
	}
}
