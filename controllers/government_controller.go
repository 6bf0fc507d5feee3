package controllers

import (
	"net/http"

	"naraintegration/pkg/logger"
	"naraintegration/services/dto"
	"naraintegration/services/integration"
	"naraintegration/utils"

	"github.com/gin-gonic/gin"
)

var governmentSrv integration.GovernmentService

// SetGovernmentService initializes the government connection service instance.
func SetGovernmentService(srv integration.GovernmentService) {
	governmentSrv = srv
}

// ListGovernmentConnections returns every government connection, newest first
// @Summary List government connections
// @Tags Government
// @Produce json
// @Success 200 {array} models.GovernmentConnection
// @Failure 500 {object} StandardErrorResponse
// @Router /integrations/government [get]
func listGovernmentConnections(c *gin.Context) {
	items, err := governmentSrv.GetAll(c.Request.Context())
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, items)
}

// CreateGovernmentConnection registers a government database connector
// @Summary Create government connection
// @Description Omitted fields default to json format, internal security, a 24 hour sync and pending status
// @Tags Government
// @Accept json
// @Produce json
// @Param connection body dto.GovernmentConnectionCreate true "Connection"
// @Success 201 {object} models.GovernmentConnection
// @Failure 400 {object} ValidationErrorResponse
// @Router /integrations/government [post]
func createGovernmentConnection(c *gin.Context) {
	var req dto.GovernmentConnectionCreate
	if !bindJSON(c, &req) {
		return
	}
	created, err := governmentSrv.Create(c.Request.Context(), req)
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, created)
}

// UpdateGovernmentConnection merges the given fields into a connection
// @Summary Update government connection
// @Tags Government
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Param patch body dto.GovernmentConnectionPatch true "Fields to change"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /integrations/government/{id} [put]
func updateGovernmentConnection(c *gin.Context) {
	var req dto.GovernmentConnectionPatch
	if !bindJSON(c, &req) {
		return
	}
	result, err := governmentSrv.Update(c.Request.Context(), c.Param("id"), req)
	updateResponse(c, result, err)
}

// UpdateGovernmentConnectionStatus sets the status of a connection and stamps its last sync
// @Summary Update government connection status
// @Tags Government
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Param status body dto.ConnectionStatusUpdate true "New status"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /integrations/government/{id}/status [patch]
func updateGovernmentConnectionStatus(c *gin.Context) {
	var req dto.ConnectionStatusUpdate
	if !bindJSON(c, &req) {
		return
	}
	result, err := governmentSrv.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	updateResponse(c, result, err)
}

// DeleteGovernmentConnection removes a connection
// @Summary Delete government connection
// @Tags Government
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {object} dto.UpdateResult
// @Router /integrations/government/{id} [delete]
func deleteGovernmentConnection(c *gin.Context) {
	id := c.Param("id")
	result, err := governmentSrv.Delete(c.Request.Context(), id)
	if err == nil && !result.OK() {
		logger.Warnf("Delete of unknown government connection %s", id)
	}
	updateResponse(c, result, err)
}

// RegisterGovernmentRoutes registers the government connection endpoints.
func RegisterGovernmentRoutes(rg *gin.RouterGroup) {
	gov := rg.Group("/government")
	{
		gov.GET("", listGovernmentConnections)
		gov.POST("", createGovernmentConnection)
		gov.PUT("/:id", updateGovernmentConnection)
		gov.PATCH("/:id/status", updateGovernmentConnectionStatus)
		gov.DELETE("/:id", deleteGovernmentConnection)
	}
}
