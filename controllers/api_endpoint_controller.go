package controllers

import (
	"net/http"

	"naraintegration/services/dto"
	"naraintegration/services/integration"
	"naraintegration/utils"

	"github.com/gin-gonic/gin"
)

var apiEndpointSrv integration.APIEndpointService

// SetAPIEndpointService initializes the API endpoint service instance.
func SetAPIEndpointService(srv integration.APIEndpointService) {
	apiEndpointSrv = srv
}

// @Summary List API endpoints
// @Tags API Endpoints
// @Produce json
// @Success 200 {array} models.APIEndpoint
// @Router /integrations/api-endpoints [get]
func listAPIEndpoints(c *gin.Context) {
	items, err := apiEndpointSrv.GetAllEndpoints(c.Request.Context())
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, items)
}

// @Summary Publish an API endpoint
// @Description New endpoints start active with a 250ms average latency and no traffic
// @Tags API Endpoints
// @Accept json
// @Produce json
// @Param endpoint body dto.APIEndpointCreate true "Endpoint"
// @Success 201 {object} models.APIEndpoint
// @Failure 400 {object} ValidationErrorResponse
// @Router /integrations/api-endpoints [post]
func createAPIEndpoint(c *gin.Context) {
	var req dto.APIEndpointCreate
	if !bindJSON(c, &req) {
		return
	}
	created, err := apiEndpointSrv.CreateEndpoint(c.Request.Context(), req)
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, created)
}

// @Summary Enable or disable an API endpoint
// @Tags API Endpoints
// @Accept json
// @Produce json
// @Param id path string true "Endpoint ID"
// @Param toggle body dto.EndpointToggle true "Enabled flag"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /integrations/api-endpoints/{id}/status [patch]
func toggleAPIEndpoint(c *gin.Context) {
	var req dto.EndpointToggle
	if !bindJSON(c, &req) {
		return
	}
	result, err := apiEndpointSrv.ToggleEndpointStatus(c.Request.Context(), c.Param("id"), *req.Enabled)
	updateResponse(c, result, err)
}

// @Summary Gateway usage analytics
// @Tags API Endpoints
// @Produce json
// @Param range query string false "24h, 7d or 30d" default(24h)
// @Success 200 {object} models.UsageAnalytics
// @Router /integrations/api-endpoints/analytics [get]
func getUsageAnalytics(c *gin.Context) {
	analytics, err := apiEndpointSrv.GetUsageAnalytics(c.Request.Context(), c.DefaultQuery("range", integration.Range24Hours))
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, analytics)
}

// RegisterAPIEndpointRoutes registers the API endpoint management routes.
func RegisterAPIEndpointRoutes(rg *gin.RouterGroup) {
	endpoints := rg.Group("/api-endpoints")
	{
		endpoints.GET("", listAPIEndpoints)
		endpoints.POST("", createAPIEndpoint)
		endpoints.GET("/analytics", getUsageAnalytics)
		endpoints.PATCH("/:id/status", toggleAPIEndpoint)
	}
}
