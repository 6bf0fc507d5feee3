package controllers

import (
	"net/http"

	"naraintegration/pkg/logger"
	"naraintegration/services/dashboard"
	"naraintegration/services/monitoring"

	"github.com/gin-gonic/gin"
)

// MonitoringController serves the integration health endpoints.
type MonitoringController struct {
	monitor   monitoring.Service
	dashboard *dashboard.Service
}

// NewMonitoringController creates a MonitoringController.
func NewMonitoringController(monitor monitoring.Service, dash *dashboard.Service) *MonitoringController {
	return &MonitoringController{
		monitor:   monitor,
		dashboard: dash,
	}
}

// MonitoringResponse is the envelope of every monitoring endpoint.
type MonitoringResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// GetEntries returns a fresh aggregation of every integration
// @Summary Get monitoring entries
// @Description Projects government connections, API endpoints and satellite sources into health entries
// @Tags monitoring
// @Produce json
// @Success 200 {object} MonitoringEntriesResponse
// @Failure 500 {object} MonitoringResponse
// @Router /monitoring/entries [get]
func (mc *MonitoringController) GetEntries(c *gin.Context) {
	entries, err := mc.monitor.GetDashboardData(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to aggregate monitoring entries: %v", err)
		c.JSON(http.StatusInternalServerError, MonitoringResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	logger.Debugf("Returned %d monitoring entries", len(entries))
	c.JSON(http.StatusOK, MonitoringResponse{
		Success: true,
		Message: "Monitoring entries retrieved successfully",
		Data:    entries,
	})
}

// GetDashboard returns the last dashboard view without refreshing it
// @Summary Get dashboard view
// @Tags monitoring
// @Produce json
// @Success 200 {object} DashboardViewResponse
// @Router /monitoring/dashboard [get]
func (mc *MonitoringController) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, MonitoringResponse{
		Success: true,
		Message: "Dashboard retrieved successfully",
		Data:    mc.dashboard.View(),
	})
}

// RefreshDashboard re-aggregates the dashboard and returns the new view
// @Summary Refresh dashboard
// @Description A failed refresh still answers 200 with the error recorded in the view
// @Tags monitoring
// @Produce json
// @Success 200 {object} DashboardViewResponse
// @Router /monitoring/dashboard/refresh [post]
func (mc *MonitoringController) RefreshDashboard(c *gin.Context) {
	message := "Dashboard refreshed successfully"
	if err := mc.dashboard.Refresh(c.Request.Context()); err != nil {
		message = "Dashboard refresh failed"
	}
	view := mc.dashboard.View()
	c.JSON(http.StatusOK, MonitoringResponse{
		Success: view.State != dashboard.StateError,
		Message: message,
		Data:    view,
	})
}

// RegisterMonitoringRoutes registers the monitoring endpoints.
func RegisterMonitoringRoutes(rg *gin.RouterGroup, mc *MonitoringController) {
	monitoringGroup := rg.Group("/monitoring")
	{
		monitoringGroup.GET("/entries", mc.GetEntries)
		monitoringGroup.GET("/dashboard", mc.GetDashboard)
		monitoringGroup.POST("/dashboard/refresh", mc.RefreshDashboard)
	}
}
