package controllers

import (
	"net/http"

	"naraintegration/bootstrap"
	"naraintegration/services/integration"
	"naraintegration/utils"

	"github.com/gin-gonic/gin"
)

var (
	integrationRegistry *integration.Registry
	resetSamples        = func() bootstrap.Samples { return bootstrap.LoadSamples(true) }
)

// SetIntegrationRegistry wires every resource service of reg into the controllers.
func SetIntegrationRegistry(reg *integration.Registry) {
	integrationRegistry = reg
	SetGovernmentService(reg.Government)
	SetResearchService(reg.Research)
	SetSatelliteService(reg.Satellite)
	SetAPIEndpointService(reg.APIEndpoints)
}

// @Summary Reset integration data
// @Description Replaces every collection with the built-in sample dataset and clears persisted copies
// @Tags Admin
// @Produce json
// @Success 200 {object} ResetResponse
// @Router /integrations/reset [post]
func resetIntegrations(c *gin.Context) {
	integrationRegistry.Reset(resetSamples())
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Integration data reset to samples",
	})
}

// RegisterIntegrationRoutes registers every resource collection under rg.
func RegisterIntegrationRoutes(rg *gin.RouterGroup) {
	integrations := rg.Group("/integrations")
	{
		RegisterGovernmentRoutes(integrations)
		RegisterResearchRoutes(integrations)
		RegisterSatelliteRoutes(integrations)
		RegisterAPIEndpointRoutes(integrations)
		integrations.POST("/reset", resetIntegrations)
	}
}
