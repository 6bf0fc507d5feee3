package controllers

import (
	"net/http"

	"naraintegration/services/dto"
	"naraintegration/services/integration"
	"naraintegration/utils"

	"github.com/gin-gonic/gin"
)

var researchSrv integration.ResearchService

// SetResearchService initializes the research institution service instance.
func SetResearchService(srv integration.ResearchService) {
	researchSrv = srv
}

// @Summary List research institutions
// @Tags Research
// @Produce json
// @Success 200 {array} models.ResearchInstitution
// @Router /integrations/research [get]
func listResearchInstitutions(c *gin.Context) {
	items, err := researchSrv.GetAll(c.Request.Context())
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, items)
}

// @Summary Create research institution
// @Tags Research
// @Accept json
// @Produce json
// @Param institution body dto.ResearchInstitutionCreate true "Institution"
// @Success 201 {object} models.ResearchInstitution
// @Failure 400 {object} ValidationErrorResponse
// @Router /integrations/research [post]
func createResearchInstitution(c *gin.Context) {
	var req dto.ResearchInstitutionCreate
	if !bindJSON(c, &req) {
		return
	}
	created, err := researchSrv.Create(c.Request.Context(), req)
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, created)
}

// @Summary Update partnership status
// @Tags Research
// @Accept json
// @Produce json
// @Param id path string true "Institution ID"
// @Param status body dto.PartnershipStatusUpdate true "New status"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /integrations/research/{id}/status [patch]
func updatePartnershipStatus(c *gin.Context) {
	var req dto.PartnershipStatusUpdate
	if !bindJSON(c, &req) {
		return
	}
	result, err := researchSrv.UpdatePartnershipStatus(c.Request.Context(), c.Param("id"), req.Status)
	updateResponse(c, result, err)
}

// @Summary Add research area
// @Description Blank areas and case-insensitive duplicates are ignored
// @Tags Research
// @Accept json
// @Produce json
// @Param id path string true "Institution ID"
// @Param area body dto.ResearchAreaAdd true "Area"
// @Success 200 {object} dto.UpdateResult
// @Router /integrations/research/{id}/areas [post]
func addResearchArea(c *gin.Context) {
	var req dto.ResearchAreaAdd
	if !bindJSON(c, &req) {
		return
	}
	result, err := researchSrv.AddResearchArea(c.Request.Context(), c.Param("id"), req.Area)
	updateResponse(c, result, err)
}

// @Summary Add data sharing agreement
// @Tags Research
// @Accept json
// @Produce json
// @Param id path string true "Institution ID"
// @Param agreement body dto.DataSharingAgreementCreate true "Agreement"
// @Success 200 {object} AgreementResponse
// @Router /integrations/research/{id}/agreements [post]
func addDataSharingAgreement(c *gin.Context) {
	var req dto.DataSharingAgreementCreate
	if !bindJSON(c, &req) {
		return
	}
	result, agreement, err := researchSrv.AddDataSharingAgreement(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, AgreementResponse{
		UpdateResult: dto.UpdateResult{Success: true, Found: result.OK()},
		Agreement:    agreement,
	})
}

// RegisterResearchRoutes registers the research institution endpoints.
func RegisterResearchRoutes(rg *gin.RouterGroup) {
	research := rg.Group("/research")
	{
		research.GET("", listResearchInstitutions)
		research.POST("", createResearchInstitution)
		research.PATCH("/:id/status", updatePartnershipStatus)
		research.POST("/:id/areas", addResearchArea)
		research.POST("/:id/agreements", addDataSharingAgreement)
	}
}
