package controllers

import (
	"net/http"

	"naraintegration/services/dto"
	"naraintegration/services/integration"
	"naraintegration/utils"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the request body into req, answering 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponse(c, err)
		return false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponse(c, err)
		return false
	}
	return true
}

// updateResponse answers an update or delete. A miss is reported with found=false, not as an error.
func updateResponse(c *gin.Context, result integration.Result, err error) {
	if err != nil {
		utils.ServerErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, dto.UpdateResult{Success: true, Found: result.OK()})
}
