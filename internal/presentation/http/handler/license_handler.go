package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/partsledger/partsledger-api/internal/application/service"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/request"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/response"
)

// LicenseHandler handles license display and activation HTTP requests
type LicenseHandler struct {
	licenseService *service.LicenseService
}

// NewLicenseHandler creates a new license handler
func NewLicenseHandler(licenseService *service.LicenseService) *LicenseHandler {
	return &LicenseHandler{licenseService: licenseService}
}

// Get handles getting the masked license state for display
func (h *LicenseHandler) Get(c *gin.Context) {
	response.OK(c, "License retrieved successfully", gin.H{
		"licensed": h.licenseService.IsLicensed(c.Request.Context()),
		"masked":   h.licenseService.Masked(c.Request.Context()),
	})
}

// Activate handles storing an activation code
func (h *LicenseHandler) Activate(c *gin.Context) {
	var req request.ActivateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	valid, err := h.licenseService.Activate(c.Request.Context(), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "License code stored", gin.H{"valid": valid})
}
