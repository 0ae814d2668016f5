package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/partsledger/partsledger-api/internal/application/service"
	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/request"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles getting the current settings without secrets
func (h *SettingsHandler) Get(c *gin.Context) {
	settings := h.settingsService.GetSettings(c.Request.Context())
	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateTheme handles switching the UI theme
func (h *SettingsHandler) UpdateTheme(c *gin.Context) {
	var req request.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.settingsService.UpdateTheme(c.Request.Context(), req.Theme); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Theme updated successfully", nil)
}

// UpdateReceipt handles updating the receipt header and footer fields
func (h *SettingsHandler) UpdateReceipt(c *gin.Context) {
	var req request.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	err := h.settingsService.UpdateReceipt(c.Request.Context(), entity.ReceiptSettings{
		Title:   req.Title,
		Address: req.Address,
		Phone:   req.Phone,
		Footer:  req.Footer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt settings updated successfully", nil)
}

// ChangePassword handles replacing the login or admin password
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.settingsService.ChangePassword(c.Request.Context(), req.Kind, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password changed successfully", nil)
}
