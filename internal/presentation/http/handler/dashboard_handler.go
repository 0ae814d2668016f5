package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/partsledger/partsledger-api/internal/application/service"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles getting the aggregate overview
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats := h.dashboardService.GetStats(c.Request.Context())
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
