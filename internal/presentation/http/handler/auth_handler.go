package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/partsledger/partsledger-api/internal/application/service"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/request"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles logging in with the login or admin password
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logged in successfully", result)
}

// Logout handles logging out. Sessions are stateless, so this only exists
// so the client has a consistent endpoint to call.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OK(c, "Logged out successfully", nil)
}
