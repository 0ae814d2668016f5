package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/partsledger/partsledger-api/internal/application/service"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/request"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/response"
)

// BackupHandler handles backup export and restore HTTP requests
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export handles exporting the full state as a backup token. The client
// writes the token verbatim into a plain text backup file.
func (h *BackupHandler) Export(c *gin.Context) {
	token, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Backup exported successfully", gin.H{"token": token})
}

// Import handles restoring state from a backup token
func (h *BackupHandler) Import(c *gin.Context) {
	var req request.ImportBackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.backupService.Import(c.Request.Context(), req.Token); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Backup imported successfully", nil)
}
