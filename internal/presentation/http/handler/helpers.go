package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/response"
	"github.com/partsledger/partsledger-api/pkg/utils"
)

// parseIDParam parses the :id path parameter, writing a 400 response and
// returning false when it is not a valid UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid id parameter")
		return uuid.Nil, false
	}
	return id, true
}
