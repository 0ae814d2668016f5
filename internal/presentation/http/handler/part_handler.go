package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/partsledger/partsledger-api/internal/application/service"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/request"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/response"
)

// PartHandler handles inventory HTTP requests
type PartHandler struct {
	partService *service.PartService
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService *service.PartService) *PartHandler {
	return &PartHandler{partService: partService}
}

// List handles listing parts
func (h *PartHandler) List(c *gin.Context) {
	var filter request.PartFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	parts := h.partService.ListParts(c.Request.Context(), filter.Search)
	response.OK(c, "Parts retrieved successfully", parts)
}

// ListLowStock handles listing parts in the low-stock band
func (h *PartHandler) ListLowStock(c *gin.Context) {
	parts := h.partService.ListLowStock(c.Request.Context())
	response.OK(c, "Low stock parts retrieved successfully", parts)
}

// Get handles getting a single part
func (h *PartHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	part, err := h.partService.GetPart(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Part retrieved successfully", part)
}

// Create handles creating a part
func (h *PartHandler) Create(c *gin.Context) {
	var req request.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	part, err := h.partService.CreatePart(c.Request.Context(), &service.PartInput{
		Name:      req.Name,
		Code:      req.Code,
		Quantity:  req.Quantity,
		Price:     req.Price,
		Threshold: req.Threshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Part created successfully", part)
}

// Update handles updating a part
func (h *PartHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	part, err := h.partService.UpdatePart(c.Request.Context(), id, &service.PartInput{
		Name:      req.Name,
		Code:      req.Code,
		Quantity:  req.Quantity,
		Price:     req.Price,
		Threshold: req.Threshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Part updated successfully", part)
}

// Delete handles deleting a part
func (h *PartHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.partService.DeletePart(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Part deleted successfully", nil)
}
