package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/application/service"
	"github.com/partsledger/partsledger-api/internal/domain/enum"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/request"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/response"
	"github.com/partsledger/partsledger-api/pkg/utils"
)

// OperationHandler handles sale operation HTTP requests
type OperationHandler struct {
	ledgerService *service.LedgerService
}

// NewOperationHandler creates a new operation handler
func NewOperationHandler(ledgerService *service.LedgerService) *OperationHandler {
	return &OperationHandler{ledgerService: ledgerService}
}

// List handles listing recorded sales, newest first
func (h *OperationHandler) List(c *gin.Context) {
	var filter request.OperationFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	ops := h.ledgerService.ListOperations(c.Request.Context(), filter.Search)
	response.OK(c, "Operations retrieved successfully", ops)
}

// Get handles getting a single recorded sale with its denormalized fields,
// as consumed by the receipt printing flow.
func (h *OperationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	op, err := h.ledgerService.GetOperation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Operation retrieved successfully", op)
}

// Create handles recording a sale
func (h *OperationHandler) Create(c *gin.Context) {
	var req request.RecordOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var customerID *uuid.UUID
	if req.CustomerID != "" {
		id, err := utils.ParseUUID(req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer_id")
			return
		}
		customerID = &id
	}

	partID, err := utils.ParseUUID(req.PartID)
	if err != nil {
		response.BadRequest(c, "Invalid part_id")
		return
	}

	op, err := h.ledgerService.RecordOperation(c.Request.Context(), &service.RecordOperationInput{
		CustomerID:    customerID,
		CustomerName:  req.CustomerName,
		PartID:        partID,
		Quantity:      req.Quantity,
		Price:         req.Price,
		PaidAmount:    req.PaidAmount,
		PaymentStatus: enum.ParsePaymentStatus(req.PaymentStatus),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Operation recorded successfully", op)
}

// Delete handles deleting a sale record, restoring stock and reversing the
// customer balance delta.
func (h *OperationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteOperation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Operation deleted successfully", nil)
}
