package request

// RecordOperationRequest represents a sale to record. CustomerID is
// optional: a bare customer name creates the customer implicitly. PartID is
// required since a sale must target a real inventory row. Negative numerics
// are rejected at the boundary; missing ones are coerced by the ledger.
type RecordOperationRequest struct {
	CustomerID    string  `json:"customer_id" binding:"omitempty,uuid"`
	CustomerName  string  `json:"customer_name" binding:"required,min=1,max=255"`
	PartID        string  `json:"part_id" binding:"required,uuid"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	Price         float64 `json:"price" binding:"min=0"`
	PaidAmount    float64 `json:"paid_amount" binding:"min=0"`
	PaymentStatus string  `json:"payment_status" binding:"omitempty,oneof=paid partial unpaid"`
}

// OperationFilterRequest represents operation filter parameters
type OperationFilterRequest struct {
	Search string `form:"search"`
}
