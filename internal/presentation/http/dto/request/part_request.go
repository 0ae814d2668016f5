package request

// CreatePartRequest represents a part creation request
type CreatePartRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Code      string  `json:"code" binding:"omitempty,max=100"`
	Quantity  int     `json:"quantity" binding:"min=0"`
	Price     float64 `json:"price" binding:"min=0"`
	Threshold int     `json:"threshold" binding:"min=0"`
}

// UpdatePartRequest represents a part update request
type UpdatePartRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Code      string  `json:"code" binding:"omitempty,max=100"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price" binding:"min=0"`
	Threshold int     `json:"threshold" binding:"min=0"`
}

// PartFilterRequest represents part filter parameters
type PartFilterRequest struct {
	Search string `form:"search"`
}
