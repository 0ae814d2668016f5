package request

// LoginRequest represents a login attempt against the stored passwords
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
