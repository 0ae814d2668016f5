package request

// UpdateThemeRequest switches the UI theme
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

// UpdateReceiptRequest replaces the receipt header and footer fields
type UpdateReceiptRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Address string `json:"address" binding:"omitempty,max=500"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Footer  string `json:"footer" binding:"omitempty,max=255"`
}

// ChangePasswordRequest replaces the login or admin password
type ChangePasswordRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=login admin"`
	NewPassword string `json:"new_password" binding:"required,min=1,max=100"`
}
