package request

// ImportBackupRequest carries the full backup token produced by export
type ImportBackupRequest struct {
	Token string `json:"token" binding:"required"`
}

// ActivateLicenseRequest carries an activation code
type ActivateLicenseRequest struct {
	Code string `json:"code" binding:"required,max=100"`
}
