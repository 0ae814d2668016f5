package entity

// ReceiptSettings holds the header and footer fields printed on receipts
type ReceiptSettings struct {
	Title   string `json:"title"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Footer  string `json:"footer"`
}

// Settings holds application-wide preferences. The two passwords are stored
// as bcrypt hashes; License is the raw activation token or nil when the
// instance has not been activated.
type Settings struct {
	Theme         string          `json:"theme"`
	LoginPassword string          `json:"login_password"`
	AdminPassword string          `json:"admin_password"`
	Receipt       ReceiptSettings `json:"receipt"`
	License       *string         `json:"license"`
}

// DefaultSettings returns the settings used for a fresh install. Password
// hashes are seeded separately on first boot.
func DefaultSettings() Settings {
	return Settings{
		Theme: "dark",
		Receipt: ReceiptSettings{
			Title:   "My Workshop",
			Address: "Workshop address",
			Phone:   "01000000000",
			Footer:  "Thank you for your visit!",
		},
		License: nil,
	}
}
