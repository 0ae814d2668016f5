package entity

import "encoding/json"

// AppState is the full application state: every entity collection plus
// settings. It is the unit of persistence and of backup export/import.
type AppState struct {
	Operations    []Operation    `json:"operations"`
	Parts         []Part         `json:"parts"`
	Customers     []Customer     `json:"customers"`
	Notifications []Notification `json:"notifications"`
	Settings      Settings       `json:"settings"`

	// Legacy collection kept so older backup payloads round-trip. Nothing
	// reads it; it is carried opaquely and written back as-is.
	Transactions []json.RawMessage `json:"transactions"`
}

// DefaultState returns the state used when no durable copy exists yet
func DefaultState() *AppState {
	return &AppState{
		Operations:    []Operation{},
		Parts:         []Part{},
		Customers:     []Customer{},
		Notifications: []Notification{},
		Settings:      DefaultSettings(),
		Transactions:  []json.RawMessage{},
	}
}

// Clone returns a deep copy of the state via its canonical JSON form
func (s *AppState) Clone() (*AppState, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	out := DefaultState()
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// MergeDefaults fills collections left nil by a structural merge of an
// older or partial persisted payload, so version drift degrades gracefully.
func (s *AppState) MergeDefaults() {
	if s.Operations == nil {
		s.Operations = []Operation{}
	}
	if s.Parts == nil {
		s.Parts = []Part{}
	}
	if s.Customers == nil {
		s.Customers = []Customer{}
	}
	if s.Notifications == nil {
		s.Notifications = []Notification{}
	}
	if s.Transactions == nil {
		s.Transactions = []json.RawMessage{}
	}
	if s.Settings.Theme == "" {
		s.Settings.Theme = DefaultSettings().Theme
	}
	if s.Settings.Receipt == (ReceiptSettings{}) {
		s.Settings.Receipt = DefaultSettings().Receipt
	}
}
