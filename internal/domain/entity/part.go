package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultThreshold is the stock level at or below which a part counts as
// low-stock when no explicit threshold was set.
const DefaultThreshold = 5

// Part represents an inventory line item
type Part struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Quantity  int       `json:"quantity"` // may go negative as a degraded state
	Price     int64     `json:"-"`        // Stored in cents
	Threshold int       `json:"threshold"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveThreshold returns the configured threshold, falling back to the
// default for unset or nonsensical values.
func (p *Part) EffectiveThreshold() int {
	if p.Threshold <= 0 {
		return DefaultThreshold
	}
	return p.Threshold
}

// IsLowStock reports whether the part is in the low-stock band
func (p *Part) IsLowStock() bool {
	return p.Quantity <= p.EffectiveThreshold() && p.Quantity > 0
}

// GetPriceDecimal returns the unit price as a decimal (for display)
func (p *Part) GetPriceDecimal() float64 {
	return centsToDecimal(p.Price)
}

// SetPriceFromDecimal sets the unit price from a decimal value
func (p *Part) SetPriceFromDecimal(price float64) {
	p.Price = decimalToCents(price)
}

// partJSON mirrors Part with a decimal price for wire and snapshot form
type partJSON struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Threshold int       `json:"threshold"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON converts Part to JSON with a decimal price
func (p Part) MarshalJSON() ([]byte, error) {
	return json.Marshal(partJSON{
		ID:        p.ID,
		Name:      p.Name,
		Code:      p.Code,
		Quantity:  p.Quantity,
		Price:     p.GetPriceDecimal(),
		Threshold: p.Threshold,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
}

// UnmarshalJSON restores a Part from its wire form
func (p *Part) UnmarshalJSON(data []byte) error {
	var pj partJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}
	p.ID = pj.ID
	p.Name = pj.Name
	p.Code = pj.Code
	p.Quantity = pj.Quantity
	p.Price = decimalToCents(pj.Price)
	p.Threshold = pj.Threshold
	p.CreatedAt = pj.CreatedAt
	p.UpdatedAt = pj.UpdatedAt
	return nil
}
