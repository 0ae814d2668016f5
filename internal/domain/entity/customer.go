package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Customer represents a workshop customer. Balance is the amount owed to
// the business in cents; it is mutated only by the reconciliation engine,
// never by direct edits.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Balance   int64     `json:"-"` // Stored in cents
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetBalanceDecimal returns the balance as a decimal (for display)
func (c *Customer) GetBalanceDecimal() float64 {
	return centsToDecimal(c.Balance)
}

type customerJSON struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON converts Customer to JSON with a decimal balance
func (c Customer) MarshalJSON() ([]byte, error) {
	return json.Marshal(customerJSON{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Balance:   c.GetBalanceDecimal(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	})
}

// UnmarshalJSON restores a Customer from its wire form
func (c *Customer) UnmarshalJSON(data []byte) error {
	var cj customerJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	c.ID = cj.ID
	c.Name = cj.Name
	c.Phone = cj.Phone
	c.Address = cj.Address
	c.Balance = decimalToCents(cj.Balance)
	c.CreatedAt = cj.CreatedAt
	c.UpdatedAt = cj.UpdatedAt
	return nil
}
