package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/domain/enum"
)

// Operation represents a recorded sale transaction linking a customer and a
// part. Customer and part names are denormalized at creation time so history
// survives a later rename or deletion of the referenced entity. An operation
// is immutable once created; it can only be deleted as a whole.
type Operation struct {
	ID            uuid.UUID          `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	PartID        uuid.UUID          `json:"part_id"`
	PartName      string             `json:"part_name"`
	Quantity      int                `json:"quantity"`
	Price         int64              `json:"-"` // Stored in cents
	PaidAmount    int64              `json:"-"` // Stored in cents
	PaymentStatus enum.PaymentStatus `json:"payment_status"`
}

// BalanceDelta returns the amount this operation adds to the customer's
// balance: price minus paid, or zero for a fully-paid sale.
func (o *Operation) BalanceDelta() int64 {
	if o.PaymentStatus == enum.PaymentStatusPaid {
		return 0
	}
	return o.Price - o.PaidAmount
}

// GetPriceDecimal returns the total price as a decimal
func (o *Operation) GetPriceDecimal() float64 {
	return centsToDecimal(o.Price)
}

// GetPaidAmountDecimal returns the paid amount as a decimal
func (o *Operation) GetPaidAmountDecimal() float64 {
	return centsToDecimal(o.PaidAmount)
}

type operationJSON struct {
	ID            uuid.UUID          `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	PartID        uuid.UUID          `json:"part_id"`
	PartName      string             `json:"part_name"`
	Quantity      int                `json:"quantity"`
	Price         float64            `json:"price"`
	PaidAmount    float64            `json:"paid_amount"`
	PaymentStatus enum.PaymentStatus `json:"payment_status"`
}

// MarshalJSON converts Operation to JSON with decimal amounts
func (o Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(operationJSON{
		ID:            o.ID,
		Timestamp:     o.Timestamp,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		PartID:        o.PartID,
		PartName:      o.PartName,
		Quantity:      o.Quantity,
		Price:         o.GetPriceDecimal(),
		PaidAmount:    o.GetPaidAmountDecimal(),
		PaymentStatus: o.PaymentStatus,
	})
}

// UnmarshalJSON restores an Operation from its wire form
func (o *Operation) UnmarshalJSON(data []byte) error {
	var oj operationJSON
	if err := json.Unmarshal(data, &oj); err != nil {
		return err
	}
	o.ID = oj.ID
	o.Timestamp = oj.Timestamp
	o.CustomerID = oj.CustomerID
	o.CustomerName = oj.CustomerName
	o.PartID = oj.PartID
	o.PartName = oj.PartName
	o.Quantity = oj.Quantity
	o.Price = decimalToCents(oj.Price)
	o.PaidAmount = decimalToCents(oj.PaidAmount)
	o.PaymentStatus = oj.PaymentStatus
	return nil
}
