package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/domain/entity"
)

// Customers returns the live customer collection for read access
func (tx *Tx) Customers() []entity.Customer {
	return tx.state.Customers
}

// FindCustomer returns a pointer into the live collection, or nil when absent
func (tx *Tx) FindCustomer(id uuid.UUID) *entity.Customer {
	for i := range tx.state.Customers {
		if tx.state.Customers[i].ID == id {
			return &tx.state.Customers[i]
		}
	}
	return nil
}

// AddCustomer appends a new customer with a zero balance
func (tx *Tx) AddCustomer(customer entity.Customer) entity.Customer {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	now := time.Now()
	customer.Balance = 0
	customer.CreatedAt = now
	customer.UpdatedAt = now
	tx.state.Customers = append(tx.state.Customers, customer)
	return customer
}

// UpdateCustomer replaces name, phone and address of the stored customer.
// The balance is owned by the ledger and is never updated through here.
func (tx *Tx) UpdateCustomer(customer entity.Customer) bool {
	for i := range tx.state.Customers {
		if tx.state.Customers[i].ID == customer.ID {
			tx.state.Customers[i].Name = customer.Name
			tx.state.Customers[i].Phone = customer.Phone
			tx.state.Customers[i].Address = customer.Address
			tx.state.Customers[i].UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// DeleteCustomer removes the customer row only; their historic operations
// remain keyed to the now-dangling id.
func (tx *Tx) DeleteCustomer(id uuid.UUID) bool {
	for i := range tx.state.Customers {
		if tx.state.Customers[i].ID == id {
			tx.state.Customers = append(tx.state.Customers[:i], tx.state.Customers[i+1:]...)
			return true
		}
	}
	return false
}
