package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/store"
	"github.com/partsledger/partsledger-api/pkg/apperror"
)

// CustomerService handles direct customer management. Balances are owned by
// the ledger and cannot be edited here.
type CustomerService struct {
	store *store.Store
}

// NewCustomerService creates a new customer service
func NewCustomerService(st *store.Store) *CustomerService {
	return &CustomerService{store: st}
}

// CustomerInput represents the create/update payload for a customer
type CustomerInput struct {
	Name    string
	Phone   string
	Address string
}

// CreateCustomer adds a new customer with a zero balance
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	var created entity.Customer
	err := s.store.Update(func(tx *store.Tx) error {
		created = tx.AddCustomer(entity.Customer{
			Name:    strings.TrimSpace(input.Name),
			Phone:   strings.TrimSpace(input.Phone),
			Address: strings.TrimSpace(input.Address),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCustomer edits contact details. Operations recorded against this
// customer keep the name they were created with.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	var updated entity.Customer
	err := s.store.Update(func(tx *store.Tx) error {
		ok := tx.UpdateCustomer(entity.Customer{
			ID:      id,
			Name:    strings.TrimSpace(input.Name),
			Phone:   strings.TrimSpace(input.Phone),
			Address: strings.TrimSpace(input.Address),
		})
		if !ok {
			return apperror.NewNotFoundError("Customer")
		}
		updated = *tx.FindCustomer(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCustomer removes the customer row only; their historic operations
// remain.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return s.store.Update(func(tx *store.Tx) error {
		if !tx.DeleteCustomer(id) {
			return apperror.NewNotFoundError("Customer")
		}
		return nil
	})
}

// GetCustomer returns a single customer
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var found *entity.Customer
	s.store.View(func(st *entity.AppState) {
		for i := range st.Customers {
			if st.Customers[i].ID == id {
				customer := st.Customers[i]
				found = &customer
				return
			}
		}
	})
	if found == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return found, nil
}

// ListCustomers returns customers, optionally filtered by a
// case-insensitive match on name or phone.
func (s *CustomerService) ListCustomers(ctx context.Context, search string) []entity.Customer {
	search = strings.ToLower(strings.TrimSpace(search))

	customers := []entity.Customer{}
	s.store.View(func(st *entity.AppState) {
		for _, customer := range st.Customers {
			if search != "" &&
				!strings.Contains(strings.ToLower(customer.Name), search) &&
				!strings.Contains(customer.Phone, search) {
				continue
			}
			customers = append(customers, customer)
		}
	})
	return customers
}
