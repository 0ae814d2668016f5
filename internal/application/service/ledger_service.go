package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/domain/enum"
	"github.com/partsledger/partsledger-api/internal/store"
	"github.com/partsledger/partsledger-api/pkg/apperror"
	"github.com/partsledger/partsledger-api/pkg/utils"
)

// LedgerService is the reconciliation engine: it couples the operation,
// part and customer collections so a sale create or delete updates all
// three as one unit, and raises low-stock alerts as a side effect.
type LedgerService struct {
	store *store.Store
}

// NewLedgerService creates a new ledger service
func NewLedgerService(st *store.Store) *LedgerService {
	return &LedgerService{store: st}
}

// RecordOperationInput represents a sale to record. CustomerID nil means
// the customer only exists as a typed name and must be created implicitly.
// Price and PaidAmount are decimal amounts.
type RecordOperationInput struct {
	CustomerID    *uuid.UUID
	CustomerName  string
	PartID        uuid.UUID
	Quantity      int
	Price         float64
	PaidAmount    float64
	PaymentStatus enum.PaymentStatus
}

// RecordOperation records a sale: it resolves or creates the customer,
// appends the operation, decrements the part's stock and applies the unpaid
// remainder to the customer balance, all inside one store transaction. A
// stock level landing at or below the part's threshold queues a low-stock
// alert that becomes visible after the mutation commits.
func (s *LedgerService) RecordOperation(ctx context.Context, input *RecordOperationInput) (*entity.Operation, error) {
	// Partially-filled forms are tolerated: missing numerics coerce to
	// safe defaults instead of rejecting the sale.
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	price := entity.ToCents(input.Price)
	if price < 0 {
		price = 0
	}

	var paid int64
	switch input.PaymentStatus {
	case enum.PaymentStatusPaid:
		paid = price
	case enum.PaymentStatusUnpaid:
		paid = 0
	default:
		paid = entity.ToCents(input.PaidAmount)
		if paid < 0 {
			paid = 0
		}
	}

	var created entity.Operation
	err := s.store.Update(func(tx *store.Tx) error {
		// A sale must target a real inventory row
		part := tx.FindPart(input.PartID)
		if part == nil {
			return apperror.NewNotFoundError("Part")
		}

		customerID := uuid.Nil
		customerName := strings.TrimSpace(input.CustomerName)
		if input.CustomerID != nil {
			customerID = *input.CustomerID
			if existing := tx.FindCustomer(customerID); existing != nil {
				customerName = existing.Name
			}
		} else {
			customer := tx.AddCustomer(entity.Customer{Name: customerName})
			customerID = customer.ID
		}

		op := entity.Operation{
			ID:            utils.NewUUID(),
			Timestamp:     time.Now(),
			CustomerID:    customerID,
			CustomerName:  customerName,
			PartID:        part.ID,
			PartName:      part.Name,
			Quantity:      quantity,
			Price:         price,
			PaidAmount:    paid,
			PaymentStatus: input.PaymentStatus,
		}
		created = tx.AddOperation(op)

		part.Quantity -= quantity
		part.UpdatedAt = time.Now()
		if part.Quantity <= part.EffectiveThreshold() {
			tx.Notify(fmt.Sprintf("Low stock alert for part %q (remaining: %d)", part.Name, part.Quantity), enum.SeverityDanger)
		}

		// A missing customer row is benign: the delta is simply discarded
		if customer := tx.FindCustomer(customerID); customer != nil {
			customer.Balance += op.BalanceDelta()
			customer.UpdatedAt = time.Now()
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteOperation removes a sale record and reverses its side effects:
// stock is restored to the referenced part and the balance delta is taken
// back off the customer. Missing operation, part or customer rows are benign
// no-ops. A blanket advisory is queued flagging that recorded sale value
// was removed.
func (s *LedgerService) DeleteOperation(ctx context.Context, id uuid.UUID) error {
	return s.store.Update(func(tx *store.Tx) error {
		op, ok := tx.RemoveOperation(id)
		if !ok {
			return nil
		}

		quantity := op.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		if part := tx.FindPart(op.PartID); part != nil {
			part.Quantity += quantity
			part.UpdatedAt = time.Now()
		}

		if customer := tx.FindCustomer(op.CustomerID); customer != nil {
			customer.Balance -= op.BalanceDelta()
			customer.UpdatedAt = time.Now()
		}

		tx.Notify("A sale record with unrecovered value was removed", enum.SeverityWarning)
		return nil
	})
}

// GetOperation returns a single recorded sale with its resolved,
// denormalized fields, for confirmation and printing flows.
func (s *LedgerService) GetOperation(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	var found *entity.Operation
	s.store.View(func(st *entity.AppState) {
		for i := range st.Operations {
			if st.Operations[i].ID == id {
				op := st.Operations[i]
				found = &op
				return
			}
		}
	})
	if found == nil {
		return nil, apperror.NewNotFoundError("Operation")
	}
	return found, nil
}

// ListOperations returns recorded sales newest first, optionally filtered
// by a case-insensitive match on customer or part name.
func (s *LedgerService) ListOperations(ctx context.Context, search string) []entity.Operation {
	search = strings.ToLower(strings.TrimSpace(search))

	ops := []entity.Operation{}
	s.store.View(func(st *entity.AppState) {
		for _, op := range st.Operations {
			if search != "" &&
				!strings.Contains(strings.ToLower(op.CustomerName), search) &&
				!strings.Contains(strings.ToLower(op.PartName), search) {
				continue
			}
			ops = append(ops, op)
		}
	})

	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Timestamp.After(ops[j].Timestamp)
	})
	return ops
}
