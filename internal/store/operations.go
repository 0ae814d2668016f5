package store

import (
	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/domain/entity"
)

// Operations returns the live operation collection for read access
func (tx *Tx) Operations() []entity.Operation {
	return tx.state.Operations
}

// FindOperation returns the stored operation, or nil when absent
func (tx *Tx) FindOperation(id uuid.UUID) *entity.Operation {
	for i := range tx.state.Operations {
		if tx.state.Operations[i].ID == id {
			return &tx.state.Operations[i]
		}
	}
	return nil
}

// AddOperation appends a new operation record
func (tx *Tx) AddOperation(op entity.Operation) entity.Operation {
	tx.state.Operations = append(tx.state.Operations, op)
	return op
}

// RemoveOperation deletes the operation and returns the removed record so
// the caller can reverse its side effects.
func (tx *Tx) RemoveOperation(id uuid.UUID) (entity.Operation, bool) {
	for i := range tx.state.Operations {
		if tx.state.Operations[i].ID == id {
			removed := tx.state.Operations[i]
			tx.state.Operations = append(tx.state.Operations[:i], tx.state.Operations[i+1:]...)
			return removed, true
		}
	}
	return entity.Operation{}, false
}
