package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/domain/entity"
)

// Parts returns the live part collection for read access
func (tx *Tx) Parts() []entity.Part {
	return tx.state.Parts
}

// FindPart returns a pointer into the live collection, or nil when absent
func (tx *Tx) FindPart(id uuid.UUID) *entity.Part {
	for i := range tx.state.Parts {
		if tx.state.Parts[i].ID == id {
			return &tx.state.Parts[i]
		}
	}
	return nil
}

// AddPart appends a new part, stamping id and timestamps
func (tx *Tx) AddPart(part entity.Part) entity.Part {
	if part.ID == uuid.Nil {
		part.ID = uuid.New()
	}
	now := time.Now()
	part.CreatedAt = now
	part.UpdatedAt = now
	tx.state.Parts = append(tx.state.Parts, part)
	return part
}

// UpdatePart replaces the stored part with the same id
func (tx *Tx) UpdatePart(part entity.Part) bool {
	for i := range tx.state.Parts {
		if tx.state.Parts[i].ID == part.ID {
			part.CreatedAt = tx.state.Parts[i].CreatedAt
			part.UpdatedAt = time.Now()
			tx.state.Parts[i] = part
			return true
		}
	}
	return false
}

// DeletePart removes the part with the given id. Operations referencing it
// keep their denormalized name and are not touched.
func (tx *Tx) DeletePart(id uuid.UUID) bool {
	for i := range tx.state.Parts {
		if tx.state.Parts[i].ID == id {
			tx.state.Parts = append(tx.state.Parts[:i], tx.state.Parts[i+1:]...)
			return true
		}
	}
	return false
}
