package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/store"
	"github.com/partsledger/partsledger-api/pkg/apperror"
)

// PartService handles direct inventory management. Direct stock edits here
// never raise low-stock alerts; those are a side effect of sales only.
type PartService struct {
	store *store.Store
}

// NewPartService creates a new part service
func NewPartService(st *store.Store) *PartService {
	return &PartService{store: st}
}

// PartInput represents the create/update payload for a part
type PartInput struct {
	Name      string
	Code      string
	Quantity  int
	Price     float64
	Threshold int
}

// CreatePart adds a new inventory row
func (s *PartService) CreatePart(ctx context.Context, input *PartInput) (*entity.Part, error) {
	threshold := input.Threshold
	if threshold <= 0 {
		threshold = entity.DefaultThreshold
	}

	var created entity.Part
	err := s.store.Update(func(tx *store.Tx) error {
		part := entity.Part{
			Name:      strings.TrimSpace(input.Name),
			Code:      strings.TrimSpace(input.Code),
			Quantity:  input.Quantity,
			Threshold: threshold,
		}
		part.SetPriceFromDecimal(input.Price)
		created = tx.AddPart(part)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePart edits an existing inventory row in place
func (s *PartService) UpdatePart(ctx context.Context, id uuid.UUID, input *PartInput) (*entity.Part, error) {
	threshold := input.Threshold
	if threshold <= 0 {
		threshold = entity.DefaultThreshold
	}

	var updated entity.Part
	err := s.store.Update(func(tx *store.Tx) error {
		part := tx.FindPart(id)
		if part == nil {
			return apperror.NewNotFoundError("Part")
		}
		part.Name = strings.TrimSpace(input.Name)
		part.Code = strings.TrimSpace(input.Code)
		part.Quantity = input.Quantity
		part.Threshold = threshold
		part.SetPriceFromDecimal(input.Price)
		updated = *part
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePart removes an inventory row. Operations referencing it keep their
// denormalized part name so history stays readable.
func (s *PartService) DeletePart(ctx context.Context, id uuid.UUID) error {
	return s.store.Update(func(tx *store.Tx) error {
		if !tx.DeletePart(id) {
			return apperror.NewNotFoundError("Part")
		}
		return nil
	})
}

// GetPart returns a single part
func (s *PartService) GetPart(ctx context.Context, id uuid.UUID) (*entity.Part, error) {
	var found *entity.Part
	s.store.View(func(st *entity.AppState) {
		for i := range st.Parts {
			if st.Parts[i].ID == id {
				part := st.Parts[i]
				found = &part
				return
			}
		}
	})
	if found == nil {
		return nil, apperror.NewNotFoundError("Part")
	}
	return found, nil
}

// ListParts returns parts, optionally filtered by a case-insensitive match
// on name or code.
func (s *PartService) ListParts(ctx context.Context, search string) []entity.Part {
	search = strings.ToLower(strings.TrimSpace(search))

	parts := []entity.Part{}
	s.store.View(func(st *entity.AppState) {
		for _, part := range st.Parts {
			if search != "" &&
				!strings.Contains(strings.ToLower(part.Name), search) &&
				!strings.Contains(strings.ToLower(part.Code), search) {
				continue
			}
			parts = append(parts, part)
		}
	})
	return parts
}

// ListLowStock returns parts currently in the low-stock band
func (s *PartService) ListLowStock(ctx context.Context) []entity.Part {
	parts := []entity.Part{}
	s.store.View(func(st *entity.AppState) {
		for _, part := range st.Parts {
			if part.IsLowStock() {
				parts = append(parts, part)
			}
		}
	})
	return parts
}
