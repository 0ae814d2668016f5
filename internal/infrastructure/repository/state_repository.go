package repository

import (
	"context"
	"errors"
	"time"

	"github.com/partsledger/partsledger-api/internal/domain/entity"
	domainRepo "github.com/partsledger/partsledger-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new blob-backed state repository
func NewStateRepository(db *gorm.DB) domainRepo.StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var blob entity.StateBlob
	err := r.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob.Data, nil
}

func (r *stateRepository) Save(ctx context.Context, key string, data []byte) error {
	blob := entity.StateBlob{
		Key:       key,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&blob).Error
}
