// Package persistence implements repository interfaces for the session store.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
	"github.com/lifequest/backend/internal/integration/persistence/model"
)

// progressRepository implements the adapter.ProgressRepository interface.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository instance.
func NewProgressRepository(db *gorm.DB) adapter.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// Get retrieves the single progress row.
func (r *progressRepository) Get(ctx context.Context) (*entity.Progress, error) {
	var progressModel model.ProgressModel
	result := r.db.WithContext(ctx).Where("id = ?", model.ProgressRowID).First(&progressModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProgressNotFound
		}
		return nil, result.Error
	}
	return progressModel.ToEntity(), nil
}

// Save persists the single progress row.
func (r *progressRepository) Save(ctx context.Context, progress *entity.Progress) error {
	progressModel := model.ProgressFromEntity(progress)
	result := r.db.WithContext(ctx).Save(progressModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
