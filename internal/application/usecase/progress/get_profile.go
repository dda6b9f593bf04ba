// Package progress contains user progression use cases.
package progress

import (
	"context"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
)

// GetProfileOutput represents the user progress snapshot.
type GetProfileOutput struct {
	Progress    *entity.Progress
	NextLevelXP int
}

// GetProfileUseCase returns the current progression snapshot.
type GetProfileUseCase struct {
	progressRepo adapter.ProgressRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(progressRepo adapter.ProgressRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		progressRepo: progressRepo,
	}
}

// Execute retrieves the user's progress.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*GetProfileOutput, error) {
	progress, err := uc.progressRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &GetProfileOutput{
		Progress:    progress,
		NextLevelXP: progress.NextLevelXP(),
	}, nil
}
