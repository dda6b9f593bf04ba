// Package progress contains user progression use cases.
package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
)

// AwardXPInput represents the input for awarding experience points.
// Points must be positive; callers validate before invoking.
type AwardXPInput struct {
	Points int
}

// AwardXPOutput represents the output of awarding experience points.
type AwardXPOutput struct {
	Progress *entity.Progress
}

// AwardXPUseCase applies experience points to the user's progress and
// handles level transitions.
type AwardXPUseCase struct {
	progressRepo adapter.ProgressRepository
	notifier     adapter.Notifier
}

// NewAwardXPUseCase creates a new AwardXPUseCase instance.
func NewAwardXPUseCase(progressRepo adapter.ProgressRepository, notifier adapter.Notifier) *AwardXPUseCase {
	return &AwardXPUseCase{
		progressRepo: progressRepo,
		notifier:     notifier,
	}
}

// Execute adds the points to the stored experience and converts any excess
// into level-ups. The threshold for the current level is level*100; the loop
// keeps the invariant xp < threshold even when a single award spans more
// than one level.
func (uc *AwardXPUseCase) Execute(ctx context.Context, input AwardXPInput) (*AwardXPOutput, error) {
	progress, err := uc.progressRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	progress.XP += input.Points
	for progress.XP >= progress.NextLevelXP() {
		progress.XP -= progress.NextLevelXP()
		progress.Level++
		uc.notifier.LevelUp(ctx, progress.Level)
		slog.Info("level up", "new_level", progress.Level, "xp", progress.XP)
	}

	if err := uc.progressRepo.Save(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	return &AwardXPOutput{Progress: progress}, nil
}

// Award implements adapter.ExperienceAwarder.
func (uc *AwardXPUseCase) Award(ctx context.Context, points int) error {
	_, err := uc.Execute(ctx, AwardXPInput{Points: points})
	return err
}
