// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
)

// IncrementGoalInput represents the input for a manual "+1" adjustment.
type IncrementGoalInput struct {
	GoalID uuid.UUID
}

// IncrementGoalOutput represents the output of a manual increment.
type IncrementGoalOutput struct {
	Goal *entity.Goal
}

// IncrementGoalUseCase advances a single goal by one unit, independent of
// event type matching. The clamp and one-shot completion bonus rules are the
// same as for typed advancement.
type IncrementGoalUseCase struct {
	goalRepo    adapter.GoalRepository
	awarder     adapter.ExperienceAwarder
	notifier    adapter.Notifier
	bonusPoints int
}

// NewIncrementGoalUseCase creates a new IncrementGoalUseCase instance.
func NewIncrementGoalUseCase(
	goalRepo adapter.GoalRepository,
	awarder adapter.ExperienceAwarder,
	notifier adapter.Notifier,
	bonusPoints int,
) *IncrementGoalUseCase {
	return &IncrementGoalUseCase{
		goalRepo:    goalRepo,
		awarder:     awarder,
		notifier:    notifier,
		bonusPoints: bonusPoints,
	}
}

// Execute performs the increment.
func (uc *IncrementGoalUseCase) Execute(ctx context.Context, input IncrementGoalInput) (*IncrementGoalOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	justCompleted := g.Advance(decimal.NewFromInt(1))

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	if justCompleted {
		uc.notifier.GoalCompleted(ctx, g.Title)
		if err := uc.awarder.Award(ctx, uc.bonusPoints); err != nil {
			return nil, fmt.Errorf("failed to award completion bonus: %w", err)
		}
	}

	return &IncrementGoalOutput{Goal: g}, nil
}
