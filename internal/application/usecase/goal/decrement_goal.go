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

// DecrementGoalInput represents the input for a manual "-1" adjustment.
type DecrementGoalInput struct {
	GoalID uuid.UUID
}

// DecrementGoalOutput represents the output of a manual decrement.
type DecrementGoalOutput struct {
	Goal *entity.Goal
}

// DecrementGoalUseCase retreats a single goal by one unit, clamped at zero.
// Decrementing never triggers completion logic or a bonus, whatever value it
// lands on.
type DecrementGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDecrementGoalUseCase creates a new DecrementGoalUseCase instance.
func NewDecrementGoalUseCase(goalRepo adapter.GoalRepository) *DecrementGoalUseCase {
	return &DecrementGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the decrement.
func (uc *DecrementGoalUseCase) Execute(ctx context.Context, input DecrementGoalInput) (*DecrementGoalOutput, error) {
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

	g.Retreat(decimal.NewFromInt(1))

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &DecrementGoalOutput{Goal: g}, nil
}
