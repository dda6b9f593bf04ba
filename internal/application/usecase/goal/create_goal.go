// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Title  string
	Target decimal.Decimal
	Type   entity.GoalType
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo      adapter.GoalRepository
	awarder       adapter.ExperienceAwarder
	createdPoints int
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, awarder adapter.ExperienceAwarder, createdPoints int) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:      goalRepo,
		awarder:       awarder,
		createdPoints: createdPoints,
	}
}

// Execute performs the goal creation. Invalid input is rejected before any
// state changes.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalTitle,
			"title must not be empty",
			domainerror.ErrEmptyGoalTitle,
		)
	}

	if !input.Target.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTarget,
			"target must be greater than zero",
			domainerror.ErrInvalidGoalTarget,
		)
	}

	if !entity.IsValidGoalType(input.Type) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"type must be 'tasks', 'savings', 'health', 'learning' or 'personal'",
			domainerror.ErrInvalidGoalType,
		)
	}

	g := entity.NewGoal(title, input.Target, input.Type)

	if err := uc.goalRepo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	if err := uc.awarder.Award(ctx, uc.createdPoints); err != nil {
		return nil, fmt.Errorf("failed to award goal creation points: %w", err)
	}

	return &CreateGoalOutput{Goal: g}, nil
}
