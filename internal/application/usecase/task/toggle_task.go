// Package task contains task-related use cases.
package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
)

// ToggleTaskInput represents the input for toggling a task's completion.
type ToggleTaskInput struct {
	TaskID uuid.UUID
}

// ToggleTaskOutput represents the output of toggling a task.
type ToggleTaskOutput struct {
	Task *entity.Task
}

// ToggleTaskUseCase flips a task's completed flag. Completing a task advances
// every "tasks" goal by one and awards experience; un-completing reverses
// neither. Rewards are one-way so progress cannot be farmed by re-toggling.
type ToggleTaskUseCase struct {
	taskRepo        adapter.TaskRepository
	goalAdvancer    adapter.GoalAdvancer
	awarder         adapter.ExperienceAwarder
	completedPoints int
}

// NewToggleTaskUseCase creates a new ToggleTaskUseCase instance.
func NewToggleTaskUseCase(
	taskRepo adapter.TaskRepository,
	goalAdvancer adapter.GoalAdvancer,
	awarder adapter.ExperienceAwarder,
	completedPoints int,
) *ToggleTaskUseCase {
	return &ToggleTaskUseCase{
		taskRepo:        taskRepo,
		goalAdvancer:    goalAdvancer,
		awarder:         awarder,
		completedPoints: completedPoints,
	}
}

// Execute performs the toggle. The owning registry is mutated first, then the
// goal tracker is signalled, then the progression ledger, so a completion
// bonus is additive with the base award.
func (uc *ToggleTaskUseCase) Execute(ctx context.Context, input ToggleTaskInput) (*ToggleTaskOutput, error) {
	t, err := uc.taskRepo.FindByID(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTaskNotFound) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeTaskNotFound,
				"task not found",
				domainerror.ErrTaskNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	t.Completed = !t.Completed
	t.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if t.Completed {
		if err := uc.goalAdvancer.AdvanceByType(ctx, entity.GoalTypeTasks, decimal.NewFromInt(1)); err != nil {
			return nil, fmt.Errorf("failed to advance task goals: %w", err)
		}
		if err := uc.awarder.Award(ctx, uc.completedPoints); err != nil {
			return nil, fmt.Errorf("failed to award task completion points: %w", err)
		}
	}

	return &ToggleTaskOutput{Task: t}, nil
}
