// Package task contains task-related use cases.
package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifequest/backend/internal/application/adapter"
)

// DeleteTaskInput represents the input for task deletion.
type DeleteTaskInput struct {
	TaskID uuid.UUID
}

// DeleteTaskOutput represents the output of task deletion.
type DeleteTaskOutput struct {
	Success bool
}

// DeleteTaskUseCase removes a task. Goals and experience already granted are
// unaffected; a missing ID is a no-op.
type DeleteTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
func NewDeleteTaskUseCase(taskRepo adapter.TaskRepository) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task deletion.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, input DeleteTaskInput) (*DeleteTaskOutput, error) {
	if err := uc.taskRepo.Delete(ctx, input.TaskID); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return &DeleteTaskOutput{Success: true}, nil
}
