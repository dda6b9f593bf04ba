// Package task contains task-related use cases.
package task

import (
	"context"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
)

// ListTasksOutput represents the output of listing tasks.
type ListTasksOutput struct {
	Tasks []*entity.Task
}

// ListTasksUseCase handles listing tasks logic.
type ListTasksUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(taskRepo adapter.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
	}
}

// Execute retrieves every task in creation order.
func (uc *ListTasksUseCase) Execute(ctx context.Context) (*ListTasksOutput, error) {
	tasks, err := uc.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &ListTasksOutput{Tasks: tasks}, nil
}
