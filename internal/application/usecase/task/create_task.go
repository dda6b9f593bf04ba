// Package task contains task-related use cases.
package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	Text string
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *entity.Task
}

// CreateTaskUseCase handles task creation logic. Creating a task awards the
// configured experience points.
type CreateTaskUseCase struct {
	taskRepo      adapter.TaskRepository
	awarder       adapter.ExperienceAwarder
	createdPoints int
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository, awarder adapter.ExperienceAwarder, createdPoints int) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo:      taskRepo,
		awarder:       awarder,
		createdPoints: createdPoints,
	}
}

// Execute performs the task creation. Empty or whitespace-only text is
// rejected before any state changes.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeEmptyTaskText,
			"text must not be empty",
			domainerror.ErrEmptyTaskText,
		)
	}

	t := entity.NewTask(text)

	if err := uc.taskRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := uc.awarder.Award(ctx, uc.createdPoints); err != nil {
		return nil, fmt.Errorf("failed to award task creation points: %w", err)
	}

	return &CreateTaskOutput{Task: t}, nil
}
