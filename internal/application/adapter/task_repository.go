// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifequest/backend/internal/domain/entity"
)

// TaskRepository defines the interface for task persistence operations.
type TaskRepository interface {
	// Create stores a new task.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindAll retrieves every task in creation order.
	FindAll(ctx context.Context) ([]*entity.Task, error)

	// Update replaces an existing task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task. Deleting an unknown ID is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
