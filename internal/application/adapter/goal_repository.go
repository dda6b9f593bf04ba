// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifequest/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create stores a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindAll retrieves every goal in creation order.
	FindAll(ctx context.Context) ([]*entity.Goal, error)

	// FindByType retrieves every goal of the given type in creation order.
	FindByType(ctx context.Context, goalType entity.GoalType) ([]*entity.Goal, error)

	// Update replaces an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal. Deleting an unknown ID is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
