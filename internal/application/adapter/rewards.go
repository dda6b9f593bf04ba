// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/domain/entity"
)

// ExperienceAwarder grants experience points for a completed action.
// Implemented by the progress use case; injected into the task, transaction
// and goal use cases so rewards always flow through one place.
type ExperienceAwarder interface {
	Award(ctx context.Context, points int) error
}

// GoalAdvancer fans a typed progress event out to every goal of the matching
// type. Implemented by the goal use case; injected into the task and
// transaction use cases. The dependency is one-directional: registries emit
// events, the goal tracker consumes them.
type GoalAdvancer interface {
	AdvanceByType(ctx context.Context, goalType entity.GoalType, amount decimal.Decimal) error
}
