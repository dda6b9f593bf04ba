// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the category of a goal. It is a soft foreign key into
// the domain that produces progress events: task completions advance "tasks"
// goals, income transactions advance "savings" goals. The remaining types
// only advance through manual increments.
type GoalType string

const (
	GoalTypeTasks    GoalType = "tasks"
	GoalTypeSavings  GoalType = "savings"
	GoalTypeHealth   GoalType = "health"
	GoalTypeLearning GoalType = "learning"
	GoalTypePersonal GoalType = "personal"
)

// GoalTypes returns every valid goal type.
func GoalTypes() []GoalType {
	return []GoalType{
		GoalTypeTasks,
		GoalTypeSavings,
		GoalTypeHealth,
		GoalTypeLearning,
		GoalTypePersonal,
	}
}

// IsValidGoalType reports whether t is a known goal type.
func IsValidGoalType(t GoalType) bool {
	switch t {
	case GoalTypeTasks, GoalTypeSavings, GoalTypeHealth,
		GoalTypeLearning, GoalTypePersonal:
		return true
	}
	return false
}

// Goal represents a user-defined goal in the LifeQuest system.
// Invariant: 0 <= Current <= Target at all times.
type Goal struct {
	ID        uuid.UUID
	Title     string
	Current   decimal.Decimal
	Target    decimal.Decimal
	Type      GoalType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGoal creates a new Goal entity with zero progress.
func NewGoal(title string, target decimal.Decimal, goalType GoalType) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:        NewID(),
		Title:     title,
		Current:   decimal.Zero,
		Target:    target,
		Type:      goalType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsComplete reports whether the goal has reached its target.
func (g *Goal) IsComplete() bool {
	return g.Current.GreaterThanOrEqual(g.Target)
}

// Advance adds amount to the goal's progress, clamped to the target.
// It returns true only when this call moves the goal from below the target
// to exactly the target; re-advancing an already complete goal is a no-op
// and returns false.
func (g *Goal) Advance(amount decimal.Decimal) bool {
	wasComplete := g.IsComplete()

	next := g.Current.Add(amount)
	if next.GreaterThan(g.Target) {
		next = g.Target
	}
	g.Current = next
	g.UpdatedAt = time.Now().UTC()

	return g.IsComplete() && !wasComplete
}

// Retreat subtracts amount from the goal's progress, clamped to zero.
// Retreating never triggers completion logic.
func (g *Goal) Retreat(amount decimal.Decimal) {
	next := g.Current.Sub(amount)
	if next.IsNegative() {
		next = decimal.Zero
	}
	g.Current = next
	g.UpdatedAt = time.Now().UTC()
}
