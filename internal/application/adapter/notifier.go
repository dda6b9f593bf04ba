// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/lifequest/backend/internal/domain/entity"
)

// Notifier publishes events for the presentation layer to render.
// Publishing is best-effort: a failed delivery must never fail the mutation
// that produced the event.
type Notifier interface {
	// LevelUp announces that the user reached a new level.
	LevelUp(ctx context.Context, newLevel int)

	// GoalCompleted announces that a goal reached its target.
	GoalCompleted(ctx context.Context, goalTitle string)
}

// NotificationFeed exposes recently published notifications, newest first.
type NotificationFeed interface {
	Recent(ctx context.Context, limit int) ([]entity.Notification, error)

	// Backend identifies the delivery backend for diagnostics.
	Backend() string
}
