// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/lifequest/backend/internal/domain/entity"
)

// ProgressRepository defines the interface for user progress persistence.
// The store holds a single progress row for the session's user.
type ProgressRepository interface {
	// Get retrieves the user's progress.
	Get(ctx context.Context) (*entity.Progress, error)

	// Save persists the user's progress.
	Save(ctx context.Context, progress *entity.Progress) error
}
