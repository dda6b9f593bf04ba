// Package notification delivers core events to the presentation layer.
package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lifequest/backend/internal/domain/entity"
)

// MemoryNotifier is the fallback notifier used when Redis is unavailable.
// Events are logged and retained in a bounded in-process buffer so the
// notification feed endpoint keeps working.
type MemoryNotifier struct {
	mu     sync.Mutex
	recent []entity.Notification
}

// NewMemoryNotifier creates a new MemoryNotifier instance.
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

// LevelUp implements adapter.Notifier.
func (n *MemoryNotifier) LevelUp(ctx context.Context, newLevel int) {
	slog.Info("Notification: level up", "new_level", newLevel)
	n.retain(entity.Notification{
		Kind:      entity.NotificationLevelUp,
		NewLevel:  newLevel,
		CreatedAt: time.Now().UTC(),
	})
}

// GoalCompleted implements adapter.Notifier.
func (n *MemoryNotifier) GoalCompleted(ctx context.Context, goalTitle string) {
	slog.Info("Notification: goal completed", "goal_title", goalTitle)
	n.retain(entity.Notification{
		Kind:      entity.NotificationGoalCompleted,
		GoalTitle: goalTitle,
		CreatedAt: time.Now().UTC(),
	})
}

// Recent implements adapter.NotificationFeed.
func (n *MemoryNotifier) Recent(ctx context.Context, limit int) ([]entity.Notification, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if limit <= 0 || limit > len(n.recent) {
		limit = len(n.recent)
	}

	out := make([]entity.Notification, limit)
	copy(out, n.recent[:limit])
	return out, nil
}

// Backend implements adapter.NotificationFeed.
func (n *MemoryNotifier) Backend() string {
	return "in-process"
}

func (n *MemoryNotifier) retain(notif entity.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// Newest first, bounded like the Redis feed.
	n.recent = append([]entity.Notification{notif}, n.recent...)
	if len(n.recent) > feedCap {
		n.recent = n.recent[:feedCap]
	}
}
