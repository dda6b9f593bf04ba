// Package notification delivers core events to the presentation layer.
package notification

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/lifequest/backend/internal/domain/entity"
)

func newTestNotifier(t *testing.T) *RedisNotifier {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisNotifier(client)
}

func TestRedisNotifier_FeedOrdering(t *testing.T) {
	notifier := newTestNotifier(t)
	ctx := context.Background()

	notifier.LevelUp(ctx, 2)
	notifier.GoalCompleted(ctx, "Concluir 10 tarefas esta semana")
	notifier.LevelUp(ctx, 3)

	recent, err := notifier.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recent) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(recent))
	}

	// Newest first.
	if recent[0].Kind != entity.NotificationLevelUp || recent[0].NewLevel != 3 {
		t.Errorf("expected newest to be level up to 3, got %+v", recent[0])
	}
	if recent[1].Kind != entity.NotificationGoalCompleted {
		t.Errorf("expected goal completion second, got %+v", recent[1])
	}
	if recent[1].GoalTitle != "Concluir 10 tarefas esta semana" {
		t.Errorf("unexpected goal title %q", recent[1].GoalTitle)
	}
	if recent[2].Kind != entity.NotificationLevelUp || recent[2].NewLevel != 2 {
		t.Errorf("expected oldest to be level up to 2, got %+v", recent[2])
	}
}

func TestRedisNotifier_RecentLimit(t *testing.T) {
	notifier := newTestNotifier(t)
	ctx := context.Background()

	for level := 2; level <= 6; level++ {
		notifier.LevelUp(ctx, level)
	}

	recent, err := notifier.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(recent))
	}
	if recent[0].NewLevel != 6 || recent[1].NewLevel != 5 {
		t.Errorf("expected levels 6 and 5, got %d and %d", recent[0].NewLevel, recent[1].NewLevel)
	}
}

func TestRedisNotifier_FeedIsCapped(t *testing.T) {
	notifier := newTestNotifier(t)
	ctx := context.Background()

	for i := 0; i < feedCap+20; i++ {
		notifier.LevelUp(ctx, i+2)
	}

	recent, err := notifier.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recent) != feedCap {
		t.Errorf("expected feed capped at %d, got %d", feedCap, len(recent))
	}
}

func TestNotifier_Backend(t *testing.T) {
	if got := newTestNotifier(t).Backend(); got != "redis" {
		t.Errorf("expected redis backend, got %q", got)
	}
	if got := NewMemoryNotifier().Backend(); got != "in-process" {
		t.Errorf("expected in-process backend, got %q", got)
	}
}

func TestMemoryNotifier_Feed(t *testing.T) {
	notifier := NewMemoryNotifier()
	ctx := context.Background()

	notifier.LevelUp(ctx, 2)
	notifier.GoalCompleted(ctx, "Economizar R$ 500 este mês")

	recent, err := notifier.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(recent))
	}
	if recent[0].Kind != entity.NotificationGoalCompleted {
		t.Errorf("expected newest to be the goal completion, got %+v", recent[0])
	}
	if recent[1].Kind != entity.NotificationLevelUp || recent[1].NewLevel != 2 {
		t.Errorf("expected oldest to be the level up, got %+v", recent[1])
	}
}
