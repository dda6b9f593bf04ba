// Package notification delivers core events to the presentation layer.
package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lifequest/backend/internal/domain/entity"
)

const (
	// feedKey is the Redis list holding recent notifications, newest first.
	feedKey = "notifications:feed"
	// feedCap bounds the retained feed length.
	feedCap = 100

	// ChannelLevelUp carries level-up events for live subscribers.
	ChannelLevelUp = "notifications:level_up"
	// ChannelGoalCompleted carries goal-completed events for live subscribers.
	ChannelGoalCompleted = "notifications:goal_completed"
)

// RedisNotifier publishes notifications to Redis: each event is pushed onto a
// capped feed list for polling clients and published on a pub/sub channel for
// live ones. Delivery is best-effort; failures are logged, never propagated,
// so a Redis outage cannot fail a mutation.
type RedisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier creates a new RedisNotifier instance.
func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{
		client: client,
	}
}

// LevelUp implements adapter.Notifier.
func (n *RedisNotifier) LevelUp(ctx context.Context, newLevel int) {
	n.publish(ctx, ChannelLevelUp, entity.Notification{
		Kind:      entity.NotificationLevelUp,
		NewLevel:  newLevel,
		CreatedAt: time.Now().UTC(),
	})
}

// GoalCompleted implements adapter.Notifier.
func (n *RedisNotifier) GoalCompleted(ctx context.Context, goalTitle string) {
	n.publish(ctx, ChannelGoalCompleted, entity.Notification{
		Kind:      entity.NotificationGoalCompleted,
		GoalTitle: goalTitle,
		CreatedAt: time.Now().UTC(),
	})
}

// Recent implements adapter.NotificationFeed.
func (n *RedisNotifier) Recent(ctx context.Context, limit int) ([]entity.Notification, error) {
	if limit <= 0 || limit > feedCap {
		limit = feedCap
	}

	raw, err := n.client.LRange(ctx, feedKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var notif entity.Notification
		if err := json.Unmarshal([]byte(item), &notif); err != nil {
			slog.Warn("Skipping malformed notification in feed", "error", err)
			continue
		}
		notifications = append(notifications, notif)
	}
	return notifications, nil
}

// Backend implements adapter.NotificationFeed.
func (n *RedisNotifier) Backend() string {
	return "redis"
}

func (n *RedisNotifier) publish(ctx context.Context, channel string, notif entity.Notification) {
	payload, err := json.Marshal(notif)
	if err != nil {
		slog.Error("Failed to encode notification", "kind", notif.Kind, "error", err)
		return
	}

	pipe := n.client.TxPipeline()
	pipe.LPush(ctx, feedKey, payload)
	pipe.LTrim(ctx, feedKey, 0, feedCap-1)
	pipe.Publish(ctx, channel, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Failed to publish notification", "kind", notif.Kind, "error", err)
	}
}
