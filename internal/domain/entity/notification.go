// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// NotificationKind identifies the notification channels the presentation
// layer renders.
type NotificationKind string

const (
	NotificationLevelUp       NotificationKind = "level_up"
	NotificationGoalCompleted NotificationKind = "goal_completed"
)

// Notification is an event emitted by the core for the presentation layer.
// Exactly one of NewLevel or GoalTitle is meaningful, depending on Kind.
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	NewLevel  int              `json:"new_level,omitempty"`
	GoalTitle string           `json:"goal_title,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
