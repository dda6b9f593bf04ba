// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifequest/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	Kind      string    `json:"kind"`
	NewLevel  int       `json:"new_level,omitempty"`
	GoalTitle string    `json:"goal_title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationListResponse converts notifications to a NotificationListResponse DTO.
func ToNotificationListResponse(notifications []entity.Notification) NotificationListResponse {
	response := NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}
	for _, n := range notifications {
		response.Notifications = append(response.Notifications, NotificationResponse{
			Kind:      string(n.Kind),
			NewLevel:  n.NewLevel,
			GoalTitle: n.GoalTitle,
			CreatedAt: n.CreatedAt,
		})
	}
	return response
}
