// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifequest/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title  string  `json:"title" binding:"required"`
	Target float64 `json:"target" binding:"required,gt=0"`
	Type   string  `json:"type" binding:"required,oneof=tasks savings health learning personal"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title  string  `json:"title" binding:"required"`
	Target float64 `json:"target" binding:"required,gt=0"`
	Type   string  `json:"type" binding:"required,oneof=tasks savings health learning personal"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Current   float64   `json:"current"`
	Target    float64   `json:"target"`
	Type      string    `json:"type"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:        g.ID.String(),
		Title:     g.Title,
		Current:   g.Current.InexactFloat64(),
		Target:    g.Target.InexactFloat64(),
		Type:      string(g.Type),
		Completed: g.IsComplete(),
		CreatedAt: g.CreatedAt,
	}
}

// ToGoalListResponse converts domain Goal entities to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	response := GoalListResponse{
		Goals: make([]GoalResponse, 0, len(goals)),
	}
	for _, g := range goals {
		response.Goals = append(response.Goals, ToGoalResponse(g))
	}
	return response
}
