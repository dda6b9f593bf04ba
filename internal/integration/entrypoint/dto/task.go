// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifequest/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	Text string `json:"text" binding:"required"`
}

// UpdateTaskRequest represents the request body for task update.
type UpdateTaskRequest struct {
	Text string `json:"text" binding:"required"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID.String(),
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}
}

// ToTaskListResponse converts domain Task entities to a TaskListResponse DTO.
func ToTaskListResponse(tasks []*entity.Task) TaskListResponse {
	response := TaskListResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
	}
	for _, t := range tasks {
		response.Tasks = append(response.Tasks, ToTaskResponse(t))
	}
	return response
}
