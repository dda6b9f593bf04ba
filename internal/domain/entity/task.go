// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a to-do item in the LifeQuest system.
type Task struct {
	ID        uuid.UUID
	Text      string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTask creates a new Task entity. Tasks start uncompleted.
func NewTask(text string) *Task {
	now := time.Now().UTC()

	return &Task{
		ID:        NewID(),
		Text:      text,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
