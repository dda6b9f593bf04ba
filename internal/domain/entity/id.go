// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// NewID returns a new time-ordered unique identifier. IDs sort by creation
// order and are never reused, even after the entity is deleted.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// V7 generation only fails if the random source does; fall back
		// to a random V4, which still satisfies uniqueness.
		return uuid.New()
	}
	return id
}
