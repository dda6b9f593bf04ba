// Package error defines domain-specific errors for the LifeQuest application.
package error

import "errors"

// Progress domain errors.
var (
	// ErrProgressNotFound is returned when the user progress row is missing.
	// It indicates the store was never seeded.
	ErrProgressNotFound = errors.New("user progress not found")
)
