// Package error defines domain-specific errors for the LifeQuest application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrEmptyGoalTitle is returned when the goal title is empty after trimming.
	ErrEmptyGoalTitle = errors.New("goal title must not be empty")

	// ErrInvalidGoalTarget is returned when the target is zero or negative.
	ErrInvalidGoalTarget = errors.New("goal target must be greater than zero")

	// ErrInvalidGoalType is returned when the goal type is unknown.
	ErrInvalidGoalType = errors.New("invalid goal type")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound      GoalErrorCode = "GOL-010001"
	ErrCodeEmptyGoalTitle    GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalTarget GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalType   GoalErrorCode = "GOL-010004"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
