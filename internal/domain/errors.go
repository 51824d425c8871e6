package domain

import (
	"errors"
	"fmt"
)

// Error message string constants, shared by services and tests
const (
	ErrMsgValidation = "validation failed"

	// Prediction errors
	ErrMsgPredictionNotFound        = "prediction not found"
	ErrMsgInvalidState              = "invalid prediction state"
	ErrMsgPredictionAlreadyResolved = "prediction is already resolved"
	ErrMsgPredictionNotExpired      = "prediction has not expired yet"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) to add context.
var (
	ErrValidation = errors.New(ErrMsgValidation)

	ErrPredictionNotFound = errors.New(ErrMsgPredictionNotFound)
	ErrInvalidState       = errors.New(ErrMsgInvalidState)

	// Both refinements satisfy errors.Is(err, ErrInvalidState)
	ErrPredictionAlreadyResolved = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgPredictionAlreadyResolved)
	ErrPredictionNotExpired      = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgPredictionNotExpired)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

// ValidationError describes one rejected input field
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds a field-level validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrMsgValidation, e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrValidation) match
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
