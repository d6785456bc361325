package orchestrator

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a job or datasource does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidTransition is returned for a lifecycle operation the job's
	// current status does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNoIdleWorker is returned when assignment finds no worker to take a job.
	ErrNoIdleWorker = errors.New("no idle worker available")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
