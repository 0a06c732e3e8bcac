package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel every validation failure unwraps to, so
// callers can classify rejected input with errors.Is without inspecting the
// failing field.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap ties every validation failure to ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
