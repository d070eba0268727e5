package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP status by the handlers.
var (
	// ErrNotFound covers both a missing entity and one owned by someone else.
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailTaken         = errors.New("email already registered")
)

// ValidationError reports a missing or oversized input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
