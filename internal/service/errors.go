package service

import (
	"errors"
	"fmt"
)

// Common service errors. Callers check for them with errors.Is().
var (
	// ErrNoJokeFound indicates that neither the lookup service nor the
	// fallback pool produced a joke. API layer should map this to HTTP 400.
	ErrNoJokeFound = errors.New("no joke found")

	// ErrInvalidRequest indicates that the request could not be turned into a
	// personalization prompt. API layer should map this to HTTP 400.
	ErrInvalidRequest = errors.New("invalid joke request")
)

// JokeServiceError wraps errors from the joke service with context.
type JokeServiceError struct {
	// Operation is the operation that failed (e.g., "create_service", "tell")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for JokeServiceError.
func (e *JokeServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("joke service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("joke service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *JokeServiceError) Unwrap() error {
	return e.Err
}
