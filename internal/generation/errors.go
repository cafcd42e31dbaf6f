package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when the language model call fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate personalized joke")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or misses required fields
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrImageGeneration is returned when no image could be generated
	ErrImageGeneration = errors.New("image generation failed")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// PersonalizationError reports a failed personalization call. It wraps one of
// the sentinel errors above so callers can use errors.Is.
type PersonalizationError struct {
	// Model is the language model that was called
	Model string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PersonalizationError.
func (e *PersonalizationError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("personalization failed: %v", e.Err)
	}
	return fmt.Sprintf("personalization with %s failed: %v", e.Model, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PersonalizationError) Unwrap() error {
	return e.Err
}

// NewPersonalizationError wraps err, returning nil for a nil error and err
// itself if it already is a PersonalizationError.
func NewPersonalizationError(model string, err error) error {
	if err == nil {
		return nil
	}

	var existing *PersonalizationError
	if errors.As(err, &existing) {
		return err
	}

	return &PersonalizationError{Model: model, Err: err}
}
