package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when there is no text to send to the model.
	ErrEmptyPrompt = errors.New("prompt text cannot be empty")
)
