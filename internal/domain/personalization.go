package domain

import (
	"fmt"
	"strings"
)

// PersonalizationRequest is the input for the language model: the cleaned
// original joke, the requested style and the rendered instruction text.
type PersonalizationRequest struct {
	OriginalJoke     string
	StyleInstruction string
	Contents         string
}

// PersonalizedJoke is the structured output of the language model.
// Both fields are required.
type PersonalizedJoke struct {
	OriginalJoke  string `json:"dad_joke"`
	RewrittenJoke string `json:"gemini_joke"`
}

// Validate checks that both required fields are present.
func (p *PersonalizedJoke) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: personalized joke is nil", ErrValidation)
	}

	if strings.TrimSpace(p.OriginalJoke) == "" {
		return fmt.Errorf("%w: missing dad_joke", ErrValidation)
	}

	if strings.TrimSpace(p.RewrittenJoke) == "" {
		return fmt.Errorf("%w: missing gemini_joke", ErrValidation)
	}

	return nil
}
