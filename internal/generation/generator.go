package generation

import (
	"context"

	"github.com/rosymaple/dadjoke/internal/domain"
)

// Personalizer defines the interface for rewriting a joke in a requested style.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Personalizer interface {
	// Personalize sends the request to the language model and returns the
	// validated structured result. Every failure is a *PersonalizationError.
	Personalize(ctx context.Context, req domain.PersonalizationRequest) (*domain.PersonalizedJoke, error)
}

// ImageGenerator defines the interface for illustrating a joke.
type ImageGenerator interface {
	// GenerateImage requests a single square image for the given joke text.
	// Failures wrap ErrImageGeneration.
	GenerateImage(ctx context.Context, text string) (*domain.ImageArtifact, error)
}
