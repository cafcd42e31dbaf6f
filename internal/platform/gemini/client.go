package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rosymaple/dadjoke/internal/config"
	"github.com/rosymaple/dadjoke/internal/generation"
	"google.golang.org/genai"
)

// ModelsAPI is the subset of the genai models service used by the generators.
// *genai.Models satisfies it.
type ModelsAPI interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)

	GenerateImages(
		ctx context.Context,
		model string,
		prompt string,
		config *genai.GenerateImagesConfig,
	) (*genai.GenerateImagesResponse, error)
}

// NewGenerators creates a Gemini client from the configuration and returns
// the text personalizer and the image generator that share it.
//
// Parameters:
//   - ctx: Context for initialization, which may include timeouts or cancellation
//   - logger: A logger for recording operations
//   - cfg: Configuration information including API key and model names
//
// Returns:
//   - The Personalizer and ImageGenerator
//   - An error if validation or client initialization fails
func NewGenerators(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*Personalizer, *ImageGenerator, error) {
	if logger == nil {
		return nil, nil, fmt.Errorf("logger cannot be nil")
	}

	logger.InfoContext(ctx, "Initializing Gemini generators",
		"text_model", cfg.TextModel,
		"image_model", cfg.ImageModel)

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	personalizer, err := NewPersonalizer(logger, client.Models, cfg.TextModel)
	if err != nil {
		return nil, nil, err
	}

	images, err := NewImageGenerator(logger, client.Models, cfg.ImageModel)
	if err != nil {
		return nil, nil, err
	}

	return personalizer, images, nil
}

// validateConfig checks that the API key and model names are set.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key",
			"error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if strings.TrimSpace(cfg.TextModel) == "" {
		return fmt.Errorf("%w: text model name cannot be empty", generation.ErrInvalidConfig)
	}

	if strings.TrimSpace(cfg.ImageModel) == "" {
		return fmt.Errorf("%w: image model name cannot be empty", generation.ErrInvalidConfig)
	}

	return nil
}
