package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rosymaple/dadjoke/internal/domain"
	"github.com/rosymaple/dadjoke/internal/generation"
	"github.com/rosymaple/dadjoke/internal/prompt"
	"google.golang.org/genai"
)

// Fixed image generation options
const (
	imageCount       = 1
	imageMIMEType    = domain.MIMETypeJPEG
	imageAspectRatio = "1:1"
)

// ImageGenerator implements the generation.ImageGenerator interface using Imagen.
type ImageGenerator struct {
	logger *slog.Logger
	models ModelsAPI
	model  string
}

var _ generation.ImageGenerator = (*ImageGenerator)(nil)

// NewImageGenerator creates an ImageGenerator that calls model through models.
func NewImageGenerator(logger *slog.Logger, models ModelsAPI, model string) (*ImageGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if models == nil {
		return nil, fmt.Errorf("%w: models client cannot be nil", generation.ErrInvalidConfig)
	}

	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &ImageGenerator{
		logger: logger.With("component", "gemini_image_generator"),
		models: models,
		model:  model,
	}, nil
}

// imagesConfig returns the fixed options: one square JPEG.
func imagesConfig() *genai.GenerateImagesConfig {
	return &genai.GenerateImagesConfig{
		NumberOfImages: imageCount,
		OutputMIMEType: imageMIMEType,
		AspectRatio:    imageAspectRatio,
	}
}

// GenerateImage asks Imagen for a cartoon illustrating text and returns the
// bytes of the first generated image.
func (g *ImageGenerator) GenerateImage(ctx context.Context, text string) (*domain.ImageArtifact, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %w", generation.ErrImageGeneration, ErrEmptyPrompt)
	}

	imagePrompt := prompt.ImagePrompt(text)
	g.logger.InfoContext(ctx, "Generating image",
		"model", g.model,
		"prompt_length", len(imagePrompt))

	resp, err := g.models.GenerateImages(ctx, g.model, imagePrompt, imagesConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrImageGeneration, err)
	}

	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, fmt.Errorf("%w: no images returned", generation.ErrImageGeneration)
	}

	generated := resp.GeneratedImages[0]
	if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		reason := ""
		if generated != nil {
			reason = generated.RAIFilteredReason
		}
		return nil, fmt.Errorf("%w: empty image data (filtered reason: %q)", generation.ErrImageGeneration, reason)
	}

	mimeType := generated.Image.MIMEType
	if mimeType == "" {
		mimeType = imageMIMEType
	}

	g.logger.InfoContext(ctx, "Image generated",
		"bytes", len(generated.Image.ImageBytes),
		"mime_type", mimeType)

	return &domain.ImageArtifact{
		Bytes:    generated.Image.ImageBytes,
		MIMEType: mimeType,
	}, nil
}
