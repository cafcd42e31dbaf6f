package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rosymaple/dadjoke/internal/domain"
	"github.com/rosymaple/dadjoke/internal/generation"
	"github.com/rosymaple/dadjoke/internal/prompt"
	"google.golang.org/genai"
)

// Response field names required from the language model.
const (
	fieldDadJoke    = "dad_joke"
	fieldGeminiJoke = "gemini_joke"
)

// Personalizer implements the generation.Personalizer interface using
// Google's Gemini API with schema-constrained JSON output.
type Personalizer struct {
	logger *slog.Logger
	models ModelsAPI
	model  string
}

var _ generation.Personalizer = (*Personalizer)(nil)

// NewPersonalizer creates a Personalizer that calls model through models.
func NewPersonalizer(logger *slog.Logger, models ModelsAPI, model string) (*Personalizer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if models == nil {
		return nil, fmt.Errorf("%w: models client cannot be nil", generation.ErrInvalidConfig)
	}

	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &Personalizer{
		logger: logger.With("component", "gemini_personalizer"),
		models: models,
		model:  model,
	}, nil
}

// responseSchema constrains the model output to the two required string fields.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			fieldDadJoke: {
				Type:        genai.TypeString,
				Description: "The original dad joke.",
			},
			fieldGeminiJoke: {
				Type:        genai.TypeString,
				Description: "The personalized rewrite of the joke.",
			},
		},
		Required: []string{fieldDadJoke, fieldGeminiJoke},
	}
}

// contentConfig returns the fixed generation settings for every request.
func contentConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: prompt.SystemInstruction}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	}
}

// Personalize sends the request to Gemini once and validates the structured
// response. No retry is attempted.
func (p *Personalizer) Personalize(
	ctx context.Context,
	req domain.PersonalizationRequest,
) (*domain.PersonalizedJoke, error) {
	if strings.TrimSpace(req.Contents) == "" {
		return nil, generation.NewPersonalizationError(p.model, ErrEmptyPrompt)
	}

	p.logger.InfoContext(ctx, "Making Gemini API call",
		"model", p.model,
		"style", req.StyleInstruction,
		"prompt_length", len(req.Contents))

	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(req.Contents), contentConfig())
	if err != nil {
		p.logger.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return nil, generation.NewPersonalizationError(p.model,
			fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err))
	}

	text, err := responseText(resp)
	if err != nil {
		p.logger.WarnContext(ctx, "Gemini returned no usable content", "error", err)
		return nil, generation.NewPersonalizationError(p.model, err)
	}

	result, err := parsePersonalizedJoke(text)
	if err != nil {
		p.logger.WarnContext(ctx, "Gemini response failed validation",
			"error", err,
			"response_length", len(text))
		return nil, generation.NewPersonalizationError(p.model, err)
	}

	if strings.TrimSpace(result.RewrittenJoke) == strings.TrimSpace(req.OriginalJoke) {
		p.logger.WarnContext(ctx, "Gemini returned the original joke unchanged")
	}

	p.logger.InfoContext(ctx, "Gemini API call successful",
		"rewritten_length", len(result.RewrittenJoke))

	return result, nil
}

// parsePersonalizedJoke decodes and validates the structured output.
func parsePersonalizedJoke(text string) (*domain.PersonalizedJoke, error) {
	var result domain.PersonalizedJoke
	if err := json.Unmarshal([]byte(cleanJSON(text)), &result); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v", generation.ErrInvalidResponse, err)
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}

	return &result, nil
}
