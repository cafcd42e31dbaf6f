package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rosymaple/dadjoke/internal/domain"
	"github.com/rosymaple/dadjoke/internal/generation"
	"github.com/rosymaple/dadjoke/internal/platform/imagestore"
	"github.com/rosymaple/dadjoke/internal/prompt"
	"github.com/rosymaple/dadjoke/internal/redact"
)

// JokeSource looks up a joke for an optional keyword.
type JokeSource interface {
	// Lookup returns a joke tagged with its provenance, or an error if the
	// lookup service could not produce one.
	Lookup(ctx context.Context, keyword string) (domain.JokeResult, error)
}

// FallbackPicker supplies a joke when the lookup service fails.
type FallbackPicker interface {
	// Pick returns a joke, or "" if none is available.
	Pick() string
}

// ImageStore persists generated images.
type ImageStore interface {
	// Save writes the artifact under filename and returns the stored path.
	Save(artifact *domain.ImageArtifact, filename string) (string, error)

	// Cleanup removes a previously saved image. Missing files are not an error.
	Cleanup(filename string) error
}

// TellRequest carries the caller's input for one joke.
type TellRequest struct {
	Keyword   string
	Style     string
	WithImage bool
}

// TellResult is the response assembled after a successful personalization.
type TellResult struct {
	// OriginalJoke is the joke as obtained from the lookup service or fallback pool
	OriginalJoke string
	// PersonalizedJoke is the rewritten joke
	PersonalizedJoke string
	// DadJoke is the original joke as echoed by the language model
	DadJoke string
	// Source is the provenance tag of the original joke
	Source domain.SourceTag
	// SourceLabel is the matched keyword for keyword hits, otherwise the tag
	SourceLabel string
	// Style is the style actually used, after defaulting
	Style string
	// ImageSaved reports whether an illustration was generated and stored
	ImageSaved bool
	// ImagePath is the stored image location when ImageSaved is true
	ImagePath string
}

// JokeService provides the personalized joke use case.
type JokeService interface {
	// Tell fetches, personalizes and optionally illustrates a joke.
	Tell(ctx context.Context, req TellRequest) (*TellResult, error)

	// CleanupImage removes a saved illustration. An empty filename selects
	// the default image file.
	CleanupImage(filename string) error

	// ImagesEnabled reports whether the service can illustrate jokes.
	ImagesEnabled() bool
}

// Option customizes the joke service.
type Option func(*jokeServiceImpl)

// WithImages enables the image step with the given generator and store.
func WithImages(generator generation.ImageGenerator, store ImageStore) Option {
	return func(s *jokeServiceImpl) {
		s.images = generator
		s.store = store
	}
}

// WithUniqueFilenames makes every saved image use a fresh random file name
// instead of the shared default file.
func WithUniqueFilenames(unique bool) Option {
	return func(s *jokeServiceImpl) {
		s.uniqueFilenames = unique
	}
}

// jokeServiceImpl implements the JokeService interface
type jokeServiceImpl struct {
	source          JokeSource
	fallback        FallbackPicker
	personalizer    generation.Personalizer
	images          generation.ImageGenerator
	store           ImageStore
	uniqueFilenames bool
	logger          *slog.Logger
}

// NewJokeService creates a new JokeService.
// It returns an error if any of the required dependencies are nil.
func NewJokeService(
	source JokeSource,
	fallback FallbackPicker,
	personalizer generation.Personalizer,
	logger *slog.Logger,
	opts ...Option,
) (JokeService, error) {
	if source == nil {
		return nil, &JokeServiceError{Operation: "create_service", Message: "source cannot be nil"}
	}
	if fallback == nil {
		return nil, &JokeServiceError{Operation: "create_service", Message: "fallback cannot be nil"}
	}
	if personalizer == nil {
		return nil, &JokeServiceError{Operation: "create_service", Message: "personalizer cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &jokeServiceImpl{
		source:       source,
		fallback:     fallback,
		personalizer: personalizer,
		logger:       logger.With("component", "joke_service"),
	}

	for _, opt := range opts {
		opt(s)
	}

	if (s.images == nil) != (s.store == nil) {
		return nil, &JokeServiceError{
			Operation: "create_service",
			Message:   "image generator and image store must be configured together",
		}
	}

	return s, nil
}

// ImagesEnabled implements JokeService.
func (s *jokeServiceImpl) ImagesEnabled() bool {
	return s.images != nil && s.store != nil
}

// Tell runs the lookup, personalization and image steps in sequence.
func (s *jokeServiceImpl) Tell(ctx context.Context, req TellRequest) (*TellResult, error) {
	log := s.logger.With("keyword", strings.TrimSpace(req.Keyword))

	joke, err := s.fetchJoke(ctx, req.Keyword)
	if err != nil {
		return nil, err
	}

	personalization, err := prompt.BuildPersonalization(joke, req.Style)
	if err != nil {
		return nil, &JokeServiceError{
			Operation: "tell",
			Message:   "failed to build personalization request",
			Err:       fmt.Errorf("%w: %w", ErrInvalidRequest, err),
		}
	}

	log.DebugContext(ctx, "personalizing joke",
		"source", joke.Source,
		"style", personalization.StyleInstruction)

	personalized, err := s.personalizer.Personalize(ctx, personalization)
	if err != nil {
		log.ErrorContext(ctx, "personalization failed",
			"error", redact.Error(err))
		return nil, generation.NewPersonalizationError("", err)
	}

	result := &TellResult{
		OriginalJoke:     joke.Text,
		PersonalizedJoke: personalized.RewrittenJoke,
		DadJoke:          personalized.OriginalJoke,
		Source:           joke.Source,
		SourceLabel:      joke.Label(),
		Style:            personalization.StyleInstruction,
	}

	if req.WithImage {
		result.ImagePath, result.ImageSaved = s.illustrate(ctx, personalized.RewrittenJoke)
	}

	log.InfoContext(ctx, "joke personalized",
		"source", result.Source,
		"image_saved", result.ImageSaved)

	return result, nil
}

// fetchJoke asks the joke source and substitutes a fallback joke on failure.
func (s *jokeServiceImpl) fetchJoke(ctx context.Context, keyword string) (domain.JokeResult, error) {
	joke, err := s.source.Lookup(ctx, keyword)
	if err == nil {
		return joke, nil
	}

	s.logger.WarnContext(ctx, "joke lookup failed, using fallback joke",
		"error", redact.Error(err))

	joke, err = domain.NewJokeResult(s.fallback.Pick(), domain.SourceFallback, "")
	if err != nil {
		s.logger.ErrorContext(ctx, "fallback pool produced no joke")
		return domain.JokeResult{}, ErrNoJokeFound
	}

	return joke, nil
}

// illustrate generates and stores an image for text. Failures are logged and
// reported as not saved.
func (s *jokeServiceImpl) illustrate(ctx context.Context, text string) (string, bool) {
	if !s.ImagesEnabled() {
		s.logger.WarnContext(ctx, "image requested but image generation is not configured")
		return "", false
	}

	artifact, err := s.images.GenerateImage(ctx, text)
	if err != nil {
		s.logger.WarnContext(ctx, "image generation failed",
			"error", redact.Error(err))
		return "", false
	}

	filename := ""
	if s.uniqueFilenames {
		filename = imagestore.UniqueFilename(artifact.Extension())
	}

	path, err := s.store.Save(artifact, filename)
	if err != nil {
		s.logger.WarnContext(ctx, "image save failed",
			"error", redact.Error(err))
		return "", false
	}

	return path, true
}

// CleanupImage implements JokeService.
func (s *jokeServiceImpl) CleanupImage(filename string) error {
	if s.store == nil {
		return &JokeServiceError{
			Operation: "cleanup_image",
			Message:   "image store is not configured",
		}
	}

	if err := s.store.Cleanup(filename); err != nil {
		return &JokeServiceError{
			Operation: "cleanup_image",
			Message:   "failed to remove image",
			Err:       err,
		}
	}

	return nil
}
