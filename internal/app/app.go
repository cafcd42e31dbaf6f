package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rosymaple/dadjoke/internal/config"
	"github.com/rosymaple/dadjoke/internal/jokes"
	"github.com/rosymaple/dadjoke/internal/platform/gemini"
	"github.com/rosymaple/dadjoke/internal/platform/imagestore"
	"github.com/rosymaple/dadjoke/internal/service"
)

// Components holds the wired dependencies of a front door.
type Components struct {
	// Jokes is the lookup client, exposed for the console's search step
	Jokes *jokes.Client
	// Service is the orchestrating joke service
	Service service.JokeService
	// Images is the image store, nil when images are disabled
	Images *imagestore.Store
}

// Options adjust wiring independently of the loaded configuration.
type Options struct {
	// ForceImages enables the image pipeline even if image.enabled is false
	ForceImages bool
}

// New creates every client from cfg and injects them into the joke service.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*Components, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	jokeClient, err := jokes.NewClient(cfg.Joke, logger.With("component", "joke_client"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize joke client: %w", err)
	}

	personalizer, imageGenerator, err := gemini.NewGenerators(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini generators: %w", err)
	}
	logger.Info("Gemini generators initialized successfully")

	components := &Components{Jokes: jokeClient}

	var serviceOpts []service.Option
	if cfg.Image.Enabled || opts.ForceImages {
		components.Images, err = imagestore.New(cfg.Image, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize image store: %w", err)
		}

		serviceOpts = append(serviceOpts,
			service.WithImages(imageGenerator, components.Images),
			service.WithUniqueFilenames(cfg.Image.UniqueFilenames))

		if !cfg.Image.UniqueFilenames {
			logger.Warn("images share a single output file; concurrent requests overwrite each other",
				"output_dir", cfg.Image.OutputDir,
				"filename", cfg.Image.Filename,
				"hint", "set image.unique_filenames=true")
		}
	}

	components.Service, err = service.NewJokeService(
		jokeClient,
		jokes.DefaultFallbackPool(),
		personalizer,
		logger,
		serviceOpts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create joke service: %w", err)
	}

	return components, nil
}
