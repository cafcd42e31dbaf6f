package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rosymaple/dadjoke/internal/app"
	"github.com/rosymaple/dadjoke/internal/config"
	"github.com/rosymaple/dadjoke/internal/platform/logger"
	"github.com/rosymaple/dadjoke/internal/service"
)

// envFile is loaded into the environment before configuration.
const envFile = ".env"

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	jokeService service.JokeService
}

// initializeApp loads configuration, sets up logging and wires the services.
func initializeApp(ctx context.Context) (*application, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"images_enabled", cfg.Image.Enabled)

	return newApplication(ctx, cfg, l)
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, l *slog.Logger) (*application, error) {
	components, err := app.New(ctx, cfg, l, app.Options{})
	if err != nil {
		return nil, err
	}

	l.Info("Application initialized successfully")

	return &application{
		config:      cfg,
		logger:      l,
		jokeService: components.Service,
	}, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (a *application) Run(ctx context.Context) error {
	if err := a.startHTTPServer(ctx, a.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
