package imagestore

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rosymaple/dadjoke/internal/config"
	"github.com/rosymaple/dadjoke/internal/domain"
)

// Error definitions for the imagestore package.
var (
	// ErrSave is returned when an image cannot be written.
	ErrSave = errors.New("failed to save image")

	// ErrCleanup is returned when an existing image cannot be removed.
	ErrCleanup = errors.New("failed to remove image")

	// ErrInvalidFilename is returned for filenames that would escape the output directory.
	ErrInvalidFilename = errors.New("invalid image filename")
)

const filePerm = 0o644

// Store persists images under a single output directory.
type Store struct {
	dir             string
	defaultFilename string
	logger          *slog.Logger
}

// New creates a Store from the image configuration.
func New(cfg config.ImageConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	dir := cfg.OutputDir
	if strings.TrimSpace(dir) == "" {
		dir = config.DefaultImageDir
	}

	filename := cfg.Filename
	if strings.TrimSpace(filename) == "" {
		filename = config.DefaultImageFilename
	}

	return &Store{
		dir:             dir,
		defaultFilename: filename,
		logger:          logger.With("component", "image_store"),
	}, nil
}

// DefaultFilename returns the name used when Save is given an empty filename.
func (s *Store) DefaultFilename() string {
	return s.defaultFilename
}

// Save writes the artifact to filename inside the output directory and returns
// the full path. An existing file is truncated and overwritten.
func (s *Store) Save(artifact *domain.ImageArtifact, filename string) (string, error) {
	if artifact.IsEmpty() {
		return "", fmt.Errorf("%w: no image data", ErrSave)
	}

	path, err := s.path(filename)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSave, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create output directory: %v", ErrSave, err)
	}

	if err := os.WriteFile(path, artifact.Bytes, filePerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSave, err)
	}

	s.logger.Info("image saved",
		"path", path,
		"bytes", len(artifact.Bytes))

	return path, nil
}

// Cleanup removes filename from the output directory. A missing file is not an error.
func (s *Store) Cleanup(filename string) error {
	path, err := s.path(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCleanup, err)
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("no image to remove", "path", path)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrCleanup, err)
	}

	s.logger.Info("image removed", "path", path)
	return nil
}

// UniqueFilename returns a random file name with the given extension.
func UniqueFilename(ext string) string {
	if ext == "" {
		ext = ".jpg"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return "joke_" + uuid.NewString() + ext
}

// path resolves filename inside the output directory.
func (s *Store) path(filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		filename = s.defaultFilename
	}

	if filepath.Base(filename) != filename || filename == "." || filename == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	return filepath.Join(s.dir, filename), nil
}
