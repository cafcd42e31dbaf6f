package imagestore

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rosymaple/dadjoke/internal/config"
	"github.com/rosymaple/dadjoke/internal/domain"
	"github.com/rosymaple/dadjoke/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := New(config.ImageConfig{OutputDir: dir}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return store, dir
}

func TestSave(t *testing.T) {
	store, dir := newTestStore(t)
	artifact := &domain.ImageArtifact{Bytes: []byte("first"), MIMEType: domain.MIMETypeJPEG}

	path, err := store.Save(artifact, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.DefaultImageFilename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	// A shorter second write fully replaces the first.
	_, err = store.Save(&domain.ImageArtifact{Bytes: []byte("2nd")}, "")
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2nd", string(data))
}

func TestSave_Errors(t *testing.T) {
	store, _ := newTestStore(t)

	tests := []struct {
		name     string
		artifact *domain.ImageArtifact
		filename string
	}{
		{name: "nil artifact", artifact: nil},
		{name: "empty bytes", artifact: &domain.ImageArtifact{}},
		{name: "path traversal", artifact: &domain.ImageArtifact{Bytes: []byte("x")}, filename: "../escape.jpg"},
		{name: "nested path", artifact: &domain.ImageArtifact{Bytes: []byte("x")}, filename: "a/b.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := store.Save(tt.artifact, tt.filename)
			assert.ErrorIs(t, err, ErrSave)
			assert.Empty(t, path)
		})
	}
}

func TestSave_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store, err := New(config.ImageConfig{OutputDir: dir, Filename: "joke.jpg"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	path, err := store.Save(&domain.ImageArtifact{Bytes: []byte("x")}, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "joke.jpg"), path)
	assert.FileExists(t, path)
}

func TestCleanup(t *testing.T) {
	dir := t.TempDir()
	log, buf := logger.GetTestLogger(t)
	store, err := New(config.ImageConfig{OutputDir: dir}, log)
	require.NoError(t, err)

	path, err := store.Save(&domain.ImageArtifact{Bytes: []byte("x")}, "")
	require.NoError(t, err)

	require.NoError(t, store.Cleanup(""))
	assert.NoFileExists(t, path)

	buf.Reset()
	require.NoError(t, store.Cleanup(""), "missing file is not an error")
	logger.AssertLogContains(t, buf, "no image to remove")
}

func TestCleanup_InvalidFilename(t *testing.T) {
	store, _ := newTestStore(t)
	assert.ErrorIs(t, store.Cleanup("../x.jpg"), ErrCleanup)
}

func TestUniqueFilename(t *testing.T) {
	a := UniqueFilename(".jpg")
	b := UniqueFilename(".jpg")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".jpg"))
	assert.True(t, strings.HasPrefix(a, "joke_"))
	assert.True(t, strings.HasSuffix(UniqueFilename("png"), ".png"))
	assert.True(t, strings.HasSuffix(UniqueFilename(""), ".jpg"))
}

func TestNew_NilLogger(t *testing.T) {
	_, err := New(config.ImageConfig{}, nil)
	assert.Error(t, err)
}
