package service

import (
	"context"
	"sync"

	"github.com/rosymaple/dadjoke/internal/domain"
)

// mockJokeSource is a JokeSource with a configurable lookup function.
type mockJokeSource struct {
	LookupFn func(ctx context.Context, keyword string) (domain.JokeResult, error)
}

func (m *mockJokeSource) Lookup(ctx context.Context, keyword string) (domain.JokeResult, error) {
	return m.LookupFn(ctx, keyword)
}

// mockFallback returns a fixed joke and counts picks.
type mockFallback struct {
	joke  string
	picks int
}

func (m *mockFallback) Pick() string {
	m.picks++
	return m.joke
}

// mockPersonalizer records the last request it received.
type mockPersonalizer struct {
	PersonalizeFn func(ctx context.Context, req domain.PersonalizationRequest) (*domain.PersonalizedJoke, error)
	lastRequest   domain.PersonalizationRequest
	calls         int
}

func (m *mockPersonalizer) Personalize(
	ctx context.Context,
	req domain.PersonalizationRequest,
) (*domain.PersonalizedJoke, error) {
	m.calls++
	m.lastRequest = req
	return m.PersonalizeFn(ctx, req)
}

// mockImageGenerator records the text it was asked to illustrate.
type mockImageGenerator struct {
	GenerateImageFn func(ctx context.Context, text string) (*domain.ImageArtifact, error)
	lastText        string
	calls           int
}

func (m *mockImageGenerator) GenerateImage(ctx context.Context, text string) (*domain.ImageArtifact, error) {
	m.calls++
	m.lastText = text
	return m.GenerateImageFn(ctx, text)
}

// mockImageStore keeps saved images in memory.
type mockImageStore struct {
	mu        sync.Mutex
	SaveFn    func(artifact *domain.ImageArtifact, filename string) (string, error)
	CleanupFn func(filename string) error
	filenames []string
}

func (m *mockImageStore) Save(artifact *domain.ImageArtifact, filename string) (string, error) {
	m.mu.Lock()
	m.filenames = append(m.filenames, filename)
	m.mu.Unlock()

	if m.SaveFn != nil {
		return m.SaveFn(artifact, filename)
	}
	if filename == "" {
		filename = "personalized_joke_image.jpg"
	}
	return "/tmp/" + filename, nil
}

func (m *mockImageStore) Cleanup(filename string) error {
	if m.CleanupFn != nil {
		return m.CleanupFn(filename)
	}
	return nil
}
