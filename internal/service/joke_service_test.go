package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rosymaple/dadjoke/internal/domain"
	"github.com/rosymaple/dadjoke/internal/generation"
	"github.com/rosymaple/dadjoke/internal/jokes"
	"github.com/rosymaple/dadjoke/internal/platform/imagestore"
	"github.com/rosymaple/dadjoke/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const robotJoke = "Why did the robot go on a diet? It had a byte problem."

func keywordSource(text, keyword string) *mockJokeSource {
	return &mockJokeSource{
		LookupFn: func(context.Context, string) (domain.JokeResult, error) {
			return domain.NewJokeResult(text, domain.SourceKeyword, keyword)
		},
	}
}

func failingSource(err error) *mockJokeSource {
	return &mockJokeSource{
		LookupFn: func(context.Context, string) (domain.JokeResult, error) {
			return domain.JokeResult{}, err
		},
	}
}

func echoPersonalizer(rewrite string) *mockPersonalizer {
	return &mockPersonalizer{
		PersonalizeFn: func(_ context.Context, req domain.PersonalizationRequest) (*domain.PersonalizedJoke, error) {
			return &domain.PersonalizedJoke{OriginalJoke: req.OriginalJoke, RewrittenJoke: rewrite}, nil
		},
	}
}

func newService(t *testing.T, source JokeSource, fallback FallbackPicker, p generation.Personalizer, opts ...Option) JokeService {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	svc, err := NewJokeService(source, fallback, p, log, opts...)
	require.NoError(t, err)
	return svc
}

func TestNewJokeService_Validation(t *testing.T) {
	source := keywordSource(robotJoke, "robot")
	fallback := &mockFallback{joke: "x"}
	p := echoPersonalizer("y")

	tests := []struct {
		name         string
		source       JokeSource
		fallback     FallbackPicker
		personalizer generation.Personalizer
		opts         []Option
		wantErr      bool
	}{
		{name: "valid", source: source, fallback: fallback, personalizer: p},
		{name: "valid with images", source: source, fallback: fallback, personalizer: p,
			opts: []Option{WithImages(&mockImageGenerator{}, &mockImageStore{})}},
		{name: "nil source", fallback: fallback, personalizer: p, wantErr: true},
		{name: "nil fallback", source: source, personalizer: p, wantErr: true},
		{name: "nil personalizer", source: source, fallback: fallback, wantErr: true},
		{name: "generator without store", source: source, fallback: fallback, personalizer: p,
			opts: []Option{WithImages(&mockImageGenerator{}, nil)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewJokeService(tt.source, tt.fallback, tt.personalizer, nil, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				var svcErr *JokeServiceError
				assert.ErrorAs(t, err, &svcErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestTell_RobotNerdyScenario(t *testing.T) {
	personalizer := echoPersonalizer("Why did the robot skip dessert? It was watching its bytes.")
	fallback := &mockFallback{joke: "unused"}
	svc := newService(t, keywordSource(robotJoke, "robot"), fallback, personalizer)

	result, err := svc.Tell(context.Background(), TellRequest{Keyword: "robot", Style: "nerdy"})
	require.NoError(t, err)

	assert.Equal(t, robotJoke, personalizer.lastRequest.OriginalJoke)
	assert.Contains(t, personalizer.lastRequest.Contents, robotJoke)
	assert.Contains(t, personalizer.lastRequest.Contents, "nerdy")

	assert.Equal(t, robotJoke, result.OriginalJoke)
	assert.Equal(t, "Why did the robot skip dessert? It was watching its bytes.", result.PersonalizedJoke)
	assert.Equal(t, domain.SourceKeyword, result.Source)
	assert.Equal(t, "robot", result.SourceLabel)
	assert.Equal(t, "nerdy", result.Style)
	assert.False(t, result.ImageSaved)
	assert.Zero(t, fallback.picks, "fallback is only used on lookup failure")
}

func TestTell_RandomJoke(t *testing.T) {
	source := &mockJokeSource{
		LookupFn: func(_ context.Context, keyword string) (domain.JokeResult, error) {
			assert.Empty(t, strings.TrimSpace(keyword))
			return domain.NewJokeResult("X", domain.SourceRandom, "")
		},
	}
	svc := newService(t, source, &mockFallback{}, echoPersonalizer("Y"))

	result, err := svc.Tell(context.Background(), TellRequest{Keyword: "  "})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRandom, result.Source)
	assert.Equal(t, "random", result.SourceLabel)
	assert.Equal(t, "funny", result.Style, "blank style defaults")
}

func TestTell_LookupFailureUsesFallback(t *testing.T) {
	pool := jokes.DefaultFallbackPool()
	personalizer := echoPersonalizer("rewritten")
	svc := newService(t, failingSource(context.DeadlineExceeded), pool, personalizer)

	for i := 0; i < 10; i++ {
		result, err := svc.Tell(context.Background(), TellRequest{Keyword: "robot"})
		require.NoError(t, err)
		assert.True(t, pool.Contains(result.OriginalJoke), "joke %q must come from the fallback pool", result.OriginalJoke)
		assert.Equal(t, domain.SourceFallback, result.Source)
		assert.Equal(t, "fallback", result.SourceLabel)
	}
}

func TestTell_EmptyFallback(t *testing.T) {
	personalizer := echoPersonalizer("unused")
	svc := newService(t, failingSource(jokes.ErrLookupFailed), &mockFallback{}, personalizer)

	result, err := svc.Tell(context.Background(), TellRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoJokeFound)
	assert.Nil(t, result)
	assert.Zero(t, personalizer.calls)
}

func TestTell_PersonalizationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "missing gemini_joke",
			err: generation.NewPersonalizationError("gemini-test",
				errors.Join(generation.ErrInvalidResponse, errors.New("missing gemini_joke"))),
		},
		{
			name: "plain error",
			err:  errors.New("quota exceeded"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			personalizer := &mockPersonalizer{
				PersonalizeFn: func(context.Context, domain.PersonalizationRequest) (*domain.PersonalizedJoke, error) {
					return nil, tt.err
				},
			}
			images := &mockImageGenerator{}
			store := &mockImageStore{}
			fallback := &mockFallback{joke: "unused"}
			svc := newService(t, keywordSource(robotJoke, "robot"), fallback, personalizer, WithImages(images, store))

			result, err := svc.Tell(context.Background(), TellRequest{Keyword: "robot", WithImage: true})
			require.Error(t, err)
			assert.Nil(t, result, "no partial result")

			var perr *generation.PersonalizationError
			assert.ErrorAs(t, err, &perr)
			assert.Zero(t, images.calls, "image step is skipped")
			assert.Zero(t, fallback.picks, "no fallback for personalization failures")
		})
	}
}

func TestTell_Image(t *testing.T) {
	artifact := &domain.ImageArtifact{Bytes: []byte{1, 2, 3}, MIMEType: domain.MIMETypeJPEG}

	t.Run("saved to default file", func(t *testing.T) {
		images := &mockImageGenerator{
			GenerateImageFn: func(context.Context, string) (*domain.ImageArtifact, error) {
				return artifact, nil
			},
		}
		store := &mockImageStore{}
		svc := newService(t, keywordSource(robotJoke, "robot"), &mockFallback{}, echoPersonalizer("rewritten"),
			WithImages(images, store))

		result, err := svc.Tell(context.Background(), TellRequest{Keyword: "robot", WithImage: true})
		require.NoError(t, err)
		assert.True(t, result.ImageSaved)
		assert.Equal(t, "/tmp/personalized_joke_image.jpg", result.ImagePath)
		assert.Equal(t, "rewritten", images.lastText, "image illustrates the personalized joke")
		assert.Equal(t, []string{""}, store.filenames)
	})

	t.Run("unique filenames", func(t *testing.T) {
		images := &mockImageGenerator{
			GenerateImageFn: func(context.Context, string) (*domain.ImageArtifact, error) {
				return artifact, nil
			},
		}
		store := &mockImageStore{}
		svc := newService(t, keywordSource(robotJoke, "robot"), &mockFallback{}, echoPersonalizer("rewritten"),
			WithImages(images, store), WithUniqueFilenames(true))

		_, err := svc.Tell(context.Background(), TellRequest{WithImage: true})
		require.NoError(t, err)
		_, err = svc.Tell(context.Background(), TellRequest{WithImage: true})
		require.NoError(t, err)

		require.Len(t, store.filenames, 2)
		assert.NotEqual(t, store.filenames[0], store.filenames[1])
		assert.True(t, strings.HasSuffix(store.filenames[0], ".jpg"))
	})

	t.Run("generation failure is absorbed", func(t *testing.T) {
		images := &mockImageGenerator{
			GenerateImageFn: func(context.Context, string) (*domain.ImageArtifact, error) {
				return nil, generation.ErrImageGeneration
			},
		}
		store := &mockImageStore{}
		svc := newService(t, keywordSource(robotJoke, "robot"), &mockFallback{}, echoPersonalizer("rewritten"),
			WithImages(images, store))

		result, err := svc.Tell(context.Background(), TellRequest{WithImage: true})
		require.NoError(t, err)
		assert.False(t, result.ImageSaved)
		assert.Empty(t, result.ImagePath)
		assert.Equal(t, "rewritten", result.PersonalizedJoke)
		assert.Empty(t, store.filenames)
	})

	t.Run("save failure is absorbed", func(t *testing.T) {
		images := &mockImageGenerator{
			GenerateImageFn: func(context.Context, string) (*domain.ImageArtifact, error) {
				return artifact, nil
			},
		}
		store := &mockImageStore{
			SaveFn: func(*domain.ImageArtifact, string) (string, error) {
				return "", imagestore.ErrSave
			},
		}
		svc := newService(t, keywordSource(robotJoke, "robot"), &mockFallback{}, echoPersonalizer("rewritten"),
			WithImages(images, store))

		result, err := svc.Tell(context.Background(), TellRequest{WithImage: true})
		require.NoError(t, err)
		assert.False(t, result.ImageSaved)
	})

	t.Run("images not configured", func(t *testing.T) {
		svc := newService(t, keywordSource(robotJoke, "robot"), &mockFallback{}, echoPersonalizer("rewritten"))

		assert.False(t, svc.ImagesEnabled())
		result, err := svc.Tell(context.Background(), TellRequest{WithImage: true})
		require.NoError(t, err)
		assert.False(t, result.ImageSaved)
	})

	t.Run("image not requested", func(t *testing.T) {
		images := &mockImageGenerator{}
		svc := newService(t, keywordSource(robotJoke, "robot"), &mockFallback{}, echoPersonalizer("rewritten"),
			WithImages(images, &mockImageStore{}))

		result, err := svc.Tell(context.Background(), TellRequest{})
		require.NoError(t, err)
		assert.False(t, result.ImageSaved)
		assert.Zero(t, images.calls)
	})
}

func TestCleanupImage(t *testing.T) {
	var removed string
	store := &mockImageStore{
		CleanupFn: func(filename string) error {
			removed = filename
			return nil
		},
	}
	svc := newService(t, keywordSource(robotJoke, "robot"), &mockFallback{}, echoPersonalizer("x"),
		WithImages(&mockImageGenerator{}, store))

	require.NoError(t, svc.CleanupImage("joke.jpg"))
	assert.Equal(t, "joke.jpg", removed)

	store.CleanupFn = func(string) error { return imagestore.ErrCleanup }
	err := svc.CleanupImage("")
	assert.ErrorIs(t, err, imagestore.ErrCleanup)

	bare := newService(t, keywordSource(robotJoke, "robot"), &mockFallback{}, echoPersonalizer("x"))
	assert.Error(t, bare.CleanupImage(""))
}
