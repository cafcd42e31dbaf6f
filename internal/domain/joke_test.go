package domain

import (
	"errors"
	"testing"
)

func TestNewJokeResult(t *testing.T) {
	t.Parallel()

	joke, err := NewJokeResult("Why did the robot go on a diet? It had a byte problem.", SourceKeyword, "  robot ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if joke.Keyword != "robot" {
		t.Errorf("Expected trimmed keyword %q, got %q", "robot", joke.Keyword)
	}

	if joke.Label() != "robot" {
		t.Errorf("Expected label %q, got %q", "robot", joke.Label())
	}

	random, err := NewJokeResult("X", SourceRandom, "ignored")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if random.Keyword != "" {
		t.Errorf("Expected keyword to be dropped for random jokes, got %q", random.Keyword)
	}

	if random.Label() != "random" {
		t.Errorf("Expected label %q, got %q", "random", random.Label())
	}
}

func TestJokeResultValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		joke    JokeResult
		wantErr error
	}{
		{
			name:    "empty text",
			joke:    JokeResult{Text: "  ", Source: SourceRandom},
			wantErr: ErrEmptyContent,
		},
		{
			name:    "unknown tag",
			joke:    JokeResult{Text: "X", Source: SourceTag("search")},
			wantErr: ErrInvalidSourceTag,
		},
		{
			name:    "keyword tag without keyword",
			joke:    JokeResult{Text: "X", Source: SourceKeyword},
			wantErr: ErrValidation,
		},
		{
			name: "fallback",
			joke: JokeResult{Text: "X", Source: SourceFallback},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.joke.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestPersonalizedJokeValidate(t *testing.T) {
	t.Parallel()

	valid := &PersonalizedJoke{OriginalJoke: "a", RewrittenJoke: "b"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	missingRewrite := &PersonalizedJoke{OriginalJoke: "a"}
	if err := missingRewrite.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for missing gemini_joke, got %v", err)
	}

	missingOriginal := &PersonalizedJoke{RewrittenJoke: "b"}
	if err := missingOriginal.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for missing dad_joke, got %v", err)
	}

	var nilJoke *PersonalizedJoke
	if err := nilJoke.Validate(); err == nil {
		t.Error("Expected error for nil personalized joke")
	}
}

func TestImageArtifact(t *testing.T) {
	t.Parallel()

	var nilArtifact *ImageArtifact
	if !nilArtifact.IsEmpty() {
		t.Error("Expected nil artifact to be empty")
	}

	jpeg := &ImageArtifact{Bytes: []byte{0xff, 0xd8}, MIMEType: MIMETypeJPEG}
	if jpeg.IsEmpty() {
		t.Error("Expected artifact with bytes to be non-empty")
	}
	if jpeg.Extension() != ".jpg" {
		t.Errorf("Expected .jpg, got %s", jpeg.Extension())
	}

	png := &ImageArtifact{Bytes: []byte{0x89}, MIMEType: MIMETypePNG}
	if png.Extension() != ".png" {
		t.Errorf("Expected .png, got %s", png.Extension())
	}
}
