package domain

import (
	"fmt"
	"strings"
)

// SourceTag records where a joke came from.
type SourceTag string

// Possible joke provenance values
const (
	SourceKeyword  SourceTag = "keyword"
	SourceRandom   SourceTag = "random"
	SourceFallback SourceTag = "fallback"
)

// IsValid reports whether the tag is one of the known provenance values.
func (s SourceTag) IsValid() bool {
	switch s {
	case SourceKeyword, SourceRandom, SourceFallback:
		return true
	default:
		return false
	}
}

// JokeResult is a joke obtained from the lookup service or the fallback pool.
// It is treated as immutable once produced.
type JokeResult struct {
	Text   string    `json:"text"`
	Source SourceTag `json:"source"`
	// Keyword is the trimmed search term that matched; only set for SourceKeyword.
	Keyword string `json:"keyword,omitempty"`
}

// NewJokeResult creates a JokeResult and validates it.
func NewJokeResult(text string, source SourceTag, keyword string) (JokeResult, error) {
	result := JokeResult{
		Text:   text,
		Source: source,
	}
	if source == SourceKeyword {
		result.Keyword = strings.TrimSpace(keyword)
	}

	if err := result.Validate(); err != nil {
		return JokeResult{}, err
	}

	return result, nil
}

// Validate checks that the joke carries text and a known provenance tag.
func (j JokeResult) Validate() error {
	if strings.TrimSpace(j.Text) == "" {
		return fmt.Errorf("%w: joke text", ErrEmptyContent)
	}

	if !j.Source.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSourceTag, j.Source)
	}

	if j.Source == SourceKeyword && j.Keyword == "" {
		return fmt.Errorf("%w: keyword joke without keyword", ErrValidation)
	}

	return nil
}

// Label returns the provenance shown to callers: the matched keyword for
// keyword hits, otherwise the tag itself.
func (j JokeResult) Label() string {
	if j.Source == SourceKeyword && j.Keyword != "" {
		return j.Keyword
	}
	return string(j.Source)
}
