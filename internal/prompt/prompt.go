package prompt

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/rosymaple/dadjoke/internal/domain"
)

// DefaultStyle is used when the caller does not ask for a particular style.
const DefaultStyle = "funny"

// SystemInstruction establishes the persona and output contract for the
// language model.
const SystemInstruction = "You are a PG-13 comedy writer chatbot. You will receive an original dad joke " +
	"and a user personalization instruction. Return a JSON object with two fields: " +
	"\"dad_joke\" containing the original joke and \"gemini_joke\" containing your rewrite. " +
	"Rewrite the joke using your own ideas to match the personalization style requested by the user. " +
	"Do not repeat the original joke unchanged in \"gemini_joke\"."

const imagePromptFormat = "A funny, whimsical, single-panel cartoon illustrating the concept of: '%s'"

// ErrEmptyJoke is returned when there is no joke text to personalize.
var ErrEmptyJoke = errors.New("joke text cannot be empty")

//go:embed templates/*.tmpl
var templateFS embed.FS

var personalizeTemplate = template.Must(
	template.New("personalize.tmpl").ParseFS(templateFS, "templates/personalize.tmpl"),
)

// lineBreaks lists every sequence treated as a line break, longest first.
var lineBreaks = strings.NewReplacer(
	"\r\n", " ",
	"\r", " ",
	"\n", " ",
	"\v", " ",
	"\f", " ",
	"\u0085", " ",
	"\u2028", " ",
	"\u2029", " ",
)

// promptData represents the data passed to the personalization template
type promptData struct {
	Style string
	Joke  string
}

// NormalizeJoke replaces every line break in text with a single space.
func NormalizeJoke(text string) string {
	return lineBreaks.Replace(text)
}

// BuildPersonalization composes the language model request for a joke and a
// user supplied style. Blank styles fall back to DefaultStyle.
func BuildPersonalization(joke domain.JokeResult, style string) (domain.PersonalizationRequest, error) {
	cleanJoke := NormalizeJoke(joke.Text)
	if strings.TrimSpace(cleanJoke) == "" {
		return domain.PersonalizationRequest{}, ErrEmptyJoke
	}

	style = strings.TrimSpace(style)
	if style == "" {
		style = DefaultStyle
	}

	var buf bytes.Buffer
	if err := personalizeTemplate.Execute(&buf, promptData{Style: style, Joke: cleanJoke}); err != nil {
		return domain.PersonalizationRequest{}, fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return domain.PersonalizationRequest{
		OriginalJoke:     cleanJoke,
		StyleInstruction: style,
		Contents:         buf.String(),
	}, nil
}

// ImagePrompt wraps joke text in the illustration template.
func ImagePrompt(text string) string {
	return fmt.Sprintf(imagePromptFormat, NormalizeJoke(strings.TrimSpace(text)))
}
