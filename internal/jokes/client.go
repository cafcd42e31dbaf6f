package jokes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rosymaple/dadjoke/internal/config"
	"github.com/rosymaple/dadjoke/internal/domain"
)

// maxResponseBytes caps how much of a response body is decoded.
const maxResponseBytes = 1 << 20

// jokeResponse is a single joke as returned by the lookup service.
type jokeResponse struct {
	ID     string `json:"id"`
	Joke   string `json:"joke"`
	Status int    `json:"status"`
}

// searchResponse is the body of the search endpoint.
type searchResponse struct {
	CurrentPage  int            `json:"current_page"`
	Limit        int            `json:"limit"`
	Results      []jokeResponse `json:"results"`
	SearchTerm   string         `json:"search_term"`
	TotalJokes   int            `json:"total_jokes"`
	TotalPages   int            `json:"total_pages"`
	NextPage     int            `json:"next_page"`
	PreviousPage int            `json:"previous_page"`
}

// Client fetches jokes from the icanhazdadjoke.com API.
type Client struct {
	baseURL     string
	userAgent   string
	searchLimit int
	httpClient  *http.Client
	logger      *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a Client from the joke service configuration.
func NewClient(cfg config.JokeConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid joke service base url %q: %w", cfg.BaseURL, err)
	}

	searchLimit := cfg.SearchLimit
	if searchLimit < 1 {
		searchLimit = config.DefaultSearchLimit
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = config.DefaultTimeoutSeconds * time.Second
	}

	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		searchLimit: searchLimit,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Lookup returns a joke for the keyword.
//
// A non-blank keyword is searched first and the first hit is tagged
// domain.SourceKeyword. A blank keyword, or a search without matches, falls
// through to a random joke tagged domain.SourceRandom. Any failure is returned
// wrapped in ErrLookupFailed; applying a fallback is left to the caller.
func (c *Client) Lookup(ctx context.Context, keyword string) (domain.JokeResult, error) {
	term := strings.TrimSpace(keyword)

	if term != "" {
		jokes, err := c.Search(ctx, term)
		if err != nil {
			return domain.JokeResult{}, err
		}

		if len(jokes) > 0 {
			result, err := domain.NewJokeResult(jokes[0], domain.SourceKeyword, term)
			if err != nil {
				return domain.JokeResult{}, fmt.Errorf("%w: %w", ErrLookupFailed, ErrEmptyJoke)
			}
			c.logger.DebugContext(ctx, "found joke for keyword",
				"keyword", term,
				"match_count", len(jokes))
			return result, nil
		}

		c.logger.InfoContext(ctx, "no jokes matched keyword, using a random joke",
			"keyword", term)
	}

	text, err := c.Random(ctx)
	if err != nil {
		return domain.JokeResult{}, err
	}

	result, err := domain.NewJokeResult(text, domain.SourceRandom, "")
	if err != nil {
		return domain.JokeResult{}, fmt.Errorf("%w: %w", ErrLookupFailed, ErrEmptyJoke)
	}

	return result, nil
}

// Search returns the joke texts matching term, in service order.
// An empty slice means the search succeeded without matches.
func (c *Client) Search(ctx context.Context, term string) ([]string, error) {
	query := url.Values{}
	query.Set("term", strings.TrimSpace(term))
	query.Set("limit", strconv.Itoa(c.searchLimit))

	var body searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/search?"+query.Encode(), &body); err != nil {
		return nil, fmt.Errorf("%w: search %q: %v", ErrLookupFailed, term, err)
	}

	jokes := make([]string, 0, len(body.Results))
	for _, result := range body.Results {
		jokes = append(jokes, result.Joke)
	}

	return jokes, nil
}

// Random returns a single random joke.
func (c *Client) Random(ctx context.Context) (string, error) {
	var body jokeResponse
	if err := c.getJSON(ctx, c.baseURL+"/", &body); err != nil {
		return "", fmt.Errorf("%w: random joke: %v", ErrLookupFailed, err)
	}

	if strings.TrimSpace(body.Joke) == "" {
		return "", fmt.Errorf("%w: %w", ErrLookupFailed, ErrEmptyJoke)
	}

	return body.Joke, nil
}

// getJSON performs a GET request with the headers the service requires and
// decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, target string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.DebugContext(ctx, "failed to close response body", "error", closeErr)
		}
	}()

	c.logger.DebugContext(ctx, "joke service responded",
		"path", req.URL.Path,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
