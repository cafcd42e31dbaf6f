package jokes

import (
	_ "embed"
	"math/rand/v2"
	"slices"
	"strings"
)

//go:embed fallback_jokes.txt
var fallbackJokes string

// FallbackPool holds a fixed set of jokes served when the lookup service is unreachable.
type FallbackPool struct {
	jokes []string
}

// DefaultFallbackPool returns the pool built from the embedded joke list.
func DefaultFallbackPool() *FallbackPool {
	return NewFallbackPool(strings.Split(fallbackJokes, "\n")...)
}

// NewFallbackPool creates a pool from the given jokes, skipping blank entries.
func NewFallbackPool(jokes ...string) *FallbackPool {
	pool := &FallbackPool{jokes: make([]string, 0, len(jokes))}
	for _, joke := range jokes {
		if joke = strings.TrimSpace(joke); joke != "" {
			pool.jokes = append(pool.jokes, joke)
		}
	}
	return pool
}

// Pick returns a uniformly random joke, or "" if the pool is empty.
func (p *FallbackPool) Pick() string {
	if p == nil || len(p.jokes) == 0 {
		return ""
	}
	return p.jokes[rand.IntN(len(p.jokes))]
}

// Jokes returns a copy of the pool contents.
func (p *FallbackPool) Jokes() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.jokes)
}

// Contains reports whether joke is one of the pool entries.
func (p *FallbackPool) Contains(joke string) bool {
	return p != nil && slices.Contains(p.jokes, joke)
}
