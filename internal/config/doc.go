// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, .env and YAML files). It
// provides type-safe access to the joke service, Gemini and image settings
// needed by the binaries while keeping configuration details separate from
// business logic.
package config
