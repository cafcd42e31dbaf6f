package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Joke   JokeConfig   `mapstructure:"joke"   validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Image  ImageConfig  `mapstructure:"image"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// JokeConfig contains the settings for the dad joke lookup service.
type JokeConfig struct {
	BaseURL   string `mapstructure:"base_url"   validate:"required,url"`
	UserAgent string `mapstructure:"user_agent" validate:"required"`
	// SearchLimit is the page size requested from the search endpoint; only
	// the first result is used.
	SearchLimit    int `mapstructure:"search_limit"    validate:"gte=1,lte=30"`
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=1"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	TextModel    string `mapstructure:"text_model"     validate:"required"`
	ImageModel   string `mapstructure:"image_model"    validate:"required"`
}

// ImageConfig controls the optional illustration of personalized jokes.
type ImageConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	OutputDir string `mapstructure:"output_dir" validate:"required"`
	Filename  string `mapstructure:"filename"   validate:"required"`
	// UniqueFilenames writes every image under a fresh name instead of
	// overwriting Filename. Concurrent requests race on Filename otherwise.
	UniqueFilenames bool `mapstructure:"unique_filenames"`
}
