package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "DADJOKE"

// Default values applied before config files and environment variables.
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultJokeBaseURL    = "https://icanhazdadjoke.com"
	DefaultUserAgent      = "dadjoke (https://github.com/rosymaple/dadjoke)"
	DefaultSearchLimit    = 5
	DefaultTimeoutSeconds = 10
	DefaultTextModel      = "gemini-2.5-flash"
	DefaultImageModel     = "imagen-4.0-generate-001"
	DefaultImageDir       = "."
	DefaultImageFilename  = "personalized_joke_image.jpg"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithPaths(".")
}

// LoadWithPaths behaves like Load but searches the given directories for a
// config.yaml file.
func LoadWithPaths(paths ...string) (*Config, error) {
	cfg, err := read(paths)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadImageConfig reads the same sources as LoadWithPaths but validates only
// the image group, so it works without a Gemini API key.
func LoadImageConfig(paths ...string) (*ImageConfig, error) {
	cfg, err := read(paths)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(&cfg.Image); err != nil {
		return nil, fmt.Errorf("image config validation failed: %w", err)
	}

	return &cfg.Image, nil
}

// read layers defaults, the optional config.yaml and the environment into an
// unvalidated Config.
func read(paths []string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential is commonly exported without the prefix.
	if err := v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind gemini api key: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadEnvFile loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)

	v.SetDefault("joke.base_url", DefaultJokeBaseURL)
	v.SetDefault("joke.user_agent", DefaultUserAgent)
	v.SetDefault("joke.search_limit", DefaultSearchLimit)
	v.SetDefault("joke.timeout_seconds", DefaultTimeoutSeconds)

	v.SetDefault("llm.text_model", DefaultTextModel)
	v.SetDefault("llm.image_model", DefaultImageModel)

	v.SetDefault("image.enabled", false)
	v.SetDefault("image.output_dir", DefaultImageDir)
	v.SetDefault("image.filename", DefaultImageFilename)
	v.SetDefault("image.unique_filenames", false)
}
