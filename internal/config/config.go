// Package config loads wordpath settings from the environment, optionally
// seeded from a .env file. Every variable is prefixed with WORDPATH_.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "WORDPATH"

// Config validation errors
var (
	ErrInvalidLogLevel      = errors.New("config: log_level must be debug, info, warn, or error")
	ErrInvalidLogFormat     = errors.New("config: log_format must be 'text' or 'json'")
	ErrInvalidOutputFormat  = errors.New("config: output_format must be text, json, or yaml")
	ErrInvalidListenAddr    = errors.New("config: listen_addr cannot be empty")
	ErrInvalidMaxDictionary = errors.New("config: max_dictionary_words must be positive")
	ErrInvalidSearchTimeout = errors.New("config: search_timeout must be positive")
)

// Config holds all runtime settings.
type Config struct {
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat          string        `envconfig:"LOG_FORMAT" default:"text"`
	OutputFormat       string        `envconfig:"OUTPUT_FORMAT" default:"text"`
	ListenAddr         string        `envconfig:"LISTEN_ADDR" default:":8080"`
	Dictionary         string        `envconfig:"DICTIONARY"`
	WatchDictionary    bool          `envconfig:"WATCH_DICTIONARY" default:"true"`
	MaxDictionaryWords int           `envconfig:"MAX_DICTIONARY_WORDS" default:"100000"`
	SearchTimeout      time.Duration `envconfig:"SEARCH_TIMEOUT" default:"5s"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		LogLevel:           "info",
		LogFormat:          "text",
		OutputFormat:       "text",
		ListenAddr:         ":8080",
		WatchDictionary:    true,
		MaxDictionaryWords: 100000,
		SearchTimeout:      5 * time.Second,
	}
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables already set, then decodes WORDPATH_* variables.
// An empty envFile skips the .env step.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func Validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return ErrInvalidLogFormat
	}
	switch cfg.OutputFormat {
	case "text", "json", "yaml":
	default:
		return ErrInvalidOutputFormat
	}
	if cfg.ListenAddr == "" {
		return ErrInvalidListenAddr
	}
	if cfg.MaxDictionaryWords <= 0 {
		return ErrInvalidMaxDictionary
	}
	if cfg.SearchTimeout <= 0 {
		return ErrInvalidSearchTimeout
	}

	return nil
}
