package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Default(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, Validate(&cfg))
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"log level", func(c *Config) { c.LogLevel = "trace" }, ErrInvalidLogLevel},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, ErrInvalidLogFormat},
		{"output format", func(c *Config) { c.OutputFormat = "csv" }, ErrInvalidOutputFormat},
		{"listen addr", func(c *Config) { c.ListenAddr = "" }, ErrInvalidListenAddr},
		{"max words", func(c *Config) { c.MaxDictionaryWords = 0 }, ErrInvalidMaxDictionary},
		{"timeout", func(c *Config) { c.SearchTimeout = -time.Second }, ErrInvalidSearchTimeout},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, Validate(&cfg), tc.want)
		})
	}
}

// TestLoad_Defaults matches DefaultConfig when nothing is set.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestLoad_EnvOverrides reads WORDPATH_* variables.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WORDPATH_LOG_LEVEL", "debug")
	t.Setenv("WORDPATH_MAX_DICTIONARY_WORDS", "42")
	t.Setenv("WORDPATH_SEARCH_TIMEOUT", "250ms")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 42, cfg.MaxDictionaryWords)
	assert.Equal(t, 250*time.Millisecond, cfg.SearchTimeout)
}

// TestLoad_DotEnv seeds the environment from a file without overriding.
func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORDPATH_OUTPUT_FORMAT=yaml\nWORDPATH_LOG_FORMAT=xml\n"), 0o600))
	t.Setenv("WORDPATH_LOG_FORMAT", "json")
	// godotenv sets the variable for the process; make sure t.Setenv restores it
	t.Setenv("WORDPATH_OUTPUT_FORMAT", "")
	require.NoError(t, os.Unsetenv("WORDPATH_OUTPUT_FORMAT"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, "json", cfg.LogFormat)
}

// TestLoad_Invalid surfaces validation errors.
func TestLoad_Invalid(t *testing.T) {
	t.Setenv("WORDPATH_LOG_LEVEL", "loud")
	_, err := Load("")
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}
