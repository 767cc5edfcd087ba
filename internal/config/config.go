// Package config provides unified configuration loading for textview.
// It supports loading from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nvandessel/textview/internal/logging"
	"github.com/nvandessel/textview/internal/pathutil"
	"github.com/nvandessel/textview/internal/reprlib"
	"github.com/nvandessel/textview/internal/textview"
	"github.com/nvandessel/textview/internal/tokenize"
	"gopkg.in/yaml.v3"
)

// Config contains all textview configuration settings.
type Config struct {
	// Tokenize contains settings for word extraction.
	Tokenize TokenizeConfig `json:"tokenize" yaml:"tokenize"`

	// Repr contains the budgets for debug representations.
	Repr ReprConfig `json:"repr" yaml:"repr"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// TokenizeConfig configures word extraction.
type TokenizeConfig struct {
	// Mode is the word-character class: "unicode" (default) or "ascii".
	Mode string `json:"mode" yaml:"mode"`
}

// ReprConfig bounds debug representations.
type ReprConfig struct {
	// MaxString is the rune budget of a quoted string, quotes included.
	MaxString int `json:"max_string" yaml:"max_string"`

	// MaxItems is the number of list elements shown before "...".
	MaxItems int `json:"max_items" yaml:"max_items"`
}

// LoggingConfig configures textview's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// MinReprMaxString keeps at least one character on each side of the ellipsis.
const MinReprMaxString = 5

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Tokenize: TokenizeConfig{
			Mode: string(tokenize.DefaultMode),
		},
		Repr: ReprConfig{
			MaxString: reprlib.DefaultMaxString,
			MaxItems:  reprlib.DefaultMaxItems,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.textview/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".textview", "config.yaml"), nil
}

// Load loads configuration from the default location and environment variables.
// Order: defaults -> ~/.textview/config.yaml -> environment variables
func Load() (*Config, error) {
	return LoadWithPath("")
}

// LoadWithPath is like Load but reads path instead of the default file.
// An explicit path must exist and may start with "~/"; the default file is optional.
func LoadWithPath(path string) (*Config, error) {
	config := Default()

	if path != "" {
		expanded, err := pathutil.ExpandHome(path)
		if err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
		path = expanded
	} else if p, err := DefaultPath(); err == nil {
		if _, statErr := os.Stat(p); statErr == nil {
			path = p
		}
	}

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", pathutil.RedactPath(path), err)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
// Keys missing from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Drop the full path; callers add a redacted one.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, err := tokenize.ParseMode(c.Tokenize.Mode); err != nil {
		return err
	}

	if c.Repr.MaxString < MinReprMaxString {
		return fmt.Errorf("repr.max_string must be at least %d, got %d", MinReprMaxString, c.Repr.MaxString)
	}

	if c.Repr.MaxItems < 1 {
		return fmt.Errorf("repr.max_items must be at least 1, got %d", c.Repr.MaxItems)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// ViewOptions converts the configuration to textview.Options.
// Call Validate first; an invalid mode falls back to the default.
func (c *Config) ViewOptions() textview.Options {
	mode, err := tokenize.ParseMode(c.Tokenize.Mode)
	if err != nil {
		mode = tokenize.DefaultMode
	}
	return textview.Options{
		Mode: mode,
		Limits: reprlib.Limits{
			MaxString: c.Repr.MaxString,
			MaxItems:  c.Repr.MaxItems,
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("TEXTVIEW_TOKENIZE_MODE"); v != "" {
		config.Tokenize.Mode = v
	}

	if v := os.Getenv("TEXTVIEW_REPR_MAX_STRING"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Repr.MaxString = n
		}
	}

	if v := os.Getenv("TEXTVIEW_REPR_MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Repr.MaxItems = n
		}
	}

	if v := os.Getenv("TEXTVIEW_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
