// Package config loads slidedeck settings from slidedeck.yaml, an optional
// .env beside it, and SLIDEDECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"slidedeck/internal/logging"
	"slidedeck/pkg/theme"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "slidedeck.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved application configuration.
type Config struct {
	// Themes is an optional YAML theme catalog merged over the built-ins.
	Themes string `yaml:"themes"`

	LogLevel string `yaml:"log_level"`

	// LogFile receives presenter logs; empty disables them.
	LogFile string `yaml:"log_file"`

	// WordWrap caps the source view width; 0 means the terminal width.
	WordWrap int `yaml:"word_wrap"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads path (DefaultPath when empty). A missing file yields Default
// with environment overrides applied.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("error reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
		if cfg.Themes != "" && !filepath.IsAbs(cfg.Themes) {
			cfg.Themes = filepath.Join(filepath.Dir(path), cfg.Themes)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("SLIDEDECK_THEMES"); ok {
		c.Themes = v
	}
	if v, ok := os.LookupEnv("SLIDEDECK_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("SLIDEDECK_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv("SLIDEDECK_WORD_WRAP"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SLIDEDECK_WORD_WRAP %q is not a number", ErrInvalid, v)
		}
		c.WordWrap = n
	}
	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.WordWrap < 0 {
		return fmt.Errorf("%w: word_wrap must not be negative", ErrInvalid)
	}
	return nil
}

// Catalog returns the theme catalog the configuration selects.
func (c *Config) Catalog() (*theme.Catalog, error) {
	if c.Themes == "" {
		return theme.Builtin(), nil
	}
	return theme.LoadCatalogFile(c.Themes)
}
