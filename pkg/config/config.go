// Package config provides configuration structures and loading logic for the
// passgen CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/polisai/passgen/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the CLI configuration.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Output     OutputConfig     `yaml:"output"`
}

// GenerationConfig holds the password request defaults.
type GenerationConfig struct {
	domain.GenerationConfig `yaml:",inline"`
	Count                   int `yaml:"count"`
}

// LoggingConfig holds configuration for logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// OutputConfig controls how results leave the process.
type OutputConfig struct {
	Format      string `yaml:"format"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			GenerationConfig: domain.DefaultGenerationConfig(),
			Count:            1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// Load reads configuration with Read and validates it.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Read reads configuration from a file and applies environment variable
// overrides without validating the result, so callers can layer flags on top
// first. An empty path skips the file. A .env file in the working directory,
// if present, is loaded first without replacing variables already set in the
// environment.
func Read(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()

	if path != "" {
		//nolint:gosec // Config file path is supplied by the operator
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	gen := &cfg.Generation

	ints := []struct {
		key string
		dst *int
	}{
		{"PASSGEN_LENGTH", &gen.Length},
		{"PASSGEN_COUNT", &gen.Count},
	}
	for _, o := range ints {
		if val := os.Getenv(o.key); val != "" {
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", o.key, val, err)
			}
			*o.dst = n
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"PASSGEN_UPPER", &gen.IncludeUpper},
		{"PASSGEN_LOWER", &gen.IncludeLower},
		{"PASSGEN_DIGITS", &gen.IncludeDigits},
		{"PASSGEN_SYMBOLS", &gen.IncludeSymbols},
		{"PASSGEN_AVOID_AMBIGUOUS", &gen.AvoidAmbiguous},
		{"PASSGEN_LOG_PRETTY", &cfg.Logging.Pretty},
	}
	for _, o := range bools {
		if val := os.Getenv(o.key); val != "" {
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", o.key, val, err)
			}
			*o.dst = b
		}
	}

	if val := os.Getenv("PASSGEN_LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("PASSGEN_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := os.Getenv("PASSGEN_METRICS_FILE"); val != "" {
		cfg.Output.MetricsFile = val
	}

	return nil
}

// Validate checks the bounds the CLI enforces on top of the composer's own
// validation. The minimum length and class selection are left to the composer
// so its error kinds reach the user unchanged.
func (c *Config) Validate() error {
	if c.Generation.Length > domain.MaxLength {
		return fmt.Errorf("length must be at most %d, got %d", domain.MaxLength, c.Generation.Length)
	}
	if c.Generation.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Generation.Count)
	}
	return ValidateFormat(c.Output.Format)
}

// ValidateFormat reports whether format is a known output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
}
