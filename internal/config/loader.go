package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultPart     = PartBoth
	DefaultFormat   = FormatText
	DefaultLogLevel = "warn"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Part:     DefaultPart,
		Format:   DefaultFormat,
		Parallel: false,
		Workers:  0,
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads and parses the YAML file at path.
// An empty path or a missing file yields the default config.
// Applies defaults for any missing fields.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all config values are valid.
func Validate(cfg *Config) error {
	switch cfg.Part {
	case PartFarthest, PartEnclosed, PartBoth:
	default:
		return ValidationError{Field: "part", Message: "must be one of farthest, enclosed, both"}
	}
	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return ValidationError{Field: "format", Message: "must be one of text, json, yaml"}
	}
	if cfg.Workers < 0 {
		return ValidationError{Field: "workers", Message: "must not be negative"}
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: err.Error()}
	}
	return nil
}

// ParseLevel converts a log level name to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	return zapcore.ParseLevel(name)
}
