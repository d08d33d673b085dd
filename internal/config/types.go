// Package config loads run settings for the pipemaze command from YAML.
package config

// Report parts.
const (
	PartFarthest = "farthest"
	PartEnclosed = "enclosed"
	PartBoth     = "both"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents a pipemaze YAML config file.
type Config struct {
	Part     string `yaml:"part"`
	Format   string `yaml:"format"`
	Parallel bool   `yaml:"parallel"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}
