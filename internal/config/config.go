package config

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/fractalcode/internal/domain"
)

// Config represents the application configuration
type Config struct {
	ProjectRoot           string         `mapstructure:"project_root" yaml:"project_root"`
	OutputDirectory       string         `mapstructure:"output_directory" yaml:"output_directory"`
	IgnoredPatterns       []string       `mapstructure:"ignored_patterns" yaml:"ignored_patterns"`
	IgnoredFileExtensions []string       `mapstructure:"ignored_file_extensions" yaml:"ignored_file_extensions"`
	Snapshot              SnapshotConfig `mapstructure:"snapshot" yaml:"snapshot"`
	Logging               LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// SnapshotConfig contains snapshot rendering settings
type SnapshotConfig struct {
	Width int `mapstructure:"width" yaml:"width"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate checks required fields and applies defaults for unset or
// invalid values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ProjectRoot) == "" {
		return domain.ErrMissingProjectRoot
	}
	if c.OutputDirectory == "" {
		c.OutputDirectory = DefaultOutputDir
	}
	if c.IgnoredPatterns == nil {
		c.IgnoredPatterns = []string{}
	}
	if c.IgnoredFileExtensions == nil {
		c.IgnoredFileExtensions = []string{}
	}
	if c.Snapshot.Width < MinWidth {
		c.Snapshot.Width = DefaultWidth
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (use pretty or json)", c.Logging.Format)
	}
	return nil
}

// RuleSet returns the exclusion rules described by the configuration
func (c *Config) RuleSet() domain.RuleSet {
	return domain.RuleSet{
		IgnoredPatterns:   append([]string(nil), c.IgnoredPatterns...),
		IgnoredExtensions: append([]string(nil), c.IgnoredFileExtensions...),
	}
}
