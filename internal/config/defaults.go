package config

// Default values
const (
	// DefaultConfigFile is read from the working directory when no path is given
	DefaultConfigFile = "config.json"

	// Output defaults
	DefaultOutputDir = "output"

	// Snapshot defaults
	DefaultWidth = 150
	MinWidth     = 20

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes environment overrides, e.g. FRACTALCODE_OUTPUT_DIRECTORY
	EnvPrefix = "FRACTALCODE"
)

// Default returns the default configuration. ProjectRoot is left empty
// because it has no sensible default.
func Default() *Config {
	return &Config{
		OutputDirectory:       DefaultOutputDir,
		IgnoredPatterns:       []string{},
		IgnoredFileExtensions: []string{},
		Snapshot: SnapshotConfig{
			Width: DefaultWidth,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
