package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/quantmind-br/fractalcode/internal/domain"
)

// Load loads configuration from path, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load(path string) (*Config, error) {
	return load(viper.GetViper(), path)
}

// LoadWithViper loads configuration into a fresh viper instance and returns it.
// This is useful for merging CLI flags later.
func LoadWithViper(path string) (*Config, *viper.Viper, error) {
	v := viper.New()
	cfg, err := load(v, path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewConfigError(path, domain.ErrConfigNotFound)
		}
		return nil, domain.NewConfigError(path, err)
	}

	setDefaults(v)

	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, domain.NewConfigError(path, fmt.Errorf("%w: %v", domain.ErrConfigMalformed, err))
	}

	// Environment variables (FRACTALCODE_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, domain.NewConfigError(path, fmt.Errorf("%w: %v", domain.ErrConfigMalformed, err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, domain.NewConfigError(path, err)
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("project_root", "")
	v.SetDefault("output_directory", DefaultOutputDir)
	v.SetDefault("ignored_patterns", []string{})
	v.SetDefault("ignored_file_extensions", []string{})

	v.SetDefault("snapshot.width", DefaultWidth)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
