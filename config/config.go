// Package config loads icongen configuration using Viper.
//
// Precedence, lowest to highest: built-in defaults, a project icongen.yaml
// discovered by walking up from the working directory, ICONGEN_* environment
// variables. Command-line flags override all of these in the cmd layer.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/uzytkownik/patternfly-icongen/errors"
)

// Config is the icongen core configuration
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Output   OutputConfig   `mapstructure:"output"`
	Features FeaturesConfig `mapstructure:"features"`
}

// CatalogConfig configures the input boundary
type CatalogConfig struct {
	// Path to the catalog file (JSON or YAML)
	Path string `mapstructure:"path"`
}

// OutputConfig configures the output boundary
type OutputConfig struct {
	// Path to write generated source to; empty means stdout
	Path string `mapstructure:"path"`
}

// FeaturesConfig configures feature-gate emission
type FeaturesConfig struct {
	// Enabled controls #[cfg(feature = "...")] gates on gated families
	Enabled bool `mapstructure:"enabled"`
}

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the icongen configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "react-icons.json")
	v.SetDefault("output.path", "") // stdout
	v.SetDefault("features.enabled", true)
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("ICONGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configPath := findProjectConfig(); configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		// Config file is optional; defaults and env cover the rest
		_ = v.ReadInConfig()
	}

	viperInstance = v
	return v
}

// findProjectConfig searches for icongen.yaml by walking up the directory
// tree. Returns the first config file found, or empty string if none.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, "icongen.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
