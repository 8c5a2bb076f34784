// Package config loads the optional run profile for make-blank-docs.
//
// A profile fixes how a roster is interpreted: which sentinel policy applies,
// which header names hold the identifier and the categories, and where logs
// and metrics go. Everything has a default, so running without a file works.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "github.com/eddiechapman/make-blank-docs/internal/foundation/errors"
)

// DefaultFile is picked up from the working directory when no --config is given.
const DefaultFile = "blankdocs.yaml"

// CurrentVersion is the only supported profile version.
const CurrentVersion = "1"

// Config is the run profile.
type Config struct {
	Version string     `yaml:"version"`
	Policy  PolicyName `yaml:"policy"`
	// IDColumn overrides the policy's identifier header.
	IDColumn string `yaml:"id_column,omitempty"`
	// IDPadWidth overrides the policy's zero-pad width; 0 keeps the policy default.
	IDPadWidth int `yaml:"id_pad_width,omitempty"`
	// Marker overrides the value compared against each category cell: the
	// trigger value under strict, the skip value under legacy.
	Marker     string           `yaml:"marker,omitempty"`
	Categories []CategoryConfig `yaml:"categories,omitempty"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// CategoryConfig maps a document category to the roster column holding its flag.
type CategoryConfig struct {
	Name   string `yaml:"name"`   // used in the file name
	Column string `yaml:"column"` // CSV header
}

// LoggingConfig configures the run log.
type LoggingConfig struct {
	File   string    `yaml:"file"`
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig configures the Prometheus textfile written after each run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns the built-in profile.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a profile from path. An empty path falls back to DefaultFile in
// the working directory, and to the built-in profile when that file is absent.
// A path given explicitly must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, ferrors.NotFoundError("configuration file not found").
				WithContext("path", path).
				Build()
		}
		return Default(), nil
	}

	// #nosec G304 -- config path comes from the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return Parse(data)
}

// Parse decodes, normalizes, defaults and validates a profile. Environment
// variables in the document are expanded before decoding.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse config file").Fatal().Build()
	}

	if cfg.Version != "" && cfg.Version != CurrentVersion {
		return nil, ferrors.ConfigError(fmt.Sprintf("unsupported configuration version: %s (expected %s)", cfg.Version, CurrentVersion)).Build()
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal renders the profile as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Init writes the built-in profile to path.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	data, err := Marshal(Default())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to render configuration").Fatal().Build()
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}
