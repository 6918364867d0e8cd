// Package config handles the unitconv.yaml operator configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"unitconv"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "unitconv.yaml"

// Config represents the unitconv.yaml file.
type Config struct {
	Version  int                `yaml:"version"`
	LogLevel string             `yaml:"log_level,omitempty"`
	Listen   string             `yaml:"listen,omitempty"`
	Catalog  string             `yaml:"catalog,omitempty"`
	Rates    unitconv.RateTable `yaml:"rates,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Listen:  "127.0.0.1:7311",
		Catalog: "units.db",
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if err := c.Rates.Validate(); err != nil {
		return fmt.Errorf("rates: %w", err)
	}
	return nil
}
