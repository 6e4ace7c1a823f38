// Package config provides scenario configuration loading for the demo and
// bench commands.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the demo scenario.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Players  []PlayerConfig `yaml:"players"`
}

// ScenarioConfig holds scenario-wide settings.
type ScenarioConfig struct {
	Name      string  `yaml:"name"`
	Tolerance float64 `yaml:"tolerance"` // unit-length comparison tolerance
}

// PlayerConfig describes one player to construct: a spawn position and a
// desired heading. The heading need not be unit length; it is normalized on
// load and may legitimately fail (e.g. a zero heading).
type PlayerConfig struct {
	Name     string     `yaml:"name"`
	Position [2]float64 `yaml:"position"`
	Heading  [2]float64 `yaml:"heading"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.Scenario.Tolerance <= 0 {
		cfg.Scenario.Tolerance = 1e-6
	}

	return cfg, nil
}
