// Package config holds the runtime configuration, optionally read from a
// YAML file and overridden by command-line flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the flat runtime configuration
type Config struct {
	// Content is the path to the scenarios JSON file
	Content string `yaml:"content"`
	// Assets is the directory asset paths resolve against
	Assets string `yaml:"assets"`
	// EndBackground is an optional image shown on the end screen
	EndBackground string `yaml:"end_background"`
	// Mute silences audio playback without disabling the player
	Mute bool `yaml:"mute"`
	// Debug routes diagnostics to a log file instead of discarding them
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Content: "assets/scenarios.json",
		Assets:  ".",
	}
}

// Load reads a YAML config file over the defaults. Unknown keys are
// rejected so typos surface at startup instead of silently defaulting.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}
