// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultFormat        = "plain"
	DefaultChimeFreqHz   = 660
	DefaultChimeDuration = 120
)

// Config represents the volctl configuration.
type Config struct {
	Output  OutputConfig      `toml:"output"`
	Aliases map[string]string `toml:"aliases"`
	Chime   ChimeConfig       `toml:"chime"`
}

// OutputConfig holds default output options for the list command.
type OutputConfig struct {
	Format   string `toml:"format"`   // plain, json, yaml, dmenu
	Template string `toml:"template"` // Custom Go template (plain/dmenu)
}

// ChimeConfig controls the audible confirmation played after a volume
// change.
type ChimeConfig struct {
	Enabled     bool `toml:"enabled"`
	FrequencyHz int  `toml:"frequency_hz"`
	DurationMS  int  `toml:"duration_ms"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:   DefaultFormat,
			Template: "",
		},
		Aliases: make(map[string]string),
		Chime: ChimeConfig{
			Enabled:     false,
			FrequencyHz: DefaultChimeFreqHz,
			DurationMS:  DefaultChimeDuration,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "volctl", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Aliases == nil {
		cfg.Aliases = make(map[string]string)
	}
	if cfg.Chime.FrequencyHz <= 0 {
		cfg.Chime.FrequencyHz = DefaultChimeFreqHz
	}
	if cfg.Chime.DurationMS <= 0 {
		cfg.Chime.DurationMS = DefaultChimeDuration
	}

	return cfg, nil
}

// ResolveAlias maps a user-supplied name through the alias table.
// Unknown names pass through unchanged.
func (c *Config) ResolveAlias(name string) string {
	if target, ok := c.Aliases[name]; ok && target != "" {
		return target
	}
	return name
}
