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
	DefaultMaxWidth  = 60
	DefaultAxis      = "vertical"
	DefaultCountMode = "pending"
	DefaultTheme     = "default"
	DefaultVolume    = 0.8
)

// Config represents the alertq configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Sound   SoundConfig   `toml:"sound"`
	Theme   ThemeConfig   `toml:"theme"`
}

// DisplayConfig holds alert card presentation options.
type DisplayConfig struct {
	MaxWidth        int    `toml:"max_width"`        // Card width cap in columns
	Axis            string `toml:"axis"`             // Button layout: vertical, horizontal
	ShowCounter     bool   `toml:"show_counter"`     // Show the backlog badge
	CountMode       string `toml:"count_mode"`       // pending (exclude visible) or all
	StackDuplicates bool   `toml:"stack_duplicates"` // Fold identical alerts into one
}

// SoundConfig holds the presentation sound cue options.
type SoundConfig struct {
	Enabled bool    `toml:"enabled"`
	File    string  `toml:"file"`   // Path to a wav/mp3 cue (empty = silent)
	Volume  float64 `toml:"volume"` // 0.0 to 1.0
}

// ThemeConfig selects the terminal theme.
type ThemeConfig struct {
	Name string `toml:"name"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			MaxWidth:        DefaultMaxWidth,
			Axis:            DefaultAxis,
			ShowCounter:     true,
			CountMode:       DefaultCountMode,
			StackDuplicates: false,
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  DefaultVolume,
		},
		Theme: ThemeConfig{
			Name: DefaultTheme,
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
	return filepath.Join(configHome, "alertq", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if the file doesn't exist.
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

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
