// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDayStartHour = 6
	DefaultDayEndHour   = 22
)

// Config holds the full configuration for dayline.
type Config struct {
	// Timeline schedule: hourly slots from DayStartHour (inclusive) to
	// DayEndHour (exclusive), rendered as "6:00", "7:00", ...
	DayStartHour int `toml:"day_start_hour"`
	DayEndHour   int `toml:"day_end_hour"`

	// SeedDemo pre-fills the session with the fixed demo task set.
	SeedDemo bool `toml:"seed_demo"`

	// LogFile enables debug logging to the given path. Empty disables
	// logging entirely; the TUI owns stdout.
	LogFile string `toml:"log_file"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		DayStartHour: DefaultDayStartHour,
		DayEndHour:   DefaultDayEndHour,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".dayline", "dayline.toml"), nil
}

// Load reads the config file at path, falling back to the default
// location when path is empty. A missing file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DayStartHour < 0 || c.DayStartHour > 23 {
		return fmt.Errorf("day_start_hour (%d) must be between 0 and 23", c.DayStartHour)
	}
	if c.DayEndHour < 1 || c.DayEndHour > 24 {
		return fmt.Errorf("day_end_hour (%d) must be between 1 and 24", c.DayEndHour)
	}
	if c.DayEndHour <= c.DayStartHour {
		return fmt.Errorf("day_end_hour (%d) must be after day_start_hour (%d)", c.DayEndHour, c.DayStartHour)
	}
	return nil
}

// Slots returns the canonical timeline slot labels for the configured
// schedule, one per hour.
func (c *Config) Slots() []string {
	slots := make([]string, 0, c.DayEndHour-c.DayStartHour)
	for h := c.DayStartHour; h < c.DayEndHour; h++ {
		slots = append(slots, fmt.Sprintf("%d:00", h))
	}
	return slots
}
