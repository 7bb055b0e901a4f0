// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kasunala/studyflow/internal/schedule"
)

// Config holds the application configuration.
type Config struct {
	Planner PlannerConfig `toml:"planner"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// PlannerConfig holds the day window used by the slot search.
type PlannerConfig struct {
	DayStart    string `toml:"day_start"`    // e.g., "08:00"
	DayEnd      string `toml:"day_end"`      // e.g., "23:00"
	SlotMinutes int    `toml:"slot_minutes"` // e.g., 15
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	Color bool `toml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Planner: PlannerConfig{
			DayStart:    "08:00",
			DayEnd:      "23:00",
			SlotMinutes: 15,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// Window converts the planner settings into a slot-search window.
func (c *Config) Window() schedule.Window {
	return schedule.Window{
		StartMinutes: schedule.TimeToMinutes(c.Planner.DayStart),
		EndMinutes:   schedule.TimeToMinutes(c.Planner.DayEnd),
		SlotMinutes:  c.Planner.SlotMinutes,
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "studyflow.db"
	}
	return filepath.Join(home, ".local", "share", "studyflow", "studyflow.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "studyflow", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STUDYFLOW_DAY_START"); v != "" {
		cfg.Planner.DayStart = v
	}
	if v := os.Getenv("STUDYFLOW_DAY_END"); v != "" {
		cfg.Planner.DayEnd = v
	}
	if v := os.Getenv("STUDYFLOW_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("STUDYFLOW_NO_COLOR"); v != "" {
		cfg.UI.Color = false
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateTime(c.Planner.DayStart, "day_start"); err != nil {
		return err
	}
	if err := validateTime(c.Planner.DayEnd, "day_end"); err != nil {
		return err
	}
	if c.Planner.DayStart >= c.Planner.DayEnd {
		return errors.New("day_start must be before day_end")
	}
	if c.Planner.SlotMinutes <= 0 || 60%c.Planner.SlotMinutes != 0 {
		return fmt.Errorf("slot_minutes must evenly divide an hour, got %d", c.Planner.SlotMinutes)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if !schedule.ValidTime(t) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
