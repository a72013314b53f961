// Package config provides the YAML-backed application configuration with
// first-run default creation and atomic saves.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CaptureConfig controls the PNG export rendering.
type CaptureConfig struct {
	// Width and Height are the export viewport in pixels. The export is
	// deliberately larger than the on-screen grid so it stays legible
	// when printed.
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
	// TimeoutSec bounds one capture run.
	TimeoutSec int `yaml:"timeout_sec" json:"timeout_sec"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the Web UI and API.
	Listen string `yaml:"listen" json:"listen"`

	// DataDir is scanned at startup for busy_week.xlsx / quiet_week.xlsx.
	DataDir string `yaml:"data_dir" json:"data_dir"`

	// SlotMinutes is the grid granularity.
	SlotMinutes int `yaml:"slot_minutes" json:"slot_minutes"`

	// WindowStart and WindowEnd bound the daily window shown in the grid,
	// as "HH:MM" strings. The window is half-open: WindowEnd is excluded.
	WindowStart string `yaml:"window_start" json:"window_start"`
	WindowEnd   string `yaml:"window_end" json:"window_end"`

	// ShowText toggles event titles inside grid cells.
	ShowText bool `yaml:"show_text" json:"show_text"`

	Capture CaptureConfig `yaml:"capture" json:"capture"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:      "127.0.0.1:8080",
		DataDir:     "./data",
		SlotMinutes: 30,
		WindowStart: "06:00",
		WindowEnd:   "23:00",
		ShowText:    true,
		Capture: CaptureConfig{
			Width:      1600,
			Height:     1200,
			TimeoutSec: 30,
		},
	}
}

// Normalize fills in missing/zero values with defaults so that partially
// filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	if c.DataDir == "" {
		c.DataDir = "./data"
	}
	if c.SlotMinutes <= 0 {
		c.SlotMinutes = 30
	}
	if c.WindowStart == "" {
		c.WindowStart = "06:00"
	}
	if c.WindowEnd == "" {
		c.WindowEnd = "23:00"
	}
	if c.Capture.Width <= 0 {
		c.Capture.Width = 1600
	}
	if c.Capture.Height <= 0 {
		c.Capture.Height = 1200
	}
	if c.Capture.TimeoutSec <= 0 {
		c.Capture.TimeoutSec = 30
	}
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there (parent
// directory created as needed) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Return cfg with the error so the caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600 perms.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".archecal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
