package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize_FillsDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.Normalize()

	if cfg.Listen != "127.0.0.1:8080" {
		t.Fatalf("listen default: %s", cfg.Listen)
	}
	if cfg.SlotMinutes != 30 {
		t.Fatalf("slot_minutes default: %d", cfg.SlotMinutes)
	}
	if cfg.WindowStart != "06:00" || cfg.WindowEnd != "23:00" {
		t.Fatalf("window defaults: %s %s", cfg.WindowStart, cfg.WindowEnd)
	}
	if cfg.Capture.Width != 1600 || cfg.Capture.Height != 1200 {
		t.Fatalf("capture defaults: %+v", cfg.Capture)
	}
}

func TestLoad_MissingFileCreatesDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "conf", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SlotMinutes != 30 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file should have been created: %v", err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	in := DefaultConfig()
	in.Listen = "0.0.0.0:9999"
	in.WindowStart = "07:00"
	in.Capture.Width = 2000

	if err := Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Listen != "0.0.0.0:9999" || out.WindowStart != "07:00" || out.Capture.Width != 2000 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
