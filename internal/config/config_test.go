package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.TransitionDelayMs != 400 {
		t.Errorf("expected default delay 400ms, got %d", cfg.TransitionDelayMs)
	}
	if !cfg.SoundEnabled {
		t.Error("expected sound enabled by default")
	}
	if !cfg.StorageEnabled {
		t.Error("expected storage enabled by default")
	}
	if cfg.CatalogPath != "" {
		t.Errorf("expected empty catalog path by default, got %q", cfg.CatalogPath)
	}
}

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("expected defaults for missing file, got error: %v", err)
	}
	if cfg.TransitionDelayMs != 400 {
		t.Errorf("expected default config, got delay %d", cfg.TransitionDelayMs)
	}
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}

	var invalidErr *InvalidConfigError
	if !errors.As(err, &invalidErr) {
		t.Errorf("expected InvalidConfigError, got %T", err)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := NewConfig()
	cfg.CatalogPath = "/tmp/vehicles.json"
	cfg.TransitionDelayMs = 250
	cfg.SoundEnabled = false

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.CatalogPath != "/tmp/vehicles.json" {
		t.Errorf("expected catalog path roundtrip, got %q", loaded.CatalogPath)
	}
	if loaded.TransitionDelayMs != 250 {
		t.Errorf("expected delay 250, got %d", loaded.TransitionDelayMs)
	}
	if loaded.SoundEnabled {
		t.Error("expected sound disabled after roundtrip")
	}
}

func TestTransitionDelay(t *testing.T) {
	cfg := &Config{TransitionDelayMs: 250}
	if got := cfg.TransitionDelay(); got != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", got)
	}

	cfg = &Config{}
	if got := cfg.TransitionDelay(); got != 400*time.Millisecond {
		t.Errorf("expected 400ms fallback, got %v", got)
	}
}
