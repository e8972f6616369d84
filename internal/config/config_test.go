package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := &Config{
		DefaultSession:   "work",
		Theme:            "light",
		DeliveredDelayMs: 250,
		ReadDelayMs:      600,
	}
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("Load on missing file = nil error, want error")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed file = nil error, want error")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Theme != "dark" {
		t.Errorf("default theme = %q, want dark", cfg.Theme)
	}
	if cfg.DeliveredDelayMs <= 0 || cfg.ReadDelayMs <= cfg.DeliveredDelayMs {
		t.Errorf("default delays %d/%d: read delay must follow delivered delay",
			cfg.DeliveredDelayMs, cfg.ReadDelayMs)
	}
}
