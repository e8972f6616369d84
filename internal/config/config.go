package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global ~/.hugup/config.toml.
type Config struct {
	DefaultSession   string `toml:"default_session"`
	Theme            string `toml:"theme"`
	DeliveredDelayMs int    `toml:"delivered_delay_ms"`
	ReadDelayMs      int    `toml:"read_delay_ms"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:            "dark",
		DeliveredDelayMs: 1000,
		ReadDelayMs:      2000,
	}
}

// Load reads config from the given path. Returns an error if the file is
// missing or malformed; callers fall back to Default.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
