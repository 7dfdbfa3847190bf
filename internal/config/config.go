/*
Package config handles loading and saving showroom-hub configuration.

Configuration is stored in ~/.showroom-hub.json:

	{
	  "catalogPath": "/path/to/vehicles.json",
	  "transitionDelayMs": 400,
	  "soundEnabled": true,
	  "storageEnabled": true
	}

A missing file is not an error: defaults apply. catalogPath is empty by
default, meaning the embedded catalog is used.
*/
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the root configuration structure.
type Config struct {
	// CatalogPath overrides the embedded vehicle catalog when non-empty.
	CatalogPath string `json:"catalogPath,omitempty"`

	// TransitionDelayMs is the persona transition window in milliseconds.
	TransitionDelayMs int `json:"transitionDelayMs,omitempty"`

	// SoundEnabled enables persona sound cues.
	SoundEnabled bool `json:"soundEnabled"`

	// StorageEnabled enables SQLite persistence. When false the session
	// behaves as if storage were empty and writes are dropped.
	StorageEnabled bool `json:"storageEnabled"`
}

// NewConfig creates a configuration with default values.
func NewConfig() *Config {
	return &Config{
		TransitionDelayMs: 400,
		SoundEnabled:      true,
		StorageEnabled:    true,
	}
}

// TransitionDelay returns the transition window as a duration.
func (c *Config) TransitionDelay() time.Duration {
	if c.TransitionDelayMs <= 0 {
		return 400 * time.Millisecond
	}
	return time.Duration(c.TransitionDelayMs) * time.Millisecond
}

// GetDefaultConfigPath returns the path to ~/.showroom-hub.json
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".showroom-hub.json"), nil
}

// Load reads the configuration from the default path, falling back to
// defaults if the file does not exist.
func Load() (*Config, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the configuration from a specific path. A missing file
// yields defaults; a malformed file yields an InvalidConfigError.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		if os.IsPermission(err) {
			return nil, &PermissionError{Path: path, Op: "read"}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: fmt.Sprintf("JSON parse error: %v", err),
			Hint:    "Fix the file or delete it to restore defaults",
		}
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		if os.IsPermission(err) {
			return &PermissionError{Path: path, Op: "write"}
		}
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
