// Package config loads sessiondesk configuration from disk.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full sessiondesk configuration
type Config struct {
	TherapistID string         `json:"therapistId"`
	Backend     BackendConfig  `json:"backend"`
	Session     SessionConfig  `json:"session"`
	Autosave    AutosaveConfig `json:"autosave"`
	LogDir      string         `json:"logDir"`
}

// BackendConfig contains practice-backend connection settings
type BackendConfig struct {
	BaseURL      string `json:"baseUrl"`
	TokenEnvVar  string `json:"tokenEnvVar"`
	ReadTimeoutS int    `json:"readTimeoutSeconds"`
}

// SessionConfig contains live-session settings
type SessionConfig struct {
	DefaultMinutes   int `json:"defaultMinutes"`
	TickIntervalMs   int `json:"tickIntervalMs"`
	WarningSeconds   int `json:"warningSeconds"`
	AssignableLimit  int `json:"assignableLimit"`
}

// AutosaveConfig contains progress-autosave settings
type AutosaveConfig struct {
	IntervalSeconds int `json:"intervalSeconds"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Backend: BackendConfig{
			BaseURL:      "http://localhost:8080/api",
			TokenEnvVar:  "SESSIONDESK_TOKEN",
			ReadTimeoutS: 10,
		},
		Session: SessionConfig{
			DefaultMinutes:  50,
			TickIntervalMs:  1000,
			WarningSeconds:  300,
			AssignableLimit: 50,
		},
		Autosave: AutosaveConfig{
			IntervalSeconds: 30,
		},
		LogDir: filepath.Join(homeDir, ".sessiondesk", "logs"),
	}
}

// LoadConfig loads configuration with priority:
// 1. .sessiondesk.json in the given directory
// 2. .sessiondesk.json in the home directory
// 3. Defaults
func LoadConfig(dir string) (*Config, error) {
	paths := []string{filepath.Join(dir, ".sessiondesk.json")}
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".sessiondesk.json"))
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return MergeWithDefaults(&cfg), nil
	}

	return DefaultConfig(), nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = defaults.Backend.BaseURL
	}
	if cfg.Backend.TokenEnvVar == "" {
		cfg.Backend.TokenEnvVar = defaults.Backend.TokenEnvVar
	}
	if cfg.Backend.ReadTimeoutS == 0 {
		cfg.Backend.ReadTimeoutS = defaults.Backend.ReadTimeoutS
	}

	if cfg.Session.DefaultMinutes == 0 {
		cfg.Session.DefaultMinutes = defaults.Session.DefaultMinutes
	}
	if cfg.Session.TickIntervalMs == 0 {
		cfg.Session.TickIntervalMs = defaults.Session.TickIntervalMs
	}
	if cfg.Session.WarningSeconds == 0 {
		cfg.Session.WarningSeconds = defaults.Session.WarningSeconds
	}
	if cfg.Session.AssignableLimit == 0 {
		cfg.Session.AssignableLimit = defaults.Session.AssignableLimit
	}

	if cfg.Autosave.IntervalSeconds == 0 {
		cfg.Autosave.IntervalSeconds = defaults.Autosave.IntervalSeconds
	}

	if cfg.LogDir == "" {
		cfg.LogDir = defaults.LogDir
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
