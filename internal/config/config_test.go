package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "http://localhost:8080/api", cfg.Backend.BaseURL)
	assert.Equal(t, "SESSIONDESK_TOKEN", cfg.Backend.TokenEnvVar)
	assert.Equal(t, 10, cfg.Backend.ReadTimeoutS)
	assert.Equal(t, 50, cfg.Session.DefaultMinutes)
	assert.Equal(t, 1000, cfg.Session.TickIntervalMs)
	assert.Equal(t, 300, cfg.Session.WarningSeconds)
	assert.Equal(t, 30, cfg.Autosave.IntervalSeconds)
	assert.NotEmpty(t, cfg.LogDir)
}

func TestLoadConfig_NoFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Backend.BaseURL, cfg.Backend.BaseURL)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"therapistId": "th-42",
		"backend": {"baseUrl": "https://practice.example.com/api"},
		"autosave": {"intervalSeconds": 15}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sessiondesk.json"), []byte(content), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "th-42", cfg.TherapistID)
	assert.Equal(t, "https://practice.example.com/api", cfg.Backend.BaseURL)
	assert.Equal(t, 15, cfg.Autosave.IntervalSeconds)
	// Unset values fall back to defaults
	assert.Equal(t, 50, cfg.Session.DefaultMinutes)
	assert.Equal(t, 10, cfg.Backend.ReadTimeoutS)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sessiondesk.json"), []byte("{not json"), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".sessiondesk.json")

	cfg := DefaultConfig()
	cfg.TherapistID = "th-7"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "th-7", loaded.TherapistID)
}

func TestMergeWithDefaults_PartialConfig(t *testing.T) {
	cfg := &Config{}
	merged := MergeWithDefaults(cfg)

	assert.Equal(t, DefaultConfig().Session.WarningSeconds, merged.Session.WarningSeconds)
	assert.Equal(t, DefaultConfig().Autosave.IntervalSeconds, merged.Autosave.IntervalSeconds)
}
