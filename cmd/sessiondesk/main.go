// Package main provides the entry point for the sessiondesk TUI application.
//
// Sessiondesk is a TUI for therapists running live sessions: it tracks the
// session lifecycle against the day's appointments, keeps a timer against the
// scheduled end, autosaves clinical notes, and triggers billing when the
// session ends. This implementation uses The Elm Architecture (TEA) for state
// management.
//
// Usage:
//
//	sessiondesk
//
// Configuration is read from .sessiondesk.json in the working directory or
// the home directory; the backend token comes from the environment variable
// named there.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marisolhealth/sessiondesk/internal/api"
	"github.com/marisolhealth/sessiondesk/internal/app"
	"github.com/marisolhealth/sessiondesk/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so logs go to a file.
	logger, closeLog, err := newLogger(cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	token := os.Getenv(cfg.Backend.TokenEnvVar)
	if token == "" {
		fmt.Fprintf(os.Stderr, "Error: %s is not set\n", cfg.Backend.TokenEnvVar)
		os.Exit(1)
	}

	readTimeout := time.Duration(cfg.Backend.ReadTimeoutS) * time.Second
	client := api.NewClient(cfg.Backend.BaseURL, token, readTimeout, logger)

	model := app.New(cfg, client, logger)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(dir string) (*slog.Logger, func(), error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}
		dir = filepath.Join(home, ".sessiondesk")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, "sessiondesk.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, func() { f.Close() }, nil
}
