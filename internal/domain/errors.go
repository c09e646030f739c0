package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrOffline       = errors.New("offline")
	ErrSessionActive = errors.New("a session is already active")
	ErrNoActiveSession = errors.New("no active session")
	ErrStartInFlight = errors.New("session start still in flight")
	ErrNoSessionID   = errors.New("start response carried no session id")
)

// ValidationError is raised before any network call when therapist input is
// missing a required field. State is left unchanged.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// APIError represents an error from the practice backend
type APIError struct {
	Op         string // Operation: "start", "end", "progress", etc.
	SessionID  string // Optional: specific session ID
	StatusCode int    // HTTP status, 0 when the request never completed
	Message    string // Human-readable context
	Err        error  // Underlying error
}

func (e *APIError) Error() string {
	if e.SessionID != "" {
		return fmt.Sprintf("api %s [%s]: %s", e.Op, e.SessionID, e.text())
	}
	return fmt.Sprintf("api %s: %s", e.Op, e.text())
}

func (e *APIError) text() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return "failed"
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AssignError represents a failure in one assignment side-channel flow.
// It never affects the session lifecycle or the other two flows.
type AssignError struct {
	Kind     AssignableKind
	ItemID   string
	ClientID string
	Err      error
}

func (e *AssignError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("assign %s [%s]: %v", e.Kind, e.ItemID, e.Err)
	}
	return fmt.Sprintf("assign %s: %v", e.Kind, e.Err)
}

func (e *AssignError) Unwrap() error {
	return e.Err
}
