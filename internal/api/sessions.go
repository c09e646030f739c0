package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// StartRequest is the wire payload for starting a session.
type StartRequest struct {
	AppointmentID string `json:"appointmentId"`
	ClientPresent bool   `json:"clientPresent"`
	Location      string `json:"location,omitempty"`
	InitialNotes  string `json:"initialNotes,omitempty"`
	MoodStart     int    `json:"clientMoodStart"`
	SessionGoals  string `json:"sessionGoals"`
	Concerns      string `json:"concerns,omitempty"`
}

// ProgressUpdate is the wire payload for an autosave flush.
type ProgressUpdate struct {
	ProgressNotes  string   `json:"progressNotes"`
	GoalsDiscussed string   `json:"goalsDiscussed"`
	MoodCurrent    int      `json:"clientMoodCurrent"`
	TechniquesUsed []string `json:"techniquesUsed"`
}

// EndRequest is the wire payload for ending a session. Homework and
// NextSessionGoals must already carry their defaults; the adapter does not
// re-apply them.
type EndRequest struct {
	Summary          string   `json:"summary"`
	Homework         string   `json:"homework"`
	NextSessionGoals string   `json:"nextSessionGoals"`
	MoodEnd          int      `json:"clientMoodEnd"`
	TechniquesUsed   []string `json:"techniquesUsed"`
	ProgressNotes    string   `json:"progressNotes"`
	GoalsDiscussed   string   `json:"goalsDiscussed"`
}

// StartSession starts a session and returns the backend-assigned session id.
// The backend is not consistent about where the id lives in the response, so
// the id is normalized here; a response with no resolvable id is a start
// failure even when the HTTP call succeeded.
func (c *Client) StartSession(ctx context.Context, req StartRequest) (string, error) {
	data, err := c.send(ctx, "start", http.MethodPost, "/sessions/start", req)
	if err != nil {
		return "", err
	}

	id, ok := extractSessionID(data)
	if !ok {
		c.logger.Error("start response carried no session id", "appointmentId", req.AppointmentID)
		return "", &domain.APIError{Op: "start", Err: domain.ErrNoSessionID}
	}

	c.logger.Info("session started", "sessionId", id, "appointmentId", req.AppointmentID)
	return id, nil
}

// SaveProgress persists the current progress draft for an active session.
func (c *Client) SaveProgress(ctx context.Context, sessionID string, update ProgressUpdate) error {
	_, err := c.send(ctx, "progress", http.MethodPut, pathEscape("sessions", sessionID, "progress"), update)
	if err != nil {
		if apiErr, ok := err.(*domain.APIError); ok {
			apiErr.SessionID = sessionID
		}
		return err
	}
	return nil
}

// EndSession finalizes a session with its mandatory summary.
func (c *Client) EndSession(ctx context.Context, sessionID string, req EndRequest) error {
	_, err := c.send(ctx, "end", http.MethodPost, pathEscape("sessions", sessionID, "end"), req)
	if err != nil {
		if apiErr, ok := err.(*domain.APIError); ok {
			apiErr.SessionID = sessionID
		}
		return err
	}
	c.logger.Info("session ended", "sessionId", sessionID)
	return nil
}

// idFields are the known locations for the session id, in probe order.
var idFields = []string{"sessionId", "session_id", "sessionID", "id"}

// extractSessionID probes the known response shapes for a session id: the
// top-level object itself, then a nested "data" or "session" object.
func extractSessionID(data []byte) (string, bool) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return "", false
	}

	if id, ok := probeIDFields(body); ok {
		return id, true
	}

	for _, nested := range []string{"data", "session"} {
		raw, ok := body[nested]
		if !ok {
			continue
		}
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(raw, &inner); err != nil {
			continue
		}
		if id, ok := probeIDFields(inner); ok {
			return id, true
		}
	}

	return "", false
}

func probeIDFields(body map[string]json.RawMessage) (string, bool) {
	for _, field := range idFields {
		raw, ok := body[field]
		if !ok {
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s, true
		}

		// Some endpoints return numeric ids.
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil && n.String() != "" {
			return n.String(), true
		}
	}
	return "", false
}
