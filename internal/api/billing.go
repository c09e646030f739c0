package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// InvoiceRequest is the wire payload for the post-session billing trigger.
type InvoiceRequest struct {
	AppointmentID   string `json:"appointmentId"`
	ClientID        string `json:"clientId"`
	DurationMinutes int    `json:"durationMinutes"`
	SessionType     string `json:"sessionType"`
	AutoSend        bool   `json:"autoSend"`
}

// GenerateInvoice fires the best-effort billing trigger for an ended session.
// A conflict (already billed, or the client's billing preference defers it)
// is informational, not an error; it must never resurface the session.
func (c *Client) GenerateInvoice(ctx context.Context, sessionID string, req InvoiceRequest) (domain.InvoiceResult, error) {
	data, err := c.send(ctx, "invoice", http.MethodPost, pathEscape("sessions", sessionID, "generate-invoice"), req)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			c.logger.Info("invoice already handled", "sessionId", sessionID)
			return domain.InvoiceResult{AlreadyBilled: true}, nil
		}
		return domain.InvoiceResult{}, err
	}

	var result domain.InvoiceResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.InvoiceResult{}, &domain.APIError{Op: "invoice", SessionID: sessionID, Message: "failed to parse response", Err: err}
	}

	c.logger.Info("invoice triggered", "sessionId", sessionID, "consolidated", result.Consolidated)
	return result, nil
}
