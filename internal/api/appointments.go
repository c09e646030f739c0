package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// ListStartable fetches today's appointments eligible to become sessions.
// On transport failure it falls back to the by-date query; the caller decides
// how to surface a total failure (the feed must never block the rest of the UI).
func (c *Client) ListStartable(ctx context.Context, therapistID string) ([]domain.Appointment, error) {
	query := url.Values{"therapistId": {therapistID}}

	var appointments []domain.Appointment
	err := c.get(ctx, "feed", "/appointments/startable", query, &appointments)
	if err == nil {
		c.logger.Debug("fetched startable appointments", "count", len(appointments))
		return appointments, nil
	}

	c.logger.Warn("startable query failed, falling back to by-date query", "error", err)

	appointments, fallbackErr := c.ListByDate(ctx, therapistID, time.Now(), domain.AppointmentScheduled)
	if fallbackErr != nil {
		return nil, fallbackErr
	}
	return appointments, nil
}

// ListByDate fetches appointments for a therapist on a given date with a
// given status. Used as the feed fallback.
func (c *Client) ListByDate(ctx context.Context, therapistID string, date time.Time, status domain.AppointmentStatus) ([]domain.Appointment, error) {
	query := url.Values{
		"therapistId": {therapistID},
		"date":        {date.Format("2006-01-02")},
		"status":      {string(status)},
	}

	var appointments []domain.Appointment
	if err := c.get(ctx, "feed", "/appointments", query, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// CancelAppointment marks an appointment cancelled with the given note.
// Used for no-show marking; it never touches session state.
func (c *Client) CancelAppointment(ctx context.Context, appointmentID, note string) error {
	body := struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}{
		Status: string(domain.AppointmentCancelled),
		Notes:  note,
	}

	_, err := c.send(ctx, "cancel", http.MethodPut, pathEscape("appointments", appointmentID), body)
	return err
}
