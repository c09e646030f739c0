// Package lifecycle implements the live-session state machine: starting a
// session from an appointment, running it, and ending it with a summary.
package lifecycle

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// Controller owns the canonical session record and governs the phase
// transitions NoSession → Starting → Active → Ending → NoSession. All reads
// and writes of the record go through it; nothing else holds a copy that can
// drift (the progress draft is the one intentional exception, reconciled at
// end).
type Controller struct {
	phase   domain.Phase
	session *domain.Session

	// pending inputs held between BeginStart and ConfirmStart
	pendingAppointment domain.Appointment
	pendingForm        domain.StartForm

	defaultDuration time.Duration
	logger          *slog.Logger
}

// NewController creates a controller in the NoSession phase
func NewController(defaultDuration time.Duration, logger *slog.Logger) *Controller {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultSessionMinutes * time.Minute
	}
	return &Controller{
		phase:           domain.PhaseNoSession,
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// Phase returns the current lifecycle phase
func (c *Controller) Phase() domain.Phase {
	return c.phase
}

// Session returns a copy of the canonical record and whether one exists.
// A record exists from ConfirmStart until ConfirmEnd or Abort.
func (c *Controller) Session() (domain.Session, bool) {
	if c.session == nil {
		return domain.Session{}, false
	}
	return *c.session, true
}

// SessionID returns the backend-assigned id, or "" before start resolves.
func (c *Controller) SessionID() string {
	if c.session == nil {
		return ""
	}
	return c.session.ID
}

// BeginStart validates the start form and moves to Starting. No session
// record exists yet; the network call happens between BeginStart and
// ConfirmStart/FailStart. Validation failures are raised before any network
// call and leave the phase untouched.
func (c *Controller) BeginStart(apt domain.Appointment, form domain.StartForm) error {
	switch c.phase {
	case domain.PhaseStarting:
		return domain.ErrStartInFlight
	case domain.PhaseActive, domain.PhaseEnding:
		return domain.ErrSessionActive
	}

	if strings.TrimSpace(form.Goals) == "" {
		return &domain.ValidationError{Field: "sessionGoals", Message: "set at least one goal before starting"}
	}

	form.MoodStart = clampMood(form.MoodStart)

	c.pendingAppointment = apt
	c.pendingForm = form
	c.phase = domain.PhaseStarting

	c.logger.Info("starting session", "appointmentId", apt.ID, "clientId", apt.ClientID)
	return nil
}

// ConfirmStart records the backend-assigned id and moves to Active. The
// start time is captured exactly once, here; expected end derives from the
// appointment's duration. An empty id is rejected so the session can never
// be Active without one.
func (c *Controller) ConfirmStart(sessionID string, now time.Time) error {
	if c.phase != domain.PhaseStarting {
		return fmt.Errorf("confirm start in phase %s", c.phase)
	}
	if sessionID == "" {
		c.abortStart()
		return domain.ErrNoSessionID
	}

	apt := c.pendingAppointment
	duration := apt.Duration()
	if apt.DurationMinutes <= 0 {
		duration = c.defaultDuration
	}

	c.session = &domain.Session{
		ID:            sessionID,
		AppointmentID: apt.ID,
		ClientID:      apt.ClientID,
		TherapistID:   apt.TherapistID,
		TherapyType:   apt.TherapyType,
		Location:      c.pendingForm.Location,
		StartedAt:     now,
		ExpectedEndAt: now.Add(duration),
		MoodStart:     c.pendingForm.MoodStart,
		Goals:         c.pendingForm.Goals,
		Concerns:      c.pendingForm.Concerns,
	}
	c.phase = domain.PhaseActive

	c.logger.Info("session active", "sessionId", sessionID, "expectedEnd", c.session.ExpectedEndAt)
	return nil
}

// FailStart abandons an in-flight start. No partial record is retained.
func (c *Controller) FailStart(err error) {
	if c.phase != domain.PhaseStarting {
		return
	}
	c.logger.Warn("session start failed", "appointmentId", c.pendingAppointment.ID, "error", err)
	c.abortStart()
}

func (c *Controller) abortStart() {
	c.phase = domain.PhaseNoSession
	c.pendingAppointment = domain.Appointment{}
	c.pendingForm = domain.StartForm{}
	c.session = nil
}

// PendingForm returns the start form held while Starting; used to build the
// outgoing request.
func (c *Controller) PendingForm() (domain.Appointment, domain.StartForm) {
	return c.pendingAppointment, c.pendingForm
}

// BeginEnd validates the summary and moves Active → Ending. A blank summary
// is rejected synchronously, before any network call, and the session stays
// where it was so the therapist can retry.
func (c *Controller) BeginEnd(summary domain.Summary) error {
	if c.phase != domain.PhaseActive && c.phase != domain.PhaseEnding {
		return domain.ErrNoActiveSession
	}
	if strings.TrimSpace(summary.Text) == "" {
		return &domain.ValidationError{Field: "summary", Message: "a session summary is required"}
	}

	c.session.MoodEnd = clampMood(summary.MoodEnd)
	c.phase = domain.PhaseEnding

	c.logger.Info("ending session", "sessionId", c.session.ID)
	return nil
}

// ConfirmEnd detaches the record and returns a final copy for the billing
// trigger. The end is authoritative once the backend acknowledged it; nothing
// after this point can resurface the session.
func (c *Controller) ConfirmEnd() (domain.Session, error) {
	if c.phase != domain.PhaseEnding {
		return domain.Session{}, fmt.Errorf("confirm end in phase %s", c.phase)
	}

	final := *c.session
	c.session = nil
	c.phase = domain.PhaseNoSession

	c.logger.Info("session ended", "sessionId", final.ID)
	return final, nil
}

// FailEnd returns the session to Active after a failed end call so the
// therapist can retry without losing the draft.
func (c *Controller) FailEnd(err error) {
	if c.phase != domain.PhaseEnding {
		return
	}
	c.logger.Warn("session end failed", "sessionId", c.session.ID, "error", err)
	c.phase = domain.PhaseActive
}

// Elapsed recomputes elapsed time from the wall clock. Idempotent: the value
// at time T is T minus the start time regardless of how many ticks were
// missed, so background throttling self-corrects instead of drifting.
func (c *Controller) Elapsed(now time.Time) time.Duration {
	if c.session == nil {
		return 0
	}
	return now.Sub(c.session.StartedAt)
}

// Remaining recomputes remaining time from the wall clock. Negative means
// overtime.
func (c *Controller) Remaining(now time.Time) time.Duration {
	if c.session == nil {
		return 0
	}
	return c.session.ExpectedEndAt.Sub(now)
}

// DurationMinutes returns the session length in whole minutes for billing.
func (c *Controller) DurationMinutes(now time.Time) int {
	return int(c.Elapsed(now) / time.Minute)
}

// NoShowNote builds the timestamped note recorded when an appointment is
// marked absent. Marking absent bypasses the state machine entirely.
func NoShowNote(now time.Time) string {
	return fmt.Sprintf("Client did not attend (no-show) - %s", now.Format("2006-01-02 15:04"))
}

func clampMood(mood int) int {
	if mood < 1 {
		return 1
	}
	if mood > 10 {
		return 10
	}
	return mood
}
