package app

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/marisolhealth/sessiondesk/internal/api"
	"github.com/marisolhealth/sessiondesk/internal/core/draft"
	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// Messages

type appointmentsLoadedMsg struct {
	appointments []domain.Appointment
}

type appointmentsErrorMsg struct {
	err error
}

type sessionStartedMsg struct {
	sessionID string
}

type sessionStartErrorMsg struct {
	err error
}

type sessionEndedMsg struct{}

type sessionEndErrorMsg struct {
	err error
}

type flushDoneMsg struct {
	sessionID string
	rev       uint64
	err       error
}

type autosaveTickMsg struct {
	seq int
}

type clockTickMsg time.Time

type idleTickMsg time.Time

type assignablesLoadedMsg struct {
	sets map[domain.AssignableKind][]domain.Assignable
	errs map[domain.AssignableKind]error
}

type assignDoneMsg struct {
	kind domain.AssignableKind
	err  error
}

type invoiceDoneMsg struct {
	result domain.InvoiceResult
	err    error
}

type markAbsentDoneMsg struct {
	appointmentID string
	err           error
}

// Commands

// loadAppointmentsCmd fetches the startable-appointment feed
func (m Model) loadAppointmentsCmd() tea.Cmd {
	client, therapistID := m.client, m.config.TherapistID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		appointments, err := client.ListStartable(ctx, therapistID)
		if err != nil {
			return appointmentsErrorMsg{err: err}
		}
		return appointmentsLoadedMsg{appointments: appointments}
	}
}

// startSessionCmd issues the start request. The controller is already in
// Starting; the result message resolves or aborts it.
func (m Model) startSessionCmd(req api.StartRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		sessionID, err := client.StartSession(context.Background(), req)
		if err != nil {
			return sessionStartErrorMsg{err: err}
		}
		return sessionStartedMsg{sessionID: sessionID}
	}
}

// endSessionCmd issues the end request. The payload is self-contained: it
// carries the live draft, so a slow or failed autosave can never lose notes.
func (m Model) endSessionCmd(sessionID string, req api.EndRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.EndSession(context.Background(), sessionID, req); err != nil {
			return sessionEndErrorMsg{err: err}
		}
		return sessionEndedMsg{}
	}
}

// flushCmd persists one draft snapshot. The caller has already claimed the
// flush gate; the result message releases it.
func (m Model) flushCmd(sessionID string, snap draft.Snapshot, rev uint64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.SaveProgress(context.Background(), sessionID, api.ProgressUpdate{
			ProgressNotes:  snap.Notes,
			GoalsDiscussed: snap.GoalsDiscussed,
			MoodCurrent:    snap.Mood,
			TechniquesUsed: snap.Techniques,
		})
		return flushDoneMsg{sessionID: sessionID, rev: rev, err: err}
	}
}

// invoiceCmd fires the best-effort billing trigger for an ended session
func (m Model) invoiceCmd(final domain.Session, durationMinutes int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.GenerateInvoice(context.Background(), final.ID, api.InvoiceRequest{
			AppointmentID:   final.AppointmentID,
			ClientID:        final.ClientID,
			DurationMinutes: durationMinutes,
			SessionType:     final.TherapyType,
			AutoSend:        true,
		})
		return invoiceDoneMsg{result: result, err: err}
	}
}

// loadAssignablesCmd fetches the three eligible sets concurrently, once the
// session is active and the client id is known. Each flow's failure is
// recorded on its own; one failing fetch does not hide the others.
func (m Model) loadAssignablesCmd() tea.Cmd {
	client, limit := m.client, m.config.Session.AssignableLimit
	kinds := []domain.AssignableKind{domain.KindResource, domain.KindSurvey, domain.KindChallenge}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		var mu sync.Mutex
		sets := make(map[domain.AssignableKind][]domain.Assignable, len(kinds))
		errs := make(map[domain.AssignableKind]error)

		var g errgroup.Group
		for _, kind := range kinds {
			g.Go(func() error {
				items, err := client.ListAssignables(ctx, kind, limit)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs[kind] = err
				} else {
					sets[kind] = items
				}
				return nil
			})
		}
		g.Wait()

		return assignablesLoadedMsg{sets: sets, errs: errs}
	}
}

// assignCmd posts one assignment. The tracker has already claimed the flow's
// in-flight flag; the result message releases it.
func (m Model) assignCmd(kind domain.AssignableKind, itemID, clientID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.Assign(context.Background(), kind, itemID, clientID)
		return assignDoneMsg{kind: kind, err: err}
	}
}

// markAbsentCmd cancels an appointment with a timestamped no-show note.
// It never creates or touches a session record.
func (m Model) markAbsentCmd(appointmentID, note string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.CancelAppointment(context.Background(), appointmentID, note)
		return markAbsentDoneMsg{appointmentID: appointmentID, err: err}
	}
}

// clockTick drives the 1-second session timer. Armed only after the session
// is confirmed active and dropped the moment it is not.
func clockTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// autosaveTick schedules the next periodic flush. The sequence number keys
// the loop to one session; a stale tick from an ended session is dropped.
func autosaveTick(interval time.Duration, seq int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return autosaveTickMsg{seq: seq}
	})
}

// idleTick is the slow background tick that expires toasts and re-checks
// backend reachability.
func idleTick() tea.Cmd {
	return tea.Tick(15*time.Second, func(t time.Time) tea.Msg {
		return idleTickMsg(t)
	})
}
