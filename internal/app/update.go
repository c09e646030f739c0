package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marisolhealth/sessiondesk/internal/api"
	"github.com/marisolhealth/sessiondesk/internal/core/draft"
	"github.com/marisolhealth/sessiondesk/internal/core/lifecycle"
	"github.com/marisolhealth/sessiondesk/internal/domain"
	"github.com/marisolhealth/sessiondesk/internal/ui/overlay"
)

const absentConfirmPrefix = "absent:"

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.notesInput.SetWidth(min(msg.Width-8, 100))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.loading {
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Appointment feed

	case appointmentsLoadedMsg:
		m.loading = false
		m.appointments = msg.appointments
		if m.cursor >= len(m.appointments) {
			m.cursor = max(len(m.appointments)-1, 0)
		}
		return m, nil

	case appointmentsErrorMsg:
		m.loading = false
		m.logger.Error("failed to load appointments", "error", msg.err)
		m.addToast(ToastError, "Could not load appointments", 5*time.Second)
		return m, nil

	// Start flow

	case overlay.StartSubmittedMsg:
		m.overlayStack.Pop()
		return m.handleStartSubmitted(msg)

	case sessionStartedMsg:
		return m.handleSessionStarted(msg)

	case sessionStartErrorMsg:
		m.controller.FailStart(msg.err)
		m.logger.Error("session start failed", "error", msg.err)
		m.addToast(ToastError, startErrorMessage(msg.err), 6*time.Second)
		return m, nil

	// Timer

	case clockTickMsg:
		if _, ok := m.controller.Session(); !ok {
			// Session ended between ticks; let the loop die.
			return m, nil
		}
		m.expireToasts()
		return m, clockTick(m.tickInterval())

	// Autosave

	case autosaveTickMsg:
		return m.handleAutosaveTick(msg)

	case flushDoneMsg:
		return m.handleFlushDone(msg)

	// End flow

	case overlay.EndSubmittedMsg:
		m.overlayStack.Pop()
		return m.handleEndSubmitted(msg)

	case sessionEndedMsg:
		return m.handleSessionEnded()

	case sessionEndErrorMsg:
		m.controller.FailEnd(msg.err)
		m.logger.Error("session end failed", "error", msg.err)
		m.addToast(ToastError, "Could not end session - check connection and retry", 6*time.Second)
		return m, nil

	case invoiceDoneMsg:
		return m.handleInvoiceDone(msg)

	// Assignments

	case assignablesLoadedMsg:
		for kind, items := range msg.sets {
			m.tracker.SetItems(kind, items)
		}
		for kind, err := range msg.errs {
			m.logger.Warn("failed to load assignables", "kind", string(kind), "error", err)
		}
		return m, nil

	case overlay.AssignPickedMsg:
		m.overlayStack.Pop()
		return m.handleAssignPicked(msg)

	case assignDoneMsg:
		m.tracker.Finish(msg.kind, msg.err)
		if msg.err != nil {
			m.logger.Error("assignment failed", "kind", string(msg.kind), "error", msg.err)
			m.addToast(ToastError, fmt.Sprintf("Could not assign %s", msg.kind), 5*time.Second)
		} else {
			m.addToast(ToastSuccess, fmt.Sprintf("%s assigned", titleCase(string(msg.kind))), 4*time.Second)
		}
		return m, nil

	// Mark absent

	case overlay.ConfirmMsg:
		m.overlayStack.Pop()
		if !msg.Confirmed {
			return m, nil
		}
		if id, ok := strings.CutPrefix(msg.Key, absentConfirmPrefix); ok {
			return m, m.markAbsentCmd(id, lifecycle.NoShowNote(time.Now()))
		}
		return m, nil

	case markAbsentDoneMsg:
		if msg.err != nil {
			m.logger.Error("mark absent failed", "appointmentId", msg.appointmentID, "error", msg.err)
			m.addToast(ToastError, "Could not mark client absent", 5*time.Second)
			return m, nil
		}
		m.addToast(ToastInfo, "Client marked absent", 4*time.Second)
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadAppointmentsCmd())

	// Background

	case api.StatusMsg:
		m.isOnline = msg.Online
		return m, nil

	case idleTickMsg:
		m.expireToasts()
		return m, tea.Batch(m.statusChecker.CheckCmd(), idleTick())

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input: overlay first, then focused inputs, then
// phase-level bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}

	if m.focused != focusNone {
		return m.handleInputKey(msg)
	}

	switch m.controller.Phase() {
	case domain.PhaseNoSession:
		return m.handleScheduleKey(msg)
	case domain.PhaseActive:
		return m.handleSessionKey(msg)
	}
	// Starting and Ending wait for the backend; only quit works.
	return m, nil
}

func (m Model) handleScheduleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.appointments)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadAppointmentsCmd())

	case "enter":
		apt, ok := m.selectedAppointment()
		if !ok {
			return m, nil
		}
		return m, m.overlayStack.Push(overlay.NewStartForm(apt))

	case "x":
		apt, ok := m.selectedAppointment()
		if !ok {
			return m, nil
		}
		dialog := overlay.NewConfirmDialog(
			absentConfirmPrefix+apt.ID,
			"Mark client absent",
			fmt.Sprintf("Mark %s as a no-show? The appointment will be cancelled.", apt.ClientName),
		)
		return m, m.overlayStack.Push(dialog)
	}
	return m, nil
}

func (m Model) handleSessionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.focused = focusNotes
		return m, m.notesInput.Focus()

	case "g":
		m.focused = focusGoals
		return m, m.goalsInput.Focus()

	case "+", "=":
		m.buffer.SetMood(m.buffer.Mood() + 1)
		return m, nil

	case "-", "_":
		m.buffer.SetMood(m.buffer.Mood() - 1)
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8":
		idx := int(msg.String()[0] - '1')
		if idx < len(domain.Techniques) {
			m.buffer.ToggleTechnique(domain.Techniques[idx])
		}
		return m, nil

	case "a":
		return m.openPicker(domain.KindResource)
	case "u":
		return m.openPicker(domain.KindSurvey)
	case "c":
		return m.openPicker(domain.KindChallenge)

	case "s":
		return m.requestFlush(true)

	case "e":
		return m, m.overlayStack.Push(overlay.NewEndForm(m.buffer.Mood()))
	}
	return m, nil
}

// handleInputKey routes keys to the focused notes/goals input. Esc blurs and
// triggers a flush so leaving an editor persists its content promptly.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		switch m.focused {
		case focusNotes:
			m.notesInput.Blur()
		case focusGoals:
			m.goalsInput.Blur()
		}
		m.focused = focusNone
		m.syncDraftInputs()
		return m.requestFlush(false)
	}

	var cmd tea.Cmd
	switch m.focused {
	case focusNotes:
		m.notesInput, cmd = m.notesInput.Update(msg)
	case focusGoals:
		m.goalsInput, cmd = m.goalsInput.Update(msg)
	}
	m.syncDraftInputs()
	return m, cmd
}

// Flow handlers

func (m Model) handleStartSubmitted(msg overlay.StartSubmittedMsg) (tea.Model, tea.Cmd) {
	if err := m.controller.BeginStart(msg.Appointment, msg.Form); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			m.addToast(ToastWarning, verr.Message, 5*time.Second)
		} else {
			m.addToast(ToastWarning, err.Error(), 5*time.Second)
		}
		return m, nil
	}

	apt, form := m.controller.PendingForm()
	m.addToast(ToastInfo, "Starting session for "+apt.ClientName+"...", 4*time.Second)
	return m, m.startSessionCmd(api.StartRequest{
		AppointmentID: apt.ID,
		ClientPresent: form.ClientPresent,
		Location:      form.Location,
		InitialNotes:  form.InitialNotes,
		MoodStart:     form.MoodStart,
		SessionGoals:  form.Goals,
		Concerns:      form.Concerns,
	})
}

func (m Model) handleSessionStarted(msg sessionStartedMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	if err := m.controller.ConfirmStart(msg.sessionID, now); err != nil {
		m.logger.Error("session start rejected", "error", err)
		m.addToast(ToastError, "Backend returned no session id - session not started", 6*time.Second)
		return m, nil
	}

	session, _ := m.controller.Session()
	m.buffer = draft.New(session.MoodStart)
	m.gate = &draft.Gate{}
	m.lastFlushAt = time.Time{}
	m.notesInput.Reset()
	m.goalsInput.Reset()
	m.focused = focusNone
	m.autosaveSeq++

	m.logger.Info("session started",
		"sessionId", session.ID,
		"clientId", session.ClientID,
		"expectedEnd", session.ExpectedEndAt)
	m.addToast(ToastSuccess, "Session started", 4*time.Second)

	return m, tea.Batch(
		clockTick(m.tickInterval()),
		autosaveTick(m.autosaveInterval(), m.autosaveSeq),
		m.loadAssignablesCmd(),
	)
}

func (m Model) handleAutosaveTick(msg autosaveTickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.autosaveSeq {
		// Tick from a previous session's loop.
		return m, nil
	}
	if _, ok := m.controller.Session(); !ok {
		return m, nil
	}

	rearm := autosaveTick(m.autosaveInterval(), m.autosaveSeq)
	model, flush := m.requestFlush(false)
	if flush != nil {
		return model, tea.Batch(flush, rearm)
	}
	return model, rearm
}

// requestFlush starts a flush if there are unsaved edits and none is already
// running. A flush in flight suppresses this attempt; the next tick (or the
// next explicit save) picks the edits up.
func (m Model) requestFlush(explicit bool) (tea.Model, tea.Cmd) {
	sessionID := m.controller.SessionID()
	if sessionID == "" {
		return m, nil
	}
	m.syncDraftInputs()

	if !m.buffer.Dirty() {
		if explicit {
			m.addToast(ToastInfo, "Nothing to save", 3*time.Second)
		}
		return m, nil
	}
	if !m.gate.TryAcquire() {
		if explicit {
			m.addToast(ToastInfo, "Save already in progress", 3*time.Second)
		}
		return m, nil
	}

	return m, m.flushCmd(sessionID, m.buffer.Snapshot(), m.buffer.Revision())
}

func (m Model) handleFlushDone(msg flushDoneMsg) (tea.Model, tea.Cmd) {
	if msg.sessionID != m.controller.SessionID() {
		// Result of a flush for a session that already ended. Its gate was
		// replaced when the next session started; touch nothing.
		return m, nil
	}
	m.gate.Release()
	if msg.err != nil {
		m.logger.Warn("autosave failed", "sessionId", msg.sessionID, "error", msg.err)
		m.addToast(ToastWarning, "Autosave failed - will retry", 4*time.Second)
		return m, nil
	}

	m.buffer.MarkFlushed(msg.rev)
	m.lastFlushAt = time.Now()
	return m, nil
}

func (m Model) handleEndSubmitted(msg overlay.EndSubmittedMsg) (tea.Model, tea.Cmd) {
	if err := m.controller.BeginEnd(msg.Summary); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			m.addToast(ToastWarning, verr.Message, 5*time.Second)
		} else {
			m.addToast(ToastWarning, err.Error(), 5*time.Second)
		}
		return m, nil
	}

	// The end payload carries the live draft, not the last flushed state, so
	// edits made since the last autosave are never lost.
	m.syncDraftInputs()
	snap := m.buffer.Snapshot()
	sessionID := m.controller.SessionID()

	return m, m.endSessionCmd(sessionID, api.EndRequest{
		Summary:          msg.Summary.Text,
		Homework:         msg.Summary.Homework,
		NextSessionGoals: msg.Summary.NextSessionPlan,
		MoodEnd:          msg.Summary.MoodEnd,
		TechniquesUsed:   snap.Techniques,
		ProgressNotes:    snap.Notes,
		GoalsDiscussed:   snap.GoalsDiscussed,
	})
}

func (m Model) handleSessionEnded() (tea.Model, tea.Cmd) {
	now := time.Now()
	durationMinutes := m.controller.DurationMinutes(now)

	final, err := m.controller.ConfirmEnd()
	if err != nil {
		m.logger.Error("end confirmation rejected", "error", err)
		return m, nil
	}

	m.buffer.Reset()
	m.notesInput.Reset()
	m.goalsInput.Reset()
	m.focused = focusNone
	m.tracker.Reset()
	m.autosaveSeq++ // orphan the pending autosave tick
	m.loading = true

	m.logger.Info("session ended",
		"sessionId", final.ID,
		"durationMinutes", durationMinutes)
	m.addToast(ToastSuccess, fmt.Sprintf("Session ended (%d min)", durationMinutes), 5*time.Second)

	return m, tea.Batch(
		m.spinner.Tick,
		m.loadAppointmentsCmd(),
		m.invoiceCmd(final, durationMinutes),
	)
}

// handleInvoiceDone reports the billing outcome. Billing is best-effort and
// informational: the session is already ended whatever happens here.
func (m Model) handleInvoiceDone(msg invoiceDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("invoice generation failed", "error", msg.err)
		m.addToast(ToastWarning, "Invoice not generated - bill manually if needed", 6*time.Second)
		return m, nil
	}

	switch {
	case msg.result.AlreadyBilled:
		m.addToast(ToastInfo, "Session already billed", 5*time.Second)
	case msg.result.Consolidated:
		month := msg.result.BillingMonth
		if month == "" {
			month = "end of month"
		}
		m.addToast(ToastInfo, "Added to consolidated invoice ("+month+")", 5*time.Second)
	default:
		m.addToast(ToastSuccess, "Invoice sent", 5*time.Second)
	}
	return m, nil
}

func (m Model) openPicker(kind domain.AssignableKind) (tea.Model, tea.Cmd) {
	if m.tracker.InFlight(kind) {
		m.addToast(ToastInfo, fmt.Sprintf("%s assignment in progress", titleCase(string(kind))), 3*time.Second)
		return m, nil
	}
	if !m.tracker.Loaded(kind) {
		m.addToast(ToastWarning, fmt.Sprintf("No %ss available", kind), 3*time.Second)
		return m, nil
	}
	return m, m.overlayStack.Push(overlay.NewPicker(kind, m.tracker.Items(kind)))
}

func (m Model) handleAssignPicked(msg overlay.AssignPickedMsg) (tea.Model, tea.Cmd) {
	session, ok := m.controller.Session()
	if !ok {
		return m, nil
	}

	m.tracker.Select(msg.Kind, msg.ItemID)
	if !m.tracker.TryBegin(msg.Kind) {
		m.addToast(ToastInfo, "Assignment already in progress", 3*time.Second)
		return m, nil
	}
	return m, m.assignCmd(msg.Kind, msg.ItemID, session.ClientID)
}

// startErrorMessage maps start failures to a therapist-readable toast
func startErrorMessage(err error) string {
	if errors.Is(err, domain.ErrNoSessionID) {
		return "Backend returned no session id - session not started"
	}
	if errors.Is(err, domain.ErrOffline) {
		return "Backend unreachable - session not started"
	}
	return "Could not start session - please retry"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
