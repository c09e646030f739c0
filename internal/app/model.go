// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marisolhealth/sessiondesk/internal/api"
	"github.com/marisolhealth/sessiondesk/internal/config"
	"github.com/marisolhealth/sessiondesk/internal/core/assign"
	"github.com/marisolhealth/sessiondesk/internal/core/draft"
	"github.com/marisolhealth/sessiondesk/internal/core/lifecycle"
	"github.com/marisolhealth/sessiondesk/internal/domain"
	"github.com/marisolhealth/sessiondesk/internal/types"
	"github.com/marisolhealth/sessiondesk/internal/ui/overlay"
	"github.com/marisolhealth/sessiondesk/internal/ui/styles"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// focus identifies which live-session input currently receives keystrokes
type focus int

const (
	focusNone focus = iota
	focusNotes
	focusGoals
)

// Model is the main application state
type Model struct {
	// Session core. The controller owns the canonical record; the buffer is
	// the clinical draft, reconciled at end; the tracker holds the three
	// assignment flows.
	controller *lifecycle.Controller
	buffer     *draft.Buffer
	gate       *draft.Gate
	tracker    *assign.Tracker

	// autosaveSeq keys the autosave loop to the current session; bumping it
	// orphans any tick still scheduled for the previous one.
	autosaveSeq int
	lastFlushAt time.Time

	// Appointment feed
	appointments []domain.Appointment
	cursor       int
	loading      bool

	// Live-session inputs
	notesInput textarea.Model
	goalsInput textinput.Model
	focused    focus

	// UI state
	overlayStack *overlay.Stack
	toasts       []Toast
	spinner      spinner.Model
	width        int
	height       int
	styles       *styles.Styles

	// Backend
	client        *api.Client
	statusChecker *api.StatusChecker
	isOnline      bool

	// Configuration
	config *config.Config

	// Logger
	logger *slog.Logger
}

// New creates a new application model with the given config
func New(cfg *config.Config, client *api.Client, logger *slog.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	notes := textarea.New()
	notes.Placeholder = "Progress notes..."
	notes.CharLimit = 8000
	notes.SetWidth(70)
	notes.SetHeight(8)

	goals := textinput.New()
	goals.Placeholder = "Goals discussed..."
	goals.CharLimit = 500
	goals.Width = 70

	defaultDuration := time.Duration(cfg.Session.DefaultMinutes) * time.Minute

	return Model{
		controller:    lifecycle.NewController(defaultDuration, logger),
		buffer:        draft.New(5),
		gate:          &draft.Gate{},
		tracker:       assign.NewTracker(),
		appointments:  []domain.Appointment{},
		loading:       true,
		notesInput:    notes,
		goalsInput:    goals,
		overlayStack:  overlay.NewStack(),
		toasts:        []Toast{},
		spinner:       s,
		styles:        styles.New(),
		client:        client,
		statusChecker: api.NewStatusChecker(cfg.Backend.BaseURL),
		isOnline:      true, // Optimistically assume online
		config:        cfg,
		logger:        logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadAppointmentsCmd(),
		m.statusChecker.CheckCmd(),
		idleTick(),
	)
}

// Helper methods

func (m *Model) addToast(level types.ToastLevel, message string, ttl time.Duration) {
	m.toasts = append(m.toasts, types.NewToast(level, message, ttl))
}

// expireToasts removes expired toasts
func (m *Model) expireToasts() {
	now := time.Now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.Expires.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// selectedAppointment returns the appointment under the cursor
func (m Model) selectedAppointment() (domain.Appointment, bool) {
	if m.cursor < 0 || m.cursor >= len(m.appointments) {
		return domain.Appointment{}, false
	}
	return m.appointments[m.cursor], true
}

// syncDraftInputs copies the visible inputs into the draft buffer
func (m *Model) syncDraftInputs() {
	m.buffer.SetNotes(m.notesInput.Value())
	m.buffer.SetGoalsDiscussed(m.goalsInput.Value())
}

// tickInterval returns the configured clock tick cadence
func (m Model) tickInterval() time.Duration {
	return time.Duration(m.config.Session.TickIntervalMs) * time.Millisecond
}

// autosaveInterval returns the configured autosave cadence
func (m Model) autosaveInterval() time.Duration {
	return time.Duration(m.config.Autosave.IntervalSeconds) * time.Second
}

// warningThreshold returns the remaining time below which the timer warns
func (m Model) warningThreshold() time.Duration {
	return time.Duration(m.config.Session.WarningSeconds) * time.Second
}
