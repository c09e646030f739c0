package app

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/marisolhealth/sessiondesk/internal/core/lifecycle"
	"github.com/marisolhealth/sessiondesk/internal/domain"
	"github.com/marisolhealth/sessiondesk/internal/ui/schedule"
	"github.com/marisolhealth/sessiondesk/internal/ui/sessionpane"
	"github.com/marisolhealth/sessiondesk/internal/ui/statusbar"
	"github.com/marisolhealth/sessiondesk/internal/ui/toast"
)

// View renders the application
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = 100
	}
	height := m.height
	if height == 0 {
		height = 30
	}

	bar := statusbar.New(m.controller.Phase(), m.isOnline, width, m.styles).Render()
	content := m.renderContent(width)

	if cur := m.overlayStack.Current(); cur != nil {
		content = lipgloss.Place(width, height-1, lipgloss.Center, lipgloss.Center, cur.View())
	} else {
		content = lipgloss.NewStyle().Height(height - 1).Render(content)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, content, bar)

	if len(m.toasts) > 0 {
		toasts := toast.New(m.styles).Render(m.toasts, width)
		view = lipgloss.JoinVertical(lipgloss.Right, view, toasts)
	}

	return view
}

func (m Model) renderContent(width int) string {
	if m.loading {
		return "\n  " + m.spinner.View() + " Loading appointments..."
	}

	switch m.controller.Phase() {
	case domain.PhaseActive, domain.PhaseEnding:
		return m.renderSession(width)
	default:
		return schedule.New(m.appointments, m.cursor, width, m.styles).Render()
	}
}

func (m Model) renderSession(width int) string {
	session, ok := m.controller.Session()
	if !ok {
		return ""
	}

	now := time.Now()
	remaining := m.controller.Remaining(now)
	snap := m.buffer.Snapshot()

	var savedAgo time.Duration
	if !m.lastFlushAt.IsZero() {
		savedAgo = now.Sub(m.lastFlushAt)
	}

	pane := sessionpane.Pane{
		Session:   session,
		Elapsed:   m.controller.Elapsed(now),
		Remaining: remaining,
		Band:      lifecycle.BandFor(remaining, m.warningThreshold()),

		NotesView:      m.notesInput.View(),
		GoalsDiscussed: snap.GoalsDiscussed,
		Mood:           snap.Mood,
		Techniques:     snap.Techniques,

		Dirty:        m.buffer.Dirty(),
		FlushRunning: m.gate.InFlight(),
		LastSavedAgo: savedAgo,

		Width:  width,
		Styles: m.styles,
	}
	return pane.Render()
}
