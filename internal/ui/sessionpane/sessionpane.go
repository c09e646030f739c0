// Package sessionpane renders the live session view: the elapsed/remaining
// timer with its band colouring, the notes editor, and the draft state.
package sessionpane

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/marisolhealth/sessiondesk/internal/core/lifecycle"
	"github.com/marisolhealth/sessiondesk/internal/domain"
	"github.com/marisolhealth/sessiondesk/internal/ui/styles"
)

// Pane is a snapshot of everything the live view needs; the app assembles it
// each frame from the controller and the draft.
type Pane struct {
	Session   domain.Session
	Elapsed   time.Duration
	Remaining time.Duration
	Band      lifecycle.Band

	NotesView      string // rendered textarea from the app
	GoalsDiscussed string
	Mood           int
	Techniques     []string

	Dirty        bool
	FlushRunning bool
	LastSavedAgo time.Duration

	Width  int
	Styles *styles.Styles
}

// Render renders the live session pane
func (p Pane) Render() string {
	s := p.Styles
	var rows []string

	header := fmt.Sprintf("Session %s — client %s", p.Session.ID, clientLabel(p.Session))
	rows = append(rows, s.SessionHeader.Render(header))

	rows = append(rows, p.renderTimer())
	rows = append(rows, "")

	rows = append(rows, s.FieldLabel.Render("Goals: ")+s.FieldValue.Render(p.Session.Goals))
	mood := fmt.Sprintf("Mood: %d/10 (started at %d)", p.Mood, p.Session.MoodStart)
	rows = append(rows, lipgloss.NewStyle().Foreground(styles.MoodColor(p.Mood)).Render(mood))

	if len(p.Techniques) > 0 {
		rows = append(rows, s.FieldLabel.Render("Techniques: ")+s.FieldValue.Render(strings.Join(p.Techniques, ", ")))
	}
	if p.GoalsDiscussed != "" {
		rows = append(rows, s.FieldLabel.Render("Discussed: ")+s.FieldValue.Render(p.GoalsDiscussed))
	}

	rows = append(rows, "")
	rows = append(rows, s.FieldLabel.Render("Progress notes"))
	rows = append(rows, p.NotesView)
	rows = append(rows, p.renderSaveState())

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return s.SessionPane.Width(p.Width).Render(content)
}

func (p Pane) renderTimer() string {
	s := p.Styles

	elapsed := s.Timer(lifecycle.BandNormal).Render("▲ " + lifecycle.FormatClock(p.Elapsed))

	remainingLabel := "▼ " + lifecycle.FormatClock(p.Remaining)
	if p.Band == lifecycle.BandOvertime {
		remainingLabel = "▼ +" + lifecycle.FormatClock(p.Remaining) + " OVERTIME"
	}
	remaining := s.Timer(p.Band).Render(remainingLabel)

	return elapsed + "   " + remaining
}

func (p Pane) renderSaveState() string {
	s := p.Styles

	switch {
	case p.FlushRunning:
		return s.UnsavedBadge.Render("● saving...")
	case p.Dirty:
		return s.UnsavedBadge.Render("● unsaved changes")
	case p.LastSavedAgo > 0:
		return s.SavedBadge.Render(fmt.Sprintf("✓ saved %ds ago", int(p.LastSavedAgo.Seconds())))
	default:
		return s.SavedBadge.Render("✓ saved")
	}
}

func clientLabel(session domain.Session) string {
	return session.ClientID
}
