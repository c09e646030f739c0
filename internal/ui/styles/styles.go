// Package styles holds the lipgloss style set shared across the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marisolhealth/sessiondesk/internal/core/lifecycle"
)

// Styles holds all the UI styles
type Styles struct {
	// Schedule list
	Schedule       lipgloss.Style
	ScheduleHeader lipgloss.Style
	Row            lipgloss.Style
	RowActive      lipgloss.Style
	RowTime        lipgloss.Style
	RowClient      lipgloss.Style
	RowType        lipgloss.Style

	// Session pane
	SessionPane   lipgloss.Style
	SessionHeader lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldValue    lipgloss.Style
	SavedBadge    lipgloss.Style
	UnsavedBadge  lipgloss.Style

	// Timer bands
	TimerNormal   lipgloss.Style
	TimerWarning  lipgloss.Style
	TimerOvertime lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusPhase lipgloss.Style
	StatusHint  lipgloss.Style
	Offline     lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Schedule: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ScheduleHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Row: lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1),

		RowActive: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			Padding(0, 1),

		RowTime: lipgloss.NewStyle().
			Foreground(Sky),

		RowClient: lipgloss.NewStyle().
			Foreground(Text),

		RowType: lipgloss.NewStyle().
			Foreground(Overlay1).
			Italic(true),

		SessionPane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		SessionHeader: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		FieldValue: lipgloss.NewStyle().
			Foreground(Text),

		SavedBadge: lipgloss.NewStyle().
			Foreground(Green),

		UnsavedBadge: lipgloss.NewStyle().
			Foreground(Yellow),

		TimerNormal: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		TimerWarning: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		TimerOvertime: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true).
			Blink(true),

		StatusBar: lipgloss.NewStyle().
			Background(Mantle).
			Foreground(Subtext1),

		StatusPhase: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Crust).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Offline: lipgloss.NewStyle().
			Background(Red).
			Foreground(Crust).
			Bold(true).
			Padding(0, 1),

		ToastInfo: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Sky).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Red).
			Padding(0, 1),
	}
}

// Timer returns the style for a timer band
func (s *Styles) Timer(band lifecycle.Band) lipgloss.Style {
	switch band {
	case lifecycle.BandOvertime:
		return s.TimerOvertime
	case lifecycle.BandWarning:
		return s.TimerWarning
	default:
		return s.TimerNormal
	}
}
