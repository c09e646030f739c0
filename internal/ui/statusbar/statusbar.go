// Package statusbar renders the bar at the bottom of the TUI: the lifecycle
// phase badge, key hints for the current phase, and the offline indicator.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marisolhealth/sessiondesk/internal/domain"
	"github.com/marisolhealth/sessiondesk/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	phase  domain.Phase
	online bool
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar
func New(phase domain.Phase, online bool, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		phase:  phase,
		online: online,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	phaseBadge := sb.styles.StatusPhase.Render(" " + sb.phase.String() + " ")

	hints := GetHints(sb.phase)
	hintsRendered := sb.styles.StatusHint.Render(hints)

	parts := []string{phaseBadge}
	if hints != "" {
		parts = append(parts, sb.styles.StatusHint.Render(" │ "), hintsRendered)
	}
	if !sb.online {
		parts = append(parts, sb.styles.StatusHint.Render(" │ "), sb.styles.Offline.Render(" OFFLINE "))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
