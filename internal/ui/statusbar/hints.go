package statusbar

import "github.com/marisolhealth/sessiondesk/internal/domain"

// GetHints returns the keybinding hints for the given lifecycle phase
func GetHints(phase domain.Phase) string {
	switch phase {
	case domain.PhaseNoSession:
		return "j/k: appointments  Enter: start  x: mark absent  r: refresh  q: quit"
	case domain.PhaseStarting:
		return "starting session..."
	case domain.PhaseActive:
		return "n: notes  g: goals  +/-: mood  1-8: techniques  a/u/c: assign  s: save now  e: end"
	case domain.PhaseEnding:
		return "ending session..."
	default:
		return ""
	}
}
