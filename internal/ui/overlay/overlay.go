// Package overlay contains the modal dialogs: the start-session form, the
// end-of-session summary form, the assignment pickers, and confirmations.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}
