package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marisolhealth/sessiondesk/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// Label is the style for form field labels
	Label lipgloss.Style
	// LabelActive is the style for the focused field's label
	LabelActive lipgloss.Style
	// Error is the style for inline validation errors
	Error lipgloss.Style
	// Item is the default picker item style
	Item lipgloss.Style
	// ItemActive is the highlighted picker item style
	ItemActive lipgloss.Style
	// Key is the style for keybinding hints
	Key lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		LabelActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(styles.Red).
			Italic(true),

		Item: lipgloss.NewStyle().
			Foreground(styles.Text),

		ItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),
	}
}
