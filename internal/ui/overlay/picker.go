package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// AssignPickedMsg is emitted when the therapist confirms an assignment pick
type AssignPickedMsg struct {
	Kind   domain.AssignableKind
	ItemID string
}

// Picker lists the eligible set for one assignment flow. Picking an item
// emits AssignPickedMsg and closes; the app owns the actual POST and its
// in-flight gating.
type Picker struct {
	kind   domain.AssignableKind
	items  []domain.Assignable
	cursor int
	styles *Styles
}

// NewPicker creates a picker for one assignable kind
func NewPicker(kind domain.AssignableKind, items []domain.Assignable) *Picker {
	return &Picker{
		kind:   kind,
		items:  items,
		styles: New(),
	}
}

// Init initializes the overlay
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return p, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
			return p, nil

		case "k", "up":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil

		case "enter":
			if len(p.items) == 0 {
				return p, nil
			}
			picked := AssignPickedMsg{Kind: p.kind, ItemID: p.items[p.cursor].ID}
			return p, func() tea.Msg { return picked }
		}
	}
	return p, nil
}

// Title returns the overlay title
func (p *Picker) Title() string {
	return fmt.Sprintf("Assign %s", p.kind)
}

// View renders the picker
func (p *Picker) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render(p.Title()))
	b.WriteString("\n")

	if len(p.items) == 0 {
		b.WriteString(p.styles.Label.Render("Nothing available to assign"))
	}

	for i, item := range p.items {
		line := fmt.Sprintf("%s  %s", item.ID, item.Title)
		if i == p.cursor {
			b.WriteString(p.styles.ItemActive.Render("> " + line))
		} else {
			b.WriteString(p.styles.Item.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(p.styles.Footer.Render("j/k: move  Enter: assign  Esc: cancel"))
	return p.styles.Overlay.Render(b.String())
}
