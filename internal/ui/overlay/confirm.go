package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog is a confirmation dialog overlay with Yes/No options
type ConfirmDialog struct {
	title    string
	message  string
	key      string
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmMsg carries the result of a confirmation dialog
type ConfirmMsg struct {
	Key       string
	Confirmed bool
}

// NewConfirmDialog creates a confirmation dialog. The key comes back in the
// ConfirmMsg so the app knows which question was answered.
func NewConfirmDialog(key, title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		key:     key,
		styles:  New(),
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			return c, c.resolve(true)

		case "n", "N", "esc":
			return c, c.resolve(false)

		case "enter":
			return c, c.resolve(c.selected)

		case "left", "h":
			c.selected = false
			return c, nil

		case "right", "l", "tab":
			c.selected = true
			return c, nil
		}
	}
	return c, nil
}

func (c *ConfirmDialog) resolve(confirmed bool) tea.Cmd {
	result := ConfirmMsg{Key: c.key, Confirmed: confirmed}
	return func() tea.Msg { return result }
}

// Title returns the overlay title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	b.WriteString(c.styles.Title.Render(c.title))
	b.WriteString("\n")
	b.WriteString(c.styles.Label.Render(c.message))
	b.WriteString("\n\n")

	no := "  No  "
	yes := "  Yes  "
	if c.selected {
		yes = c.styles.ItemActive.Render("[ Yes ]")
		no = c.styles.Item.Render(no)
	} else {
		no = c.styles.ItemActive.Render("[ No ]")
		yes = c.styles.Item.Render(yes)
	}
	b.WriteString(no + "   " + yes)

	b.WriteString(c.styles.Footer.Render("\ny/n: answer  Enter: confirm  Esc: cancel"))
	return c.styles.Overlay.Render(b.String())
}
