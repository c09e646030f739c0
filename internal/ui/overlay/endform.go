package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// EndSubmittedMsg is emitted when the end form is submitted with a summary
type EndSubmittedMsg struct {
	Summary domain.Summary
}

// EndForm captures the mandatory end-of-session summary. Submission with an
// empty summary shows an inline error and emits nothing, leaving the session
// Active.
type EndForm struct {
	summary  textarea.Model
	homework textinput.Model
	nextPlan textinput.Model

	mood       int
	focusIndex int
	errText    string
	styles     *Styles
}

const (
	endFocusSummary = iota
	endFocusMood
	endFocusHomework
	endFocusNextPlan
	endFocusSubmit
	endFocusCount
)

// NewEndForm creates the end form seeded with the client's current mood
func NewEndForm(moodCurrent int) *EndForm {
	summary := textarea.New()
	summary.Placeholder = "Session summary (required)..."
	summary.Focus()
	summary.CharLimit = 4000
	summary.SetWidth(60)
	summary.SetHeight(6)

	homework := textinput.New()
	homework.Placeholder = domain.DefaultHomework
	homework.CharLimit = 300
	homework.Width = 60

	nextPlan := textinput.New()
	nextPlan.Placeholder = domain.DefaultNextSessionPlan
	nextPlan.CharLimit = 300
	nextPlan.Width = 60

	if moodCurrent < 1 || moodCurrent > 10 {
		moodCurrent = 5
	}

	return &EndForm{
		summary:    summary,
		homework:   homework,
		nextPlan:   nextPlan,
		mood:       moodCurrent,
		focusIndex: endFocusSummary,
		styles:     New(),
	}
}

// Init initializes the overlay
func (f *EndForm) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (f *EndForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return f, f.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				f.focusIndex = (f.focusIndex + 1) % endFocusCount
			} else {
				f.focusIndex = (f.focusIndex - 1 + endFocusCount) % endFocusCount
			}
			f.syncFocus()
			return f, nil

		case "enter":
			if f.focusIndex == endFocusSubmit {
				return f, f.submit()
			}
		}

		if f.focusIndex == endFocusMood {
			switch msg.String() {
			case "left", "h", "-":
				if f.mood > 1 {
					f.mood--
				}
				return f, nil
			case "right", "l", "+", "=":
				if f.mood < 10 {
					f.mood++
				}
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case endFocusSummary:
		f.summary, cmd = f.summary.Update(msg)
	case endFocusHomework:
		f.homework, cmd = f.homework.Update(msg)
	case endFocusNextPlan:
		f.nextPlan, cmd = f.nextPlan.Update(msg)
	}
	return f, cmd
}

// submit validates the summary locally and emits EndSubmittedMsg. Homework
// and next-session plan fall back to their standard defaults when blank.
func (f *EndForm) submit() tea.Cmd {
	if strings.TrimSpace(f.summary.Value()) == "" {
		f.errText = "a session summary is required"
		f.focusIndex = endFocusSummary
		f.syncFocus()
		return nil
	}
	f.errText = ""

	homework := strings.TrimSpace(f.homework.Value())
	if homework == "" {
		homework = domain.DefaultHomework
	}
	nextPlan := strings.TrimSpace(f.nextPlan.Value())
	if nextPlan == "" {
		nextPlan = domain.DefaultNextSessionPlan
	}

	msg := EndSubmittedMsg{
		Summary: domain.Summary{
			Text:            f.summary.Value(),
			MoodEnd:         f.mood,
			Homework:        homework,
			NextSessionPlan: nextPlan,
		},
	}
	return func() tea.Msg { return msg }
}

func (f *EndForm) syncFocus() {
	f.summary.Blur()
	f.homework.Blur()
	f.nextPlan.Blur()

	switch f.focusIndex {
	case endFocusSummary:
		f.summary.Focus()
	case endFocusHomework:
		f.homework.Focus()
	case endFocusNextPlan:
		f.nextPlan.Focus()
	}
}

// Title returns the overlay title
func (f *EndForm) Title() string {
	return "End Session"
}

// View renders the form
func (f *EndForm) View() string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render("End Session"))
	b.WriteString("\n")

	b.WriteString(f.label(endFocusSummary, "Summary"))
	b.WriteString("\n" + f.summary.View() + "\n\n")

	b.WriteString(f.label(endFocusMood, "Final mood: "+moodScale(f.mood)))
	b.WriteString("\n\n")

	b.WriteString(f.label(endFocusHomework, "Homework"))
	b.WriteString("\n" + f.homework.View() + "\n\n")

	b.WriteString(f.label(endFocusNextPlan, "Next session plan"))
	b.WriteString("\n" + f.nextPlan.View() + "\n")

	if f.errText != "" {
		b.WriteString("\n" + f.styles.Error.Render(f.errText) + "\n")
	}

	b.WriteString("\n" + f.label(endFocusSubmit, "[ End Session ]"))
	b.WriteString(f.styles.Footer.Render("\nTab: next field  Ctrl+S: end  Esc: back to session"))

	return f.styles.Overlay.Render(b.String())
}

func (f *EndForm) label(index int, text string) string {
	if f.focusIndex == index {
		return f.styles.LabelActive.Render(text)
	}
	return f.styles.Label.Render(text)
}
