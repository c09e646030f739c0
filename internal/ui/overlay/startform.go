package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// StartSubmittedMsg is emitted when the start form is submitted with valid input
type StartSubmittedMsg struct {
	Appointment domain.Appointment
	Form        domain.StartForm
}

// StartForm is the form shown before starting a session. Goals are required;
// submission with empty goals shows an inline error and emits nothing, so no
// network call can happen.
type StartForm struct {
	appointment domain.Appointment

	goals    textinput.Model
	location textinput.Model
	notes    textarea.Model
	concerns textinput.Model

	mood       int
	present    bool
	focusIndex int
	errText    string
	styles     *Styles
}

const (
	startFocusGoals = iota
	startFocusMood
	startFocusPresent
	startFocusLocation
	startFocusNotes
	startFocusConcerns
	startFocusSubmit
	startFocusCount
)

// NewStartForm creates the start form for one appointment
func NewStartForm(apt domain.Appointment) *StartForm {
	goals := textinput.New()
	goals.Placeholder = "Session goals (required)..."
	goals.Focus()
	goals.CharLimit = 300
	goals.Width = 60

	location := textinput.New()
	location.Placeholder = "Location..."
	location.CharLimit = 100
	location.Width = 60
	location.SetValue(apt.Location)

	notes := textarea.New()
	notes.Placeholder = "Initial notes (optional)..."
	notes.CharLimit = 2000
	notes.SetWidth(60)
	notes.SetHeight(4)

	concerns := textinput.New()
	concerns.Placeholder = "Concerns (optional)..."
	concerns.CharLimit = 300
	concerns.Width = 60

	return &StartForm{
		appointment: apt,
		goals:       goals,
		location:    location,
		notes:       notes,
		concerns:    concerns,
		mood:        5,
		present:     true,
		focusIndex:  startFocusGoals,
		styles:      New(),
	}
}

// Init initializes the overlay
func (f *StartForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *StartForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return f, f.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				f.focusIndex = (f.focusIndex + 1) % startFocusCount
			} else {
				f.focusIndex = (f.focusIndex - 1 + startFocusCount) % startFocusCount
			}
			f.syncFocus()
			return f, nil

		case "enter":
			if f.focusIndex == startFocusSubmit {
				return f, f.submit()
			}
			if f.focusIndex != startFocusNotes {
				// Enter advances through single-line fields
				f.focusIndex = (f.focusIndex + 1) % startFocusCount
				f.syncFocus()
				return f, nil
			}
		}

		if f.focusIndex == startFocusMood {
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

		if f.focusIndex == startFocusPresent {
			switch msg.String() {
			case " ", "left", "right", "h", "l":
				f.present = !f.present
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case startFocusGoals:
		f.goals, cmd = f.goals.Update(msg)
	case startFocusLocation:
		f.location, cmd = f.location.Update(msg)
	case startFocusNotes:
		f.notes, cmd = f.notes.Update(msg)
	case startFocusConcerns:
		f.concerns, cmd = f.concerns.Update(msg)
	}
	return f, cmd
}

// submit validates locally and emits StartSubmittedMsg. Validation failure
// sets the inline error and emits nothing.
func (f *StartForm) submit() tea.Cmd {
	if strings.TrimSpace(f.goals.Value()) == "" {
		f.errText = "session goals are required"
		f.focusIndex = startFocusGoals
		f.syncFocus()
		return nil
	}
	f.errText = ""

	msg := StartSubmittedMsg{
		Appointment: f.appointment,
		Form: domain.StartForm{
			ClientPresent: f.present,
			Location:      f.location.Value(),
			InitialNotes:  f.notes.Value(),
			MoodStart:     f.mood,
			Goals:         f.goals.Value(),
			Concerns:      f.concerns.Value(),
		},
	}
	return func() tea.Msg { return msg }
}

func (f *StartForm) syncFocus() {
	f.goals.Blur()
	f.location.Blur()
	f.notes.Blur()
	f.concerns.Blur()

	switch f.focusIndex {
	case startFocusGoals:
		f.goals.Focus()
	case startFocusLocation:
		f.location.Focus()
	case startFocusNotes:
		f.notes.Focus()
	case startFocusConcerns:
		f.concerns.Focus()
	}
}

// Title returns the overlay title
func (f *StartForm) Title() string {
	return "Start Session"
}

// View renders the form
func (f *StartForm) View() string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render(fmt.Sprintf("Start Session — %s", f.appointment.ClientName)))
	b.WriteString("\n")

	b.WriteString(f.label(startFocusGoals, "Goals"))
	b.WriteString("\n" + f.goals.View() + "\n\n")

	presence := "client present"
	if !f.present {
		presence = "client absent"
	}
	b.WriteString(f.label(startFocusMood, fmt.Sprintf("Starting mood: %s", moodScale(f.mood))))
	b.WriteString("    ")
	b.WriteString(f.label(startFocusPresent, presence))
	b.WriteString("\n\n")

	b.WriteString(f.label(startFocusLocation, "Location"))
	b.WriteString("\n" + f.location.View() + "\n\n")

	b.WriteString(f.label(startFocusNotes, "Initial notes"))
	b.WriteString("\n" + f.notes.View() + "\n\n")

	b.WriteString(f.label(startFocusConcerns, "Concerns"))
	b.WriteString("\n" + f.concerns.View() + "\n")

	if f.errText != "" {
		b.WriteString("\n" + f.styles.Error.Render(f.errText) + "\n")
	}

	b.WriteString("\n" + f.label(startFocusSubmit, "[ Start ]"))
	b.WriteString(f.styles.Footer.Render("\nTab: next field  Ctrl+S: start  Esc: cancel"))

	return f.styles.Overlay.Render(b.String())
}

func (f *StartForm) label(index int, text string) string {
	if f.focusIndex == index {
		return f.styles.LabelActive.Render(text)
	}
	return f.styles.Label.Render(text)
}

// moodScale renders a 1-10 mood as a compact gauge
func moodScale(mood int) string {
	return fmt.Sprintf("%d/10 %s", mood, strings.Repeat("▰", mood)+strings.Repeat("▱", 10-mood))
}
