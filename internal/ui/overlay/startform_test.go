package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testApt() domain.Appointment {
	return domain.Appointment{ID: "apt-1", ClientID: "cl-1", ClientName: "A. Client", Location: "office"}
}

func TestStartForm_EmptyGoalsBlocksSubmit(t *testing.T) {
	f := NewStartForm(testApt())

	_, cmd := f.Update(keyMsg("ctrl+s"))
	assert.Nil(t, cmd, "empty goals must emit nothing, so no request can be issued")
	assert.NotEmpty(t, f.errText)
	assert.Contains(t, f.View(), "session goals are required")
}

func TestStartForm_SubmitEmitsForm(t *testing.T) {
	f := NewStartForm(testApt())
	f.goals.SetValue("work on sleep routine")
	f.mood = 3
	f.present = true

	_, cmd := f.Update(keyMsg("ctrl+s"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(StartSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "apt-1", msg.Appointment.ID)
	assert.Equal(t, "work on sleep routine", msg.Form.Goals)
	assert.Equal(t, 3, msg.Form.MoodStart)
	assert.True(t, msg.Form.ClientPresent)
	assert.Equal(t, "office", msg.Form.Location, "location seeds from the appointment")
}

func TestStartForm_ErrorClearsOnValidSubmit(t *testing.T) {
	f := NewStartForm(testApt())

	f.Update(keyMsg("ctrl+s"))
	require.NotEmpty(t, f.errText)

	f.goals.SetValue("goals")
	_, cmd := f.Update(keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	assert.Empty(t, f.errText)
}

func TestStartForm_EscCloses(t *testing.T) {
	f := NewStartForm(testApt())

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(CloseOverlayMsg)
	assert.True(t, ok)
}

func TestStartForm_MoodBounds(t *testing.T) {
	f := NewStartForm(testApt())
	f.focusIndex = startFocusMood

	for range 20 {
		f.Update(keyMsg("+"))
	}
	assert.Equal(t, 10, f.mood)

	for range 20 {
		f.Update(keyMsg("-"))
	}
	assert.Equal(t, 1, f.mood)
}
