package sessionpane

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marisolhealth/sessiondesk/internal/core/lifecycle"
	"github.com/marisolhealth/sessiondesk/internal/domain"
	"github.com/marisolhealth/sessiondesk/internal/ui/styles"
)

func testPane() Pane {
	return Pane{
		Session: domain.Session{
			ID:        "ses-1",
			ClientID:  "cl-1",
			Goals:     "exposure work",
			MoodStart: 4,
		},
		Elapsed:   17 * time.Minute,
		Remaining: 33 * time.Minute,
		Band:      lifecycle.BandNormal,
		NotesView: "(notes)",
		Mood:      6,
		Width:     80,
		Styles:    styles.New(),
	}
}

func TestRender_ShowsTimerAndGoals(t *testing.T) {
	out := testPane().Render()

	assert.Contains(t, out, "17:00")
	assert.Contains(t, out, "33:00")
	assert.Contains(t, out, "exposure work")
	assert.Contains(t, out, "ses-1")
	assert.NotContains(t, out, "OVERTIME")
}

func TestRender_OvertimeBanner(t *testing.T) {
	p := testPane()
	p.Remaining = -90 * time.Second
	p.Band = lifecycle.BandOvertime

	out := p.Render()
	assert.Contains(t, out, "OVERTIME")
	assert.Contains(t, out, "01:30")
}

func TestRender_SaveStates(t *testing.T) {
	p := testPane()

	p.FlushRunning = true
	assert.Contains(t, p.Render(), "saving")

	p.FlushRunning = false
	p.Dirty = true
	assert.Contains(t, p.Render(), "unsaved changes")

	p.Dirty = false
	p.LastSavedAgo = 12 * time.Second
	assert.Contains(t, p.Render(), "saved 12s ago")
}

func TestRender_TechniquesLine(t *testing.T) {
	p := testPane()
	p.Techniques = []string{"CBT", "Mindfulness"}

	assert.Contains(t, p.Render(), "CBT, Mindfulness")
}
