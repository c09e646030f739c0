package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marisolhealth/sessiondesk/internal/domain"
	"github.com/marisolhealth/sessiondesk/internal/ui/styles"
)

func TestRenderEmptyFeed(t *testing.T) {
	out := New(nil, 0, 80, styles.New()).Render()

	assert.Contains(t, out, "Today's appointments (0)")
	assert.Contains(t, out, "No startable appointments")
}

func TestRenderMarksCursorRow(t *testing.T) {
	appointments := []domain.Appointment{
		{ID: "apt-1", ClientName: "Jane Doe", StartTime: "14:00", EndTime: "14:50", TherapyType: "CBT"},
		{ID: "apt-2", ClientID: "cl-2", StartTime: "15:00", EndTime: "15:50"},
	}

	out := New(appointments, 1, 80, styles.New()).Render()

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "> ")
	// The second row has no name, so the client id stands in.
	assert.Contains(t, out, "cl-2")
	assert.Contains(t, out, "CBT")
}
