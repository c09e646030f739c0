package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

func TestTracker_FlowsAreIndependent(t *testing.T) {
	tr := NewTracker()

	tr.Select(domain.KindResource, "res-1")
	tr.Select(domain.KindSurvey, "sv-1")
	tr.Select(domain.KindChallenge, "ch-1")

	// Resource assignment fails: its selection stays, others untouched
	assert.True(t, tr.TryBegin(domain.KindResource))
	tr.Finish(domain.KindResource, assert.AnError)

	assert.Equal(t, "res-1", tr.Selected(domain.KindResource))
	assert.Equal(t, "sv-1", tr.Selected(domain.KindSurvey))
	assert.Equal(t, "ch-1", tr.Selected(domain.KindChallenge))

	// Survey assignment succeeds: only its own selection clears
	assert.True(t, tr.TryBegin(domain.KindSurvey))
	tr.Finish(domain.KindSurvey, nil)

	assert.Empty(t, tr.Selected(domain.KindSurvey))
	assert.Equal(t, "res-1", tr.Selected(domain.KindResource))
	assert.Equal(t, "ch-1", tr.Selected(domain.KindChallenge))
}

func TestTracker_PerFlowInFlight(t *testing.T) {
	tr := NewTracker()

	assert.True(t, tr.TryBegin(domain.KindResource))
	assert.False(t, tr.TryBegin(domain.KindResource), "one call per flow at a time")

	// Other flows can still start concurrently
	assert.True(t, tr.TryBegin(domain.KindSurvey))
	assert.True(t, tr.TryBegin(domain.KindChallenge))

	tr.Finish(domain.KindResource, nil)
	assert.False(t, tr.InFlight(domain.KindResource))
	assert.True(t, tr.TryBegin(domain.KindResource))
}

func TestTracker_ItemsAndLoaded(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.Loaded(domain.KindSurvey))

	tr.SetItems(domain.KindSurvey, []domain.Assignable{{ID: "sv-1", Title: "PHQ-9"}})
	assert.True(t, tr.Loaded(domain.KindSurvey))
	assert.Len(t, tr.Items(domain.KindSurvey), 1)
	assert.False(t, tr.Loaded(domain.KindResource))
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	tr.SetItems(domain.KindResource, []domain.Assignable{{ID: "res-1"}})
	tr.Select(domain.KindResource, "res-1")
	tr.TryBegin(domain.KindChallenge)

	tr.Reset()

	assert.False(t, tr.Loaded(domain.KindResource))
	assert.Empty(t, tr.Selected(domain.KindResource))
	assert.False(t, tr.InFlight(domain.KindChallenge))
}
