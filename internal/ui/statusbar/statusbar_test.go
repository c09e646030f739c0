package statusbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marisolhealth/sessiondesk/internal/domain"
	"github.com/marisolhealth/sessiondesk/internal/ui/styles"
)

func TestRender_ShowsPhaseBadge(t *testing.T) {
	sb := New(domain.PhaseActive, true, 120, styles.New())
	out := sb.Render()

	assert.Contains(t, out, "IN SESSION")
	assert.Contains(t, out, "e: end")
	assert.NotContains(t, out, "OFFLINE")
}

func TestRender_OfflineIndicator(t *testing.T) {
	sb := New(domain.PhaseNoSession, false, 120, styles.New())
	out := sb.Render()

	assert.Contains(t, out, "OFFLINE")
	assert.Contains(t, out, "NO SESSION")
}

func TestGetHints_PerPhase(t *testing.T) {
	assert.Contains(t, GetHints(domain.PhaseNoSession), "Enter: start")
	assert.Contains(t, GetHints(domain.PhaseActive), "s: save now")
	assert.True(t, strings.Contains(GetHints(domain.PhaseStarting), "starting"))
	assert.True(t, strings.Contains(GetHints(domain.PhaseEnding), "ending"))
}
