// Package assign tracks the three independent pick-and-assign flows
// (resource, survey, challenge). Each flow carries its own in-flight flag so
// the three can proceed concurrently, and a failure in one never touches the
// others or the session lifecycle.
package assign

import (
	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// Kinds lists the flows in display order.
var Kinds = []domain.AssignableKind{
	domain.KindResource,
	domain.KindSurvey,
	domain.KindChallenge,
}

type flow struct {
	items    []domain.Assignable
	selected string
	loaded   bool
	inFlight bool
}

// Tracker holds per-flow state for the assignment side-channel.
type Tracker struct {
	flows map[domain.AssignableKind]*flow
}

// NewTracker creates a tracker with all three flows empty
func NewTracker() *Tracker {
	t := &Tracker{flows: make(map[domain.AssignableKind]*flow, len(Kinds))}
	for _, kind := range Kinds {
		t.flows[kind] = &flow{}
	}
	return t
}

// SetItems records the eligible set for a flow, loaded once when the session
// becomes active.
func (t *Tracker) SetItems(kind domain.AssignableKind, items []domain.Assignable) {
	f := t.flows[kind]
	f.items = items
	f.loaded = true
}

// Items returns the eligible set for a flow
func (t *Tracker) Items(kind domain.AssignableKind) []domain.Assignable {
	return t.flows[kind].items
}

// Loaded reports whether a flow's eligible set has been fetched
func (t *Tracker) Loaded(kind domain.AssignableKind) bool {
	return t.flows[kind].loaded
}

// Select records the therapist's pick in one flow
func (t *Tracker) Select(kind domain.AssignableKind, itemID string) {
	t.flows[kind].selected = itemID
}

// Selected returns the picked item id for a flow, or ""
func (t *Tracker) Selected(kind domain.AssignableKind) string {
	return t.flows[kind].selected
}

// TryBegin claims a flow for an assignment call. Returns false when that
// flow already has one in flight; the other flows are unaffected.
func (t *Tracker) TryBegin(kind domain.AssignableKind) bool {
	f := t.flows[kind]
	if f.inFlight {
		return false
	}
	f.inFlight = true
	return true
}

// Finish resolves a flow's in-flight assignment. Success clears only that
// flow's selection; failure leaves the selection so the therapist can retry.
func (t *Tracker) Finish(kind domain.AssignableKind, err error) {
	f := t.flows[kind]
	f.inFlight = false
	if err == nil {
		f.selected = ""
	}
}

// InFlight reports whether a flow has an assignment call running
func (t *Tracker) InFlight(kind domain.AssignableKind) bool {
	return t.flows[kind].inFlight
}

// Reset clears all flows when the session ends
func (t *Tracker) Reset() {
	for _, kind := range Kinds {
		t.flows[kind] = &flow{}
	}
}
