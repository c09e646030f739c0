// Package draft holds the therapist's in-progress clinical notes between
// autosave flushes. The draft is the source of truth until a flush lands or
// the session end supersedes it.
package draft

import "slices"

// Snapshot is an immutable copy of the draft taken for one flush or for the
// end-of-session payload.
type Snapshot struct {
	Notes          string
	GoalsDiscussed string
	Mood           int
	Techniques     []string
}

// Buffer is the local draft of clinical fields, independent of network
// state. Mutations bump a revision; a flush that started at revision N only
// marks the buffer clean if nothing changed while it was in flight.
type Buffer struct {
	notes          string
	goalsDiscussed string
	mood           int
	techniques     []string

	rev        uint64
	flushedRev uint64
}

// New creates an empty buffer seeded with the session's starting mood.
func New(moodStart int) *Buffer {
	return &Buffer{mood: moodStart}
}

// SetNotes replaces the progress notes
func (b *Buffer) SetNotes(notes string) {
	if b.notes == notes {
		return
	}
	b.notes = notes
	b.rev++
}

// SetGoalsDiscussed replaces the goals-discussed text
func (b *Buffer) SetGoalsDiscussed(goals string) {
	if b.goalsDiscussed == goals {
		return
	}
	b.goalsDiscussed = goals
	b.rev++
}

// SetMood records the client's current mood (clamped to 1..10). The starting
// mood lives on the session record and is never touched here.
func (b *Buffer) SetMood(mood int) {
	if mood < 1 {
		mood = 1
	}
	if mood > 10 {
		mood = 10
	}
	if b.mood == mood {
		return
	}
	b.mood = mood
	b.rev++
}

// Mood returns the current mood value
func (b *Buffer) Mood() int {
	return b.mood
}

// ToggleTechnique adds or removes a technique from the used set
func (b *Buffer) ToggleTechnique(name string) {
	if i := slices.Index(b.techniques, name); i >= 0 {
		b.techniques = slices.Delete(b.techniques, i, i+1)
	} else {
		b.techniques = append(b.techniques, name)
	}
	b.rev++
}

// HasTechnique reports whether a technique is in the used set
func (b *Buffer) HasTechnique(name string) bool {
	return slices.Contains(b.techniques, name)
}

// Snapshot returns a copy of the current draft. End-of-session must call
// this directly rather than rely on the last flush having landed.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{
		Notes:          b.notes,
		GoalsDiscussed: b.goalsDiscussed,
		Mood:           b.mood,
		Techniques:     slices.Clone(b.techniques),
	}
}

// Dirty reports whether the draft has changed since the last landed flush
func (b *Buffer) Dirty() bool {
	return b.rev != b.flushedRev
}

// Revision returns the current mutation counter; pass it back to MarkFlushed
// when the flush that captured it succeeds.
func (b *Buffer) Revision() uint64 {
	return b.rev
}

// MarkFlushed records that the flush which captured revision rev landed.
// Edits made while the flush was in flight keep the buffer dirty.
func (b *Buffer) MarkFlushed(rev uint64) {
	if rev == b.rev {
		b.flushedRev = rev
	}
}

// Reset clears the draft after a successful session end
func (b *Buffer) Reset() {
	*b = Buffer{}
}

// Gate enforces that flushes for a session never overlap: an in-flight
// flush suppresses a new one from starting, and the periodic trigger simply
// reschedules rather than queueing.
type Gate struct {
	inFlight bool
}

// TryAcquire claims the gate for a flush. Returns false when a flush is
// already in flight.
func (g *Gate) TryAcquire() bool {
	if g.inFlight {
		return false
	}
	g.inFlight = true
	return true
}

// Release frees the gate once the flush resolved, success or not
func (g *Gate) Release() {
	g.inFlight = false
}

// InFlight reports whether a flush is currently running
func (g *Gate) InFlight() bool {
	return g.inFlight
}
