package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_SeedsMoodFromStart(t *testing.T) {
	b := New(4)
	assert.Equal(t, 4, b.Mood())
	assert.False(t, b.Dirty())
}

func TestBuffer_DirtyTracking(t *testing.T) {
	b := New(5)

	b.SetNotes("client arrived on time")
	assert.True(t, b.Dirty())

	rev := b.Revision()
	b.MarkFlushed(rev)
	assert.False(t, b.Dirty())

	// Setting the same value again is not a change
	b.SetNotes("client arrived on time")
	assert.False(t, b.Dirty())
}

func TestBuffer_EditDuringFlushStaysDirty(t *testing.T) {
	b := New(5)
	b.SetNotes("first")

	// Flush captures revision, then the therapist keeps typing
	rev := b.Revision()
	snap := b.Snapshot()
	b.SetNotes("first, and then some")

	b.MarkFlushed(rev)
	assert.True(t, b.Dirty(), "edits made while the flush was in flight must keep the buffer dirty")
	assert.Equal(t, "first", snap.Notes, "the flush carries the snapshot it captured")
	assert.Equal(t, "first, and then some", b.Snapshot().Notes, "the live draft carries the newest text")
}

func TestBuffer_MoodClamped(t *testing.T) {
	b := New(5)

	b.SetMood(0)
	assert.Equal(t, 1, b.Mood())

	b.SetMood(99)
	assert.Equal(t, 10, b.Mood())
}

func TestBuffer_Techniques(t *testing.T) {
	b := New(5)

	b.ToggleTechnique("CBT")
	b.ToggleTechnique("Mindfulness")
	assert.True(t, b.HasTechnique("CBT"))
	assert.Equal(t, []string{"CBT", "Mindfulness"}, b.Snapshot().Techniques)

	b.ToggleTechnique("CBT")
	assert.False(t, b.HasTechnique("CBT"))
	assert.Equal(t, []string{"Mindfulness"}, b.Snapshot().Techniques)
}

func TestBuffer_SnapshotIsACopy(t *testing.T) {
	b := New(5)
	b.ToggleTechnique("DBT")

	snap := b.Snapshot()
	b.ToggleTechnique("EMDR")

	assert.Equal(t, []string{"DBT"}, snap.Techniques)
}

func TestBuffer_Reset(t *testing.T) {
	b := New(6)
	b.SetNotes("notes")
	b.ToggleTechnique("CBT")

	b.Reset()

	snap := b.Snapshot()
	assert.Empty(t, snap.Notes)
	assert.Empty(t, snap.Techniques)
	assert.False(t, b.Dirty())
}

func TestGate_SuppressesOverlap(t *testing.T) {
	var g Gate

	assert.True(t, g.TryAcquire())
	assert.True(t, g.InFlight())

	// A second flush while one is in flight is suppressed, not queued
	assert.False(t, g.TryAcquire())

	g.Release()
	assert.False(t, g.InFlight())
	assert.True(t, g.TryAcquire())
}
