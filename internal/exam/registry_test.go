package exam

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOwnership(t *testing.T) {
	r := NewRegistry()
	s, err := NewSession(r.NewID(), "alice", fourQuestions(), 10, time.Now(), nil)
	require.NoError(t, err)
	r.Put(s, "alice", nil)

	got, err := r.Get(s.ID, "alice")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = r.Get(s.ID, "bob")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, r.Remove(s.ID, "bob"), ErrSessionNotFound)

	_, err = r.Get(s.ID, "")
	assert.ErrorIs(t, err, ErrSessionNotFound, "an empty owner never matches")

	require.NoError(t, r.Remove(s.ID, "alice"))
	_, err = r.Get(s.ID, "alice")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, r.Len())
}

func TestRegistryIDsAreUnique(t *testing.T) {
	r := NewRegistry()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := r.NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestRegistrySweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	r := NewRegistry()
	r.now = func() time.Time { return now }

	stale, _ := NewSession("stale", "u", fourQuestions(), 10, now, nil)
	fresh, _ := NewSession("fresh", "u", fourQuestions(), 10, now, nil)
	stale.Submit(TriggerManual)
	fresh.Submit(TriggerManual)

	ctx, cancel := context.WithCancel(context.Background())
	r.Put(stale, "u", cancel)
	now = now.Add(20 * time.Minute)
	r.Put(fresh, "u", nil)

	assert.Equal(t, 1, r.Sweep(15*time.Minute))
	assert.Error(t, ctx.Err(), "evicted session clock must be cancelled")

	_, err := r.Get("fresh", "u")
	assert.NoError(t, err)
	_, err = r.Get("stale", "u")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistrySweepKeepsRunningSessions(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	r := NewRegistry()
	r.now = func() time.Time { return now }

	long, _ := NewSession("long", "u", fourQuestions(), 600, now, nil)
	ctx, cancel := context.WithCancel(context.Background())
	r.Put(long, "u", cancel)

	now = now.Add(7 * time.Hour)
	assert.Zero(t, r.Sweep(6*time.Hour))
	assert.NoError(t, ctx.Err())
	assert.Equal(t, 1, r.Len())

	// Idleness counts from the last sweep that saw the clock running.
	long.Submit(TriggerTimeout)
	now = now.Add(5 * time.Hour)
	assert.Zero(t, r.Sweep(6*time.Hour))
	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, r.Sweep(6*time.Hour))
	assert.Error(t, ctx.Err())
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	s, _ := NewSession("s", "u", fourQuestions(), 10, time.Now(), nil)
	r.Put(s, "u", cancel)
	r.Close()
	assert.Zero(t, r.Len())
	assert.Error(t, ctx.Err())
}
