package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/alertq/internal/model"
	"github.com/jmylchreest/alertq/internal/queue"
)

// fakeSurface is a Surface whose liveness can be toggled.
type fakeSurface struct {
	alive     bool
	presented int
	dismissed int
	backlog   int
}

func (s *fakeSurface) Present(queue.Entry) { s.presented++ }
func (s *fakeSurface) DismissCurrent()     { s.dismissed++ }
func (s *fakeSurface) SetBacklog(n int)    { s.backlog = n }
func (s *fakeSurface) Alive() bool         { return s.alive }

func TestRegistry_BindIsOneToOne(t *testing.T) {
	r := NewRegistry(nil)
	s := &fakeSurface{alive: true}

	q1 := r.Bind("main", s)
	q2 := r.Bind("main", s)

	assert.Same(t, q1, q2)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry(nil)
	s := &fakeSurface{alive: true}

	_, found := r.Lookup("main")
	assert.False(t, found)

	q := r.Bind("main", s)
	got, found := r.Lookup("main")
	require.True(t, found)
	assert.Same(t, q, got)
}

func TestRegistry_ReleaseDiscardsSilently(t *testing.T) {
	r := NewRegistry(nil)
	s := &fakeSurface{alive: true}

	q := r.Bind("main", s)
	q.Enqueue(model.AlertContent{Title: "A"})
	q.Enqueue(model.AlertContent{Title: "B"})

	dismissedBefore := s.dismissed
	r.Release("main")

	// Pending entries are dropped without a dismissal side effect.
	assert.Equal(t, dismissedBefore, s.dismissed)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 0, r.Len())

	// Releasing again is a no-op.
	r.Release("main")
}

func TestRegistry_DeadSurfaceGetsNoSideEffects(t *testing.T) {
	r := NewRegistry(nil)
	s := &fakeSurface{alive: true}

	q := r.Bind("main", s)
	q.Enqueue(model.AlertContent{Title: "A"})
	require.Equal(t, 1, s.presented)

	s.alive = false
	q.Enqueue(model.AlertContent{Title: "B"})
	q.DismissActive()

	assert.Equal(t, 1, s.presented)
	assert.Zero(t, s.dismissed)
}

func TestRegistry_Sweep(t *testing.T) {
	r := NewRegistry(nil)
	dead := &fakeSurface{alive: false}
	live := &fakeSurface{alive: true}

	r.Bind("dead", dead)
	r.Bind("live", live)

	removed := r.Sweep()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, r.Len())
	_, found := r.Lookup("live")
	assert.True(t, found)
	_, found = r.Lookup("dead")
	assert.False(t, found)
}

func TestRegistry_QueueOptionsApplyOnFirstBind(t *testing.T) {
	r := NewRegistry(nil)
	s := &fakeSurface{alive: true}

	q := r.Bind("main", s, queue.WithCountMode(queue.CountAll))
	q.Enqueue(model.AlertContent{Title: "A"})

	assert.Equal(t, 1, q.PendingCount())
}
