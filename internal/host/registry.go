package host

import (
	"log/slog"
	"sync"

	"github.com/jmylchreest/alertq/internal/queue"
)

// Surface is a display area an alert can be anchored to. Alive reports
// whether the surface can still render; a dead surface receives no
// further side effects. This is an explicit handle-plus-liveness pair
// rather than a weak reference, so bindings stay portable.
type Surface interface {
	queue.Presenter
	Alive() bool
}

// binding associates one surface with its queue.
type binding struct {
	surface Surface
	queue   *queue.Queue
}

// Registry maps host identifiers to presentation queues, one queue per
// host. Unlike the queues themselves, the registry is safe for
// concurrent use: bindings may be released from watcher goroutines.
type Registry struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	bindings map[string]*binding
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:   logger,
		bindings: make(map[string]*binding),
	}
}

// Bind creates the queue for a host, or returns the existing one when
// the host is already bound. Queue options only apply on first bind.
func (r *Registry) Bind(id string, s Surface, opts ...queue.Option) *queue.Queue {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, exists := r.bindings[id]; exists {
		return b.queue
	}

	q := queue.New(guarded{s}, r.logger, opts...)
	r.bindings[id] = &binding{surface: s, queue: q}

	r.logger.Debug("bound host surface", "host", id)
	return q
}

// Lookup returns the queue bound to a host, if any.
func (r *Registry) Lookup(id string) (*queue.Queue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.bindings[id]
	if !exists {
		return nil, false
	}
	return b.queue, true
}

// Release tears down a host's binding. The queue and all its pending
// entries are discarded without invoking callbacks. Releasing an
// unknown host is a no-op.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, exists := r.bindings[id]
	if !exists {
		return
	}

	b.queue.Clear()
	delete(r.bindings, id)

	r.logger.Debug("released host surface", "host", id)
}

// Sweep releases every binding whose surface is no longer alive and
// returns the number of bindings removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, b := range r.bindings {
		if b.surface.Alive() {
			continue
		}
		b.queue.Clear()
		delete(r.bindings, id)
		removed++

		r.logger.Debug("swept dead host surface", "host", id)
	}
	return removed
}

// Len returns the number of bound hosts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// guarded relays presenter calls only while the surface is alive.
type guarded struct {
	s Surface
}

func (g guarded) Present(e queue.Entry) {
	if g.s.Alive() {
		g.s.Present(e)
	}
}

func (g guarded) DismissCurrent() {
	if g.s.Alive() {
		g.s.DismissCurrent()
	}
}

func (g guarded) SetBacklog(n int) {
	if g.s.Alive() {
		g.s.SetBacklog(n)
	}
}
