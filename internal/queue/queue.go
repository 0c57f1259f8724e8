package queue

import (
	"log/slog"
	"time"

	"github.com/jmylchreest/alertq/internal/model"
)

// Handle is an opaque reference to one enqueued alert, used for
// targeted dismissal. Handles are never reused.
type Handle string

// Entry wraps one alert payload while it is owned by the queue.
type Entry struct {
	Handle     Handle
	Content    model.AlertContent
	EnqueuedAt time.Time

	// StackCount is the number of identical alerts folded into this
	// entry. Always 1 unless duplicate stacking is enabled.
	StackCount int
}

// DismissReason indicates why an entry left the queue.
type DismissReason int

const (
	// ReasonDismissed means the entry was visible and got dismissed.
	ReasonDismissed DismissReason = iota + 1
	// ReasonCancelled means the entry was removed while still pending
	// and was never shown.
	ReasonCancelled
)

// String returns the string representation of a DismissReason.
func (r DismissReason) String() string {
	switch r {
	case ReasonDismissed:
		return "dismissed"
	case ReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Presenter receives one-way display notifications from a Queue.
// Calls are fire-and-forget: the queue never consults a return value,
// and visual insertion is assumed to succeed.
type Presenter interface {
	// Present makes the entry the visible alert on the host.
	Present(e Entry)
	// DismissCurrent removes the visible alert from the host.
	DismissCurrent()
	// SetBacklog updates the host's pending-count indicator.
	SetBacklog(n int)
}

// CountMode controls whether the backlog indicator includes the
// currently visible entry.
type CountMode int

const (
	// CountPending counts only entries still waiting to be shown.
	CountPending CountMode = iota
	// CountAll also counts the visible entry.
	CountAll
)

// Option configures a Queue.
type Option func(*Queue)

// WithCountMode sets how the backlog indicator is derived.
func WithCountMode(m CountMode) Option {
	return func(q *Queue) { q.countMode = m }
}

// WithStacking folds an enqueue whose content is identical to the
// visible entry into that entry's stack count instead of appending
// a new pending entry.
func WithStacking() Option {
	return func(q *Queue) { q.stacking = true }
}

// WithObserver registers a callback invoked after an entry leaves the
// queue through Dismiss or DismissActive. Teardown via Clear does not
// notify the observer.
func WithObserver(fn func(e Entry, reason DismissReason)) Option {
	return func(q *Queue) { q.onDismiss = fn }
}

// Queue is a per-host FIFO of alert requests with a single visible
// slot. All methods must be called from the host's UI goroutine; the
// queue performs no locking of its own.
type Queue struct {
	presenter Presenter
	logger    *slog.Logger

	pending []*Entry
	active  *Entry

	countMode CountMode
	stacking  bool
	onDismiss func(e Entry, reason DismissReason)
}

// New creates a Queue relaying side effects to the given presenter.
func New(p Presenter, logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}

	q := &Queue{
		presenter: p,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue buffers an alert for presentation and returns its handle.
// If nothing is currently visible the alert is activated immediately.
// Enqueue always succeeds.
func (q *Queue) Enqueue(content model.AlertContent) Handle {
	if q.stacking && q.active != nil && model.SameContent(q.active.Content, content) {
		q.active.StackCount++
		q.presenter.Present(*q.active)
		q.logger.Debug("stacked duplicate alert",
			"handle", q.active.Handle,
			"stack_count", q.active.StackCount,
		)
		return q.active.Handle
	}

	e := &Entry{
		Handle:     Handle(model.NewHandleID()),
		Content:    content.Clone(),
		EnqueuedAt: time.Now(),
		StackCount: 1,
	}
	q.pending = append(q.pending, e)

	if q.active == nil {
		q.activateNext()
	}
	q.presenter.SetBacklog(q.PendingCount())

	q.logger.Debug("enqueued alert",
		"handle", e.Handle,
		"pending", len(q.pending),
	)
	return e.Handle
}

// DismissActive discards the visible entry and, if more are pending,
// activates the next one in enqueue order. Calling with no visible
// entry is a no-op.
func (q *Queue) DismissActive() {
	if q.active == nil {
		return
	}

	e := *q.active
	q.active = nil
	q.presenter.DismissCurrent()
	if q.onDismiss != nil {
		q.onDismiss(e, ReasonDismissed)
	}

	if len(q.pending) > 0 {
		q.activateNext()
	}
	q.presenter.SetBacklog(q.PendingCount())

	q.logger.Debug("dismissed active alert",
		"handle", e.Handle,
		"pending", len(q.pending),
	)
}

// Dismiss removes the entry the handle refers to. For the visible
// entry it behaves as DismissActive. A still-pending entry is removed
// without any present or dismiss side effect toward the host. A stale
// handle is a silent no-op, so Dismiss is idempotent.
func (q *Queue) Dismiss(h Handle) {
	if q.active != nil && q.active.Handle == h {
		q.DismissActive()
		return
	}

	for i, e := range q.pending {
		if e.Handle != h {
			continue
		}
		removed := *e
		q.pending = append(q.pending[:i], q.pending[i+1:]...)
		if q.onDismiss != nil {
			q.onDismiss(removed, ReasonCancelled)
		}
		q.presenter.SetBacklog(q.PendingCount())

		q.logger.Debug("cancelled pending alert",
			"handle", h,
			"pending", len(q.pending),
		)
		return
	}
}

// PendingCount returns the backlog size per the configured CountMode.
// Always >= 0.
func (q *Queue) PendingCount() int {
	n := len(q.pending)
	if q.countMode == CountAll && q.active != nil {
		n++
	}
	return n
}

// Len returns the total number of entries owned by the queue,
// including the visible one.
func (q *Queue) Len() int {
	n := len(q.pending)
	if q.active != nil {
		n++
	}
	return n
}

// Active returns a copy of the visible entry, if any.
func (q *Queue) Active() (Entry, bool) {
	if q.active == nil {
		return Entry{}, false
	}
	return *q.active, true
}

// ActiveHandle returns the handle of the visible entry, if any.
func (q *Queue) ActiveHandle() (Handle, bool) {
	if q.active == nil {
		return "", false
	}
	return q.active.Handle, true
}

// Clear discards the visible entry and all pending entries without
// invoking any presenter side effect, button action, or observer.
// Used when the host surface is destroyed.
func (q *Queue) Clear() {
	q.active = nil
	q.pending = nil
}

// activateNext pops the head of pending into the visible slot and
// presents it. Caller ensures pending is non-empty and active is nil.
func (q *Queue) activateNext() {
	e := q.pending[0]
	q.pending = q.pending[1:]
	q.active = e
	q.presenter.Present(*e)
}
