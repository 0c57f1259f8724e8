package view

import (
	"github.com/jmylchreest/alertq/internal/queue"
)

// TermSurface is the terminal host surface. It holds the currently
// visible entry and the backlog count, and renders them on demand.
// Like the queue it serves, it expects single-goroutine access.
type TermSurface struct {
	card *Card

	entry    queue.Entry
	visible  bool
	backlog  int
	selected int
	dead     bool
}

// NewTermSurface creates a terminal surface rendering with the given card.
func NewTermSurface(card *Card) *TermSurface {
	return &TermSurface{card: card}
}

// Present implements queue.Presenter.
func (s *TermSurface) Present(e queue.Entry) {
	// A re-present of the same entry (stacking) keeps the selection.
	if !s.visible || s.entry.Handle != e.Handle {
		s.selected = 0
	}
	s.entry = e
	s.visible = true
}

// DismissCurrent implements queue.Presenter.
func (s *TermSurface) DismissCurrent() {
	s.visible = false
	s.entry = queue.Entry{}
	s.selected = 0
}

// SetBacklog implements queue.Presenter.
func (s *TermSurface) SetBacklog(n int) {
	s.backlog = n
}

// Alive implements host.Surface.
func (s *TermSurface) Alive() bool {
	return !s.dead
}

// Destroy marks the surface dead. Further side effects are dropped by
// the host binding.
func (s *TermSurface) Destroy() {
	s.dead = true
	s.visible = false
}

// Visible reports whether an alert is currently shown.
func (s *TermSurface) Visible() bool {
	return s.visible
}

// Entry returns the visible entry. Only meaningful while Visible.
func (s *TermSurface) Entry() queue.Entry {
	return s.entry
}

// Backlog returns the last backlog count pushed by the queue.
func (s *TermSurface) Backlog() int {
	return s.backlog
}

// Selected returns the highlighted button index.
func (s *TermSurface) Selected() int {
	return s.selected
}

// MoveSelection shifts the highlighted button by delta, clamped to the
// button range.
func (s *TermSurface) MoveSelection(delta int) {
	if !s.visible {
		return
	}
	n := len(s.entry.Content.Buttons)
	if n == 0 {
		return
	}
	s.selected += delta
	if s.selected < 0 {
		s.selected = 0
	}
	if s.selected >= n {
		s.selected = n - 1
	}
}

// InvokeSelected runs the highlighted button's action, if it has one.
// Returns whether a button was invoked.
func (s *TermSurface) InvokeSelected() bool {
	if !s.visible || s.selected >= len(s.entry.Content.Buttons) {
		return false
	}
	b := s.entry.Content.Buttons[s.selected]
	if b.Action != nil {
		b.Action()
	}
	return true
}

// View renders the visible alert centered in the terminal, or an empty
// string when nothing is shown.
func (s *TermSurface) View(termWidth, termHeight int) string {
	if !s.visible {
		return ""
	}
	box := s.card.Render(s.entry, s.backlog, s.selected, termWidth)
	return Center(box, termWidth, termHeight)
}
