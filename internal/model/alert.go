// Package model defines the core data structures for alertq.
package model

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Axis selects the layout direction for an alert's button row.
type Axis int

const (
	// AxisVertical stacks buttons top-to-bottom.
	AxisVertical Axis = iota
	// AxisHorizontal lays buttons out left-to-right.
	AxisHorizontal
)

// AxisNames maps axis values to human-readable names.
var AxisNames = map[Axis]string{
	AxisVertical:   "vertical",
	AxisHorizontal: "horizontal",
}

// String returns the string representation of an Axis.
func (a Axis) String() string {
	if name, ok := AxisNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAxis converts a config string into an Axis. Unknown values
// fall back to vertical.
func ParseAxis(s string) Axis {
	if s == "horizontal" {
		return AxisHorizontal
	}
	return AxisVertical
}

// ButtonSpec describes one action button on an alert.
// Order within AlertContent.Buttons is presentation order.
type ButtonSpec struct {
	Label        string `json:"label" yaml:"label"`
	Color        string `json:"color,omitempty" yaml:"color,omitempty"`
	CornerRadius int    `json:"corner_radius,omitempty" yaml:"corner_radius,omitempty"`
	Height       int    `json:"height,omitempty" yaml:"height,omitempty"`

	// Action is invoked when the button is triggered. Never serialized.
	Action func() `json:"-" yaml:"-"`
}

// AlertContent is the immutable visual payload of one alert.
// All fields are optional; an alert with no title, subtitle, image or
// buttons is still valid and renders as an empty card.
//
// Callers own the value until it is enqueued; the queue copies it, so
// later mutation of the caller's value has no effect on a pending or
// visible alert.
type AlertContent struct {
	Title    string       `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string       `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Image    string       `json:"image,omitempty" yaml:"image,omitempty"`
	Buttons  []ButtonSpec `json:"buttons,omitempty" yaml:"buttons,omitempty"`
	Axis     Axis         `json:"-" yaml:"-"`

	// AxisName carries the axis through serialized alert files.
	AxisName string `json:"axis,omitempty" yaml:"axis,omitempty"`
}

// Clone returns a deep copy of the content. The queue clones on
// enqueue so entry payloads are independent of the caller's value.
func (c AlertContent) Clone() AlertContent {
	out := c
	if len(c.Buttons) > 0 {
		out.Buttons = make([]ButtonSpec, len(c.Buttons))
		copy(out.Buttons, c.Buttons)
	}
	return out
}

// SameContent reports whether two alerts are visually identical for
// duplicate stacking. Buttons are ignored: two alerts with the same
// text and image stack even if their actions differ.
func SameContent(a, b AlertContent) bool {
	return a.Title == b.Title &&
		a.Subtitle == b.Subtitle &&
		a.Image == b.Image
}

// HasSubtitle reports whether the subtitle row should be attached.
// An absent or empty subtitle omits the row entirely; it does not
// reserve space.
func (c AlertContent) HasSubtitle() bool {
	return c.Subtitle != ""
}

// ErrEmptyLabel is returned for a button with no label.
var ErrEmptyLabel = errors.New("button label cannot be empty")

// Validate checks button specs. Content fields themselves are always
// valid by construction.
func (c AlertContent) Validate() error {
	for i, b := range c.Buttons {
		if b.Label == "" {
			return fmt.Errorf("button %d: %w", i, ErrEmptyLabel)
		}
	}
	return nil
}

// NewHandleID generates a ULID used to identify one queue entry.
func NewHandleID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}
