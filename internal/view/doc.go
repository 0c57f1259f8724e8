// Package view renders alert cards for terminal hosts. It draws the
// card with lipgloss, composites it over a background view, and
// provides the terminal implementation of a host surface.
package view
