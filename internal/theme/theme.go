// Package theme provides terminal color themes for alert cards.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// CardColors styles the alert card frame and text rows.
type CardColors struct {
	Border   string `toml:"border"`
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Hint     string `toml:"hint"`
}

// ButtonColors styles the action buttons.
type ButtonColors struct {
	Foreground         string `toml:"foreground"`
	Background         string `toml:"background"`
	SelectedForeground string `toml:"selected_foreground"`
	SelectedBackground string `toml:"selected_background"`
}

// BadgeColors styles the backlog counter badge.
type BadgeColors struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// Theme is a named set of terminal colors. Color values are lipgloss
// color strings (ANSI 256 indexes or hex).
type Theme struct {
	Name   string       `toml:"name"`
	Card   CardColors   `toml:"card"`
	Button ButtonColors `toml:"button"`
	Badge  BadgeColors  `toml:"badge"`

	// Path and ModTime are set for themes loaded from disk; empty for
	// embedded themes.
	Path    string    `toml:"-"`
	ModTime time.Time `toml:"-"`
}

// Default returns the built-in default theme.
func Default() *Theme {
	t, err := parse([]byte(mustEmbedded(DefaultThemeName)))
	if err != nil {
		// The embedded default is validated by tests; this is unreachable
		// for a well-formed build.
		panic(err)
	}
	return t
}

// parse decodes a TOML theme document.
func parse(data []byte) (*Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	return &t, nil
}

// FromFile loads a theme from a TOML file on disk.
func FromFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	t, err := parse(data)
	if err != nil {
		return nil, err
	}
	if t.Name == "" {
		t.Name = nameFromPath(path)
	}
	t.Path = path
	t.ModTime = info.ModTime()
	return t, nil
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
