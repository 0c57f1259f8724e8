package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/alertq/internal/config"
	"github.com/jmylchreest/alertq/internal/theme"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return New(config.DefaultConfig(), theme.Default(), nil)
}

func TestModel_EnqueueShowsAlert(t *testing.T) {
	m := newTestModel(t)
	require.False(t, m.surface.Visible())

	m.Update(keyMsg("n"))

	assert.True(t, m.surface.Visible())
	assert.Equal(t, 0, m.queue.PendingCount())

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Update available")
}

func TestModel_BacklogGrows(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("n"))
	m.Update(keyMsg("n"))
	m.Update(keyMsg("n"))

	assert.Equal(t, 2, m.queue.PendingCount())
	assert.Contains(t, ansi.Strip(m.View()), "+2")
}

func TestModel_DismissAdvances(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("n")) // "Update available" shown
	m.Update(keyMsg("n")) // "Disk space low" pending

	m.Update(keyMsg("d"))

	assert.True(t, m.surface.Visible())
	assert.Contains(t, ansi.Strip(m.View()), "Disk space low")
	assert.Equal(t, 0, m.queue.PendingCount())
}

func TestModel_DismissLastEmptiesQueue(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("n"))
	m.Update(keyMsg("d"))

	assert.False(t, m.surface.Visible())
	assert.Equal(t, 0, m.queue.Len())
}

func TestModel_CancelNewestPending(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("n"))
	m.Update(keyMsg("n"))
	m.Update(keyMsg("n"))
	require.Equal(t, 2, m.queue.PendingCount())

	m.Update(keyMsg("u"))
	assert.Equal(t, 1, m.queue.PendingCount())
	assert.True(t, m.surface.Visible())

	// With nothing pending the key is a no-op.
	m.Update(keyMsg("u"))
	m.Update(keyMsg("u"))
	assert.Equal(t, 0, m.queue.PendingCount())
	assert.True(t, m.surface.Visible())
}

func TestModel_InvokeButtonDismisses(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("n"))
	require.True(t, m.surface.Visible())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.surface.Visible())

	found := false
	for _, l := range m.log {
		if strings.Contains(l.text, "install pressed") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestModel_ButtonSelection(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyMsg("n")) // two buttons

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.surface.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.surface.Selected())
}

func TestModel_WindowResize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestModel_ThemeReload(t *testing.T) {
	m := newTestModel(t)
	loader := theme.NewLoader(nil)
	mono := loader.Load("mono")

	m.Update(ThemeReloadedMsg{Theme: mono})

	found := false
	for _, l := range m.log {
		if strings.Contains(l.text, "theme reloaded: mono") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestModel_QuitReleasesHost(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyMsg("n"))
	require.Equal(t, 1, m.registry.Len())

	_, cmd := m.Update(keyMsg("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.registry.Len())
}
