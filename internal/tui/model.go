// Package tui provides the BubbleTea-based demo interface. It binds a
// presentation queue to a terminal surface and lets the user enqueue,
// dismiss, and act on alerts while watching the backlog.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/alertq/internal/audio"
	"github.com/jmylchreest/alertq/internal/config"
	"github.com/jmylchreest/alertq/internal/host"
	"github.com/jmylchreest/alertq/internal/model"
	"github.com/jmylchreest/alertq/internal/queue"
	"github.com/jmylchreest/alertq/internal/theme"
	"github.com/jmylchreest/alertq/internal/view"
)

// hostID identifies the single terminal surface the demo binds.
const hostID = "terminal"

// maxLogLines bounds the event log pane.
const maxLogLines = 12

// ThemeReloadedMsg carries a hot-reloaded theme into the model.
type ThemeReloadedMsg struct {
	Theme *theme.Theme
}

// logLine is one entry in the background event pane.
type logLine struct {
	when time.Time
	text string
}

// Model is the demo TUI model.
type Model struct {
	cfg      *config.Config
	registry *host.Registry
	queue    *queue.Queue
	surface  *view.TermSurface
	card     *view.Card
	cue      *audio.Cue

	keys KeyMap
	help help.Model

	width  int
	height int

	log     []logLine
	pending []queue.Handle
	sample  int
}

// New constructs the demo model, binding the terminal surface through
// the host registry.
func New(cfg *config.Config, th *theme.Theme, cue *audio.Cue) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	card := view.NewCard(th, cfg.Display.MaxWidth, cfg.Display.ShowCounter)
	surface := view.NewTermSurface(card)
	registry := host.NewRegistry(nil)

	opts := []queue.Option{}
	if cfg.Display.CountMode == "all" {
		opts = append(opts, queue.WithCountMode(queue.CountAll))
	}
	if cfg.Display.StackDuplicates {
		opts = append(opts, queue.WithStacking())
	}

	m := &Model{
		cfg:      cfg,
		registry: registry,
		surface:  surface,
		card:     card,
		cue:      cue,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
	m.queue = registry.Bind(hostID, surface, opts...)
	m.logf("bound queue to %s surface", hostID)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ThemeReloadedMsg:
		m.card.SetTheme(msg.Theme)
		m.logf("theme reloaded: %s", msg.Theme.Name)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.registry.Release(hostID)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Enqueue):
		m.enqueueSample()

	case key.Matches(msg, m.keys.Dismiss):
		if h, ok := m.queue.ActiveHandle(); ok {
			m.dropPending(h)
			m.queue.DismissActive()
			m.logf("dismissed alert")
			m.cueIfPresented()
		}

	case key.Matches(msg, m.keys.CancelPending):
		m.cancelNewestPending()

	case key.Matches(msg, m.keys.Prev):
		m.surface.MoveSelection(-1)

	case key.Matches(msg, m.keys.Next):
		m.surface.MoveSelection(1)

	case key.Matches(msg, m.keys.Invoke):
		if m.surface.InvokeSelected() {
			if h, ok := m.queue.ActiveHandle(); ok {
				m.dropPending(h)
			}
			m.queue.DismissActive()
			m.cueIfPresented()
		}
	}
	return m, nil
}

// enqueueSample enqueues the next canned alert.
func (m *Model) enqueueSample() {
	content := m.nextSample()
	h := m.queue.Enqueue(content)
	m.pending = append(m.pending, h)
	m.logf("enqueued %q (backlog %d)", content.Title, m.queue.PendingCount())
	m.cueIfPresented()
}

// cueIfPresented plays the sound cue when an alert just became
// visible.
func (m *Model) cueIfPresented() {
	if m.cue != nil && m.surface.Visible() {
		m.cue.Play()
	}
}

// cancelNewestPending dismisses the most recently enqueued entry that
// is not yet visible.
func (m *Model) cancelNewestPending() {
	active, hasActive := m.queue.ActiveHandle()
	for i := len(m.pending) - 1; i >= 0; i-- {
		h := m.pending[i]
		if hasActive && h == active {
			continue
		}
		m.pending = append(m.pending[:i], m.pending[i+1:]...)
		m.queue.Dismiss(h)
		m.logf("cancelled pending alert (backlog %d)", m.queue.PendingCount())
		return
	}
}

// dropPending removes a handle from the local bookkeeping slice.
func (m *Model) dropPending(h queue.Handle) {
	for i, p := range m.pending {
		if p == h {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// nextSample rotates through canned alert contents.
func (m *Model) nextSample() model.AlertContent {
	axis := model.ParseAxis(m.cfg.Display.Axis)
	samples := []model.AlertContent{
		{
			Title:    "Update available",
			Subtitle: "Version 2.4 is ready to install",
			Image:    "software-update",
			Axis:     axis,
			Buttons: []model.ButtonSpec{
				{Label: "Install", Action: func() { m.logf("install pressed") }},
				{Label: "Later", Action: func() { m.logf("later pressed") }},
			},
		},
		{
			Title: "Disk space low",
			Axis:  axis,
			Buttons: []model.ButtonSpec{
				{Label: "OK", Action: func() { m.logf("acknowledged") }},
			},
		},
		{
			Title:    "Backup finished",
			Subtitle: "142 files copied",
			Axis:     axis,
		},
	}

	content := samples[m.sample%len(samples)]
	m.sample++
	return content
}

func (m *Model) logf(format string, args ...any) {
	m.log = append(m.log, logLine{when: time.Now(), text: fmt.Sprintf(format, args...)})
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	base := m.background()
	if !m.surface.Visible() {
		return base
	}
	overlay := m.surface.View(m.width, m.height)
	return view.Compose(base, overlay, m.width)
}

// background renders the event log pane and help footer.
func (m *Model) background() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	dimStyle := lipgloss.NewStyle().Faint(true)

	lines := []string{titleStyle.Render("alertq demo"), ""}
	for _, l := range m.log {
		lines = append(lines, fmt.Sprintf("  %s  %s", dimStyle.Render(humanize.Time(l.when)), l.text))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	footer := m.help.View(m.keys)

	gap := m.height - lipgloss.Height(body) - lipgloss.Height(footer) - 1
	if gap < 0 {
		gap = 0
	}
	return body + strings.Repeat("\n", gap+1) + footer
}
