package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/alertq/internal/audio"
	"github.com/jmylchreest/alertq/internal/theme"
	"github.com/jmylchreest/alertq/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive demo TUI",
	Long: `Launch the interactive demo, presenting queued alerts on a
terminal surface.

Key bindings:
  n           Enqueue a sample alert
  d, esc      Dismiss the visible alert
  u           Cancel the newest pending alert
  ←/→, ↑/↓    Move button selection
  enter       Press the selected button
  ?           Show help
  q           Quit`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	loader := theme.NewLoader(logger)
	th := loader.Load(cfg.Theme.Name)
	defer loader.Close()

	cue := audio.NewCue(cfg.Sound.File, cfg.Sound.Volume, cfg.Sound.Enabled, logger)

	m := tui.New(cfg, th, cue)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Push theme edits into the running program.
	if err := loader.Watch(func(t *theme.Theme) {
		p.Send(tui.ThemeReloadedMsg{Theme: t})
	}); err != nil {
		logger.Warn("theme hot-reload unavailable", "error", err)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo TUI failed: %w", err)
	}
	return nil
}
