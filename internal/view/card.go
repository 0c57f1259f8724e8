package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/alertq/internal/model"
	"github.com/jmylchreest/alertq/internal/queue"
	"github.com/jmylchreest/alertq/internal/theme"
)

// Card renders one alert entry as a bordered box.
type Card struct {
	theme       *theme.Theme
	maxWidth    int
	showCounter bool
}

// NewCard creates a card renderer.
func NewCard(th *theme.Theme, maxWidth int, showCounter bool) *Card {
	if th == nil {
		th = theme.Default()
	}
	if maxWidth <= 0 {
		maxWidth = 60
	}
	return &Card{
		theme:       th,
		maxWidth:    maxWidth,
		showCounter: showCounter,
	}
}

// SetTheme swaps the theme, e.g. after a hot reload.
func (c *Card) SetTheme(th *theme.Theme) {
	if th != nil {
		c.theme = th
	}
}

// Render draws the entry. backlog is the pending count shown in the
// badge; selected is the index of the highlighted button. termWidth
// bounds the card so it never over-expands.
func (c *Card) Render(e queue.Entry, backlog, selected, termWidth int) string {
	width := c.maxWidth
	if limit := termWidth - 4; limit > 0 && width > limit {
		width = limit
	}
	inner := width - 4 // border + padding

	var rows []string

	// The image row collapses entirely when no image is set, which
	// also drops the larger top margin.
	if e.Content.Image != "" {
		rows = append(rows, "", centerLine("["+e.Content.Image+"]", inner))
	}

	if e.Content.Title != "" {
		title := e.Content.Title
		if e.StackCount > 1 {
			title = fmt.Sprintf("%s (x%d)", title, e.StackCount)
		}
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.theme.Card.Title))
		rows = append(rows, centerLine(style.Render(title), inner))
	}

	// An absent subtitle omits the row; no space is reserved.
	if e.Content.HasSubtitle() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.theme.Card.Subtitle))
		rows = append(rows, centerLine(style.Render(e.Content.Subtitle), inner))
	}

	if len(e.Content.Buttons) > 0 {
		rows = append(rows, "")
		rows = append(rows, c.renderButtons(e.Content, selected, inner)...)
	}

	if c.showCounter && backlog > 0 {
		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.theme.Badge.Foreground)).
			Background(lipgloss.Color(c.theme.Badge.Background)).
			Padding(0, 1).
			Render(fmt.Sprintf("+%d", backlog))
		rows = append(rows, "", centerLine(badge, inner))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.theme.Card.Border)).
		Padding(0, 1).
		Width(width - 2)

	return box.Render(strings.Join(rows, "\n"))
}

// renderButtons lays the buttons out along the content's axis.
func (c *Card) renderButtons(content model.AlertContent, selected, inner int) []string {
	rendered := make([]string, len(content.Buttons))
	for i, b := range content.Buttons {
		rendered[i] = c.renderButton(b, i == selected)
	}

	if content.Axis == model.AxisHorizontal {
		row := strings.Join(rendered, "  ")
		return []string{centerLine(row, inner)}
	}

	rows := make([]string, len(rendered))
	for i, b := range rendered {
		rows[i] = centerLine(b, inner)
	}
	return rows
}

func (c *Card) renderButton(b model.ButtonSpec, selected bool) string {
	fg, bg := c.theme.Button.Foreground, c.theme.Button.Background
	if selected {
		fg, bg = c.theme.Button.SelectedForeground, c.theme.Button.SelectedBackground
	}
	if b.Color != "" && !selected {
		bg = b.Color
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 2)
	if b.Height > 1 {
		style = style.Height(b.Height)
	}
	return style.Render(b.Label)
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

// Center places pre-rendered content in the middle of the terminal.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxHeight := len(lines)
	boxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > boxWidth {
			boxWidth = w
		}
	}

	padTop := (termHeight - boxHeight) / 2
	padLeft := (termWidth - boxWidth) / 2
	if padTop < 0 {
		padTop = 0
	}
	if padLeft < 0 {
		padLeft = 0
	}

	var result strings.Builder
	for range padTop {
		result.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
	}
	return result.String()
}
