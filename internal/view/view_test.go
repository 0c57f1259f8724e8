package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/alertq/internal/model"
	"github.com/jmylchreest/alertq/internal/queue"
)

func renderPlain(c *Card, e queue.Entry, backlog, selected, width int) string {
	return ansi.Strip(c.Render(e, backlog, selected, width))
}

func entry(content model.AlertContent) queue.Entry {
	return queue.Entry{
		Handle:     queue.Handle(model.NewHandleID()),
		Content:    content,
		StackCount: 1,
	}
}

func TestCard_RendersTitleAndSubtitle(t *testing.T) {
	c := NewCard(nil, 40, true)
	out := renderPlain(c, entry(model.AlertContent{Title: "Update", Subtitle: "v2 is out"}), 0, 0, 80)

	assert.Contains(t, out, "Update")
	assert.Contains(t, out, "v2 is out")
}

func TestCard_OmitsEmptySubtitleRow(t *testing.T) {
	c := NewCard(nil, 40, true)

	with := renderPlain(c, entry(model.AlertContent{Title: "T", Subtitle: "S"}), 0, 0, 80)
	without := renderPlain(c, entry(model.AlertContent{Title: "T"}), 0, 0, 80)

	// The subtitle row is not attached at all, so the card is one line shorter.
	assert.Equal(t,
		len(strings.Split(with, "\n"))-1,
		len(strings.Split(without, "\n")),
	)
}

func TestCard_ImageRowCollapsesWhenAbsent(t *testing.T) {
	c := NewCard(nil, 40, true)

	with := renderPlain(c, entry(model.AlertContent{Title: "T", Image: "warning"}), 0, 0, 80)
	without := renderPlain(c, entry(model.AlertContent{Title: "T"}), 0, 0, 80)

	assert.Contains(t, with, "[warning]")
	assert.Greater(t,
		len(strings.Split(with, "\n")),
		len(strings.Split(without, "\n")),
	)
}

func TestCard_VerticalButtonsOnSeparateLines(t *testing.T) {
	c := NewCard(nil, 40, true)
	content := model.AlertContent{
		Title:   "T",
		Buttons: []model.ButtonSpec{{Label: "Install"}, {Label: "Later"}},
		Axis:    model.AxisVertical,
	}
	out := renderPlain(c, entry(content), 0, 0, 80)

	installLine, laterLine := -1, -1
	for i, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Install") {
			installLine = i
		}
		if strings.Contains(line, "Later") {
			laterLine = i
		}
	}
	require.NotEqual(t, -1, installLine)
	require.NotEqual(t, -1, laterLine)
	assert.NotEqual(t, installLine, laterLine)
}

func TestCard_HorizontalButtonsShareALine(t *testing.T) {
	c := NewCard(nil, 40, true)
	content := model.AlertContent{
		Title:   "T",
		Buttons: []model.ButtonSpec{{Label: "Yes"}, {Label: "No"}},
		Axis:    model.AxisHorizontal,
	}
	out := renderPlain(c, entry(content), 0, 0, 80)

	found := false
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Yes") && strings.Contains(line, "No") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCard_BacklogBadge(t *testing.T) {
	c := NewCard(nil, 40, true)
	e := entry(model.AlertContent{Title: "T"})

	assert.Contains(t, renderPlain(c, e, 3, 0, 80), "+3")
	assert.NotContains(t, renderPlain(c, e, 0, 0, 80), "+0")
}

func TestCard_BadgeHiddenWhenCounterDisabled(t *testing.T) {
	c := NewCard(nil, 40, false)
	out := renderPlain(c, entry(model.AlertContent{Title: "T"}), 3, 0, 80)
	assert.NotContains(t, out, "+3")
}

func TestCard_StackCountMarker(t *testing.T) {
	c := NewCard(nil, 40, true)
	e := entry(model.AlertContent{Title: "disk full"})
	e.StackCount = 4

	out := renderPlain(c, e, 0, 0, 80)
	assert.Contains(t, out, "disk full (x4)")
}

func TestCard_ClampsToTerminalWidth(t *testing.T) {
	c := NewCard(nil, 100, true)
	out := renderPlain(c, entry(model.AlertContent{Title: "T"}), 0, 0, 30)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 30)
	}
}

func TestCompose(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")
	overlay := "\n   [hi]"

	out := Compose(base, overlay, 10)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "..........", lines[0])
	assert.Contains(t, lines[1], "[hi]")
	assert.True(t, strings.HasPrefix(lines[1], "..."))
}

func TestCompose_EmptyOverlayLineKeepsBase(t *testing.T) {
	base := "aaaa\nbbbb"
	out := Compose(base, "\n", 4)
	assert.Equal(t, base, out)
}

func TestTermSurface_PresentDismiss(t *testing.T) {
	s := NewTermSurface(NewCard(nil, 40, true))

	assert.False(t, s.Visible())
	assert.Empty(t, s.View(80, 24))

	s.Present(entry(model.AlertContent{Title: "hello"}))
	assert.True(t, s.Visible())
	assert.Contains(t, ansi.Strip(s.View(80, 24)), "hello")

	s.DismissCurrent()
	assert.False(t, s.Visible())
	assert.Empty(t, s.View(80, 24))
}

func TestTermSurface_SelectionClamped(t *testing.T) {
	s := NewTermSurface(NewCard(nil, 40, true))
	s.Present(entry(model.AlertContent{
		Buttons: []model.ButtonSpec{{Label: "a"}, {Label: "b"}},
	}))

	s.MoveSelection(-1)
	assert.Equal(t, 0, s.Selected())

	s.MoveSelection(1)
	assert.Equal(t, 1, s.Selected())

	s.MoveSelection(5)
	assert.Equal(t, 1, s.Selected())
}

func TestTermSurface_SelectionResetsOnNewEntry(t *testing.T) {
	s := NewTermSurface(NewCard(nil, 40, true))
	s.Present(entry(model.AlertContent{
		Buttons: []model.ButtonSpec{{Label: "a"}, {Label: "b"}},
	}))
	s.MoveSelection(1)
	require.Equal(t, 1, s.Selected())

	s.Present(entry(model.AlertContent{Buttons: []model.ButtonSpec{{Label: "c"}}}))
	assert.Equal(t, 0, s.Selected())
}

func TestTermSurface_InvokeSelected(t *testing.T) {
	s := NewTermSurface(NewCard(nil, 40, true))

	invoked := false
	s.Present(entry(model.AlertContent{
		Buttons: []model.ButtonSpec{{Label: "OK", Action: func() { invoked = true }}},
	}))

	assert.True(t, s.InvokeSelected())
	assert.True(t, invoked)

	s.DismissCurrent()
	assert.False(t, s.InvokeSelected())
}

func TestTermSurface_Destroy(t *testing.T) {
	s := NewTermSurface(NewCard(nil, 40, true))
	s.Present(entry(model.AlertContent{Title: "T"}))

	require.True(t, s.Alive())
	s.Destroy()
	assert.False(t, s.Alive())
	assert.False(t, s.Visible())
}
