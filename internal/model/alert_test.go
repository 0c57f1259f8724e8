package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAxis(t *testing.T) {
	assert.Equal(t, AxisHorizontal, ParseAxis("horizontal"))
	assert.Equal(t, AxisVertical, ParseAxis("vertical"))
	assert.Equal(t, AxisVertical, ParseAxis(""))
	assert.Equal(t, AxisVertical, ParseAxis("diagonal"))
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "vertical", AxisVertical.String())
	assert.Equal(t, "horizontal", AxisHorizontal.String())
	assert.Equal(t, "unknown", Axis(42).String())
}

func TestAlertContent_Clone(t *testing.T) {
	c := AlertContent{
		Title:   "Update available",
		Buttons: []ButtonSpec{{Label: "Install"}, {Label: "Later"}},
	}

	clone := c.Clone()
	clone.Buttons[0].Label = "changed"

	assert.Equal(t, "Install", c.Buttons[0].Label)
	assert.Equal(t, "changed", clone.Buttons[0].Label)
}

func TestAlertContent_CloneEmpty(t *testing.T) {
	c := AlertContent{Title: "no buttons"}
	clone := c.Clone()
	assert.Nil(t, clone.Buttons)
}

func TestSameContent(t *testing.T) {
	a := AlertContent{Title: "t", Subtitle: "s", Image: "icon"}
	b := AlertContent{Title: "t", Subtitle: "s", Image: "icon"}
	assert.True(t, SameContent(a, b))

	// Buttons don't affect identity
	b.Buttons = []ButtonSpec{{Label: "OK"}}
	assert.True(t, SameContent(a, b))

	b.Subtitle = "other"
	assert.False(t, SameContent(a, b))
}

func TestAlertContent_HasSubtitle(t *testing.T) {
	assert.False(t, AlertContent{}.HasSubtitle())
	assert.False(t, AlertContent{Subtitle: ""}.HasSubtitle())
	assert.True(t, AlertContent{Subtitle: "details"}.HasSubtitle())
}

func TestAlertContent_Validate(t *testing.T) {
	ok := AlertContent{Buttons: []ButtonSpec{{Label: "OK"}}}
	require.NoError(t, ok.Validate())

	bad := AlertContent{Buttons: []ButtonSpec{{Label: "OK"}, {}}}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestNewHandleID(t *testing.T) {
	a := NewHandleID()
	b := NewHandleID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
