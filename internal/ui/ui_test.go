package ui

import (
	"image"
	"testing"

	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 10: "X", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), "n=%d", n)
	}
}

func TestWaveLabel(t *testing.T) {
	assert.Equal(t, "- / X", waveLabel(0, 10))
	assert.Equal(t, "III / XV", waveLabel(3, 15))
}

func TestPlayerHealthIndicator_State(t *testing.T) {
	i := NewPlayerHealthIndicator(0, 0)

	empty, c := i.getHealthState(1)
	assert.Equal(t, 0, empty)
	assert.Equal(t, config.LivesFullColor, c)

	empty, c = i.getHealthState(0.45)
	assert.Equal(t, 5, empty)
	assert.Equal(t, config.LivesWarningColor, c)

	empty, c = i.getHealthState(0.1)
	assert.Equal(t, 9, empty)
	assert.Equal(t, config.LivesCriticalColor, c)

	empty, c = i.getHealthState(0)
	assert.Equal(t, 10, empty)
	assert.Equal(t, config.LivesEmptyColor, c)
}

func TestButton_ClickNeedsEnabled(t *testing.T) {
	b := &Button{Rect: image.Rect(10, 10, 50, 30), Enabled: true}
	assert.True(t, b.IsClicked(10, 10))
	assert.False(t, b.IsClicked(50, 30))

	b.Enabled = false
	assert.True(t, b.Contains(20, 20))
	assert.False(t, b.IsClicked(20, 20))
}

func TestRoundButtons_HitCircle(t *testing.T) {
	p := NewPauseButton(100, 20, 10)
	assert.True(t, p.IsClicked(110, 20))
	assert.False(t, p.IsClicked(130, 20))

	s := NewSpeedButton(0, 0, 10)
	assert.Equal(t, 1, s.Multiplier())
	s.ToggleState()
	assert.Equal(t, 2, s.Multiplier())
	s.ToggleState()
	assert.Equal(t, 4, s.Multiplier())
	s.ToggleState()
	assert.Equal(t, 1, s.Multiplier())
}

func TestTowerPalette_SelectAndToggle(t *testing.T) {
	lib := defs.DefaultLibrary()
	p := NewTowerPalette(lib, 10, 7, basicfont.Face7x13)

	assert.True(t, p.HandleClick(20, 20))
	assert.Equal(t, "BASIC", p.Selected)

	p.Select(4)
	assert.Equal(t, "MULTISHOT", p.Selected)
	p.Select(4)
	assert.Empty(t, p.Selected, "selecting the same type twice clears it")

	p.Select(9)
	assert.Empty(t, p.Selected)
	assert.False(t, p.HandleClick(20, 200))
}

func TestInfoPanel_NoTargetNoAction(t *testing.T) {
	p := NewInfoPanel(basicfont.Face7x13)
	assert.False(t, p.Contains(10, config.ScreenHeight-10))
	assert.Equal(t, PanelNone, p.HandleClick(10, config.ScreenHeight-10))

	p.SetTarget(7)
	assert.True(t, p.IsVisible)
	assert.Equal(t, types.EntityID(7), p.TargetEntity)
}
