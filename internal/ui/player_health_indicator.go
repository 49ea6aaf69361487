// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthBarHeight  = 10.0
	HealthBarSpacing = 2.0
	HealthTotalWidth = 120.0
)

// PlayerHealthIndicator отображает жизни игрока в виде сегментированного бара.
type PlayerHealthIndicator struct {
	X, Y     float32
	Segments int
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		X:        x,
		Y:        y,
		Segments: config.LivesSegments,
	}
}

// Draw рисует индикатор здоровья игрока в виде сегментированного бара.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	percentage := float32(0)
	if maxLives > 0 && lives > 0 {
		percentage = float32(lives) / float32(maxLives)
	}

	segmentWidth := (HealthTotalWidth - float32(i.Segments-1)*HealthBarSpacing) / float32(i.Segments)
	currentX := i.X

	emptySegments, activeColor := i.getHealthState(percentage)

	for j := 0; j < i.Segments; j++ {
		fillColor := activeColor
		if j >= i.Segments-emptySegments {
			fillColor = config.LivesEmptyColor
		}
		vector.DrawFilledRect(screen, currentX, i.Y, segmentWidth, HealthBarHeight, fillColor, false)
		vector.StrokeRect(screen, currentX, i.Y, segmentWidth, HealthBarHeight, 1, config.UIBorderColor, false)
		currentX += segmentWidth + HealthBarSpacing
	}
}

// getHealthState определяет, сколько сегментов должно быть пустым и какой цвет у активных.
func (i *PlayerHealthIndicator) getHealthState(percentage float32) (int, color.RGBA) {
	// Сегменты пустеют справа налево
	activeSegments := 0
	for k := 0; k < i.Segments; k++ {
		if percentage > float32(k)/float32(i.Segments) {
			activeSegments++
		}
	}
	emptyCount := i.Segments - activeSegments

	var activeColor color.RGBA
	switch {
	case percentage <= 0:
		activeColor = config.LivesEmptyColor
	case percentage < 0.20:
		activeColor = config.LivesCriticalColor
	case percentage < 0.50:
		activeColor = config.LivesWarningColor
	default:
		activeColor = config.LivesFullColor
	}
	return emptyCount, activeColor
}

// GetWidth возвращает общую ширину индикатора.
func (i *PlayerHealthIndicator) GetWidth() float32 {
	return HealthTotalWidth
}
