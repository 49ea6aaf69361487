// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Enabled  bool
	Active   bool // выделена, например выбранный тип башни
	Color    color.RGBA
	fontFace font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:     rect,
		Text:     label,
		Enabled:  true,
		Color:    config.ButtonColor,
		fontFace: face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked is Contains for enabled buttons.
func (b *Button) IsClicked(x, y int) bool {
	return b.Enabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку. hovered берётся из позиции курсора.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	bg := b.Color
	switch {
	case !b.Enabled:
		bg = config.ButtonDisabledColor
	case b.Active:
		bg = config.ButtonActiveColor
	case hovered:
		bg = config.ButtonHoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	border := config.UIBorderColor
	if !b.Enabled {
		border = config.GridLineColor
	}
	vector.StrokeRect(screen, x, y, w, h, config.UIBorderWidth, border, false)
	DrawCenteredText(screen, b.fontFace, b.Text, b.Rect, config.TextLightColor)
}

// DrawCenteredText рисует текст по центру прямоугольника.
func DrawCenteredText(screen *ebiten.Image, face font.Face, s string, rect image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, s)
	tx := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	ty := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, tx, ty, clr)
}
