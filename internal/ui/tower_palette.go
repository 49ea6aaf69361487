package ui

import (
	"fmt"
	"image"

	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// TowerPalette is the row of build buttons in the HUD, one per tower type.
type TowerPalette struct {
	Selected string
	ids      []string
	buttons  []*Button
}

// NewTowerPalette lays out one button per id starting at (x, y).
func NewTowerPalette(lib *defs.Library, x, y int, face font.Face) *TowerPalette {
	p := &TowerPalette{}
	for i, id := range lib.TowerOrder {
		def := lib.Towers[id]
		left := x + i*(config.PaletteWidth+6)
		rect := image.Rect(left, y, left+config.PaletteWidth, y+config.ButtonHeight)
		b := NewButton(rect, fmt.Sprintf("%d %s $%d", i+1, def.Name, def.Cost), face)
		b.Color = render.DarkenColor(config.TowerColors[string(def.Kind)])
		p.ids = append(p.ids, id)
		p.buttons = append(p.buttons, b)
	}
	return p
}

// Select выбирает тип по номеру (1-based, как клавиши). Повторный выбор снимает выделение.
func (p *TowerPalette) Select(n int) {
	if n < 1 || n > len(p.ids) {
		return
	}
	id := p.ids[n-1]
	if p.Selected == id {
		p.Selected = ""
		return
	}
	p.Selected = id
}

// HandleClick returns true when the click landed on the palette.
func (p *TowerPalette) HandleClick(x, y int) bool {
	for i, b := range p.buttons {
		if b.Contains(x, y) {
			p.Select(i + 1)
			return true
		}
	}
	return false
}

// Contains reports whether (x, y) is over any palette button.
func (p *TowerPalette) Contains(x, y int) bool {
	for _, b := range p.buttons {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

func (p *TowerPalette) Draw(screen *ebiten.Image, lib *defs.Library, money int, cursorX, cursorY int) {
	for i, b := range p.buttons {
		id := p.ids[i]
		b.Active = id == p.Selected
		b.Enabled = money >= lib.Towers[id].Cost
		b.Draw(screen, b.Contains(cursorX, cursorY))
	}
}
