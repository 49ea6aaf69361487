package render

import (
	"image/color"

	"go-path-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TileRenderer рисует статичный фон карты: клетки, маршрут и запретные зоны.
type TileRenderer struct {
	mapDef       defs.MapDefinition
	pathTiles    map[defs.Tile]bool
	colors       *MapColors
	screenWidth  int
	screenHeight int
	mapImage     *ebiten.Image // Поле для предрендеренной карты
}

func NewTileRenderer(mapDef defs.MapDefinition, colors *MapColors, screenWidth, screenHeight int) *TileRenderer {
	r := &TileRenderer{
		mapDef:       mapDef,
		pathTiles:    mapDef.PathTiles(),
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	// Отрисовываем карту один раз при инициализации
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *TileRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	size := float32(r.mapDef.TileSize)
	for y := 0; y < r.mapDef.Height; y++ {
		for x := 0; x < r.mapDef.Width; x++ {
			t := defs.Tile{X: x, Y: y}
			fill := r.colors.GroundColor
			if r.pathTiles[t] {
				fill = r.colors.PathColor
			}
			px, py := float32(x)*size, float32(y)*size
			vector.DrawFilledRect(r.mapImage, px, py, size, size, fill, false)
			vector.StrokeRect(r.mapImage, px, py, size, size, 1, r.colors.GridLineColor, false)
		}
	}

	for _, area := range r.mapDef.PlacementRestrictions {
		vector.DrawFilledRect(r.mapImage,
			float32(area.X)*size, float32(area.Y)*size,
			float32(area.Width)*size, float32(area.Height)*size,
			r.colors.RestrictedColor, false)
	}

	// Вход и выход маршрута
	for _, route := range r.mapDef.Paths {
		if len(route) < 2 {
			continue
		}
		r.drawMarker(route[0], r.colors.EntryColor)
		r.drawMarker(route[len(route)-1], r.colors.ExitColor)
	}
}

func (r *TileRenderer) drawMarker(t defs.Tile, c color.Color) {
	center := r.mapDef.TileCenter(t)
	radius := float32(r.mapDef.TileSize) / 4
	vector.StrokeCircle(r.mapImage, float32(center.X), float32(center.Y), radius, r.colors.StrokeWidth, c, true)
}

// Draw рисует предрендеренную карту одним вызовом.
func (r *TileRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

// HighlightTile обводит клетку, например под курсором.
func (r *TileRenderer) HighlightTile(screen *ebiten.Image, t defs.Tile, ok bool, good, bad color.Color) {
	size := float32(r.mapDef.TileSize)
	c := good
	if !ok {
		c = bad
	}
	vector.StrokeRect(screen, float32(t.X)*size, float32(t.Y)*size, size, size, r.colors.StrokeWidth, c, false)
}
