package defs

import (
	"fmt"

	"go-path-defense/pkg/pathing"
)

// Tile is a grid coordinate.
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Area is a rectangle of tiles where towers may not be built.
type Area struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether tile t lies inside the area.
func (a Area) Contains(t Tile) bool {
	return t.X >= a.X && t.X < a.X+a.Width && t.Y >= a.Y && t.Y < a.Y+a.Height
}

// MapDefinition describes a level: its grid, enemy routes (as tile
// waypoints) and restricted placement zones.
type MapDefinition struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Theme                 string   `json:"theme"`
	Width                 int      `json:"width"`
	Height                int      `json:"height"`
	TileSize              float64  `json:"tile_size"`
	Paths                 [][]Tile `json:"paths"`
	PlacementRestrictions []Area   `json:"placement_restrictions,omitempty"`
}

// TileCenter returns the pixel centre of a tile.
func (m MapDefinition) TileCenter(t Tile) pathing.Point {
	return pathing.Point{
		X: float64(t.X)*m.TileSize + m.TileSize/2,
		Y: float64(t.Y)*m.TileSize + m.TileSize/2,
	}
}

// TileAt maps a pixel position to its tile.
func (m MapDefinition) TileAt(x, y float64) (Tile, bool) {
	if x < 0 || y < 0 || m.TileSize <= 0 {
		return Tile{}, false
	}
	t := Tile{X: int(x / m.TileSize), Y: int(y / m.TileSize)}
	if t.X >= m.Width || t.Y >= m.Height {
		return Tile{}, false
	}
	return t, true
}

// MainPath converts the first route to pixel waypoints.
func (m MapDefinition) MainPath() (*pathing.Path, error) {
	if len(m.Paths) == 0 {
		return nil, fmt.Errorf("map %s: %w", m.ID, ErrInvalidPath)
	}
	points := make([]pathing.Point, 0, len(m.Paths[0]))
	for _, t := range m.Paths[0] {
		points = append(points, m.TileCenter(t))
	}
	p, err := pathing.New(points)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w: %v", m.ID, ErrInvalidPath, err)
	}
	return p, nil
}

// PathTiles returns every tile a route passes through, stepping between
// consecutive waypoints.
func (m MapDefinition) PathTiles() map[Tile]bool {
	tiles := make(map[Tile]bool)
	for _, route := range m.Paths {
		for i, wp := range route {
			tiles[wp] = true
			if i == 0 {
				continue
			}
			cur := route[i-1]
			for cur != wp {
				cur.X += sign(wp.X - cur.X)
				cur.Y += sign(wp.Y - cur.Y)
				tiles[cur] = true
			}
		}
	}
	return tiles
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
