// internal/app/grid.go
package app

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Grid tracks which tiles of the map can hold a tower and which already do.
// Route tiles and tiles inside placement restrictions are never buildable.
type Grid struct {
	mapDef     defs.MapDefinition
	restricted map[defs.Tile]bool
	occupied   map[defs.Tile]types.EntityID
}

func NewGrid(mapDef defs.MapDefinition) *Grid {
	restricted := mapDef.PathTiles()
	for _, area := range mapDef.PlacementRestrictions {
		for x := area.X; x < area.X+area.Width; x++ {
			for y := area.Y; y < area.Y+area.Height; y++ {
				restricted[defs.Tile{X: x, Y: y}] = true
			}
		}
	}
	return &Grid{
		mapDef:     mapDef,
		restricted: restricted,
		occupied:   make(map[defs.Tile]types.EntityID),
	}
}

func (g *Grid) Width() int { return g.mapDef.Width }
func (g *Grid) Height() int { return g.mapDef.Height }

func (g *Grid) Contains(t defs.Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < g.mapDef.Width && t.Y < g.mapDef.Height
}

// Restricted reports whether t is off the map, on a route or inside a
// restricted area.
func (g *Grid) Restricted(t defs.Tile) bool {
	return !g.Contains(t) || g.restricted[t]
}

func (g *Grid) TowerAt(t defs.Tile) (types.EntityID, bool) {
	id, ok := g.occupied[t]
	return id, ok
}

func (g *Grid) Occupy(t defs.Tile, id types.EntityID) {
	g.occupied[t] = id
}

func (g *Grid) Free(t defs.Tile) {
	delete(g.occupied, t)
}

// Reset frees every tile.
func (g *Grid) Reset() {
	g.occupied = make(map[defs.Tile]types.EntityID)
}
