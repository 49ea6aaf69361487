// component/tower.go
package component

import "go-path-defense/internal/defs"

type Tower struct {
	DefID string
	Kind  defs.TowerKind
	Def   defs.TowerDefinition // template, for base cost and upgrade scaling
	Level int
	Tile  defs.Tile
}

// CanUpgrade reports whether another level is available.
func (t *Tower) CanUpgrade() bool {
	return t.Level < t.Def.MaxLevel
}
