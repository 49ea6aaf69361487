package component

import "go-path-defense/internal/defs"

// Enemy представляет вражескую сущность. Stats - копия шаблона для
// конкретного врага после масштабирования сложности.
type Enemy struct {
	DefID  string
	Kind   defs.EnemyKind
	Stats  defs.EnemyDefinition
	Dying  bool
	DiedAt float64

	// LastAction is the timestamp of the last heal or teleport.
	LastAction   float64
	ShieldActive bool
	LastShield   float64
}
