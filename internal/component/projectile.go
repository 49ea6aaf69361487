// internal/component/projectile.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Payload is what a projectile delivers on impact, copied from the firing
// tower at launch.
type Payload struct {
	Kind         defs.TowerKind
	Damage       float64
	Speed        float64
	CanHitFlying bool
	AoeRadius    float64
	SlowFactor   float64
	SlowDuration float64
}

// Projectile представляет летящий снаряд.
type Projectile struct {
	SourceID types.EntityID
	TargetID types.EntityID // weak; zero once the target is gone
	Payload  Payload
	OriginX  float64
	OriginY  float64
	Heading  float64 // last computed direction, kept when the target vanishes
}
