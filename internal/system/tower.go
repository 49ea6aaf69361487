package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
)

// BuildTower creates a level-1 tower from its template at (x, y).
func BuildTower(ecs *entity.ECS, def defs.TowerDefinition, tile defs.Tile, x, y float64) types.EntityID {
	tower := &component.Tower{DefID: def.ID, Kind: def.Kind, Def: def, Level: 1, Tile: tile}
	pos := &component.Position{X: x, Y: y}

	if def.Kind == defs.TowerSupport {
		return ecs.AddTower(tower, pos, nil, component.NewAura(def.BuffRadius, def.BuffAmount, def.BuffInterval))
	}
	targets := 1
	if def.Kind == defs.TowerMultiShot {
		targets = def.TargetCount
	}
	combat := &component.Combat{
		Damage:          def.Damage,
		Range:           def.Range,
		FireRate:        def.FireRate,
		ProjectileSpeed: def.ProjectileSpeed,
		CanHitFlying:    def.TargetsFlying(),
		TargetCount:     targets,
		LastFire:        math.Inf(-1),
	}
	return ecs.AddTower(tower, pos, combat, nil)
}

// TowerRange is the radius drawn around a tower: its attack range, or the
// buff radius for support towers.
func TowerRange(ecs *entity.ECS, id types.EntityID) float64 {
	if combat, ok := ecs.Combats[id]; ok {
		return combat.Range
	}
	if aura, ok := ecs.Auras[id]; ok {
		return aura.Radius
	}
	return 0
}

// UpgradeTower raises a tower one level, scaling its live stats by the
// template factors. It does not touch money and fails at max level.
func UpgradeTower(ecs *entity.ECS, id types.EntityID) bool {
	tower, ok := ecs.Towers[id]
	if !ok || !tower.CanUpgrade() {
		return false
	}
	scale := tower.Def.Upgrade
	tower.Level++
	if combat, ok := ecs.Combats[id]; ok {
		combat.Damage *= scale.Damage
		combat.Range *= scale.Range
		combat.FireRate *= scale.FireRate
	}
	if aura, ok := ecs.Auras[id]; ok {
		aura.Radius *= scale.Range
	}
	return true
}
