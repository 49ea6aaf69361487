package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/utils"
)

// CollisionSystem matches projectiles against enemies and resolves hits.
// A projectile strikes at most one enemy and is consumed by it.
type CollisionSystem struct {
	ecs     *entity.ECS
	damage  *DamageSystem
	effects *StatusEffectSystem
}

func NewCollisionSystem(ecs *entity.ECS, damage *DamageSystem, effects *StatusEffectSystem) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, damage: damage, effects: effects}
}

func (s *CollisionSystem) Update() {
	for _, projID := range s.ecs.ProjectileIDs() {
		proj, ok := s.ecs.Projectiles[projID]
		if !ok {
			continue
		}
		pp := s.ecs.Positions[projID]
		for _, enemyID := range s.ecs.EnemyIDs() {
			enemy := s.ecs.Enemies[enemyID]
			if enemy.Dying {
				continue
			}
			if enemy.Stats.Flying && !proj.Payload.CanHitFlying {
				continue
			}
			ep := s.ecs.Positions[enemyID]
			if !utils.RectsIntersect(pp.X, pp.Y, config.ProjectileBoxSize, config.ProjectileBoxSize,
				ep.X, ep.Y, config.EnemyBoxSize, config.EnemyBoxSize) {
				continue
			}
			s.resolve(proj, pp.X, pp.Y, enemyID, enemy)
			s.ecs.RemoveEntity(projID)
			break
		}
	}
}

// resolve applies a hit on enemyID by a projectile that landed at (x, y).
func (s *CollisionSystem) resolve(proj *component.Projectile, x, y float64, enemyID types.EntityID, enemy *component.Enemy) {
	payload := proj.Payload
	s.damage.ApplyDamage(enemyID, ArmorDamage(payload.Damage, enemy.Stats.Armor))

	switch payload.Kind {
	case defs.TowerAoE:
		s.splash(payload, x, y, enemyID)
	case defs.TowerSlow:
		if payload.SlowFactor > 0 && payload.SlowDuration > 0 {
			s.effects.ApplySlow(enemyID, payload.SlowFactor, payload.SlowDuration)
		}
	}
}

// splash damages every other enemy strictly inside the radius, falling off
// linearly to half damage at the edge.
func (s *CollisionSystem) splash(payload component.Payload, x, y float64, primary types.EntityID) {
	if payload.AoeRadius <= 0 {
		return
	}
	blastID := s.ecs.NewEntity()
	s.ecs.Blasts[blastID] = &component.Blast{X: x, Y: y, MaxRadius: payload.AoeRadius, Duration: config.BlastMs}

	for _, id := range s.ecs.EnemyIDs() {
		if id == primary {
			continue
		}
		enemy := s.ecs.Enemies[id]
		if enemy.Dying || (enemy.Stats.Flying && !payload.CanHitFlying) {
			continue
		}
		ep := s.ecs.Positions[id]
		dist := utils.Distance(x, y, ep.X, ep.Y)
		damage := SplashDamage(payload.Damage, dist, payload.AoeRadius)
		if damage <= 0 {
			continue
		}
		s.damage.ApplyDamage(id, ArmorDamage(damage, enemy.Stats.Armor))
	}
}

// SplashDamage is damage × (1 − (distance/radius) × 0.5) inside the radius
// and zero at or beyond it.
func SplashDamage(damage, distance, radius float64) float64 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	return damage * (1 - (distance/radius)*0.5)
}
