package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/utils"
)

// CombatSystem управляет атакой башен: выбор цели, перезарядка и запуск
// снарядов.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

func (s *CombatSystem) Update(now float64) {
	for _, id := range s.ecs.TowerIDs() {
		combat, ok := s.ecs.Combats[id]
		if !ok {
			continue
		}
		tower := s.ecs.Towers[id]
		pos := s.ecs.Positions[id]

		if tower.Kind == defs.TowerMultiShot {
			if !combat.Ready(now) {
				continue
			}
			targets := s.findTargets(pos, combat, combat.TargetCount)
			if len(targets) == 0 {
				continue
			}
			combat.TargetID = targets[0]
			for _, target := range targets {
				s.fire(id, tower, combat, pos, target)
			}
			combat.LastFire = now
			continue
		}

		if !s.isValidTarget(pos, combat, combat.TargetID) {
			combat.TargetID = s.findNearest(pos, combat)
		}
		if combat.TargetID != 0 && combat.Ready(now) {
			s.fire(id, tower, combat, pos, combat.TargetID)
			combat.LastFire = now
		}
	}
}

// isValidTarget: the enemy exists, is not dying, is hittable and is within
// range (inclusive).
func (s *CombatSystem) isValidTarget(pos *component.Position, combat *component.Combat, id types.EntityID) bool {
	if id == 0 {
		return false
	}
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy.Dying {
		return false
	}
	if enemy.Stats.Flying && !combat.CanHitFlying {
		return false
	}
	if health := s.ecs.Healths[id]; health == nil || health.Current <= 0 {
		return false
	}
	ep := s.ecs.Positions[id]
	return utils.Distance(pos.X, pos.Y, ep.X, ep.Y) <= combat.Range
}

// findNearest scans live enemies in spawn order; ties keep the first.
func (s *CombatSystem) findNearest(pos *component.Position, combat *component.Combat) types.EntityID {
	var best types.EntityID
	bestDist := math.Inf(1)
	for _, id := range s.ecs.EnemyIDs() {
		if !s.isValidTarget(pos, combat, id) {
			continue
		}
		ep := s.ecs.Positions[id]
		if d := utils.Distance(pos.X, pos.Y, ep.X, ep.Y); d < bestDist {
			best, bestDist = id, d
		}
	}
	return best
}

// findTargets collects up to n valid enemies in scan order.
func (s *CombatSystem) findTargets(pos *component.Position, combat *component.Combat, n int) []types.EntityID {
	var targets []types.EntityID
	for _, id := range s.ecs.EnemyIDs() {
		if len(targets) >= n {
			break
		}
		if s.isValidTarget(pos, combat, id) {
			targets = append(targets, id)
		}
	}
	return targets
}

func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower, combat *component.Combat,
	pos *component.Position, targetID types.EntityID) types.EntityID {
	payload := component.Payload{
		Kind:         tower.Kind,
		Damage:       combat.Damage,
		Speed:        combat.ProjectileSpeed,
		CanHitFlying: combat.CanHitFlying,
	}
	switch tower.Kind {
	case defs.TowerAoE:
		payload.AoeRadius = tower.Def.AoeRadius
	case defs.TowerSlow:
		payload.SlowFactor = tower.Def.SlowFactor
		payload.SlowDuration = tower.Def.SlowDuration
	}

	heading := 0.0
	if tp, ok := s.ecs.Positions[targetID]; ok {
		heading = utils.AngleBetween(pos.X, pos.Y, tp.X, tp.Y)
	}
	return s.ecs.AddProjectile(&component.Projectile{
		SourceID: towerID,
		TargetID: targetID,
		Payload:  payload,
		OriginX:  pos.X,
		OriginY:  pos.Y,
		Heading:  heading,
	}, &component.Position{X: pos.X, Y: pos.Y})
}
