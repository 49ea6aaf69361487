// internal/system/aura.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/utils"
)

// AuraSystem обрабатывает логику башен поддержки. Каждая аура помнит, каким
// башням дала бафф, и снимает его по id.
type AuraSystem struct {
	ecs *entity.ECS
}

func NewAuraSystem(ecs *entity.ECS) *AuraSystem {
	return &AuraSystem{ecs: ecs}
}

// Update refreshes every aura whose interval has elapsed: towers that left
// the radius are reverted, towers that entered it are buffed once.
func (s *AuraSystem) Update(now float64) {
	for _, auraID := range s.ecs.TowerIDs() {
		aura, ok := s.ecs.Auras[auraID]
		if !ok || now < aura.LastRefresh+aura.Interval {
			continue
		}
		aura.LastRefresh = now
		pos := s.ecs.Positions[auraID]

		for targetID := range aura.Buffed {
			if !s.inRange(pos, aura, targetID) {
				s.revert(aura, targetID)
			}
		}

		for _, targetID := range s.ecs.TowerIDs() {
			if targetID == auraID {
				continue
			}
			if _, already := aura.Buffed[targetID]; already {
				continue
			}
			combat, ok := s.ecs.Combats[targetID]
			if !ok || combat.FireRate <= 0 || !s.inRange(pos, aura, targetID) {
				continue
			}
			combat.FireRate *= 1 - aura.BuffAmount
			aura.Buffed[targetID] = struct{}{}
		}
	}
}

func (s *AuraSystem) inRange(pos *component.Position, aura *component.Aura, targetID types.EntityID) bool {
	tp, ok := s.ecs.Positions[targetID]
	if !ok {
		return false
	}
	return utils.Distance(pos.X, pos.Y, tp.X, tp.Y) <= aura.Radius
}

func (s *AuraSystem) revert(aura *component.Aura, targetID types.EntityID) {
	if combat, ok := s.ecs.Combats[targetID]; ok {
		combat.FireRate /= 1 - aura.BuffAmount
	}
	delete(aura.Buffed, targetID)
}

// ReleaseAll reverts every buff applied by auraID. Call before the support
// tower is removed.
func (s *AuraSystem) ReleaseAll(auraID types.EntityID) {
	aura, ok := s.ecs.Auras[auraID]
	if !ok {
		return
	}
	for targetID := range aura.Buffed {
		s.revert(aura, targetID)
	}
}

// Forget drops a removed tower from every aura without reverting it.
func (s *AuraSystem) Forget(towerID types.EntityID) {
	for _, aura := range s.ecs.Auras {
		delete(aura.Buffed, towerID)
	}
}

// BuffCount returns how many auras currently buff towerID.
func (s *AuraSystem) BuffCount(towerID types.EntityID) int {
	n := 0
	for _, aura := range s.ecs.Auras {
		if _, ok := aura.Buffed[towerID]; ok {
			n++
		}
	}
	return n
}
