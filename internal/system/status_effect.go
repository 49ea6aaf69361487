// internal/system/status_effect.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
)

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// ApplySlow adds a slow that expires duration ms from now. Slows stack.
func (s *StatusEffectSystem) ApplySlow(id types.EntityID, factor, duration float64) {
	effects, ok := s.ecs.StatusEffects[id]
	if !ok {
		return
	}
	effects.Slows = append(effects.Slows, component.SlowEffect{
		Factor:    factor,
		ExpiresAt: s.ecs.GameTime + duration,
	})
}

// Refresh drops expired effects of one enemy and recomputes its speed.
func (s *StatusEffectSystem) Refresh(id types.EntityID, now float64) {
	vel, ok := s.ecs.Velocities[id]
	if !ok {
		return
	}
	effects, ok := s.ecs.StatusEffects[id]
	if !ok {
		vel.Speed = vel.BaseSpeed
		return
	}
	effects.Expire(now)
	vel.Speed = vel.BaseSpeed * effects.SpeedFactor()
}
