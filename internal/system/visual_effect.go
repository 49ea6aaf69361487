// internal/system/visual_effect.go
package system

import (
	"go-path-defense/internal/entity"
)

// VisualEffectSystem ведёт таймеры чисто визуальных эффектов: вспышки урона
// и кольца взрывов. На симуляцию они не влияют.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update ages every effect by deltaTime ms and drops the finished ones.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, f := range s.ecs.DamageFlashes {
		if f.Timer -= deltaTime; f.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
	for id, b := range s.ecs.Blasts {
		if b.Elapsed += deltaTime; b.Elapsed >= b.Duration {
			delete(s.ecs.Blasts, id)
		}
	}
}
