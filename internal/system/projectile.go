// internal/system/projectile.go
package system

import (
	"math"

	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/pkg/utils"
)

// ProjectileSystem управляет движением снарядов. Снаряд летит за живой
// целью, а после её исчезновения продолжает лететь прямо.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Update moves projectiles; deltaTime is in milliseconds.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}

		if proj.TargetID != 0 {
			enemy, alive := s.ecs.Enemies[proj.TargetID]
			if alive && !enemy.Dying {
				tp := s.ecs.Positions[proj.TargetID]
				proj.Heading = utils.AngleBetween(pos.X, pos.Y, tp.X, tp.Y)
			} else {
				proj.TargetID = 0
			}
		}

		step := proj.Payload.Speed * deltaTime / 1000
		pos.X += math.Cos(proj.Heading) * step
		pos.Y += math.Sin(proj.Heading) * step

		if OutOfBounds(pos.X, pos.Y) {
			s.ecs.RemoveEntity(id)
		}
	}
}

// OutOfBounds reports whether a point lies outside the field plus margin.
func OutOfBounds(x, y float64) bool {
	m := config.BoundsMargin
	return x < -m || y < -m || x > config.ScreenWidth+m || y > config.ScreenHeight+m
}
