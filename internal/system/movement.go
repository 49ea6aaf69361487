// internal/system/movement.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
)

// MovementSystem обновляет позиции врагов вдоль их маршрута.
type MovementSystem struct {
	ecs     *entity.ECS
	effects *StatusEffectSystem
}

func NewMovementSystem(ecs *entity.ECS, effects *StatusEffectSystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, effects: effects}
}

// Update advances every living enemy that has not reached the end.
// deltaTime is in milliseconds.
func (s *MovementSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		path, hasPath := s.ecs.Paths[id]
		vel, hasVel := s.ecs.Velocities[id]
		pos, hasPos := s.ecs.Positions[id]
		if enemy.Dying || !hasPath || !hasVel || !hasPos || path.ReachedEnd {
			continue
		}

		s.effects.Refresh(id, now)
		advance(path, vel.Speed*deltaTime/1000)

		pose := path.Route.Interpolate(path.Segment, path.T)
		pos.X, pos.Y = pose.X, pose.Y
		vel.Heading = pose.Heading
	}
}

// advance moves a cursor px pixels forward, carrying leftover distance into
// following segments. Zero-length segments count as already traversed.
func advance(path *component.Path, px float64) {
	route := path.Route
	segments := route.SegmentCount()
	for !path.ReachedEnd {
		if path.Segment >= segments {
			path.ReachedEnd = true
			path.Segment = segments
			path.T = 0
			return
		}
		length := route.SegmentLength(path.Segment)
		if length <= 0 {
			path.Segment++
			path.T = 0
			continue
		}
		left := length * (1 - path.T)
		if px < left {
			path.T += px / length
			return
		}
		px -= left
		path.Segment++
		path.T = 0
	}
}
