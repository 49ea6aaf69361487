package system

import (
	"fmt"
	"log/slog"
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/pathing"
)

// SpawnSystem creates enemies on the route. Stats are resolved from the
// library and scaled by the session difficulty at creation time only.
type SpawnSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	profile         defs.DifficultyProfile
	route           *pathing.Path
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(ecs *entity.ECS, lib *defs.Library, profile defs.DifficultyProfile,
	route *pathing.Path, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		lib:             lib,
		profile:         profile,
		route:           route,
		eventDispatcher: eventDispatcher,
	}
}

// Route returns the shared path enemies walk.
func (s *SpawnSystem) Route() *pathing.Path { return s.route }

// ResolveEnemy returns the difficulty-scaled stats for a template id.
func (s *SpawnSystem) ResolveEnemy(defID string) (defs.EnemyDefinition, error) {
	def, err := s.lib.Enemy(defID)
	if err != nil {
		return defs.EnemyDefinition{}, err
	}
	return s.profile.ApplyToEnemy(def), nil
}

// Spawn places a new enemy of type defID at the start of the route.
func (s *SpawnSystem) Spawn(defID string) (types.EntityID, error) {
	stats, err := s.ResolveEnemy(defID)
	if err != nil {
		return 0, fmt.Errorf("spawn: %w", err)
	}
	start := s.route.Interpolate(0, 0)
	return s.spawnAt(stats, start, 0, 0), nil
}

// spawnChild places a split child. It shares the parent's route and cursor
// but starts at an explicit position around the death point.
func (s *SpawnSystem) spawnChild(stats defs.EnemyDefinition, x, y float64, segment int, t float64) types.EntityID {
	heading := s.route.SegmentHeading(segment)
	return s.spawnAt(stats, pathing.Pose{X: x, Y: y, Heading: heading}, segment, t)
}

func (s *SpawnSystem) spawnAt(stats defs.EnemyDefinition, pose pathing.Pose, segment int, t float64) types.EntityID {
	now := s.ecs.GameTime
	enemy := &component.Enemy{
		DefID:      stats.ID,
		Kind:       stats.Kind,
		Stats:      stats,
		LastAction: now,
		LastShield: math.Inf(-1),
	}
	id := s.ecs.AddEnemy(
		enemy,
		&component.Position{X: pose.X, Y: pose.Y},
		&component.Velocity{BaseSpeed: stats.Speed, Speed: stats.Speed, Heading: pose.Heading},
		&component.Path{Route: s.route, Segment: segment, T: t},
		&component.Health{Current: stats.Health, Max: stats.Health},
	)

	c, ok := config.EnemyColors[stats.ID]
	if !ok {
		c = config.DefaultEnemyColor
	}
	radius := float32(config.EnemyRadius)
	if stats.ID == "BOSS" {
		radius *= 1.6
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: c, Radius: radius}

	slog.Debug("enemy spawned", "id", id, "type", stats.ID, "health", stats.Health)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: id, DefID: stats.ID, X: pose.X, Y: pose.Y},
	})
	return id
}
