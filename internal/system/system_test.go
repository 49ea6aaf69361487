package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/economy"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/pathing"

	"github.com/stretchr/testify/require"
)

// world wires the systems the same way the game session does.
type world struct {
	ecs        *entity.ECS
	lib        *defs.Library
	ledger     *economy.Ledger
	dispatcher *event.Dispatcher
	events     *event.Recorder
	spawner    *SpawnSystem
	damage     *DamageSystem
	effects    *StatusEffectSystem
	movement   *MovementSystem
	abilities  *AbilitySystem
	enemies    *EnemySystem
	combat     *CombatSystem
	auras      *AuraSystem
	projectile *ProjectileSystem
	collision  *CollisionSystem
	waves      *WaveSystem
}

func newWorld(t *testing.T, points ...pathing.Point) *world {
	t.Helper()
	if len(points) == 0 {
		points = []pathing.Point{{X: 0, Y: 100}, {X: 1000, Y: 100}}
	}
	route, err := pathing.New(points)
	require.NoError(t, err)

	lib := defs.DefaultLibrary()
	profile := lib.Difficulties["EASY"]
	w := &world{
		ecs:        entity.NewECS(),
		lib:        lib,
		ledger:     economy.NewLedger(20, 300),
		dispatcher: event.NewDispatcher(),
		events:     &event.Recorder{},
	}
	w.dispatcher.SubscribeAll(w.events, event.AllTypes...)
	w.spawner = NewSpawnSystem(w.ecs, lib, profile, route, w.dispatcher)
	w.damage = NewDamageSystem(w.ecs, w.spawner)
	w.effects = NewStatusEffectSystem(w.ecs)
	w.movement = NewMovementSystem(w.ecs, w.effects)
	w.abilities = NewAbilitySystem(w.ecs, w.damage)
	w.enemies = NewEnemySystem(w.ecs, w.ledger, w.dispatcher)
	w.combat = NewCombatSystem(w.ecs)
	w.auras = NewAuraSystem(w.ecs)
	w.projectile = NewProjectileSystem(w.ecs)
	w.collision = NewCollisionSystem(w.ecs, w.damage, w.effects)
	w.waves = NewWaveSystem(w.ecs, w.spawner, w.dispatcher, utils.NewPRNGService(1),
		lib.Waves, profile)
	return w
}

// tick advances the clock and runs the systems in session order.
func (w *world) tick(delta float64) {
	w.ecs.GameTime += delta
	now := w.ecs.GameTime
	w.combat.Update(now)
	w.auras.Update(now)
	w.movement.Update(delta)
	w.abilities.Update(now)
	w.enemies.Update(now)
	w.projectile.Update(delta)
	w.collision.Update()
	w.waves.Update(now)
}

func (w *world) spawn(t *testing.T, defID string) types.EntityID {
	t.Helper()
	id, err := w.spawner.Spawn(defID)
	require.NoError(t, err)
	return id
}

// place moves an enemy to (x, y) without touching its path cursor.
func (w *world) place(id types.EntityID, x, y float64) {
	pos := w.ecs.Positions[id]
	pos.X, pos.Y = x, y
}

func (w *world) spawnCustom(t *testing.T, def defs.EnemyDefinition, x, y float64) types.EntityID {
	t.Helper()
	if def.ID == "" {
		def.ID = "CUSTOM"
	}
	id := w.spawner.spawnAt(def, pathing.Pose{X: x, Y: y}, 0, 0)
	return id
}

func (w *world) tower(t *testing.T, defID string, x, y float64) types.EntityID {
	t.Helper()
	def, err := w.lib.Tower(defID)
	require.NoError(t, err)
	return BuildTower(w.ecs, def, defs.Tile{}, x, y)
}

func (w *world) health(id types.EntityID) float64 {
	return w.ecs.Healths[id].Current
}

func (w *world) enemy(id types.EntityID) *component.Enemy {
	return w.ecs.Enemies[id]
}
