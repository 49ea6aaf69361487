package system

import (
	"testing"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/pathing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDamage_ClampsHealth(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "BASIC")

	w.damage.ApplyDamage(id, 30)
	assert.Equal(t, 70.0, w.health(id))

	w.damage.Heal(id, 500)
	assert.Equal(t, 100.0, w.health(id))

	killed := w.damage.ApplyDamage(id, 250)
	assert.True(t, killed)
	assert.Equal(t, 0.0, w.health(id))
	assert.True(t, w.enemy(id).Dying)

	assert.False(t, w.damage.ApplyDamage(id, 10), "dying enemies take no further damage")
	assert.Equal(t, 0.0, w.health(id))
}

func TestKill_CreditedOnceAfterDeathSequence(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "FAST")

	w.damage.Kill(id)
	w.damage.Kill(id)
	w.tick(100)
	assert.Contains(t, w.ecs.Enemies, id, "still in its death sequence")
	assert.Equal(t, 0, w.ledger.Stats().EnemiesKilled)

	w.tick(250)
	assert.NotContains(t, w.ecs.Enemies, id)
	assert.Equal(t, 1, w.ledger.Stats().EnemiesKilled)
	assert.Equal(t, 315, w.ledger.Money())

	died := w.events.OfType(event.EnemyDied)
	require.Len(t, died, 1)
	assert.Equal(t, 15, died[0].Data.(event.EnemyDiedData).Reward)
}

func TestShield_AbsorbsDamageWhileActive(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "SHIELD")
	e := w.enemy(id)

	w.abilities.Update(0)
	require.True(t, e.ShieldActive)

	w.damage.ApplyDamage(id, 40)
	assert.Equal(t, 150.0, w.health(id))

	w.abilities.Update(1500)
	assert.True(t, e.ShieldActive, "boundary is exclusive")
	w.abilities.Update(1501)
	assert.False(t, e.ShieldActive)

	w.damage.ApplyDamage(id, 40)
	assert.Equal(t, 110.0, w.health(id))

	w.abilities.Update(3000)
	assert.False(t, e.ShieldActive, "cooldown not over")
	w.abilities.Update(3501)
	assert.True(t, e.ShieldActive)
}

func TestShield_DoesNotBlockHealing(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "SHIELD")
	w.damage.ApplyDamage(id, 50)
	w.abilities.Update(0)
	require.True(t, w.enemy(id).ShieldActive)

	w.damage.Heal(id, 20)
	assert.Equal(t, 120.0, w.health(id))
}

func TestHealer_HealsOthersInRadius(t *testing.T) {
	w := newWorld(t)
	healer := w.spawn(t, "HEALER")
	near := w.spawn(t, "BASIC")
	edge := w.spawn(t, "BASIC")
	far := w.spawn(t, "BASIC")
	dying := w.spawn(t, "BASIC")

	w.place(healer, 200, 100)
	w.place(near, 230, 100)
	w.place(edge, 300, 100)
	w.place(far, 301, 100)
	w.place(dying, 210, 100)
	w.damage.ApplyDamage(healer, 50)
	w.damage.ApplyDamage(near, 50)
	w.damage.ApplyDamage(edge, 50)
	w.damage.ApplyDamage(far, 50)
	w.damage.ApplyDamage(dying, 50)
	w.damage.Kill(dying)

	w.abilities.Update(2000)
	assert.Equal(t, 50.0, w.health(near), "interval not yet elapsed")

	w.abilities.Update(2001)
	assert.Equal(t, 55.0, w.health(near))
	assert.Equal(t, 55.0, w.health(edge), "radius is inclusive")
	assert.Equal(t, 50.0, w.health(far))
	assert.Equal(t, 70.0, w.health(healer), "healer does not heal itself")
	assert.Equal(t, 50.0, w.health(dying))
}

func TestSplit_SpawnsChildrenOnDeath(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "SPLIT")
	w.tick(500) // 42.5 px along the route
	parentPath := *w.ecs.Paths[id]
	pos := *w.ecs.Positions[id]

	w.damage.ApplyDamage(id, 1000)
	w.damage.Kill(id)

	ids := w.ecs.EnemyIDs()
	require.Len(t, ids, 3)
	children := ids[1:]
	for i, child := range children {
		e := w.enemy(child)
		assert.Equal(t, "BASIC", e.DefID)
		assert.False(t, e.Dying)
		assert.Equal(t, parentPath.Segment, w.ecs.Paths[child].Segment)
		assert.Equal(t, parentPath.T, w.ecs.Paths[child].T)

		cp := w.ecs.Positions[child]
		if i == 0 {
			assert.InDelta(t, pos.X+18, cp.X, 1e-9)
			assert.InDelta(t, pos.Y, cp.Y, 1e-9)
		} else {
			assert.InDelta(t, pos.X-18, cp.X, 1e-9)
			assert.InDelta(t, pos.Y, cp.Y, 1e-6)
		}
	}

	w.tick(300)
	assert.Equal(t, 1, w.ledger.Stats().EnemiesKilled)
	assert.Equal(t, 335, w.ledger.Money())
	assert.Len(t, w.ecs.Enemies, 2)
	assert.Len(t, w.events.OfType(event.EnemySpawned), 3)
}

func TestSplit_UsesInlineChildTemplate(t *testing.T) {
	w := newWorld(t)
	id := w.spawnCustom(t, defs.EnemyDefinition{
		ID: "BROOD", Kind: defs.EnemySplit, Health: 10, Speed: 10, Reward: 1,
		SplitCount: 3,
		SplitData:  &defs.EnemyDefinition{ID: "SPAWNLING", Kind: defs.EnemyStandard, Health: 7, Speed: 150, Reward: 2},
	}, 100, 100)

	w.damage.ApplyDamage(id, 10)

	ids := w.ecs.EnemyIDs()
	require.Len(t, ids, 4)
	for _, child := range ids[1:] {
		assert.Equal(t, "SPAWNLING", w.enemy(child).DefID)
		assert.Equal(t, 7.0, w.ecs.Healths[child].Max)
	}
}

func TestTeleport_JumpsForwardAndClamps(t *testing.T) {
	w := newWorld(t,
		pathing.Point{X: 0, Y: 0}, pathing.Point{X: 100, Y: 0}, pathing.Point{X: 200, Y: 0},
		pathing.Point{X: 300, Y: 0}, pathing.Point{X: 400, Y: 0},
	)
	id := w.spawn(t, "TELEPORT")
	path := w.ecs.Paths[id]
	path.T = 0.4

	w.abilities.Update(2500)
	assert.Equal(t, 0, path.Segment, "interval not yet elapsed")

	w.abilities.Update(2501)
	assert.Equal(t, 2, path.Segment)
	assert.Equal(t, 0.0, path.T)
	assert.InDelta(t, 200.0, w.ecs.Positions[id].X, 1e-9)

	w.abilities.Update(5002)
	assert.Equal(t, 3, path.Segment, "clamped to the last segment")

	w.abilities.Update(7503)
	assert.Equal(t, 3, path.Segment)
	assert.False(t, path.ReachedEnd)
}
