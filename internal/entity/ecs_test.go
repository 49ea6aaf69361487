package entity

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addEnemy(ecs *ECS) types.EntityID {
	return ecs.AddEnemy(&component.Enemy{DefID: "BASIC"}, &component.Position{}, &component.Velocity{},
		&component.Path{}, &component.Health{Current: 10, Max: 10})
}

func TestECS_IDsAreStableAndOrdered(t *testing.T) {
	ecs := NewECS()
	a := addEnemy(ecs)
	b := addEnemy(ecs)
	c := addEnemy(ecs)

	ids := ecs.EnemyIDs()
	require.Len(t, ids, 3)
	assert.Equal(t, []types.EntityID{a, b, c}, ids)
	assert.NotContains(t, ids, types.EntityID(0))

	ecs.RemoveEntity(b)
	assert.Equal(t, []types.EntityID{a, c}, ecs.EnemyIDs())
}

func TestECS_RemoveDuringScan(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 4; i++ {
		addEnemy(ecs)
	}

	visited := 0
	for _, id := range ecs.EnemyIDs() {
		visited++
		ecs.RemoveEntity(id)
	}
	assert.Equal(t, 4, visited)
	assert.Empty(t, ecs.EnemyIDs())
	assert.Empty(t, ecs.Positions)
	assert.Empty(t, ecs.StatusEffects)
}

func TestECS_KindsAreSeparate(t *testing.T) {
	ecs := NewECS()
	e := ecs.AddEnemy(&component.Enemy{}, &component.Position{}, &component.Velocity{},
		&component.Path{}, &component.Health{})
	tw := ecs.AddTower(&component.Tower{}, &component.Position{X: 5}, &component.Combat{}, nil)
	p := ecs.AddProjectile(&component.Projectile{}, &component.Position{})

	assert.Len(t, ecs.EnemyIDs(), 1)
	assert.Len(t, ecs.TowerIDs(), 1)
	assert.Len(t, ecs.ProjectileIDs(), 1)
	assert.NotEqual(t, e, tw)
	assert.NotEqual(t, tw, p)
	_, hasAura := ecs.Auras[tw]
	assert.False(t, hasAura)
}

func TestECS_ClearKeepsCounter(t *testing.T) {
	ecs := NewECS()
	addEnemy(ecs)
	ecs.GameTime = 1234
	next := ecs.NextID

	ecs.Clear()
	assert.Empty(t, ecs.Enemies)
	assert.Equal(t, next, ecs.NextID)
	assert.Equal(t, 1234.0, ecs.GameTime)
}
