// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

// ECS is the live-entity registry. Component maps are keyed by EntityID;
// the order slices keep creation order so scans are deterministic.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	StatusEffects map[types.EntityID]*component.StatusEffects
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	Auras         map[types.EntityID]*component.Aura
	Projectiles   map[types.EntityID]*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Blasts        map[types.EntityID]*component.Blast
	Wave          *component.Wave

	enemyOrder      []types.EntityID
	towerOrder      []types.EntityID
	projectileOrder []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		StatusEffects: make(map[types.EntityID]*component.StatusEffects),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		Auras:         make(map[types.EntityID]*component.Aura),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Blasts:        make(map[types.EntityID]*component.Blast),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy registers enemy components under a fresh id.
func (ecs *ECS) AddEnemy(enemy *component.Enemy, pos *component.Position, vel *component.Velocity,
	path *component.Path, health *component.Health) types.EntityID {
	id := ecs.NewEntity()
	ecs.Enemies[id] = enemy
	ecs.Positions[id] = pos
	ecs.Velocities[id] = vel
	ecs.Paths[id] = path
	ecs.Healths[id] = health
	ecs.StatusEffects[id] = &component.StatusEffects{}
	ecs.enemyOrder = append(ecs.enemyOrder, id)
	return id
}

// AddTower registers a tower. combat is nil for support towers, aura is
// nil for everything else.
func (ecs *ECS) AddTower(tower *component.Tower, pos *component.Position, combat *component.Combat,
	aura *component.Aura) types.EntityID {
	id := ecs.NewEntity()
	ecs.Towers[id] = tower
	ecs.Positions[id] = pos
	if combat != nil {
		ecs.Combats[id] = combat
	}
	if aura != nil {
		ecs.Auras[id] = aura
	}
	ecs.towerOrder = append(ecs.towerOrder, id)
	return id
}

// AddProjectile registers a projectile.
func (ecs *ECS) AddProjectile(proj *component.Projectile, pos *component.Position) types.EntityID {
	id := ecs.NewEntity()
	ecs.Projectiles[id] = proj
	ecs.Positions[id] = pos
	ecs.projectileOrder = append(ecs.projectileOrder, id)
	return id
}

// EnemyIDs returns live enemy ids in spawn order. The slice is a copy, so
// callers may remove entities while iterating it.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	ecs.enemyOrder = compact(ecs.enemyOrder, func(id types.EntityID) bool {
		_, ok := ecs.Enemies[id]
		return ok
	})
	return append([]types.EntityID(nil), ecs.enemyOrder...)
}

// TowerIDs returns tower ids in placement order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	ecs.towerOrder = compact(ecs.towerOrder, func(id types.EntityID) bool {
		_, ok := ecs.Towers[id]
		return ok
	})
	return append([]types.EntityID(nil), ecs.towerOrder...)
}

// ProjectileIDs returns projectile ids in launch order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	ecs.projectileOrder = compact(ecs.projectileOrder, func(id types.EntityID) bool {
		_, ok := ecs.Projectiles[id]
		return ok
	})
	return append([]types.EntityID(nil), ecs.projectileOrder...)
}

// RemoveEntity deletes every component of id. Order slices are compacted
// lazily on the next scan.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.StatusEffects, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Auras, id)
	delete(ecs.Projectiles, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Blasts, id)
}

// Clear drops all entities but keeps the id counter and clock.
func (ecs *ECS) Clear() {
	next, now := ecs.NextID, ecs.GameTime
	*ecs = *NewECS()
	ecs.NextID, ecs.GameTime = next, now
}

func compact(ids []types.EntityID, alive func(types.EntityID) bool) []types.EntityID {
	kept := ids[:0]
	for _, id := range ids {
		if alive(id) {
			kept = append(kept, id)
		}
	}
	return kept
}
