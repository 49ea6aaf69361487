// internal/system/utils.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
)

// ArmorDamage returns damage after an armor fraction is applied.
func ArmorDamage(damage, armor float64) float64 {
	if armor <= 0 {
		return damage
	}
	return damage * (1 - armor)
}

// DamageSystem applies health changes and starts death sequences.
type DamageSystem struct {
	ecs     *entity.ECS
	spawner *SpawnSystem
}

func NewDamageSystem(ecs *entity.ECS, spawner *SpawnSystem) *DamageSystem {
	return &DamageSystem{ecs: ecs, spawner: spawner}
}

// ApplyDamage наносит урон врагу. Отрицательное значение лечит. Здоровье
// остаётся в [0, max], при нуле начинается смерть. Возвращает true, если
// именно этот вызов убил врага.
func (s *DamageSystem) ApplyDamage(id types.EntityID, amount float64) bool {
	health, hasHealth := s.ecs.Healths[id]
	enemy, isEnemy := s.ecs.Enemies[id]
	if !hasHealth || !isEnemy || enemy.Dying {
		return false
	}

	amount = abilityFor(enemy.Kind).onDamage(enemy, amount)
	if amount == 0 {
		return false
	}

	health.Current -= amount
	if health.Current > health.Max {
		health.Current = health.Max
	}
	if health.Current <= 0 {
		health.Current = 0
		s.Kill(id)
		return true
	}

	if amount > 0 {
		s.ecs.DamageFlashes[id] = &component.DamageFlash{
			Timer:    config.DamageFlashMs,
			Duration: config.DamageFlashMs,
		}
	}
	return false
}

// Heal restores health without exceeding the maximum.
func (s *DamageSystem) Heal(id types.EntityID, amount float64) {
	if amount <= 0 {
		return
	}
	s.ApplyDamage(id, -amount)
}

// Kill starts the death sequence. A second call while dying does nothing.
// The kill is credited by the EnemySystem once the sequence completes.
func (s *DamageSystem) Kill(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy.Dying {
		return
	}
	enemy.Dying = true
	enemy.DiedAt = s.ecs.GameTime
	enemy.ShieldActive = false
	abilityFor(enemy.Kind).onDeath(s, id, enemy)
}
