package system

import (
	"log/slog"
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/utils"
)

// ability is the per-kind behaviour of an enemy.
type ability interface {
	onTick(s *AbilitySystem, id types.EntityID, enemy *component.Enemy, now float64)
	// onDamage may change or absorb an incoming amount.
	onDamage(enemy *component.Enemy, amount float64) float64
	onDeath(d *DamageSystem, id types.EntityID, enemy *component.Enemy)
}

type plain struct{}
type healer struct{ plain }
type shield struct{ plain }
type splitter struct{ plain }
type teleporter struct{ plain }

func abilityFor(kind defs.EnemyKind) ability {
	switch kind {
	case defs.EnemyHealer:
		return healer{}
	case defs.EnemyShield:
		return shield{}
	case defs.EnemySplit:
		return splitter{}
	case defs.EnemyTeleport:
		return teleporter{}
	}
	return plain{}
}

func (plain) onTick(*AbilitySystem, types.EntityID, *component.Enemy, float64) {}
func (plain) onDamage(_ *component.Enemy, amount float64) float64 { return amount }
func (plain) onDeath(*DamageSystem, types.EntityID, *component.Enemy) {}

// AbilitySystem runs the timed enemy abilities.
type AbilitySystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewAbilitySystem(ecs *entity.ECS, damage *DamageSystem) *AbilitySystem {
	return &AbilitySystem{ecs: ecs, damage: damage}
}

// Update skips enemies that are dying or already at the path end.
func (s *AbilitySystem) Update(now float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemies[id]
		if !ok || enemy.Dying {
			continue
		}
		if path := s.ecs.Paths[id]; path != nil && path.ReachedEnd {
			continue
		}
		abilityFor(enemy.Kind).onTick(s, id, enemy, now)
	}
}

func (healer) onTick(s *AbilitySystem, id types.EntityID, enemy *component.Enemy, now float64) {
	st := enemy.Stats
	if now <= enemy.LastAction+st.HealInterval {
		return
	}
	enemy.LastAction = now
	pos := s.ecs.Positions[id]
	for _, otherID := range s.ecs.EnemyIDs() {
		if otherID == id {
			continue
		}
		other := s.ecs.Enemies[otherID]
		health := s.ecs.Healths[otherID]
		if other == nil || other.Dying || health == nil || health.Current <= 0 {
			continue
		}
		op := s.ecs.Positions[otherID]
		if utils.Distance(pos.X, pos.Y, op.X, op.Y) <= st.HealRadius {
			s.damage.Heal(otherID, st.HealAmount)
		}
	}
}

func (shield) onTick(_ *AbilitySystem, _ types.EntityID, enemy *component.Enemy, now float64) {
	st := enemy.Stats
	if enemy.ShieldActive {
		if now > enemy.LastShield+st.ShieldDuration {
			enemy.ShieldActive = false
		}
		return
	}
	if now > enemy.LastShield+st.ShieldCooldown {
		enemy.ShieldActive = true
		enemy.LastShield = now
	}
}

func (shield) onDamage(enemy *component.Enemy, amount float64) float64 {
	if enemy.ShieldActive && amount > 0 {
		return 0
	}
	return amount
}

// onDeath spawns the children around the death point before the parent's
// own death handling continues.
func (splitter) onDeath(d *DamageSystem, id types.EntityID, enemy *component.Enemy) {
	st := enemy.Stats
	if st.SplitCount <= 0 || d.spawner == nil {
		return
	}

	var child defs.EnemyDefinition
	if st.SplitData != nil {
		child = d.spawner.profile.ApplyToEnemy(*st.SplitData)
		if child.ID == "" {
			child.ID = st.SplitType
		}
	} else {
		var err error
		child, err = d.spawner.ResolveEnemy(st.SplitType)
		if err != nil {
			slog.Error("split child not spawned", "parent", id, "error", err)
			return
		}
	}

	pos := d.ecs.Positions[id]
	path := d.ecs.Paths[id]
	for i := 0; i < st.SplitCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(st.SplitCount)
		x := pos.X + math.Cos(angle)*config.SplitOffset
		y := pos.Y + math.Sin(angle)*config.SplitOffset
		d.spawner.spawnChild(child, x, y, path.Segment, path.T)
	}
}

func (teleporter) onTick(s *AbilitySystem, id types.EntityID, enemy *component.Enemy, now float64) {
	st := enemy.Stats
	if now <= enemy.LastAction+st.TeleportInterval {
		return
	}
	enemy.LastAction = now

	path := s.ecs.Paths[id]
	last := path.Route.SegmentCount() - 1
	target := path.Segment + st.TeleportDistance
	if target > last {
		target = last
	}
	if target <= path.Segment {
		return
	}
	path.Segment = target
	path.T = 0

	pose := path.Route.Interpolate(path.Segment, 0)
	pos := s.ecs.Positions[id]
	pos.X, pos.Y = pose.X, pose.Y
	if vel := s.ecs.Velocities[id]; vel != nil {
		vel.Heading = pose.Heading
	}
}
