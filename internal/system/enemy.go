package system

import (
	"log/slog"

	"go-path-defense/internal/config"
	"go-path-defense/internal/economy"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// EnemySystem removes enemies that finished their death sequence or walked
// off the route, settling the ledger for each.
type EnemySystem struct {
	ecs             *entity.ECS
	ledger          *economy.Ledger
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(ecs *entity.ECS, ledger *economy.Ledger, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{ecs: ecs, ledger: ledger, eventDispatcher: eventDispatcher}
}

func (s *EnemySystem) Update(now float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		pos := s.ecs.Positions[id]

		if enemy.Dying {
			if now-enemy.DiedAt < config.DeathSequenceMs {
				continue
			}
			reward := enemy.Stats.Reward
			s.ledger.AddKill(reward)
			s.ecs.RemoveEntity(id)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyDied,
				Data: event.EnemyDiedData{ID: id, DefID: enemy.DefID, X: pos.X, Y: pos.Y, Reward: reward},
			})
			continue
		}

		if path := s.ecs.Paths[id]; path != nil && path.ReachedEnd {
			damage := enemy.Stats.Damage
			s.ledger.TakeDamage(damage)
			s.ecs.RemoveEntity(id)
			slog.Debug("enemy reached end", "id", id, "type", enemy.DefID, "lives", s.ledger.Lives())
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyReachedEnd,
				Data: event.EnemyReachedEndData{ID: id, DefID: enemy.DefID, Damage: damage},
			})
		}
	}
}

// Living returns the number of enemies still registered, dying ones
// included.
func (s *EnemySystem) Living() int {
	return len(s.ecs.Enemies)
}
