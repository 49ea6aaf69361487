// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/economy"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/pathing"

	"github.com/google/uuid"
)

// Rejection объясняет, почему команда не выполнена. Пустое значение - успех.
type Rejection string

const (
	Accepted                Rejection = ""
	RejectInsufficientFunds Rejection = "insufficient_funds"
	RejectMaxLevel          Rejection = "max_level"
	RejectTileOccupied      Rejection = "tile_occupied"
	RejectTileRestricted    Rejection = "tile_restricted"
	RejectOutOfBounds       Rejection = "out_of_bounds"
	RejectUnknownTower      Rejection = "unknown_tower"
	RejectWaveInProgress    Rejection = "wave_in_progress"
	RejectNoWavesRemaining  Rejection = "no_waves_remaining"
	RejectGameOver          Rejection = "game_over"
)

func (r Rejection) OK() bool { return r == Accepted }

// Game holds one play session: the world, the ledger and the systems that
// advance them in a fixed order.
type Game struct {
	SessionID uuid.UUID
	Settings  config.Settings
	Library   *defs.Library
	Profile   defs.DifficultyProfile
	Map       defs.MapDefinition
	Route     *pathing.Path
	Grid      *Grid

	ECS             *entity.ECS
	Ledger          *economy.Ledger
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	SpawnSystem        *system.SpawnSystem
	DamageSystem       *system.DamageSystem
	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	AbilitySystem      *system.AbilitySystem
	EnemySystem        *system.EnemySystem
	CombatSystem       *system.CombatSystem
	AuraSystem         *system.AuraSystem
	ProjectileSystem   *system.ProjectileSystem
	CollisionSystem    *system.CollisionSystem
	VisualEffectSystem *system.VisualEffectSystem
	WaveSystem         *system.WaveSystem

	SpeedMultiplier int // 1, 2 or 4 fixed steps per frame

	isPaused       bool
	isOver         bool
	victory        bool
	victoryPending bool
	log            *slog.Logger
}

// NewGame builds a session from settings and an already validated library.
func NewGame(settings config.Settings, lib *defs.Library) (*Game, error) {
	profile, err := lib.Difficulty(settings.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	mapDef, err := lib.Map(settings.Map)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	route, err := mapDef.MainPath()
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		SessionID:       uuid.New(),
		Settings:        settings,
		Library:         lib,
		Profile:         profile,
		Map:             mapDef,
		Route:           route,
		Grid:            NewGrid(mapDef),
		ECS:             ecs,
		Ledger:          economy.NewLedger(settings.StartingLives, settings.StartingMoney),
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(settings.Seed),
		SpeedMultiplier: 1,
	}
	g.log = slog.With("session", g.SessionID.String())

	g.SpawnSystem = system.NewSpawnSystem(ecs, lib, profile, route, eventDispatcher)
	g.DamageSystem = system.NewDamageSystem(ecs, g.SpawnSystem)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs, g.StatusEffectSystem)
	g.AbilitySystem = system.NewAbilitySystem(ecs, g.DamageSystem)
	g.EnemySystem = system.NewEnemySystem(ecs, g.Ledger, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.AuraSystem = system.NewAuraSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.DamageSystem, g.StatusEffectSystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	waves := defs.ComposeWaves(lib.Waves, lib.ExtraWaves, profile)
	g.WaveSystem = system.NewWaveSystem(ecs, g.SpawnSystem, eventDispatcher, g.Rng, waves, profile)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveCompleted, listener)

	g.log.Info("session created",
		"difficulty", profile.ID, "map", mapDef.ID, "waves", len(waves),
		"lives", settings.StartingLives, "money", settings.StartingMoney, "seed", g.Rng.Seed())
	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveCompleted:
		data, ok := e.Data.(event.WaveData)
		if !ok {
			return
		}
		bonus := l.game.Ledger.AddWaveCompleted()
		l.game.log.Info("wave bonus paid", "wave", data.Number, "bonus", bonus)
		if data.Number >= data.Total {
			l.game.victoryPending = true
		}
	}
}

// Update advances the session by one frame. The delta is clamped and then
// split into SpeedMultiplier equal simulation steps.
func (g *Game) Update(deltaMs float64) {
	if g.isPaused || g.isOver || deltaMs <= 0 {
		return
	}
	if deltaMs > config.MaxDeltaMs {
		deltaMs = config.MaxDeltaMs
	}
	steps := g.SpeedMultiplier
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps && !g.isOver; i++ {
		g.step(deltaMs)
	}
}

// step: towers → enemies → projectiles → collisions → waves.
func (g *Game) step(dt float64) {
	g.ECS.GameTime += dt
	now := g.ECS.GameTime

	g.CombatSystem.Update(now)
	g.AuraSystem.Update(now)
	g.MovementSystem.Update(dt)
	g.AbilitySystem.Update(now)
	g.EnemySystem.Update(now)
	g.ProjectileSystem.Update(dt)
	g.CollisionSystem.Update()
	g.WaveSystem.Update(now)
	g.VisualEffectSystem.Update(dt)

	g.checkGameOver()
}

func (g *Game) checkGameOver() {
	if g.isOver {
		return
	}
	switch {
	case g.Ledger.Lives() <= 0:
		g.finish(false)
	case g.victoryPending:
		g.finish(true)
	}
}

func (g *Game) finish(victory bool) {
	g.isOver = true
	g.victory = victory
	stats := g.Ledger.Stats()
	g.log.Info("game over", "victory", victory, "wave", g.WaveSystem.CurrentWave(),
		"score", stats.Score, "kills", stats.EnemiesKilled)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Victory: victory, FinalWave: g.WaveSystem.CurrentWave(), FinalScore: stats.Score},
	})
}

// StartNextWave begins the next wave if none is running.
func (g *Game) StartNextWave() Rejection {
	if g.isOver {
		return g.reject("start wave", RejectGameOver)
	}
	err := g.WaveSystem.StartNextWave()
	switch {
	case errors.Is(err, system.ErrWaveInProgress):
		return g.reject("start wave", RejectWaveInProgress)
	case errors.Is(err, system.ErrNoWavesRemaining):
		return g.reject("start wave", RejectNoWavesRemaining)
	}
	return Accepted
}

// Pause freezes the simulation. Repeated calls are no-ops.
func (g *Game) Pause() {
	if g.isPaused || g.isOver {
		return
	}
	g.isPaused = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.GamePaused})
}

// Resume unfreezes the simulation. Repeated calls are no-ops.
func (g *Game) Resume() {
	if !g.isPaused {
		return
	}
	g.isPaused = false
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameResumed})
}

// TogglePause переключает паузу.
func (g *Game) TogglePause() {
	if g.isPaused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// CycleSpeed steps the speed multiplier through 1, 2 and 4.
func (g *Game) CycleSpeed() {
	g.SpeedMultiplier *= 2
	if g.SpeedMultiplier > 4 {
		g.SpeedMultiplier = 1
	}
}

// Restart resets the session to its initial state. Subscriptions survive.
func (g *Game) Restart() {
	g.ECS.Clear()
	g.Ledger.Reset()
	g.WaveSystem.Reset()
	g.Grid.Reset()
	g.isPaused, g.isOver, g.victory, g.victoryPending = false, false, false, false
	g.SpeedMultiplier = 1
	g.SessionID = uuid.New()
	g.log = slog.With("session", g.SessionID.String())
	g.log.Info("session restarted")
}

func (g *Game) reject(op string, r Rejection, attrs ...any) Rejection {
	g.log.Debug("command rejected", append([]any{"op", op, "reason", string(r)}, attrs...)...)
	return r
}

// --- Public Accessors ---

func (g *Game) Lives() int { return g.Ledger.Lives() }
func (g *Game) Money() int { return g.Ledger.Money() }
func (g *Game) Score() int { return g.Ledger.Score() }
func (g *Game) Wave() int { return g.WaveSystem.CurrentWave() }
func (g *Game) TotalWaves() int { return g.WaveSystem.TotalWaves() }
func (g *Game) IsPaused() bool { return g.isPaused }
func (g *Game) IsOver() bool { return g.isOver }
func (g *Game) IsVictory() bool { return g.victory }
func (g *Game) GetGameTime() float64 { return g.ECS.GameTime }

// Snapshot is a read-only view of the session for observers.
type Snapshot struct {
	economy.Stats
	Wave             int
	TotalWaves       int
	Phase            component.WavePhase
	EnemiesAlive     int
	EnemiesRemaining int
	Towers           int
	Paused           bool
	Over             bool
	Victory          bool
	Speed            int
	GameTime         float64
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Stats:            g.Ledger.Stats(),
		Wave:             g.WaveSystem.CurrentWave(),
		TotalWaves:       g.WaveSystem.TotalWaves(),
		Phase:            g.WaveSystem.Phase(),
		EnemiesAlive:     g.EnemySystem.Living(),
		EnemiesRemaining: g.WaveSystem.EnemiesRemaining(),
		Towers:           len(g.ECS.Towers),
		Paused:           g.isPaused,
		Over:             g.isOver,
		Victory:          g.victory,
		Speed:            g.SpeedMultiplier,
		GameTime:         g.ECS.GameTime,
	}
}
