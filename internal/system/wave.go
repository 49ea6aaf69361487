// internal/system/wave.go
package system

import (
	"errors"
	"log/slog"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/utils"
)

var (
	ErrWaveInProgress   = errors.New("wave already in progress")
	ErrNoWavesRemaining = errors.New("no waves remaining")
)

// WaveSystem schedules spawns: Idle → Spawning → AwaitingClear → Completed.
// It only exposes wave counts; victory is decided by the caller.
type WaveSystem struct {
	ecs             *entity.ECS
	spawner         *SpawnSystem
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	profile         defs.DifficultyProfile
	waves           []defs.WaveDefinition
	phase           component.WavePhase
	current         int
}

func NewWaveSystem(ecs *entity.ECS, spawner *SpawnSystem, eventDispatcher *event.Dispatcher,
	rng *utils.PRNGService, waves []defs.WaveDefinition, profile defs.DifficultyProfile) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		profile:         profile,
		waves:           waves,
	}
}

func (s *WaveSystem) CurrentWave() int { return s.current }
func (s *WaveSystem) TotalWaves() int { return len(s.waves) }
func (s *WaveSystem) Phase() component.WavePhase { return s.phase }

// IsWaveInProgress is true while spawning or waiting for the field to clear.
func (s *WaveSystem) IsWaveInProgress() bool {
	return s.phase == component.WaveSpawning || s.phase == component.WaveAwaitingClear
}

// EnemiesRemaining is the number of spawns still scheduled for this wave.
func (s *WaveSystem) EnemiesRemaining() int {
	if s.ecs.Wave == nil {
		return 0
	}
	return s.ecs.Wave.Remaining()
}

// StartNextWave begins the next wave, spawning its first enemy at once.
func (s *WaveSystem) StartNextWave() error {
	if s.IsWaveInProgress() {
		return ErrWaveInProgress
	}
	if s.current >= len(s.waves) {
		return ErrNoWavesRemaining
	}
	s.current++
	def := defs.ResolveWave(s.waves[s.current-1], s.current, s.profile)

	now := s.ecs.GameTime
	s.ecs.Wave = &component.Wave{
		Number:    s.current,
		Enemies:   def.Enemies,
		BossWave:  def.BossWave,
		Count:     def.Count,
		Interval:  def.Interval,
		NextSpawn: now,
	}
	s.phase = component.WaveSpawning

	slog.Info("wave started", "wave", s.current, "total", len(s.waves), "count", def.Count, "enemies", def.Enemies)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: s.current, Total: len(s.waves)},
	})

	s.spawnDue(now)
	return nil
}

// SkipToNextWave clears the field, cancels pending spawns and starts the
// next wave.
func (s *WaveSystem) SkipToNextWave() error {
	for _, id := range s.ecs.EnemyIDs() {
		s.ecs.RemoveEntity(id)
	}
	s.ecs.Wave = nil
	s.phase = component.WaveIdle
	return s.StartNextWave()
}

// Reset returns the scheduler to before the first wave.
func (s *WaveSystem) Reset() {
	s.ecs.Wave = nil
	s.phase = component.WaveIdle
	s.current = 0
}

func (s *WaveSystem) Update(now float64) {
	switch s.phase {
	case component.WaveSpawning:
		s.spawnDue(now)
	case component.WaveAwaitingClear:
		if len(s.ecs.Enemies) > 0 {
			return
		}
		s.phase = component.WaveCompleted
		s.ecs.Wave = nil
		slog.Info("wave completed", "wave", s.current, "total", len(s.waves))
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveCompleted,
			Data: event.WaveData{Number: s.current, Total: len(s.waves)},
		})
	}
}

func (s *WaveSystem) spawnDue(now float64) {
	wave := s.ecs.Wave
	for wave.Spawned < wave.Count && now >= wave.NextSpawn {
		defID := wave.Enemies[0]
		if !wave.BossWave {
			defID = s.rng.Choose(wave.Enemies)
		}
		if _, err := s.spawner.Spawn(defID); err != nil {
			slog.Error("wave spawn failed", "wave", wave.Number, "error", err)
		}
		wave.Spawned++
		wave.NextSpawn += wave.Interval
	}
	if wave.Spawned >= wave.Count {
		s.phase = component.WaveAwaitingClear
	}
}
