package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (w *world) useWaves(waves []defs.WaveDefinition, profile defs.DifficultyProfile) {
	w.spawner.profile = profile
	w.waves = NewWaveSystem(w.ecs, w.spawner, w.dispatcher, utils.NewPRNGService(3), waves, profile)
}

func TestWave_CountScaledAndSpawnedOnInterval(t *testing.T) {
	w := newWorld(t)
	w.useWaves([]defs.WaveDefinition{{Enemies: []string{"BASIC"}, Count: 10, Interval: 1500}},
		defs.DifficultyProfile{EnemyHealthMultiplier: 1, EnemySpeedMultiplier: 1, EnemyRewardMultiplier: 1, EnemyCountMultiplier: 1.2})

	require.NoError(t, w.waves.StartNextWave())
	assert.Len(t, w.ecs.Enemies, 1, "first spawn is immediate")
	assert.Equal(t, 11, w.waves.EnemiesRemaining())

	w.ecs.GameTime = 1499
	w.waves.Update(w.ecs.GameTime)
	assert.Len(t, w.ecs.Enemies, 1)

	w.ecs.GameTime = 1500
	w.waves.Update(w.ecs.GameTime)
	assert.Len(t, w.ecs.Enemies, 2)

	w.ecs.GameTime = 100000
	w.waves.Update(w.ecs.GameTime)
	assert.Len(t, w.ecs.Enemies, 12)
	assert.Equal(t, 0, w.waves.EnemiesRemaining())
	assert.Equal(t, component.WaveAwaitingClear, w.waves.Phase())

	w.waves.Update(w.ecs.GameTime + 1500)
	assert.Len(t, w.ecs.Enemies, 12, "never more than count")
	assert.Len(t, w.events.OfType(event.EnemySpawned), 12)
}

func TestWave_CompletesOnlyWhenFieldIsClear(t *testing.T) {
	w := newWorld(t)
	w.useWaves([]defs.WaveDefinition{
		{Enemies: []string{"BASIC"}, Count: 2, Interval: 100},
		{Enemies: []string{"FAST"}, Count: 1, Interval: 100},
	}, w.lib.Difficulties["EASY"])

	require.NoError(t, w.waves.StartNextWave())
	assert.ErrorIs(t, w.waves.StartNextWave(), ErrWaveInProgress)

	w.tick(100)
	assert.Equal(t, component.WaveAwaitingClear, w.waves.Phase())
	w.tick(100)
	assert.Empty(t, w.events.OfType(event.WaveCompleted))

	for _, id := range w.ecs.EnemyIDs() {
		w.damage.Kill(id)
	}
	w.tick(100)
	assert.Empty(t, w.events.OfType(event.WaveCompleted), "dying enemies still count")
	w.tick(300)

	done := w.events.OfType(event.WaveCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, event.WaveData{Number: 1, Total: 2}, done[0].Data)
	assert.False(t, w.waves.IsWaveInProgress())

	require.NoError(t, w.waves.StartNextWave())
	assert.Equal(t, 2, w.waves.CurrentWave())
	assert.Equal(t, 2, w.waves.TotalWaves())
	for _, id := range w.ecs.EnemyIDs() {
		w.ecs.RemoveEntity(id)
	}
	w.tick(16)
	w.tick(16)
	assert.Len(t, w.events.OfType(event.WaveCompleted), 2)
	assert.ErrorIs(t, w.waves.StartNextWave(), ErrNoWavesRemaining)
}

func TestWave_BossWaveSpawnsFirstType(t *testing.T) {
	w := newWorld(t)
	w.useWaves([]defs.WaveDefinition{{Enemies: []string{"BOSS", "BASIC"}, Count: 3, Interval: 10, BossWave: true}},
		w.lib.Difficulties["EASY"])

	require.NoError(t, w.waves.StartNextWave())
	w.ecs.GameTime = 50
	w.waves.Update(50)
	require.Len(t, w.ecs.Enemies, 3)
	for _, e := range w.ecs.Enemies {
		assert.Equal(t, "BOSS", e.DefID)
	}
}

func TestWave_MixedTypesComeFromTheSet(t *testing.T) {
	w := newWorld(t)
	w.useWaves([]defs.WaveDefinition{{Enemies: []string{"BASIC", "FAST"}, Count: 40, Interval: 0}},
		w.lib.Difficulties["EASY"])

	require.NoError(t, w.waves.StartNextWave())
	seen := map[string]bool{}
	for _, e := range w.ecs.Enemies {
		seen[e.DefID] = true
	}
	assert.Len(t, w.ecs.Enemies, 40)
	assert.Equal(t, map[string]bool{"BASIC": true, "FAST": true}, seen)
}

func TestWave_HarderTiersEnrichEarlyWaves(t *testing.T) {
	w := newWorld(t)
	hard := w.lib.Difficulties["HARD"]
	w.useWaves(defs.ComposeWaves(w.lib.Waves, w.lib.ExtraWaves, hard), hard)

	assert.Equal(t, 15, w.waves.TotalWaves())
	require.NoError(t, w.waves.StartNextWave())
	assert.Equal(t, []string{"BASIC", "FAST"}, w.ecs.Wave.Enemies)
	assert.Equal(t, 15, w.ecs.Wave.Count)

	require.Len(t, w.ecs.Enemies, 1)
	for id, e := range w.ecs.Enemies {
		want := map[string]float64{"BASIC": 160, "FAST": 96}[e.DefID]
		assert.Equal(t, want, w.ecs.Healths[id].Max)
	}
}

func TestWave_SkipToNextWave(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, w.waves.StartNextWave())
	w.tick(5000)
	require.NotEmpty(t, w.ecs.Enemies)

	require.NoError(t, w.waves.SkipToNextWave())
	assert.Equal(t, 2, w.waves.CurrentWave())
	assert.Len(t, w.ecs.Enemies, 1)
	assert.Equal(t, component.WaveSpawning, w.waves.Phase())
}
