package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary_Validates(t *testing.T) {
	lib := DefaultLibrary()
	require.NoError(t, lib.Validate())

	assert.Len(t, lib.Waves, 10)
	assert.True(t, lib.Waves[9].BossWave)
	assert.Equal(t, []string{"BASIC", "AOE", "SLOW", "MULTISHOT", "SUPPORT"}, lib.TowerOrder)
	assert.Equal(t, "EASY", lib.EasiestDifficulty())
	assert.Equal(t, []string{"EASY", "NORMAL", "HARD"}, lib.DifficultyIDs())
	assert.Equal(t, []string{"desert", "forest", "mountain"}, lib.MapIDs())

	basic, err := lib.Tower("BASIC")
	require.NoError(t, err)
	assert.Equal(t, "BASIC", basic.ID)
	assert.Equal(t, 3, basic.MaxLevel)
}

func TestLibrary_UnknownLookups(t *testing.T) {
	lib := DefaultLibrary()

	_, err := lib.Tower("LASER")
	assert.ErrorIs(t, err, ErrUnknownTower)
	_, err = lib.Enemy("DRAGON")
	assert.ErrorIs(t, err, ErrUnknownEnemy)
	_, err = lib.Difficulty("NIGHTMARE")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
	_, err = lib.Map("moon")
	assert.ErrorIs(t, err, ErrUnknownMap)
}

func TestValidate_RejectsUndefinedEnemyInWave(t *testing.T) {
	lib := DefaultLibrary()
	lib.Waves = append(lib.Waves, WaveDefinition{Enemies: []string{"GHOST"}, Count: 3, Interval: 100})

	err := lib.Validate()
	assert.ErrorIs(t, err, ErrUnknownEnemy)
}

func TestValidate_RejectsBadArmor(t *testing.T) {
	lib := DefaultLibrary()
	e := lib.Enemies["ARMORED"]
	e.Armor = 1
	lib.Enemies["ARMORED"] = e

	assert.ErrorIs(t, lib.Validate(), ErrInvalidDefinition)
}

func TestValidate_RejectsShortMapPath(t *testing.T) {
	lib := DefaultLibrary()
	m := lib.Maps["forest"]
	m.Paths = [][]Tile{{{0, 0}}}
	lib.Maps["forest"] = m

	assert.ErrorIs(t, lib.Validate(), ErrInvalidPath)
}

func TestTowerDefinition_Economics(t *testing.T) {
	def := TowerDefinition{Cost: 100, Kind: TowerBasic}.withDefaults()

	assert.Equal(t, 50, def.UpgradeCost(1))
	assert.Equal(t, 100, def.UpgradeCost(2))

	assert.Equal(t, 60, def.SellRefund(1))
	assert.Equal(t, 90, def.SellRefund(2))
	assert.Equal(t, 120, def.SellRefund(3))

	odd := TowerDefinition{Cost: 175}.withDefaults()
	// floor((175 + 87) * 0.6)
	assert.Equal(t, 157, odd.SellRefund(2))
}

func TestTowerDefinition_TargetsFlying(t *testing.T) {
	yes, no := true, false

	assert.False(t, TowerDefinition{Kind: TowerBasic}.TargetsFlying())
	assert.True(t, TowerDefinition{Kind: TowerAoE}.TargetsFlying())
	assert.True(t, TowerDefinition{Kind: TowerBasic, CanTargetFlying: &yes}.TargetsFlying())
	assert.False(t, TowerDefinition{Kind: TowerSlow, CanTargetFlying: &no}.TargetsFlying())
}

func TestDifficulty_ApplyToEnemyRounds(t *testing.T) {
	p := DifficultyProfile{
		EnemyHealthMultiplier: 1.25,
		EnemySpeedMultiplier:  1.1,
		EnemyRewardMultiplier: 0.9,
		EnemyCountMultiplier:  1,
	}
	base := EnemyDefinition{Health: 60, Speed: 180, Reward: 15}

	got := p.ApplyToEnemy(base)
	assert.Equal(t, 75.0, got.Health)
	assert.Equal(t, 198.0, got.Speed)
	assert.Equal(t, 14, got.Reward)
	assert.Equal(t, 60.0, base.Health, "template must stay untouched")
}

func TestResolveWave_ScalesCount(t *testing.T) {
	p := DifficultyProfile{EnemyCountMultiplier: 1.2}
	wave := WaveDefinition{Enemies: []string{"BASIC"}, Count: 10, Interval: 1500}

	got := ResolveWave(wave, 1, p)
	assert.Equal(t, 12, got.Count)
	assert.Equal(t, 1500.0, got.Interval)

	tiny := DifficultyProfile{EnemyCountMultiplier: 0.01}
	assert.Equal(t, 1, ResolveWave(wave, 1, tiny).Count)
}

func TestResolveWave_EarlyWaveMix(t *testing.T) {
	lib := DefaultLibrary()
	hard := lib.Difficulties["HARD"]
	easy := lib.Difficulties["EASY"]

	assert.Equal(t, []string{"BASIC", "FAST"}, ResolveWave(lib.Waves[0], 1, hard).Enemies)
	assert.Equal(t, []string{"BASIC"}, ResolveWave(lib.Waves[0], 1, easy).Enemies)
	assert.Equal(t, lib.Waves[2].Enemies, ResolveWave(lib.Waves[2], 3, hard).Enemies)
	assert.Equal(t, []string{"BOSS"}, ResolveWave(lib.Waves[9], 1, hard).Enemies)
}

func TestComposeWaves(t *testing.T) {
	base := []WaveDefinition{{Count: 1}, {Count: 2}, {Count: 3}}
	extra := []WaveDefinition{{Count: 10}, {Count: 20}}

	t.Run("no adjustment", func(t *testing.T) {
		assert.Len(t, ComposeWaves(base, extra, DifficultyProfile{}), 3)
	})
	t.Run("extra waves repeat the last one", func(t *testing.T) {
		got := ComposeWaves(base, extra, DifficultyProfile{WaveCountAdjustment: 3})
		require.Len(t, got, 6)
		assert.Equal(t, 10, got[3].Count)
		assert.Equal(t, 20, got[4].Count)
		assert.Equal(t, 20, got[5].Count)
	})
	t.Run("negative keeps the final wave", func(t *testing.T) {
		got := ComposeWaves(base, extra, DifficultyProfile{WaveCountAdjustment: -1})
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Count)
		assert.Equal(t, 3, got[1].Count)
	})
	t.Run("never below one", func(t *testing.T) {
		got := ComposeWaves(base, extra, DifficultyProfile{WaveCountAdjustment: -10})
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].Count)
	})
	t.Run("base is not aliased", func(t *testing.T) {
		_ = ComposeWaves(base, extra, DifficultyProfile{WaveCountAdjustment: -1})
		assert.Equal(t, 2, base[1].Count)
	})
}

func TestMapDefinition_Tiles(t *testing.T) {
	m := MapDefinition{
		Width: 5, Height: 4, TileSize: 64,
		Paths: [][]Tile{{{0, 1}, {3, 1}, {3, 3}}},
	}

	tile, ok := m.TileAt(130, 70)
	require.True(t, ok)
	assert.Equal(t, Tile{X: 2, Y: 1}, tile)

	_, ok = m.TileAt(64*5, 10)
	assert.False(t, ok)
	_, ok = m.TileAt(-1, 10)
	assert.False(t, ok)

	tiles := m.PathTiles()
	assert.Len(t, tiles, 6)
	assert.True(t, tiles[Tile{X: 1, Y: 1}])
	assert.True(t, tiles[Tile{X: 3, Y: 2}])
	assert.False(t, tiles[Tile{X: 2, Y: 2}])

	path, err := m.MainPath()
	require.NoError(t, err)
	assert.Equal(t, 32.0, path.Start().X)
	assert.Equal(t, 96.0, path.Start().Y)
	assert.InDelta(t, 3*64.0+2*64.0, path.TotalLength(), 1e-9)
}

func TestLoadLibrary_OverridesAndFallsBack(t *testing.T) {
	dir := t.TempDir()
	towers := `[
		{"id": "ARROW", "name": "Arrow", "kind": "basic", "cost": 80, "damage": 12, "range": 140, "fire_rate": 700, "projectile_speed": 400}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, TowersFile), []byte(towers), 0o644))

	lib, err := LoadLibrary(dir)
	require.NoError(t, err)

	arrow, err := lib.Tower("ARROW")
	require.NoError(t, err)
	assert.Equal(t, 80, arrow.Cost)
	assert.Equal(t, 3, arrow.MaxLevel)
	assert.Equal(t, 1.5, arrow.Upgrade.Damage)
	assert.Equal(t, []string{"ARROW"}, lib.TowerOrder)

	_, err = lib.Tower("BASIC")
	assert.ErrorIs(t, err, ErrUnknownTower)

	// enemies and waves come from the built-in tables
	assert.Len(t, lib.Waves, 10)
	_, err = lib.Enemy("BOSS")
	assert.NoError(t, err)
}

func TestLoadLibrary_RejectsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnemiesFile), []byte("{not json"), 0o644))

	_, err := LoadLibrary(dir)
	assert.Error(t, err)

	dir = t.TempDir()
	waves := `{"waves": [{"enemies": ["WRAITH"], "count": 2, "interval": 500}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, WavesFile), []byte(waves), 0o644))

	_, err = LoadLibrary(dir)
	assert.ErrorIs(t, err, ErrUnknownEnemy)
}
