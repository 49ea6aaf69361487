package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TD_LIVES", "")
	t.Setenv("TD_MONEY", "")
	t.Setenv("TD_DIFFICULTY", "")
	t.Setenv("TD_SEED", "")

	s := Load()
	assert.Equal(t, 20, s.StartingLives)
	assert.Equal(t, 300, s.StartingMoney)
	assert.Equal(t, "EASY", s.Difficulty)
	assert.Equal(t, "forest", s.Map)
	assert.NotZero(t, s.Seed)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TD_LIVES", "5")
	t.Setenv("TD_MONEY", "1000")
	t.Setenv("TD_DIFFICULTY", "HARD")
	t.Setenv("TD_MAP", "desert")
	t.Setenv("TD_SEED", "42")
	t.Setenv("LOG_FORMAT", "json")

	s := Load()
	assert.Equal(t, 5, s.StartingLives)
	assert.Equal(t, 1000, s.StartingMoney)
	assert.Equal(t, "HARD", s.Difficulty)
	assert.Equal(t, "desert", s.Map)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, "json", s.LogFormat)
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("TD_LIVES", "many")

	assert.Equal(t, 20, Load().StartingLives)
}

func TestSettings_WithHelpersCopy(t *testing.T) {
	base := Default()
	hard := base.WithDifficulty("HARD").WithMap("mountain")

	assert.Equal(t, "EASY", base.Difficulty)
	assert.Equal(t, "HARD", hard.Difficulty)
	assert.Equal(t, "mountain", hard.Map)
}
