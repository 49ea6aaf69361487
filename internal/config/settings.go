package config

import (
	"os"
	"strconv"
	"time"
)

// Settings is the per-session configuration. It is built once at startup
// and passed by value; nothing mutates it afterwards.
type Settings struct {
	StartingLives int
	StartingMoney int
	Difficulty    string
	Map           string
	DataDir       string // empty means built-in definitions
	Seed          int64
	LogLevel      string
	LogFormat     string
}

// Default returns the built-in session settings.
func Default() Settings {
	return Settings{
		StartingLives: 20,
		StartingMoney: 300,
		Difficulty:    "EASY",
		Map:           "forest",
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load reads settings from the environment, falling back to Default for
// unset or malformed values. A zero TD_SEED seeds from the wall clock.
func Load() Settings {
	d := Default()
	s := Settings{
		StartingLives: getEnvInt("TD_LIVES", d.StartingLives),
		StartingMoney: getEnvInt("TD_MONEY", d.StartingMoney),
		Difficulty:    getEnv("TD_DIFFICULTY", d.Difficulty),
		Map:           getEnv("TD_MAP", d.Map),
		DataDir:       getEnv("TD_DATA_DIR", d.DataDir),
		Seed:          int64(getEnvInt("TD_SEED", 0)),
		LogLevel:      getEnv("LOG_LEVEL", d.LogLevel),
		LogFormat:     getEnv("LOG_FORMAT", d.LogFormat),
	}
	if s.Seed == 0 {
		s.Seed = time.Now().UnixNano()
	}
	return s
}

// WithDifficulty returns a copy using another difficulty profile.
func (s Settings) WithDifficulty(id string) Settings {
	s.Difficulty = id
	return s
}

// WithMap returns a copy using another map.
func (s Settings) WithMap(id string) Settings {
	s.Map = id
	return s
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
