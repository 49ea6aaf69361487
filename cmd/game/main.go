// cmd/game/main.go
package main

import (
	"log/slog"
	"os"
	"time"

	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := float64(now.Sub(a.lastUpdateTime).Microseconds()) / 1000
	if deltaTime > config.MaxDeltaMs {
		deltaTime = config.MaxDeltaMs
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings := config.Load()
	setupLogger(settings)

	lib := defs.DefaultLibrary()
	if settings.DataDir != "" {
		loaded, err := defs.LoadLibrary(settings.DataDir)
		if err != nil {
			slog.Error("failed to load game data", "dir", settings.DataDir, "error", err)
			os.Exit(1)
		}
		lib = loaded
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, settings, lib))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Path Defense")
	slog.Info("starting", "difficulty", settings.Difficulty, "map", settings.Map, "seed", settings.Seed)
	if err := ebiten.RunGame(app); err != nil {
		slog.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(settings config.Settings) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch settings.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	if settings.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}
