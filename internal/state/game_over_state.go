// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог сессии поверх последнего кадра.
type GameOverState struct {
	sm   *StateMachine
	prev *GameState
}

func NewGameOverState(sm *StateMachine, prev *GameState) *GameOverState {
	return &GameOverState{sm: sm, prev: prev}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	game := s.prev.Game()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		game.Restart()
		s.sm.SetState(NewGameState(s.sm, game))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.sm.SetState(NewMenuState(s.sm, game.Settings, game.Library))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)
	game := s.prev.Game()

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	title, clr := "DEFEAT", config.DefeatColor
	if game.IsVictory() {
		title, clr = "VICTORY", config.VictoryColor
	}
	snap := game.Snapshot()
	face := basicfont.Face7x13
	mid := config.ScreenHeight / 2
	lines := []string{
		fmt.Sprintf("Score %d", snap.Score),
		fmt.Sprintf("Wave %d / %d   Lives %d   Kills %d", snap.Wave, snap.TotalWaves, snap.Lives, snap.EnemiesKilled),
		"R to play again, Enter for menu",
	}
	ui.DrawCenteredText(screen, face, title, image.Rect(0, mid-60, config.ScreenWidth, mid-40), clr)
	for i, line := range lines {
		y := mid - 20 + i*24
		ui.DrawCenteredText(screen, face, line, image.Rect(0, y, config.ScreenWidth, y+20), config.TextLightColor)
	}
}

func (s *GameOverState) Exit() {}
