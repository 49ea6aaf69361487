// internal/state/pause_state.go
package state

import (
	"image"
	"image/color"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную игру под затемнением. Пока состояние
// активно, часы сессии стоят.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		game := s.previousState.Game()
		s.stateMachine.SetState(NewMenuState(s.stateMachine, game.Settings, game.Library))
		return
	}

	if unpause {
		s.previousState.resume()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	face := basicfont.Face7x13
	mid := config.ScreenHeight / 2
	ui.DrawCenteredText(screen, face, "PAUSED", image.Rect(0, mid-30, config.ScreenWidth, mid-10), config.TextLightColor)
	ui.DrawCenteredText(screen, face, "P / Esc to resume, Q to quit to menu", image.Rect(0, mid, config.ScreenWidth, mid+20), config.TextLightColor)
}

func (s *PauseState) Exit() {}
