// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"
	"log/slog"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	menuButtonWidth  = 160
	menuButtonHeight = 36
	menuSpacing      = 12
)

// MenuState - выбор сложности и карты перед началом сессии.
type MenuState struct {
	sm       *StateMachine
	settings config.Settings
	lib      *defs.Library

	difficultyIDs     []string
	mapIDs            []string
	difficultyButtons []*ui.Button
	mapButtons        []*ui.Button
	startButton       *ui.Button
	errText           string
}

func NewMenuState(sm *StateMachine, settings config.Settings, lib *defs.Library) *MenuState {
	face := basicfont.Face7x13
	m := &MenuState{
		sm:            sm,
		settings:      settings,
		lib:           lib,
		difficultyIDs: lib.DifficultyIDs(),
		mapIDs:        lib.MapIDs(),
	}
	m.difficultyButtons = rowOfButtons(len(m.difficultyIDs), 260, func(i int) string {
		return lib.Difficulties[m.difficultyIDs[i]].Name
	})
	m.mapButtons = rowOfButtons(len(m.mapIDs), 380, func(i int) string {
		return lib.Maps[m.mapIDs[i]].Name
	})
	cx := config.ScreenWidth / 2
	m.startButton = ui.NewButton(image.Rect(cx-menuButtonWidth/2, 500, cx+menuButtonWidth/2, 500+menuButtonHeight), "Start", face)
	return m
}

// rowOfButtons центрирует n кнопок по горизонтали на высоте y.
func rowOfButtons(n, y int, label func(i int) string) []*ui.Button {
	total := n*menuButtonWidth + (n-1)*menuSpacing
	left := (config.ScreenWidth - total) / 2
	buttons := make([]*ui.Button, n)
	for i := range buttons {
		x := left + i*(menuButtonWidth+menuSpacing)
		buttons[i] = ui.NewButton(image.Rect(x, y, x+menuButtonWidth, y+menuButtonHeight), label(i), basicfont.Face7x13)
	}
	return buttons
}

func (m *MenuState) Enter() {
	m.errText = ""
}

func (m *MenuState) Update(deltaTime float64) {
	for i, b := range m.difficultyButtons {
		b.Active = m.difficultyIDs[i] == m.settings.Difficulty
	}
	for i, b := range m.mapButtons {
		b.Active = m.mapIDs[i] == m.settings.Map
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.start()
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	for i, b := range m.difficultyButtons {
		if b.IsClicked(x, y) {
			m.settings = m.settings.WithDifficulty(m.difficultyIDs[i])
		}
	}
	for i, b := range m.mapButtons {
		if b.IsClicked(x, y) {
			m.settings = m.settings.WithMap(m.mapIDs[i])
		}
	}
	if m.startButton.IsClicked(x, y) {
		m.start()
	}
}

func (m *MenuState) start() {
	game, err := app.NewGame(m.settings, m.lib)
	if err != nil {
		slog.Error("cannot start session", "error", err)
		m.errText = err.Error()
		return
	}
	m.sm.SetState(NewGameState(m.sm, game))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	title := "PATH DEFENSE"
	ui.DrawCenteredText(screen, face, title, image.Rect(0, 120, config.ScreenWidth, 160), config.TextLightColor)
	ui.DrawCenteredText(screen, face, "Difficulty", image.Rect(0, 230, config.ScreenWidth, 250), config.TextLightColor)
	ui.DrawCenteredText(screen, face, "Map", image.Rect(0, 350, config.ScreenWidth, 370), config.TextLightColor)

	cx, cy := ebiten.CursorPosition()
	for _, b := range m.difficultyButtons {
		b.Draw(screen, b.Contains(cx, cy))
	}
	for _, b := range m.mapButtons {
		b.Draw(screen, b.Contains(cx, cy))
	}
	m.startButton.Draw(screen, m.startButton.Contains(cx, cy))

	if profile, ok := m.lib.Difficulties[m.settings.Difficulty]; ok {
		info := fmt.Sprintf("health x%.1f  speed x%.1f  count x%.1f", profile.EnemyHealthMultiplier, profile.EnemySpeedMultiplier, profile.EnemyCountMultiplier)
		ui.DrawCenteredText(screen, face, info, image.Rect(0, 305, config.ScreenWidth, 325), config.TextLightColor)
	}
	if m.errText != "" {
		text.Draw(screen, m.errText, face, 20, config.ScreenHeight-20, config.DefeatColor)
	}
}

func (m *MenuState) Exit() {}
