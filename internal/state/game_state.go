// internal/state/game_state.go
package state

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/types"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const messageDuration = 1500 * time.Millisecond

var paletteKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState - состояние игры
type GameState struct {
	sm              *StateMachine
	game            *app.Game
	fontFace        font.Face
	tiles           *render.TileRenderer
	entities        *render.EntityRenderer
	palette         *ui.TowerPalette
	indicator       *ui.StateIndicator
	speedButton     *ui.SpeedButton
	pauseButton     *ui.PauseButton
	waveIndicator   *ui.WaveIndicator
	healthIndicator *ui.PlayerHealthIndicator
	infoPanel       *ui.InfoPanel
	message         string
	messageUntil    time.Time
	lastClickTime   time.Time
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	face := basicfont.Face7x13

	// Создаем и заполняем структуру с цветами для рендерера
	ground, ok := config.ThemeColors[game.Map.Theme]
	if !ok {
		ground = config.GrassColor
	}
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GroundColor:     ground,
		PathColor:       config.PathColor,
		RestrictedColor: config.RestrictedColor,
		GridLineColor:   config.GridLineColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}

	top := float32(config.HUDHeight) / 2
	right := float32(config.ScreenWidth)
	return &GameState{
		sm:              sm,
		game:            game,
		fontFace:        face,
		tiles:           render.NewTileRenderer(game.Map, mapColors, config.ScreenWidth, config.ScreenHeight),
		entities:        render.NewEntityRenderer(game.ECS),
		palette:         ui.NewTowerPalette(game.Library, config.HUDPadding, (config.HUDHeight-config.ButtonHeight)/2, face),
		indicator:       ui.NewStateIndicator(right-24, top, config.IndicatorRadius),
		pauseButton:     ui.NewPauseButton(right-64, top, config.PauseButtonSize),
		speedButton:     ui.NewSpeedButton(right-100, top, config.SpeedButtonSize),
		waveIndicator:   ui.NewWaveIndicator(config.ScreenWidth-340, int(top)+5, face),
		healthIndicator: ui.NewPlayerHealthIndicator(config.ScreenWidth-270, top-ui.HealthBarHeight/2),
		infoPanel:       ui.NewInfoPanel(face),
	}
}

// Game returns the session driven by this state.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update(g.game.ECS)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.cycleSpeed()
	}
	for i, key := range paletteKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.palette.Select(i + 1)
		}
	}

	g.game.Update(deltaTime)
	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
		return
	}

	// Обработка левой кнопки
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
			return
		}
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(x, y) {
			g.handleFieldClick(x, y)
		}
		g.lastClickTime = time.Now()
	}

	// Правый клик снимает выбор
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.palette.Selected = ""
		g.infoPanel.Hide()
	}
}

// handleUIClick обрабатывает клики по HUD и панели. Возвращает false, если
// клик пришёлся на поле.
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.speedButton.IsClicked(x, y):
		g.cycleSpeed()
	case g.pauseButton.IsClicked(x, y):
		g.pause()
	case g.indicator.IsClicked(x, y):
		g.startWave()
	case g.palette.HandleClick(x, y):
		g.infoPanel.Hide()
	case g.infoPanel.Contains(x, y):
		g.handlePanelAction(g.infoPanel.HandleClick(x, y))
	case y < config.HUDHeight:
	default:
		return false
	}
	return true
}

func (g *GameState) handlePanelAction(action ui.PanelAction) {
	id := g.infoPanel.TargetEntity
	switch action {
	case ui.PanelUpgrade:
		if r := g.game.UpgradeTower(id); !r.OK() {
			g.flash(r)
		}
	case ui.PanelSell:
		if refund, ok := g.game.SellTower(id); ok {
			g.showMessage(fmt.Sprintf("+$%d", refund))
			g.infoPanel.Hide()
		}
	}
}

func (g *GameState) handleFieldClick(x, y int) {
	fx, fy := float64(x), float64(y)
	if id, ok := g.game.TowerAt(fx, fy); ok {
		g.palette.Selected = ""
		g.infoPanel.SetTarget(id)
		return
	}
	if id, ok := g.enemyAt(fx, fy); ok {
		g.infoPanel.SetTarget(id)
		return
	}
	if g.palette.Selected == "" {
		g.infoPanel.Hide()
		return
	}
	if _, r := g.game.PlaceTower(g.palette.Selected, fx, fy); !r.OK() {
		g.flash(r)
	}
}

// enemyAt ищет живого врага под курсором.
func (g *GameState) enemyAt(x, y float64) (types.EntityID, bool) {
	for id, enemy := range g.game.ECS.Enemies {
		if enemy.Dying {
			continue
		}
		pos, ok := g.game.ECS.Positions[id]
		if !ok {
			continue
		}
		if math.Hypot(pos.X-x, pos.Y-y) <= config.EnemyRadius*1.5 {
			return id, true
		}
	}
	return 0, false
}

func (g *GameState) startWave() {
	g.indicator.HandleClick()
	if r := g.game.StartNextWave(); !r.OK() {
		g.flash(r)
	}
}

func (g *GameState) cycleSpeed() {
	g.game.CycleSpeed()
	g.speedButton.ToggleState()
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.game.Pause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// resume is called by the pause state on its way out.
func (g *GameState) resume() {
	g.game.Resume()
	g.pauseButton.SetPaused(false)
}

func (g *GameState) flash(r app.Rejection) {
	g.showMessage(strings.ReplaceAll(string(r), "_", " "))
}

func (g *GameState) showMessage(msg string) {
	g.message = msg
	g.messageUntil = time.Now().Add(messageDuration)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.tiles.Draw(screen)
	g.drawPlacementPreview(screen)
	g.entities.Draw(screen, g.infoPanel.TargetEntity)
	g.drawHUD(screen)
	cx, cy := ebiten.CursorPosition()
	g.infoPanel.Draw(screen, g.game.ECS, g.game.Money(), cx, cy)
}

// drawPlacementPreview подсвечивает клетку под курсором и радиус будущей башни.
func (g *GameState) drawPlacementPreview(screen *ebiten.Image) {
	if g.palette.Selected == "" {
		return
	}
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	tile, ok := g.game.Map.TileAt(fx, fy)
	if !ok || y < config.HUDHeight {
		return
	}
	canPlace := g.game.CanPlaceAt(fx, fy)
	g.tiles.HighlightTile(screen, tile, canPlace, config.SelectionColor, config.ExitColor)
	if !canPlace {
		return
	}
	def := g.game.Library.Towers[g.palette.Selected]
	center := g.game.Map.TileCenter(tile)
	vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(def.Range), 1, config.RangeColor, true)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)

	cx, cy := ebiten.CursorPosition()
	g.palette.Draw(screen, g.game.Library, g.game.Money(), cx, cy)

	stats := fmt.Sprintf("$%d  Score %d", g.game.Money(), g.game.Score())
	text.Draw(screen, stats, g.fontFace, config.ScreenWidth-520, config.HUDHeight/2+5, config.TextLightColor)

	boss := g.game.ECS.Wave != nil && g.game.ECS.Wave.BossWave
	g.waveIndicator.Draw(screen, g.game.Wave(), g.game.TotalWaves(), boss)
	g.healthIndicator.Draw(screen, g.game.Lives(), g.game.Settings.StartingLives)

	stateColor := config.WaveIdleColor
	if g.game.WaveSystem.IsWaveInProgress() {
		stateColor = config.WaveActiveColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	if g.message != "" && time.Now().Before(g.messageUntil) {
		text.Draw(screen, g.message, g.fontFace, config.HUDPadding, config.HUDHeight+20, config.TextLightColor)
	}
}

func (g *GameState) Exit() {}
