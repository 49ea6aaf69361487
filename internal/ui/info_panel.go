// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 220
	buttonWidth    = 150
	buttonHeight   = 32
)

// PanelAction is what a click on the panel asks the game to do.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelSell
)

// InfoPanel displays information about a selected entity.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	fontFace      font.Face
	currentY      float64
	targetY       float64
	UpgradeButton *Button
	SellButton    *Button
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade", face),
		SellButton:    NewButton(image.Rectangle{}, "Sell", face),
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - config.InfoPanelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether (x, y) is on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// Update анимирует панель и сбрасывает цель, если сущность исчезла.
func (p *InfoPanel) Update(ecs *entity.ECS) {
	if p.TargetEntity != 0 {
		_, isTower := ecs.Towers[p.TargetEntity]
		_, isEnemy := ecs.Enemies[p.TargetEntity]
		if !isTower && !isEnemy {
			p.Hide()
		}
	}

	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}
	p.layoutButtons()
}

// HandleClick переводит клик по кнопкам в действие.
func (p *InfoPanel) HandleClick(x, y int) PanelAction {
	if !p.IsVisible || p.TargetEntity == 0 {
		return PanelNone
	}
	switch {
	case p.UpgradeButton.IsClicked(x, y):
		return PanelUpgrade
	case p.SellButton.IsClicked(x, y):
		return PanelSell
	}
	return PanelNone
}

func (p *InfoPanel) layoutButtons() {
	top := int(p.currentY) + panelMargin
	bottom := int(p.currentY) + config.InfoPanelHeight - panelMargin
	right := config.ScreenWidth - panelMargin - 20
	y := (top+bottom)/2 - buttonHeight/2
	p.SellButton.Rect = image.Rect(right-buttonWidth, y, right, y+buttonHeight)
	p.UpgradeButton.Rect = image.Rect(right-2*buttonWidth-20, y, right-buttonWidth-20, y+buttonHeight)
}

// Draw рисует панель. От money зависит, доступна ли кнопка улучшения.
func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS, money int, cursorX, cursorY int) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+config.InfoPanelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if p.TargetEntity == 0 {
		return
	}

	x, y := panelRect.Min.X+15, panelRect.Min.Y+22
	if tower, ok := ecs.Towers[p.TargetEntity]; ok {
		text.Draw(screen, fmt.Sprintf("%s  (level %d/%d)", tower.Def.Name, tower.Level, tower.Def.MaxLevel), p.fontFace, x, y, config.TextLightColor)
		p.drawTowerInfo(screen, ecs, x, y+lineHeight)

		if tower.CanUpgrade() {
			cost := tower.Def.UpgradeCost(tower.Level)
			p.UpgradeButton.Text = fmt.Sprintf("Upgrade $%d", cost)
			p.UpgradeButton.Enabled = money >= cost
		} else {
			p.UpgradeButton.Text = "Max level"
			p.UpgradeButton.Enabled = false
		}
		p.SellButton.Text = fmt.Sprintf("Sell $%d", tower.Def.SellRefund(tower.Level))
		p.SellButton.Enabled = true
		p.UpgradeButton.Draw(screen, p.UpgradeButton.Contains(cursorX, cursorY))
		p.SellButton.Draw(screen, p.SellButton.Contains(cursorX, cursorY))
		return
	}

	p.UpgradeButton.Enabled = false
	p.SellButton.Enabled = false
	if enemy, ok := ecs.Enemies[p.TargetEntity]; ok {
		text.Draw(screen, enemy.Stats.Name, p.fontFace, x, y, config.TextLightColor)
		p.drawEnemyInfo(screen, ecs, x, y+lineHeight)
	}
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, ecs *entity.ECS, startX, startY int) {
	col2X := startX + columnSpacing
	y := startY
	if combat, ok := ecs.Combats[p.TargetEntity]; ok {
		text.Draw(screen, fmt.Sprintf("Damage: %.1f", combat.Damage), p.fontFace, startX, y, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Range: %.0f", combat.Range), p.fontFace, col2X, y, config.TextLightColor)
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Fire Rate: %.2f/s", 1000/combat.FireRate), p.fontFace, startX, y, config.TextLightColor)
		targets := "ground"
		if combat.CanHitFlying {
			targets = "ground + air"
		}
		text.Draw(screen, fmt.Sprintf("Targets: %s", targets), p.fontFace, col2X, y, config.TextLightColor)
		if combat.TargetCount > 1 {
			y += lineHeight
			text.Draw(screen, fmt.Sprintf("Shots: %d", combat.TargetCount), p.fontFace, startX, y, config.TextLightColor)
		}
	}
	if aura, ok := ecs.Auras[p.TargetEntity]; ok {
		text.Draw(screen, fmt.Sprintf("Buff: -%.0f%% cooldown", aura.BuffAmount*100), p.fontFace, startX, y, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Radius: %.0f", aura.Radius), p.fontFace, col2X, y, config.TextLightColor)
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Buffing: %d towers", len(aura.Buffed)), p.fontFace, startX, y, config.TextLightColor)
	}
}

func (p *InfoPanel) drawEnemyInfo(screen *ebiten.Image, ecs *entity.ECS, startX, startY int) {
	y := startY
	col1X := startX
	col2X := startX + columnSpacing
	enemy := ecs.Enemies[p.TargetEntity]

	// Health
	if health, ok := ecs.Healths[p.TargetEntity]; ok {
		healthStr := fmt.Sprintf("Health: %.0f / %.0f", health.Current, health.Max)
		text.Draw(screen, healthStr, p.fontFace, col1X, y, config.TextLightColor)
	}

	// Speed
	if velocity, ok := ecs.Velocities[p.TargetEntity]; ok {
		speedStr := fmt.Sprintf("Speed: %.0f px/s", velocity.Speed)
		text.Draw(screen, speedStr, p.fontFace, col2X, y, config.TextLightColor)
	}
	y += lineHeight

	text.Draw(screen, fmt.Sprintf("Armor: %.0f%%", enemy.Stats.Armor*100), p.fontFace, col1X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Reward: $%d", enemy.Stats.Reward), p.fontFace, col2X, y, config.TextLightColor)
	y += lineHeight

	var traits []string
	if enemy.Stats.Flying {
		traits = append(traits, "flying")
	}
	if enemy.ShieldActive {
		traits = append(traits, "shielded")
	}
	if enemy.Kind != "" {
		traits = append(traits, string(enemy.Kind))
	}
	text.Draw(screen, fmt.Sprint(traits), p.fontFace, col1X, y, config.TextLightColor)
}
