package render

import (
	"image/color"
	"math"

	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EntityRenderer рисует сущности. ECS он только читает.
type EntityRenderer struct {
	ecs *entity.ECS
}

func NewEntityRenderer(ecs *entity.ECS) *EntityRenderer {
	return &EntityRenderer{ecs: ecs}
}

// Draw рисует башни, врагов, снаряды и взрывы. Для selected рисуется круг
// дальности.
func (s *EntityRenderer) Draw(screen *ebiten.Image, selected types.EntityID) {
	if pos, ok := s.ecs.Positions[selected]; ok {
		if r := system.TowerRange(s.ecs, selected); r > 0 {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(r), config.RangeColor, true)
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(r), 1, config.SelectionColor, true)
		}
	}

	s.drawTowers(screen, selected)
	s.drawEnemies(screen)
	s.drawProjectiles(screen)
	s.drawBlasts(screen)
}

func (s *EntityRenderer) drawTowers(screen *ebiten.Image, selected types.EntityID) {
	for _, id := range s.ecs.TowerIDs() {
		pos, hasPos := s.ecs.Positions[id]
		rend, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)
		stroke := config.TowerStrokeColor
		if id == selected {
			stroke = config.SelectionColor
		}
		vector.DrawFilledCircle(screen, x, y, rend.Radius+config.StrokeWidth, stroke, true)
		vector.DrawFilledCircle(screen, x, y, rend.Radius, rend.Color, true)

		// Уровень башни - точки под ней
		tower := s.ecs.Towers[id]
		for i := 0; i < tower.Level; i++ {
			px := x - float32(tower.Level-1)*4 + float32(i)*8
			vector.DrawFilledCircle(screen, px, y+rend.Radius-6, 2.5, config.TowerStrokeColor, true)
		}
		if s.buffed(id) {
			vector.StrokeCircle(screen, x, y, rend.Radius+5, 1, config.TowerColors["support"], true)
		}
	}
}

func (s *EntityRenderer) buffed(id types.EntityID) bool {
	for _, aura := range s.ecs.Auras {
		if _, ok := aura.Buffed[id]; ok {
			return true
		}
	}
	return false
}

func (s *EntityRenderer) drawEnemies(screen *ebiten.Image) {
	now := s.ecs.GameTime
	for _, id := range s.ecs.EnemyIDs() {
		pos, hasPos := s.ecs.Positions[id]
		rend, hasRender := s.ecs.Renderables[id]
		enemy := s.ecs.Enemies[id]
		if !hasPos || !hasRender {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)
		c := rend.Color
		radius := rend.Radius

		if enemy.Dying {
			// Затухание за время анимации смерти
			t := (now - enemy.DiedAt) / config.DeathSequenceMs
			c = Mix(config.DyingColor, color.RGBA{}, t)
			radius *= float32(1 - 0.5*math.Min(t, 1))
		} else {
			if effects, ok := s.ecs.StatusEffects[id]; ok && len(effects.Slows) > 0 {
				c = Mix(c, config.SlowTintColor, 0.5)
			}
			if _, flashing := s.ecs.DamageFlashes[id]; flashing {
				c = color.RGBA{255, 255, 255, 255}
			}
		}

		if enemy.Stats.Flying {
			vector.DrawFilledCircle(screen, x+3, y+6, radius*0.8, config.OverlayColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, radius, c, true)

		if enemy.Dying {
			continue
		}
		if enemy.ShieldActive {
			vector.StrokeCircle(screen, x, y, radius+4, 2, config.ShieldColor, true)
		}
		if health, ok := s.ecs.Healths[id]; ok {
			s.drawHealthBar(screen, x, y-radius-8, radius*2, health.Fraction())
		}
	}
}

func (s *EntityRenderer) drawHealthBar(screen *ebiten.Image, cx, y, width float32, fraction float64) {
	const height = 4
	left := cx - width/2
	vector.DrawFilledRect(screen, left, y, width, height, config.HealthBackColor, false)
	fill := config.HealthFillColor
	switch {
	case fraction < 0.25:
		fill = config.LivesCriticalColor
	case fraction < 0.5:
		fill = config.LivesWarningColor
	}
	vector.DrawFilledRect(screen, left, y, width*float32(fraction), height, fill, false)
}

func (s *EntityRenderer) drawProjectiles(screen *ebiten.Image) {
	for _, id := range s.ecs.ProjectileIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		proj := s.ecs.Projectiles[id]
		c, ok := config.TowerColors[string(proj.Payload.Kind)]
		if !ok {
			c = config.ProjectileColor
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.ProjectileRadius, LightenColor(c, 60), true)
	}
}

func (s *EntityRenderer) drawBlasts(screen *ebiten.Image) {
	for _, blast := range s.ecs.Blasts {
		fade := 1 - blast.Elapsed/blast.Duration
		if fade <= 0 {
			continue
		}
		c := WithAlpha(config.TowerColors["aoe"], uint8(200*fade))
		vector.StrokeCircle(screen, float32(blast.X), float32(blast.Y), float32(blast.Radius()), 3, c, true)
	}
}
