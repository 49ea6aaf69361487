// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	HUDHeight    = 40 // strip drawn above the field

	// Projectiles further than this outside the field are discarded.
	BoundsMargin = 50.0

	ProjectileBoxSize = 8.0
	EnemyBoxSize      = 32.0
	EnemyRadius       = 14.0
	ProjectileRadius  = 4.0
	TowerRadius       = 22.0

	DeathSequenceMs = 300.0
	SplitOffset     = 18.0
	DamageFlashMs   = 120.0
	BlastMs         = 250.0

	MaxDeltaMs = 100.0 // clamp for long frames

	WaveBonusBase    = 50
	WaveBonusPerWave = 10

	ScorePerKill  = 10
	ScorePerTower = 5
	ScorePerWave  = 100
	ScorePerLife  = 20
	MoneyPerScore = 10

	TextCharWidth = 7
	TextOffsetY   = 4
	StrokeWidth   = 2.0
)

// UI
const (
	UIBorderWidth   = 2.0
	HUDPadding      = 10
	ButtonHeight    = 26
	PaletteWidth    = 118
	IndicatorRadius = 12
	SpeedButtonSize = 9
	PauseButtonSize = 10
	ClickCooldown   = 150 // ms
	LivesSegments   = 10
	InfoPanelHeight = 110
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GrassColor       = color.RGBA{46, 86, 52, 255}
	SandColor        = color.RGBA{150, 128, 80, 255}
	RockColor        = color.RGBA{90, 90, 100, 255}
	PathColor        = color.RGBA{120, 100, 70, 255}
	RestrictedColor  = color.RGBA{150, 70, 70, 140}
	GridLineColor    = color.RGBA{0, 0, 0, 40}
	EntryColor       = color.RGBA{60, 200, 90, 255}
	ExitColor        = color.RGBA{220, 40, 40, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	HUDColor         = color.RGBA{30, 30, 45, 230}
	HealthBackColor  = color.RGBA{0, 0, 0, 255}
	HealthFillColor  = color.RGBA{0, 255, 0, 255}
	ShieldColor      = color.RGBA{120, 200, 255, 160}
	SlowTintColor    = color.RGBA{90, 160, 255, 255}
	RangeColor       = color.RGBA{255, 255, 255, 60}
	ProjectileColor  = color.RGBA{255, 230, 120, 255}
	SelectionColor   = color.RGBA{255, 255, 0, 200}
	DyingColor       = color.RGBA{80, 80, 80, 200}
	OverlayColor     = color.RGBA{0, 0, 0, 160}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}

	UIBorderColor       = color.RGBA{230, 230, 230, 255}
	ButtonColor         = color.RGBA{55, 65, 90, 255}
	ButtonHoverColor    = color.RGBA{80, 95, 130, 255}
	ButtonDisabledColor = color.RGBA{45, 45, 50, 255}
	ButtonActiveColor   = color.RGBA{70, 130, 180, 255}
	WaveIdleColor       = color.RGBA{60, 200, 90, 255}
	WaveActiveColor     = color.RGBA{220, 60, 60, 255}
	BossWaveColor       = color.RGBA{255, 60, 60, 255}
	WaveTextColor       = color.RGBA{120, 180, 255, 255}
	PauseColor          = color.RGBA{255, 200, 0, 255}
	PlayColor           = color.RGBA{60, 200, 90, 255}
	SpeedButtonColors   = []color.RGBA{{60, 200, 90, 255}, {255, 200, 0, 255}, {255, 90, 40, 255}}
	LivesFullColor      = color.RGBA{60, 200, 90, 255}
	LivesWarningColor   = color.RGBA{255, 200, 0, 255}
	LivesCriticalColor  = color.RGBA{220, 40, 40, 255}
	LivesEmptyColor     = color.RGBA{60, 60, 60, 255}
	VictoryColor        = color.RGBA{255, 215, 0, 255}
	DefeatColor         = color.RGBA{220, 40, 40, 255}

	TowerColors = map[string]color.RGBA{
		"basic":     {50, 100, 255, 255},
		"aoe":       {255, 90, 40, 255},
		"slow":      {80, 220, 230, 255},
		"multishot": {180, 50, 230, 255},
		"support":   {255, 215, 0, 255},
	}
	EnemyColors = map[string]color.RGBA{
		"BASIC":    {200, 40, 40, 255},
		"FAST":     {255, 140, 0, 255},
		"ARMORED":  {120, 120, 130, 255},
		"FLYING":   {200, 200, 255, 255},
		"BOSS":     {120, 0, 60, 255},
		"HEALER":   {60, 200, 90, 255},
		"SHIELD":   {70, 120, 255, 255},
		"SPLIT":    {230, 90, 200, 255},
		"TELEPORT": {150, 60, 255, 255},
	}
	DefaultEnemyColor = color.RGBA{220, 60, 60, 255}
	ThemeColors       = map[string]color.RGBA{
		"forest":   GrassColor,
		"desert":   SandColor,
		"mountain": RockColor,
	}
)
