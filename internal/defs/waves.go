package defs

import "math"

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Enemies  []string `json:"enemies"`  // enemy ids, picked uniformly at random
	Count    int      `json:"count"`    // number of scheduled spawns
	Interval float64  `json:"interval"` // ms between spawns
	BossWave bool     `json:"boss_wave,omitempty"`
}

// DifficultyProfile is a named multiplier set chosen once per session.
type DifficultyProfile struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Tier                  int     `json:"tier"` // 0 is the easiest
	EnemyHealthMultiplier float64 `json:"enemy_health_multiplier"`
	EnemySpeedMultiplier  float64 `json:"enemy_speed_multiplier"`
	EnemyRewardMultiplier float64 `json:"enemy_reward_multiplier"`
	EnemyCountMultiplier  float64 `json:"enemy_count_multiplier"`
	WaveCountAdjustment   int     `json:"wave_count_adjustment"`

	// EarlyWaves replaces the enemy mix of the listed wave numbers on
	// tiers above the easiest.
	EarlyWaves map[int][]string `json:"early_waves,omitempty"`
}

// ApplyToEnemy returns a copy of def with health, speed and reward scaled
// and rounded. Split child templates are scaled the same way.
func (p DifficultyProfile) ApplyToEnemy(def EnemyDefinition) EnemyDefinition {
	def.Health = math.Round(def.Health * p.EnemyHealthMultiplier)
	def.Speed = math.Round(def.Speed * p.EnemySpeedMultiplier)
	def.Reward = int(math.Round(float64(def.Reward) * p.EnemyRewardMultiplier))
	return def
}

// ScaleCount applies the enemy-count multiplier, never going below one.
func (p DifficultyProfile) ScaleCount(count int) int {
	n := int(math.Round(float64(count) * p.EnemyCountMultiplier))
	if n < 1 {
		n = 1
	}
	return n
}

// ComposeWaves builds the session wave list: the base waves plus
// WaveCountAdjustment extra waves. A negative adjustment drops waves from
// before the final one so the closing wave is always played.
func ComposeWaves(base, extra []WaveDefinition, p DifficultyProfile) []WaveDefinition {
	waves := append([]WaveDefinition(nil), base...)
	adj := p.WaveCountAdjustment
	switch {
	case adj > 0 && len(extra) > 0:
		for i := 0; i < adj; i++ {
			idx := i
			if idx >= len(extra) {
				idx = len(extra) - 1
			}
			waves = append(waves, extra[idx])
		}
	case adj < 0 && len(waves) > 1:
		keep := len(waves) - 1 + adj
		if keep < 0 {
			keep = 0
		}
		last := waves[len(waves)-1]
		waves = append(waves[:keep:keep], last)
	}
	return waves
}

// ResolveWave returns the definition actually played as wave number n
// (1-based): count scaled by difficulty and, on harder tiers, a richer
// enemy mix for the early waves.
func ResolveWave(def WaveDefinition, n int, p DifficultyProfile) WaveDefinition {
	out := def
	out.Enemies = append([]string(nil), def.Enemies...)
	out.Count = p.ScaleCount(def.Count)
	if p.Tier > 0 && !def.BossWave {
		if mix, ok := p.EarlyWaves[n]; ok && len(mix) > 0 {
			out.Enemies = append([]string(nil), mix...)
		}
	}
	return out
}
