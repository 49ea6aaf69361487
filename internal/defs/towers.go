// internal/defs/towers.go
package defs

import "math"

// UpgradeScaling holds the per-level multipliers applied by an upgrade.
type UpgradeScaling struct {
	Cost     float64 `json:"cost"`      // fraction of base cost per current level
	Damage   float64 `json:"damage"`    // > 1
	Range    float64 `json:"range"`     // > 1
	FireRate float64 `json:"fire_rate"` // < 1, cooldown shrinks
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Kind            TowerKind      `json:"kind"`
	Cost            int            `json:"cost"`
	Damage          float64        `json:"damage"`
	Range           float64        `json:"range"`
	FireRate        float64        `json:"fire_rate"` // ms between shots
	ProjectileSpeed float64        `json:"projectile_speed"`
	CanTargetFlying *bool          `json:"can_target_flying,omitempty"`
	MaxLevel        int            `json:"max_level"`
	Upgrade         UpgradeScaling `json:"upgrade"`

	// aoe
	AoeRadius float64 `json:"aoe_radius,omitempty"`
	// slow
	SlowFactor   float64 `json:"slow_factor,omitempty"`
	SlowDuration float64 `json:"slow_duration,omitempty"`
	// multishot
	TargetCount int `json:"target_count,omitempty"`
	// support
	BuffAmount   float64 `json:"buff_amount,omitempty"`
	BuffRadius   float64 `json:"buff_radius,omitempty"`
	BuffInterval float64 `json:"buff_interval,omitempty"`
}

// TargetsFlying reports whether towers of this type may shoot flying
// enemies. Without an explicit value only basic towers are grounded.
func (d TowerDefinition) TargetsFlying() bool {
	if d.CanTargetFlying != nil {
		return *d.CanTargetFlying
	}
	return d.Kind != TowerBasic
}

// UpgradeCost returns floor(cost × scaling × level).
func (d TowerDefinition) UpgradeCost(level int) int {
	return int(math.Floor(float64(d.Cost) * d.Upgrade.Cost * float64(level)))
}

// SellRefund returns 60% of the base cost plus half the base cost for every
// level gained.
func (d TowerDefinition) SellRefund(level int) int {
	invested := d.Cost + int(math.Floor(float64(d.Cost)*0.5))*(level-1)
	return int(math.Floor(float64(invested) * 0.6))
}

// withDefaults fills fields the JSON may omit.
func (d TowerDefinition) withDefaults() TowerDefinition {
	if d.Kind == "" {
		d.Kind = TowerBasic
	}
	if d.MaxLevel <= 0 {
		d.MaxLevel = 3
	}
	if d.Upgrade.Cost == 0 {
		d.Upgrade.Cost = 0.5
	}
	if d.Upgrade.Damage == 0 {
		d.Upgrade.Damage = 1.5
	}
	if d.Upgrade.Range == 0 {
		d.Upgrade.Range = 1.2
	}
	if d.Upgrade.FireRate == 0 {
		d.Upgrade.FireRate = 0.8
	}
	switch d.Kind {
	case TowerMultiShot:
		if d.TargetCount <= 0 {
			d.TargetCount = 3
		}
	case TowerSupport:
		if d.BuffAmount == 0 {
			d.BuffAmount = 0.2
		}
		if d.BuffRadius == 0 {
			d.BuffRadius = 120
		}
		if d.BuffInterval == 0 {
			d.BuffInterval = 1200
		}
	}
	return d
}
