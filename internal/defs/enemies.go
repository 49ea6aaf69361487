// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
// Ability fields are only read for the matching Kind.
type EnemyDefinition struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Kind   EnemyKind `json:"kind"`
	Health float64   `json:"health"`
	Speed  float64   `json:"speed"` // px per second
	Reward int       `json:"reward"`
	Damage int       `json:"damage"` // lives lost at path end
	Armor  float64   `json:"armor,omitempty"`
	Flying bool      `json:"flying,omitempty"`

	HealRadius   float64 `json:"heal_radius,omitempty"`
	HealAmount   float64 `json:"heal_amount,omitempty"`
	HealInterval float64 `json:"heal_interval,omitempty"`

	ShieldDuration float64 `json:"shield_duration,omitempty"`
	ShieldCooldown float64 `json:"shield_cooldown,omitempty"`

	SplitCount int              `json:"split_count,omitempty"`
	SplitType  string           `json:"split_type,omitempty"`
	SplitData  *EnemyDefinition `json:"split_data,omitempty"`

	TeleportInterval float64 `json:"teleport_interval,omitempty"`
	TeleportDistance int     `json:"teleport_distance,omitempty"`
}

func (d EnemyDefinition) withDefaults() EnemyDefinition {
	if d.Kind == "" {
		d.Kind = EnemyStandard
	}
	if d.Damage == 0 {
		d.Damage = 1
	}
	switch d.Kind {
	case EnemyHealer:
		if d.HealRadius == 0 {
			d.HealRadius = 100
		}
		if d.HealAmount == 0 {
			d.HealAmount = 5
		}
		if d.HealInterval == 0 {
			d.HealInterval = 2000
		}
	case EnemyShield:
		if d.ShieldDuration == 0 {
			d.ShieldDuration = 1500
		}
		if d.ShieldCooldown == 0 {
			d.ShieldCooldown = 3500
		}
	case EnemySplit:
		if d.SplitCount == 0 {
			d.SplitCount = 2
		}
		if d.SplitType == "" {
			d.SplitType = "BASIC"
		}
	case EnemyTeleport:
		if d.TeleportInterval == 0 {
			d.TeleportInterval = 2500
		}
		if d.TeleportDistance == 0 {
			d.TeleportDistance = 2
		}
	}
	return d
}
