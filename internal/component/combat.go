package component

import "go-path-defense/internal/types"

// Health - компонент здоровья
type Health struct {
	Current float64
	Max     float64
}

// Fraction returns Current/Max.
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// Combat - компонент для башен, управляющий атакой. Значения актуальны с
// учётом улучшений и баффов поддержки.
type Combat struct {
	Damage          float64
	Range           float64
	FireRate        float64 // ms between shots
	ProjectileSpeed float64
	CanHitFlying    bool
	TargetCount     int // 1 for single-target towers
	LastFire        float64
	TargetID        types.EntityID // weak; re-validated every tick
}

// Ready reports whether the cooldown has elapsed at now.
func (c *Combat) Ready(now float64) bool {
	return now > c.LastFire+c.FireRate
}
