package component

import "go-path-defense/internal/types"

// Aura belongs to support towers. Buffed holds the towers whose fire rate
// this aura has currently reduced.
type Aura struct {
	Radius      float64
	BuffAmount  float64 // fraction removed from the cooldown
	Interval    float64
	LastRefresh float64
	Buffed      map[types.EntityID]struct{}
}

// NewAura creates an aura ready to refresh on the next tick.
func NewAura(radius, amount, interval float64) *Aura {
	return &Aura{
		Radius:      radius,
		BuffAmount:  amount,
		Interval:    interval,
		LastRefresh: -interval,
		Buffed:      make(map[types.EntityID]struct{}),
	}
}
