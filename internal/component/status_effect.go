// internal/component/status_effect.go
package component

// SlowEffect multiplies movement speed until ExpiresAt.
type SlowEffect struct {
	Factor    float64
	ExpiresAt float64
}

// StatusEffects lists the timed effects active on an enemy. Slows stack
// multiplicatively and expire independently.
type StatusEffects struct {
	Slows []SlowEffect
}

// SpeedFactor is the product of all active slow factors.
func (s *StatusEffects) SpeedFactor() float64 {
	f := 1.0
	for _, e := range s.Slows {
		f *= e.Factor
	}
	return f
}

// Expire drops effects whose expiry is not after now.
func (s *StatusEffects) Expire(now float64) {
	kept := s.Slows[:0]
	for _, e := range s.Slows {
		if e.ExpiresAt > now {
			kept = append(kept, e)
		}
	}
	s.Slows = kept
}
