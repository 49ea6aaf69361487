// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // ms left
	Duration float64
}

// Blast is a short-lived ring drawn where an area projectile landed.
type Blast struct {
	X, Y      float64
	MaxRadius float64
	Elapsed   float64
	Duration  float64
}

// Radius grows linearly over the blast's lifetime.
func (b *Blast) Radius() float64 {
	if b.Duration <= 0 {
		return b.MaxRadius
	}
	return b.MaxRadius * b.Elapsed / b.Duration
}
