// component/movement.go
package component

import "go-path-defense/pkg/pathing"

// Position - компонент позиции
type Position struct {
	X, Y float64
}

// Velocity holds the template speed and the speed left after slows, both
// in pixels per second.
type Velocity struct {
	BaseSpeed float64
	Speed     float64
	Heading   float64 // radians
}

// Path is an enemy's progress cursor along a shared route.
type Path struct {
	Route      *pathing.Path
	Segment    int
	T          float64 // fraction of the current segment in [0,1)
	ReachedEnd bool
}

// Progress returns the travelled fraction of the whole route.
func (p *Path) Progress() float64 {
	total := p.Route.TotalLength()
	if total <= 0 {
		return 1
	}
	return p.Route.DistanceAlong(p.Segment, p.T) / total
}
