// Package pathing holds the waypoint route enemies walk along.
package pathing

import (
	"errors"

	"go-path-defense/pkg/utils"
)

// ErrTooFewPoints is returned when a path has fewer than two waypoints.
var ErrTooFewPoints = errors.New("pathing: path needs at least two points")

// Point is a waypoint in pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pose is an interpolated location on the path with the heading of the
// segment it lies on.
type Pose struct {
	X, Y    float64
	Heading float64
}

// Path is an ordered, read-only sequence of waypoints. Segment lengths are
// computed once in SetPath.
type Path struct {
	points   []Point
	segments []float64
	total    float64
}

// New builds a path from the given waypoints.
func New(points []Point) (*Path, error) {
	p := &Path{}
	if err := p.SetPath(points); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPath replaces the waypoint sequence. It is meant to be called once
// per level before any enemy references the path.
func (p *Path) SetPath(points []Point) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}
	p.points = append([]Point(nil), points...)
	p.segments = make([]float64, len(points)-1)
	p.total = 0
	for i := 0; i < len(points)-1; i++ {
		l := utils.Distance(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y)
		p.segments[i] = l
		p.total += l
	}
	return nil
}

// Points returns a copy of the waypoints.
func (p *Path) Points() []Point {
	return append([]Point(nil), p.points...)
}

// Len returns the number of waypoints.
func (p *Path) Len() int { return len(p.points) }

// SegmentCount returns the number of segments (Len()-1).
func (p *Path) SegmentCount() int { return len(p.segments) }

// Start returns the first waypoint.
func (p *Path) Start() Point { return p.points[0] }

// End returns the last waypoint.
func (p *Path) End() Point { return p.points[len(p.points)-1] }

// TotalLength sums the Euclidean distances between consecutive waypoints.
func (p *Path) TotalLength() float64 { return p.total }

// SegmentLength returns the length of segment i, or 0 when i is out of range.
func (p *Path) SegmentLength(i int) float64 {
	if i < 0 || i >= len(p.segments) {
		return 0
	}
	return p.segments[i]
}

// SegmentHeading returns the direction of segment i.
func (p *Path) SegmentHeading(i int) float64 {
	if i < 0 {
		i = 0
	}
	if i >= len(p.segments) {
		i = len(p.segments) - 1
	}
	a, b := p.points[i], p.points[i+1]
	return utils.AngleBetween(a.X, a.Y, b.X, b.Y)
}

// Interpolate returns the pose at fraction t of segment i. Indexes past the
// last segment resolve to the end point.
func (p *Path) Interpolate(i int, t float64) Pose {
	if i >= len(p.segments) {
		end := p.End()
		return Pose{X: end.X, Y: end.Y, Heading: p.SegmentHeading(len(p.segments) - 1)}
	}
	if i < 0 {
		i = 0
	}
	a, b := p.points[i], p.points[i+1]
	return Pose{
		X:       utils.Lerp(a.X, b.X, t),
		Y:       utils.Lerp(a.Y, b.Y, t),
		Heading: utils.AngleBetween(a.X, a.Y, b.X, b.Y),
	}
}

// DistanceAlong returns the travelled distance for a cursor on segment i
// at fraction t.
func (p *Path) DistanceAlong(i int, t float64) float64 {
	d := 0.0
	for k := 0; k < i && k < len(p.segments); k++ {
		d += p.segments[k]
	}
	if i >= 0 && i < len(p.segments) {
		d += p.segments[i] * t
	}
	return d
}

// PositionAtDistance walks the cumulative segment lengths and returns the
// interpolated pose at distance d. Distances beyond the total length clamp
// to the final point with the last segment's heading.
func (p *Path) PositionAtDistance(d float64) Pose {
	if d < 0 {
		d = 0
	}
	travelled := 0.0
	for i, l := range p.segments {
		if l == 0 {
			continue
		}
		if travelled+l >= d {
			return p.Interpolate(i, (d-travelled)/l)
		}
		travelled += l
	}
	end := p.End()
	return Pose{X: end.X, Y: end.Y, Heading: p.SegmentHeading(len(p.segments) - 1)}
}
