// pkg/utils/math.go
package utils

import "math"

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// AngleBetween returns the heading from (x1, y1) towards (x2, y2) in radians.
func AngleBetween(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RectsIntersect reports whether two axis-aligned boxes given by their
// centres and full sizes overlap.
func RectsIntersect(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx)*2 <= aw+bw && math.Abs(ay-by)*2 <= ah+bh
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	return math.Remainder(angle, 2*math.Pi)
}

// LerpAngle interpolates between two headings along the shorter arc.
func LerpAngle(from, to, t float64) float64 {
	diff := NormalizeAngle(to - from)
	return NormalizeAngle(from + diff*t)
}
