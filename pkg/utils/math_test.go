package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
	assert.Equal(t, 0.0, Distance(7, 7, 7, 7))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 10.0, Lerp(10, 20, 0))
	assert.Equal(t, 15.0, Lerp(10, 20, 0.5))
	assert.Equal(t, 20.0, Lerp(10, 20, 1))
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 0.0, AngleBetween(0, 0, 10, 0), 1e-9)
	assert.InDelta(t, math.Pi/2, AngleBetween(0, 0, 0, 10), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 10))
	assert.Equal(t, 10.0, Clamp(11, 0, 10))
	assert.Equal(t, 4.0, Clamp(4, 0, 10))
}

func TestRectsIntersect(t *testing.T) {
	assert.True(t, RectsIntersect(0, 0, 8, 8, 10, 0, 32, 32))
	assert.True(t, RectsIntersect(0, 0, 8, 8, 20, 0, 32, 32), "touching edges count as overlap")
	assert.False(t, RectsIntersect(0, 0, 8, 8, 21, 0, 32, 32))
	assert.False(t, RectsIntersect(0, 0, 8, 8, 0, 40, 32, 32))
}

func TestLerpAngle_TakesShortArc(t *testing.T) {
	got := LerpAngle(math.Pi-0.1, -math.Pi+0.1, 0.5)
	assert.InDelta(t, math.Pi, math.Abs(got), 1e-9)
	assert.InDelta(t, 0.5, LerpAngle(0, 1, 0.5), 1e-9)
	assert.InDelta(t, 0.0, NormalizeAngle(2*math.Pi), 1e-9)
}
