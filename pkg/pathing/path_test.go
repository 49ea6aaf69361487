package pathing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lPath(t *testing.T) *Path {
	t.Helper()
	p, err := New([]Point{{0, 0}, {100, 0}, {100, 50}})
	require.NoError(t, err)
	return p
}

func TestNew_RejectsShortPath(t *testing.T) {
	_, err := New([]Point{{1, 1}})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = New(nil)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestTotalLength(t *testing.T) {
	p := lPath(t)
	assert.InDelta(t, 150.0, p.TotalLength(), 1e-9)
	assert.Equal(t, 2, p.SegmentCount())
	assert.InDelta(t, 50.0, p.SegmentLength(1), 1e-9)
	assert.Equal(t, 0.0, p.SegmentLength(5))
}

func TestPositionAtDistance_Interpolates(t *testing.T) {
	p := lPath(t)

	pose := p.PositionAtDistance(50)
	assert.InDelta(t, 50.0, pose.X, 1e-9)
	assert.InDelta(t, 0.0, pose.Y, 1e-9)
	assert.InDelta(t, 0.0, pose.Heading, 1e-9)

	pose = p.PositionAtDistance(125)
	assert.InDelta(t, 100.0, pose.X, 1e-9)
	assert.InDelta(t, 25.0, pose.Y, 1e-9)
	assert.InDelta(t, math.Pi/2, pose.Heading, 1e-9)
}

func TestPositionAtDistance_ClampsPastEnd(t *testing.T) {
	p := lPath(t)
	pose := p.PositionAtDistance(1000)
	assert.Equal(t, 100.0, pose.X)
	assert.Equal(t, 50.0, pose.Y)
	assert.InDelta(t, math.Pi/2, pose.Heading, 1e-9)
}

func TestPositionAtDistance_SkipsZeroLengthSegments(t *testing.T) {
	p, err := New([]Point{{0, 0}, {0, 0}, {10, 0}})
	require.NoError(t, err)

	pose := p.PositionAtDistance(5)
	assert.False(t, math.IsNaN(pose.X))
	assert.InDelta(t, 5.0, pose.X, 1e-9)
}

func TestDistanceAlong(t *testing.T) {
	p := lPath(t)
	assert.InDelta(t, 0.0, p.DistanceAlong(0, 0), 1e-9)
	assert.InDelta(t, 50.0, p.DistanceAlong(0, 0.5), 1e-9)
	assert.InDelta(t, 125.0, p.DistanceAlong(1, 0.5), 1e-9)
	assert.InDelta(t, 150.0, p.DistanceAlong(2, 0), 1e-9)
}

func TestSetPath_CopiesPoints(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}}
	p, err := New(pts)
	require.NoError(t, err)
	pts[1].X = 99
	assert.Equal(t, 10.0, p.End().X)
}
