package spiral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	// n=1 with coeff 2: theta = 2π, so the point sits scale units right of centre.
	x, y := Position(1, 5, 2, 100, 100)
	assert.InDelta(t, 105, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)

	// n=4 with coeff 1: theta = 2π, r = 2*scale.
	x, y = Position(4, 5, 1, 0, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestComputePointsInsideCanvas(t *testing.T) {
	s := DefaultSettings()
	s.ShowRotation = false
	s.MaxN = 20000
	points := ComputePoints(400, 300, s, NewPrimeCache())
	require.NotEmpty(t, points)
	assert.Less(t, len(points), s.MaxN)
	for _, p := range points {
		assert.True(t, p.X >= 0 && p.X <= 400 && p.Y >= 0 && p.Y <= 300, "point %d outside canvas", p.N)
	}
	assert.Equal(t, 1, points[0].N)
	assert.False(t, points[0].IsPrime)
}

func TestComputePointsRotationPadsBounds(t *testing.T) {
	s := DefaultSettings()
	s.MaxN = 20000

	s.ShowRotation = false
	flat := ComputePoints(400, 300, s, NewPrimeCache())
	s.ShowRotation = true
	rotated := ComputePoints(400, 300, s, NewPrimeCache())
	assert.Greater(t, len(rotated), len(flat))
}

func TestComputePointsMarksPrimes(t *testing.T) {
	s := DefaultSettings()
	s.MaxN = 30
	points := ComputePoints(2000, 2000, s, NewPrimeCache())
	require.Len(t, points, 30)
	var primes []int
	for _, p := range points {
		if p.IsPrime {
			primes = append(primes, p.N)
		}
	}
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)
}
