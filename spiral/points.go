package spiral

import "math"

// Point is one integer placed on the spiral, in canvas coordinates.
type Point struct {
	X, Y    float64
	N       int
	IsPrime bool
}

// Position returns where n lands on the spiral around (cx, cy).
func Position(n int, scale, coeff, cx, cy float64) (float64, float64) {
	root := math.Sqrt(float64(n))
	r := root * scale
	theta := coeff * math.Pi * root
	return cx + r*math.Cos(theta), cy + r*math.Sin(theta)
}

// ComputePoints places 1..EffectiveMaxN on a w×h canvas. Points outside the
// canvas are dropped; with rotation on the canvas is padded by half its
// diagonal so rotated content still covers every corner.
func ComputePoints(w, h int, s Settings, primes *PrimeCache) []Point {
	W, H := float64(w), float64(h)
	cx, cy := W/2, H/2

	bounds := 0.0
	if s.ShowRotation {
		bounds = math.Hypot(W, H) / 2
	}

	maxN := s.EffectiveMaxN()
	points := make([]Point, 0, min(maxN, 1<<16))
	for n := 1; n <= maxN; n++ {
		x, y := Position(n, s.Scale, s.Coeff, cx, cy)
		if x < -bounds || x > W+bounds || y < -bounds || y > H+bounds {
			continue
		}
		points = append(points, Point{X: x, Y: y, N: n, IsPrime: primes.IsPrime(n)})
	}
	return points
}
