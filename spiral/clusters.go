package spiral

import (
	"math"

	"golang.org/x/exp/rand"
)

// Cluster attractor geometry.
const (
	ClusterRadius = 200.0
	SizeBoost     = 1.0
	LiftHeight    = 10.0
)

// Cluster is an attractor drifting toward a random target.
type Cluster struct {
	X, Y             float64
	TargetX, TargetY float64
	Speed            float64
}

// ClusterField moves a set of clusters across the canvas. Points near a
// cluster are drawn larger and lifted.
type ClusterField struct {
	Clusters []Cluster
	rng      *rand.Rand
}

// NewClusterField seeds count clusters (capped at MaxClusters) on a w×h canvas.
func NewClusterField(count, w, h int, seed uint64) *ClusterField {
	f := &ClusterField{rng: rand.New(rand.NewSource(seed))}
	f.Reset(count, w, h)
	return f
}

// Reset discards every cluster and scatters count new ones.
func (f *ClusterField) Reset(count, w, h int) {
	count = min(max(count, 0), MaxClusters)
	W, H := float64(w), float64(h)
	f.Clusters = f.Clusters[:0]
	for i := 0; i < count; i++ {
		f.Clusters = append(f.Clusters, Cluster{
			X:       f.rng.Float64() * W,
			Y:       f.rng.Float64() * H,
			TargetX: f.rng.Float64() * W,
			TargetY: f.rng.Float64() * H,
			Speed:   2 + f.rng.Float64(),
		})
	}
}

// Update advances every cluster one frame toward its target, choosing a new
// target once it is reached.
func (f *ClusterField) Update(w, h int) {
	W, H := float64(w), float64(h)
	for i := range f.Clusters {
		c := &f.Clusters[i]
		dx, dy := c.TargetX-c.X, c.TargetY-c.Y
		d := math.Hypot(dx, dy)
		if d < c.Speed {
			c.TargetX = f.rng.Float64() * W
			c.TargetY = f.rng.Float64() * H
			continue
		}
		c.X += dx / d * c.Speed
		c.Y += dy / d * c.Speed
	}
}

// Factor returns the strongest square falloff in [0, 1] any cluster exerts
// on (x, y).
func (f *ClusterField) Factor(x, y float64) float64 {
	factor := 0.0
	for _, c := range f.Clusters {
		dx, dy := math.Abs(x-c.X), math.Abs(y-c.Y)
		if dx >= ClusterRadius || dy >= ClusterRadius {
			continue
		}
		falloff := math.Min(1-dx/ClusterRadius, 1-dy/ClusterRadius)
		factor = math.Max(factor, falloff)
	}
	return factor
}
