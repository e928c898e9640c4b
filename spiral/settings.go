package spiral

import (
	"math"
	"time"
)

// Hard caps that keep a single frame affordable.
const (
	MaxPoints   = 2_000_000
	MaxClusters = 1000
)

// Zoom bounds and step factors applied per scroll notch.
const (
	MinScale     = 2.0
	MaxScale     = 200.0
	zoomOutRatio = 1.05
	zoomInRatio  = 0.95
)

// Settings controls how the spiral is computed and drawn.
type Settings struct {
	Scale         float64 `yaml:"scale"`
	MaxN          int     `yaml:"max_n"`
	Coeff         float64 `yaml:"spiral_coeff"`
	ShowPrimes    bool    `yaml:"show_primes"`
	ShowClusters  bool    `yaml:"show_clusters"`
	ShowRotation  bool    `yaml:"show_rotation"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	UseSquares    bool    `yaml:"use_squares"`
	DotSize       float64 `yaml:"dot_size"`
	PrimeSize     float64 `yaml:"prime_size"`
	ClusterCount  int     `yaml:"cluster_count"`
	InstantRender bool    `yaml:"instant_render"`

	Sweep SweepSettings `yaml:"sweep"`
}

// SweepSettings controls the coefficient animation.
type SweepSettings struct {
	Enabled   bool          `yaml:"enabled"`
	Interval  time.Duration `yaml:"interval"`
	Increment float64       `yaml:"increment"`
	Min       float64       `yaml:"min"`
	Max       float64       `yaml:"max"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Scale:         5,
		MaxN:          5000,
		Coeff:         2,
		ShowPrimes:    true,
		ShowClusters:  true,
		ShowRotation:  true,
		RotationSpeed: 0.1,
		UseSquares:    true,
		DotSize:       0.1,
		PrimeSize:     10,
		ClusterCount:  100,
		InstantRender: false,
		Sweep: SweepSettings{
			Interval:  100 * time.Millisecond,
			Increment: 0.1,
			Min:       1,
			Max:       500,
		},
	}
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Validate replaces values that cannot be rendered with their defaults and
// clamps the rest into range. It returns the repaired settings.
func (s Settings) Validate() Settings {
	def := DefaultSettings()

	if !finitePositive(s.Coeff) {
		s.Coeff = def.Coeff
	}
	s.Scale = ValidateNumber(s.Scale, MinScale, MaxScale, def.Scale)
	if s.MaxN < 1 {
		s.MaxN = def.MaxN
	}
	if s.ClusterCount < 0 {
		s.ClusterCount = def.ClusterCount
	}
	s.RotationSpeed = ValidateNumber(s.RotationSpeed, 0, 10, def.RotationSpeed)
	if !finitePositive(s.DotSize) {
		s.DotSize = def.DotSize
	}
	if !finitePositive(s.PrimeSize) {
		s.PrimeSize = def.PrimeSize
	}

	sw := &s.Sweep
	if sw.Interval <= 0 {
		sw.Interval = def.Sweep.Interval
	}
	if !finitePositive(sw.Increment) {
		sw.Increment = def.Sweep.Increment
	}
	if !finitePositive(sw.Min) {
		sw.Min = def.Sweep.Min
	}
	if math.IsNaN(sw.Max) || math.IsInf(sw.Max, 0) || sw.Max <= sw.Min {
		sw.Max = math.Max(def.Sweep.Max, sw.Min+10)
	}
	return s
}

// EffectiveMaxN is MaxN capped at MaxPoints.
func (s Settings) EffectiveMaxN() int {
	return min(s.MaxN, MaxPoints)
}

// EffectiveClusterCount is ClusterCount capped at MaxClusters.
func (s Settings) EffectiveClusterCount() int {
	return min(max(s.ClusterCount, 0), MaxClusters)
}

// ValidateNumber returns v when it is a finite number inside [lo, hi] and
// def otherwise.
func ValidateNumber(v, lo, hi, def float64) float64 {
	if math.IsNaN(v) || v < lo || v > hi {
		return def
	}
	return v
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Zoom returns the scale after one scroll step. Positive deltaY zooms out
// of the spiral by spreading points further apart.
func Zoom(scale, deltaY float64) float64 {
	ratio := zoomInRatio
	if deltaY > 0 {
		ratio = zoomOutRatio
	}
	return Clamp(scale*ratio, MinScale, MaxScale)
}
