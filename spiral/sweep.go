package spiral

// Sweep walks the spiral coefficient back and forth between two bounds.
type Sweep struct {
	Increment float64
	Min, Max  float64
	direction float64
}

// NewSweep builds a sweep from validated settings, initially increasing.
func NewSweep(s SweepSettings) *Sweep {
	return &Sweep{
		Increment: s.Increment,
		Min:       s.Min,
		Max:       s.Max,
		direction: 1,
	}
}

// Direction is 1 while increasing and -1 while decreasing.
func (sw *Sweep) Direction() float64 {
	return sw.direction
}

// Next returns the coefficient following coeff. Reaching either bound flips
// the direction and clamps to that bound.
func (sw *Sweep) Next(coeff float64) float64 {
	if !finitePositive(coeff) {
		coeff = Clamp(DefaultSettings().Coeff, sw.Min, sw.Max)
	}
	next := coeff + sw.Increment*sw.direction
	if next <= sw.Min || next >= sw.Max {
		sw.direction = -sw.direction
		next = Clamp(next, sw.Min, sw.Max)
	}
	return next
}
