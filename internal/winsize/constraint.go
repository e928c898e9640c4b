package winsize

// Screen margin reserved for OS chrome, and the floor every max size keeps.
const (
	Margin       = 200
	MinMaxWidth  = 800
	MinMaxHeight = 600
)

// Size is a width/height pair in the host's logical units.
type Size struct {
	Width  uint32
	Height uint32
}

// Fits reports whether s is within bound in both dimensions.
func (s Size) Fits(bound Size) bool {
	return s.Width <= bound.Width && s.Height <= bound.Height
}

// Clamp returns s shrunk to bound per dimension. It never grows s.
func (s Size) Clamp(bound Size) Size {
	return Size{
		Width:  min(s.Width, bound.Width),
		Height: min(s.Height, bound.Height),
	}
}

// Compute returns the maximum window size for a screen resolution.
func Compute(screen Size) Size {
	return Size{
		Width:  uint32(max(int64(screen.Width)-Margin, MinMaxWidth)),
		Height: uint32(max(int64(screen.Height)-Margin, MinMaxHeight)),
	}
}
