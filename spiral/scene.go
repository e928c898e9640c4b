package spiral

import (
	"image"
	"image/color"
	"math"
	"sync"
)

// TrailAlpha is how much of the previous frame each new frame fades out.
const TrailAlpha = 0.25

var (
	NormalColor = color.RGBA{R: 0x00, G: 0x99, B: 0x00, A: 0xff}
	PrimeColor  = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
)

// Scene is the animated spiral: the placed points, the cluster field and the
// current rotation. All methods are safe for concurrent use.
type Scene struct {
	mu       sync.Mutex
	settings Settings
	primes   *PrimeCache
	points   []Point
	clusters *ClusterField
	rotation float64
	w, h     int
	trail    *image.RGBA
}

// NewScene returns a scene for settings on a w×h canvas.
func NewScene(s Settings, w, h int, seed uint64) *Scene {
	s = s.Validate()
	sc := &Scene{
		settings: s,
		primes:   NewPrimeCache(),
		w:        w,
		h:        h,
	}
	sc.clusters = NewClusterField(s.EffectiveClusterCount(), w, h, seed)
	sc.points = ComputePoints(w, h, s, sc.primes)
	return sc
}

// Settings returns a copy of the current settings.
func (sc *Scene) Settings() Settings {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.settings
}

// Update applies fn to the settings and recomputes whatever it affects.
func (sc *Scene) Update(fn func(*Settings)) Settings {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	prev := sc.settings
	next := prev
	fn(&next)
	next = next.Validate()
	sc.settings = next

	if next.ClusterCount != prev.ClusterCount {
		sc.clusters.Reset(next.EffectiveClusterCount(), sc.w, sc.h)
	}
	if next.Scale != prev.Scale || next.MaxN != prev.MaxN ||
		next.Coeff != prev.Coeff || next.ShowRotation != prev.ShowRotation {
		sc.points = ComputePoints(sc.w, sc.h, next, sc.primes)
	}
	return next
}

// Resize recomputes points and clusters for a new canvas size.
func (sc *Scene) Resize(w, h int) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if w == sc.w && h == sc.h {
		return
	}
	sc.w, sc.h = w, h
	sc.trail = nil
	sc.points = ComputePoints(w, h, sc.settings, sc.primes)
	sc.clusters.Reset(sc.settings.EffectiveClusterCount(), w, h)
}

// Points returns the number of placed points.
func (sc *Scene) Points() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.points)
}

// Rotation returns the current rotation in radians.
func (sc *Scene) Rotation() float64 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.rotation
}

// Step advances the animation by one frame.
func (sc *Scene) Step() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.settings.ShowClusters {
		sc.clusters.Update(sc.w, sc.h)
	}
	if sc.settings.ShowRotation {
		sc.rotation += sc.settings.RotationSpeed * 0.01
	}
}

// batchSize is how many points are drawn per frame. Large sets are drawn
// progressively unless instant rendering is on.
func batchSize(n int, instant bool) int {
	switch {
	case instant, n <= 10_000:
		return n
	case n <= 50_000:
		return min(n, 2000)
	default:
		return min(n, 5000)
	}
}

// Frame renders the next frame into a reused buffer and returns it. The
// previous frame is faded rather than cleared, leaving a trail.
func (sc *Scene) Frame() *image.RGBA {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.trail == nil || sc.trail.Bounds().Dx() != sc.w || sc.trail.Bounds().Dy() != sc.h {
		sc.trail = image.NewRGBA(image.Rect(0, 0, sc.w, sc.h))
		fillBlack(sc.trail)
	}
	sc.draw(sc.trail)
	return sc.trail
}

// Draw renders one frame onto dst.
func (sc *Scene) Draw(dst *image.RGBA) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.draw(dst)
}

func (sc *Scene) draw(dst *image.RGBA) {
	fade(dst, TrailAlpha)
	if len(sc.points) == 0 {
		return
	}

	s := sc.settings
	cx, cy := float64(sc.w)/2, float64(sc.h)/2
	sin, cos := math.Sincos(sc.rotation)
	if !s.ShowRotation {
		sin, cos = 0, 1
	}

	count := batchSize(len(sc.points), s.InstantRender)
	for i := 0; i < count; i++ {
		p := sc.points[i%len(sc.points)]

		factor := 0.0
		if s.ShowClusters {
			factor = sc.clusters.Factor(p.X, p.Y)
		}
		prime := s.ShowPrimes && p.IsPrime
		size := s.DotSize
		if prime {
			size *= s.PrimeSize
		}
		size += factor * SizeBoost

		// Lift is applied in the rotated frame, before rotating.
		x, y := p.X-cx, p.Y-factor*LiftHeight-cy
		rx, ry := x*cos-y*sin+cx, x*sin+y*cos+cy

		c := NormalColor
		if prime {
			c = PrimeColor
		}
		if s.UseSquares {
			fillSquare(dst, rx, ry, size, c)
		} else {
			fillCircle(dst, rx, ry, size/2, c)
		}
	}
}

func fillBlack(img *image.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0, 0, 0, 0xff
	}
}

// fade paints black with the given alpha over img.
func fade(img *image.RGBA, alpha float64) {
	keep := 1 - alpha
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(float64(img.Pix[i]) * keep)
		img.Pix[i+1] = uint8(float64(img.Pix[i+1]) * keep)
		img.Pix[i+2] = uint8(float64(img.Pix[i+2]) * keep)
		img.Pix[i+3] = 0xff
	}
}

func fillSquare(img *image.RGBA, x, y, size float64, c color.RGBA) {
	side := math.Max(1, size)
	x0, y0 := int(math.Round(x-side/2)), int(math.Round(y-side/2))
	x1, y1 := x0+int(math.Ceil(side)), y0+int(math.Ceil(side))
	fillRect(img, image.Rect(x0, y0, x1, y1), c)
}

func fillCircle(img *image.RGBA, x, y, r float64, c color.RGBA) {
	if r < 1 {
		fillSquare(img, x, y, 1, c)
		return
	}
	rect := image.Rect(int(x-r), int(y-r), int(x+r)+1, int(y+r)+1).Intersect(img.Bounds())
	r2 := r * r
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			dx, dy := float64(px)+0.5-x, float64(py)+0.5-y
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}
