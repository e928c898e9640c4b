package core

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/pkg/errors"
	"github.com/primespiral/spiral/internal/display"
	"github.com/primespiral/spiral/internal/winsize"
	"github.com/primespiral/spiral/render"
)

// errSizeUnknown is returned while a window has neither a laid out canvas
// nor a requested size.
var errSizeUnknown = errors.New("window size not known yet")

// HostWindow is a fyne window that can be constrained by winsize. Content
// set through it is wrapped in a layout that shrinks the window back
// whenever it grows past the max size.
type HostWindow struct {
	fyne.Window

	probe display.Prober
	clamp *render.ClampLayout

	mu        sync.Mutex
	max       winsize.Size
	requested fyne.Size
}

var _ winsize.Window = (*HostWindow)(nil)

func newHostWindow(w fyne.Window, probe display.Prober) *HostWindow {
	hw := &HostWindow{Window: w, probe: probe}
	hw.clamp = render.NewClampLayout(hw.shrink)
	return hw
}

// SetContent wraps obj in the clamping layout.
func (w *HostWindow) SetContent(obj fyne.CanvasObject) {
	w.Window.SetContent(container.New(w.clamp, obj))
}

// Resize records the request so the size is known before the window is shown.
func (w *HostWindow) Resize(size fyne.Size) {
	w.mu.Lock()
	w.requested = size
	w.mu.Unlock()
	w.Window.Resize(size)
}

// PrimaryMonitor implements winsize.Window.
func (w *HostWindow) PrimaryMonitor() (winsize.Monitor, bool, error) {
	return display.Lookup(w.probe)
}

// SetMaxSize implements winsize.Window. The bound is enforced in-process on
// every platform and also handed to the window manager where possible.
func (w *HostWindow) SetMaxSize(s winsize.Size) error {
	w.mu.Lock()
	w.max = s
	w.mu.Unlock()
	w.clamp.SetMax(fyneSize(s))
	return errors.Wrap(setNativeMaxSize(w.Window, s), "native max size")
}

// MaxSize returns the last bound set, zero when unconstrained.
func (w *HostWindow) MaxSize() winsize.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.max
}

// CurrentSize implements winsize.Window.
func (w *HostWindow) CurrentSize() (winsize.Size, error) {
	size := w.Canvas().Size()
	if size.Width <= 0 || size.Height <= 0 {
		w.mu.Lock()
		size = w.requested
		w.mu.Unlock()
	}
	if size.Width <= 0 || size.Height <= 0 {
		return winsize.Size{}, errSizeUnknown
	}
	return winsize.Size{Width: uint32(size.Width), Height: uint32(size.Height)}, nil
}

// SetSize implements winsize.Window.
func (w *HostWindow) SetSize(s winsize.Size) error {
	if s.Width == 0 || s.Height == 0 {
		return errors.Errorf("invalid window size %dx%d", s.Width, s.Height)
	}
	w.Resize(fyneSize(s))
	return nil
}

func (w *HostWindow) shrink(size fyne.Size) {
	bound := w.MaxSize()
	if bound == (winsize.Size{}) || w.FullScreen() {
		return
	}
	w.Resize(fyne.NewSize(min(size.Width, float32(bound.Width)), min(size.Height, float32(bound.Height))))
}

func fyneSize(s winsize.Size) fyne.Size {
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}
