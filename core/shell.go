package core

import (
	"sync"

	"fyne.io/fyne/v2"
	"github.com/primespiral/spiral/internal/display"
	"github.com/primespiral/spiral/internal/winsize"
)

// Shell owns the fyne app and is the only place secondary windows get
// created, so it can tell subscribers about every new one.
type Shell struct {
	app   fyne.App
	probe display.Prober

	mu        sync.Mutex
	listeners []func(winsize.Window)
}

// NewShell wraps app. probe resolves the primary monitor for every window
// the shell hands out.
func NewShell(app fyne.App, probe display.Prober) *Shell {
	return &Shell{app: app, probe: probe}
}

// App returns the wrapped fyne app.
func (s *Shell) App() fyne.App {
	return s.app
}

// OnWindowCreated implements winsize.EventSource.
func (s *Shell) OnWindowCreated(fn func(winsize.Window)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Wrap adapts an existing fyne window without announcing it.
func (s *Shell) Wrap(w fyne.Window) *HostWindow {
	return newHostWindow(w, s.probe)
}

// NewWindow creates a window with an initial size and announces it to
// subscribers. The event targets the new window.
func (s *Shell) NewWindow(title string, size fyne.Size) *HostWindow {
	w := s.Wrap(s.app.NewWindow(title))
	if size.Width > 0 && size.Height > 0 {
		w.Resize(size)
	}
	s.emit(w)
	return w
}

func (s *Shell) emit(w winsize.Window) {
	s.mu.Lock()
	listeners := make([]func(winsize.Window), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(w)
	}
}
