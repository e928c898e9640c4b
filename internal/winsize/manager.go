// Package winsize keeps application windows within the primary screen.
//
// Every host call is best effort: a failed or unavailable query leaves the
// window untouched and nothing is reported to the caller. Window cosmetics
// must never stop the application from starting.
package winsize

// Monitor is a display whose resolution can be read.
type Monitor interface {
	Resolution() Size
}

// Window is the host window surface the constraints are applied to.
type Window interface {
	// PrimaryMonitor returns the primary display for the window. ok is
	// false when the host knows of no such display.
	PrimaryMonitor() (m Monitor, ok bool, err error)
	SetMaxSize(Size) error
	CurrentSize() (Size, error)
	SetSize(Size) error
}

// EventSource delivers window-created events.
type EventSource interface {
	OnWindowCreated(func(Window))
}

// Manager applies screen-fit constraints at startup and on every new window.
// It keeps no state between invocations.
type Manager struct{}

// NewManager returns a constraint manager.
func NewManager() *Manager {
	return &Manager{}
}

// Install constrains main (when known) and subscribes to window creation so
// every later window gets the same treatment.
func (m *Manager) Install(main Window, events EventSource) {
	if main != nil {
		m.Apply(main)
	}
	if events != nil {
		events.OnWindowCreated(m.Apply)
	}
}

// Apply constrains w to its primary monitor.
func (m *Manager) Apply(w Window) {
	Apply(w)
}

// Apply sets the max size of w from its primary monitor and shrinks w when
// it is currently larger than that bound.
func Apply(w Window) {
	if w == nil {
		return
	}
	mon, ok, err := w.PrimaryMonitor()
	if err != nil || !ok || mon == nil {
		return
	}
	bound := Compute(mon.Resolution())

	_ = w.SetMaxSize(bound)

	cur, err := w.CurrentSize()
	if err != nil {
		return
	}
	if cur.Fits(bound) {
		return
	}
	_ = w.SetSize(cur.Clamp(bound))
}
