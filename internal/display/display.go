// Package display resolves the resolution of the operating system's
// primary monitor.
package display

import (
	"github.com/pkg/errors"
	"github.com/primespiral/spiral/internal/winsize"
)

// ErrNoMonitor is returned when no primary monitor can be resolved.
var ErrNoMonitor = errors.New("no primary monitor found")

// Prober resolves the primary monitor resolution.
type Prober func() (Monitor, error)

// Monitor is a resolved display.
type Monitor struct {
	Name string
	Size winsize.Size
}

// Resolution implements winsize.Monitor.
func (m Monitor) Resolution() winsize.Size {
	return m.Size
}

// Primary queries the platform for the primary monitor.
func Primary() (Monitor, error) {
	return primaryMonitor()
}

// Lookup runs p and reports the result in the optional form the window
// adapters hand to winsize.
func Lookup(p Prober) (winsize.Monitor, bool, error) {
	if p == nil {
		return nil, false, nil
	}
	m, err := p()
	if errors.Is(err, ErrNoMonitor) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if m.Size.Width == 0 || m.Size.Height == 0 {
		return nil, false, nil
	}
	return m, true, nil
}
