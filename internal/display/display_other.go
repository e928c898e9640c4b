//go:build !darwin && !windows && !linux && !freebsd && !openbsd && !netbsd

package display

func primaryMonitor() (Monitor, error) {
	return Monitor{}, ErrNoMonitor
}
