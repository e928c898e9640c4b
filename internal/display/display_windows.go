//go:build windows

package display

import (
	"github.com/pkg/errors"
	"github.com/primespiral/spiral/internal/winsize"
	"golang.org/x/sys/windows"
)

const (
	smCxScreen = 0
	smCyScreen = 1
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

func systemMetric(index uintptr) int {
	r, _, _ := procGetSystemMetrics.Call(index)
	return int(int32(r))
}

func primaryMonitor() (Monitor, error) {
	if err := procGetSystemMetrics.Find(); err != nil {
		return Monitor{}, errors.Wrap(err, "GetSystemMetrics unavailable")
	}
	w, h := systemMetric(smCxScreen), systemMetric(smCyScreen)
	if w <= 0 || h <= 0 {
		return Monitor{}, ErrNoMonitor
	}
	return Monitor{
		Name: "primary",
		Size: winsize.Size{Width: uint32(w), Height: uint32(h)},
	}, nil
}
