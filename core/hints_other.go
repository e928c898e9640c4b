//go:build !linux && !freebsd && !openbsd && !netbsd

package core

import (
	"fyne.io/fyne/v2"
	"github.com/primespiral/spiral/internal/winsize"
)

// setNativeMaxSize is a no-op here; the clamping layout enforces the bound.
func setNativeMaxSize(fyne.Window, winsize.Size) error {
	return nil
}
