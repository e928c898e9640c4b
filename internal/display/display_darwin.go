//go:build darwin

package display

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

static int mainDisplayWidth() {
	return (int)CGDisplayPixelsWide(CGMainDisplayID());
}

static int mainDisplayHeight() {
	return (int)CGDisplayPixelsHigh(CGMainDisplayID());
}
*/
import "C"

import "github.com/primespiral/spiral/internal/winsize"

// CGDisplayPixels* report points, matching the logical units windows use.
func primaryMonitor() (Monitor, error) {
	w, h := int(C.mainDisplayWidth()), int(C.mainDisplayHeight())
	if w <= 0 || h <= 0 {
		return Monitor{}, ErrNoMonitor
	}
	return Monitor{
		Name: "main",
		Size: winsize.Size{Width: uint32(w), Height: uint32(h)},
	}, nil
}
