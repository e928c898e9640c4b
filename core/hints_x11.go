//go:build linux || freebsd || openbsd || netbsd

package core

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/pkg/errors"
	"github.com/primespiral/spiral/internal/winsize"
)

// setNativeMaxSize publishes the bound as WM_NORMAL_HINTS so the window
// manager refuses larger user resizes. Windows without an X11 handle
// (Wayland, test driver, not yet shown) are left alone.
func setNativeMaxSize(w fyne.Window, s winsize.Size) error {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return nil
	}
	var handle uintptr
	nw.RunNative(func(ctx any) {
		switch c := ctx.(type) {
		case driver.X11WindowContext:
			handle = c.WindowHandle
		case *driver.X11WindowContext:
			handle = c.WindowHandle
		}
	})
	if handle == 0 {
		return nil
	}
	return setX11MaxSize(xproto.Window(handle), s)
}

func setX11MaxSize(win xproto.Window, s winsize.Size) error {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return errors.Wrap(err, "connect to X server")
	}
	defer xu.Conn().Close()

	hints, err := icccm.WmNormalHintsGet(xu, win)
	if err != nil {
		hints = &icccm.NormalHints{}
	}
	hints.Flags |= icccm.SizeHintPMaxSize
	hints.MaxWidth = uint(s.Width)
	hints.MaxHeight = uint(s.Height)
	return errors.Wrap(icccm.WmNormalHintsSet(xu, win, hints), "set WM_NORMAL_HINTS")
}
