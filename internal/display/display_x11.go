//go:build linux || freebsd || openbsd || netbsd

package display

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/pkg/errors"
	"github.com/primespiral/spiral/internal/winsize"
)

func primaryMonitor() (Monitor, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		// Wayland-only sessions and headless runs land here.
		return Monitor{}, errors.Wrap(ErrNoMonitor, err.Error())
	}
	defer xu.Conn().Close()
	return PrimaryX11(xu)
}

// PrimaryX11 resolves the RandR primary output on an open connection. When
// no output is flagged primary the first active CRTC is used.
func PrimaryX11(xu *xgbutil.XUtil) (Monitor, error) {
	conn := xu.Conn()
	if err := randr.Init(conn); err != nil {
		return Monitor{}, errors.Wrap(err, "randr init failed")
	}

	resources, err := randr.GetScreenResources(conn, xu.RootWin()).Reply()
	if err != nil {
		return Monitor{}, errors.Wrap(err, "failed to get screen resources")
	}

	primary, err := randr.GetOutputPrimary(conn, xu.RootWin()).Reply()
	if err == nil && primary.Output != 0 {
		if m, ok := outputMonitor(conn, primary.Output, resources.ConfigTimestamp); ok {
			return m, nil
		}
	}

	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}
		name := ""
		if out, err := randr.GetOutputInfo(conn, info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}
		return Monitor{
			Name: name,
			Size: winsize.Size{Width: uint32(info.Width), Height: uint32(info.Height)},
		}, nil
	}

	return Monitor{}, ErrNoMonitor
}

func outputMonitor(conn *xgb.Conn, output randr.Output, ts xproto.Timestamp) (Monitor, bool) {
	out, err := randr.GetOutputInfo(conn, output, ts).Reply()
	if err != nil || out.Crtc == 0 {
		return Monitor{}, false
	}
	crtc, err := randr.GetCrtcInfo(conn, out.Crtc, ts).Reply()
	if err != nil || crtc.Width == 0 || crtc.Height == 0 {
		return Monitor{}, false
	}
	return Monitor{
		Name: string(out.Name),
		Size: winsize.Size{Width: uint32(crtc.Width), Height: uint32(crtc.Height)},
	}, true
}
