package overlay

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const opacityAtom = "_NET_WM_WINDOW_OPACITY"

// opacityValue scales alpha in [0, 1] to the CARDINAL range compositors
// read from _NET_WM_WINDOW_OPACITY.
func opacityValue(alpha float64) uint32 {
	switch {
	case alpha >= 1:
		return 0xffffffff
	case alpha <= 0:
		return 0
	default:
		return uint32(alpha * 0xffffffff)
	}
}

// setX11Opacity sets _NET_WM_WINDOW_OPACITY on window. A compositor has to
// be running for it to show.
func setX11Opacity(window uint32, alpha float64) error {
	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	atom, err := xproto.InternAtom(conn, false, uint16(len(opacityAtom)), opacityAtom).Reply()
	if err != nil {
		return fmt.Errorf("intern %s: %w", opacityAtom, err)
	}

	data := make([]byte, 4)
	xgb.Put32(data, opacityValue(alpha))

	err = xproto.ChangeProperty(conn, xproto.PropModeReplace, xproto.Window(window),
		atom.Atom, xproto.AtomCardinal, 32, 1, data).Check()
	if err != nil {
		return fmt.Errorf("set %s: %w", opacityAtom, err)
	}
	return nil
}
