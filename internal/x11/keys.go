package x11

import (
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/suutaku/regionshot/internal/selection"
)

// Keysyms from X11/keysymdef.h.
const (
	keysymA      xproto.Keysym = 0x0061
	keysymC      xproto.Keysym = 0x0063
	keysymS      xproto.Keysym = 0x0073
	keysymEscape xproto.Keysym = 0xff1b
)

// keymap is the server's keycode to keysym table.
type keymap struct {
	min     xproto.Keycode
	perCode int
	keysyms []xproto.Keysym
}

// lookup returns the unshifted keysym for code, or 0 if unmapped.
func (k keymap) lookup(code xproto.Keycode) xproto.Keysym {
	if code < k.min || k.perCode == 0 {
		return 0
	}
	i := int(code-k.min) * k.perCode
	if i >= len(k.keysyms) {
		return 0
	}
	return k.keysyms[i]
}

func commandFor(sym xproto.Keysym) selection.Command {
	switch sym {
	case keysymS:
		return selection.Reanchor
	case keysymA:
		return selection.SelectAll
	case keysymEscape:
		return selection.Escape
	case keysymC:
		return selection.Cancel
	default:
		return selection.NoCommand
	}
}

func (k keymap) translate(ev xgb.Event) selection.Event {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return selection.Key{
			Command: commandFor(k.lookup(e.Detail)),
			Ctrl:    e.State&xproto.ModMaskControl != 0,
		}
	case xproto.MotionNotifyEvent:
		return selection.Motion{P: image.Pt(int(e.RootX), int(e.RootY))}
	case xproto.ButtonPressEvent:
		return selection.Button{}
	default:
		return selection.Other{}
	}
}
