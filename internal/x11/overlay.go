package x11

import (
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

// dimColor is the ARGB fill for the area outside the selection.
const dimColor = 0x55000000

const overlayEvents = xproto.EventMaskPointerMotion |
	xproto.EventMaskButtonPress |
	xproto.EventMaskSubstructureNotify

// Overlay is an unmanaged, translucent window covering the whole screen.
type Overlay struct {
	c    *xgb.Conn
	win  xproto.Window
	cmap xproto.Colormap
	gc   xproto.Gcontext
}

// NewOverlay creates, maps and raises the overlay window.
func (s *Session) NewOverlay() (*Overlay, error) {
	visual, err := alphaVisual(s.screen)
	if err != nil {
		return nil, err
	}

	cmap, err := xproto.NewColormapId(s.c)
	if err != nil {
		return nil, errors.Wrap(err, "allocate colormap id")
	}
	err = xproto.CreateColormapChecked(s.c, xproto.ColormapAllocNone, cmap, s.screen.Root, visual).Check()
	if err != nil {
		return nil, errors.Wrap(err, "create colormap")
	}

	win, err := xproto.NewWindowId(s.c)
	if err != nil {
		xproto.FreeColormap(s.c, cmap)
		return nil, errors.Wrap(err, "allocate window id")
	}
	bounds := s.Bounds()
	// Values must follow the order of the mask bits.
	mask := uint32(xproto.CwBackPixel | xproto.CwBorderPixel | xproto.CwOverrideRedirect |
		xproto.CwEventMask | xproto.CwColormap)
	values := []uint32{0, 0, 1, overlayEvents, uint32(cmap)}
	err = xproto.CreateWindowChecked(s.c, 32, win, s.screen.Root,
		0, 0, uint16(bounds.Dx()), uint16(bounds.Dy()), 0,
		xproto.WindowClassInputOutput, visual, mask, values).Check()
	if err != nil {
		xproto.FreeColormap(s.c, cmap)
		return nil, errors.Wrap(err, "create window")
	}

	gc, err := xproto.NewGcontextId(s.c)
	if err != nil {
		xproto.DestroyWindow(s.c, win)
		xproto.FreeColormap(s.c, cmap)
		return nil, errors.Wrap(err, "allocate gc id")
	}
	xproto.CreateGC(s.c, gc, xproto.Drawable(win), xproto.GcForeground, []uint32{dimColor})

	o := &Overlay{c: s.c, win: win, cmap: cmap, gc: gc}
	xproto.MapWindow(s.c, win)
	o.Raise()
	return o, nil
}

func alphaVisual(screen *xproto.ScreenInfo) (xproto.Visualid, error) {
	for _, depth := range screen.AllowedDepths {
		if depth.Depth != 32 {
			continue
		}
		for _, v := range depth.Visuals {
			if v.Class == xproto.VisualClassTrueColor {
				return v.VisualId, nil
			}
		}
	}
	return 0, ErrNoAlphaVisual
}

// Clear resets r to the transparent background.
func (o *Overlay) Clear(r image.Rectangle) {
	// A zero width or height would clear to the window edge.
	if r.Empty() {
		return
	}
	xproto.ClearArea(o.c, false, o.win,
		int16(r.Min.X), int16(r.Min.Y), uint16(r.Dx()), uint16(r.Dy()))
}

// Fill paints rs with the dim colour.
func (o *Overlay) Fill(rs ...image.Rectangle) {
	rects := toRectangles(rs)
	if len(rects) == 0 {
		return
	}
	xproto.PolyFillRectangle(o.c, xproto.Drawable(o.win), o.gc, rects)
}

func (o *Overlay) Raise() {
	xproto.ConfigureWindow(o.c, o.win, xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
}

// Destroy frees the GC, window and colormap and waits for the server to
// process the requests.
func (o *Overlay) Destroy() {
	xproto.FreeGC(o.c, o.gc)
	xproto.DestroyWindow(o.c, o.win)
	xproto.FreeColormap(o.c, o.cmap)
	o.c.Sync()
}

func toRectangles(rs []image.Rectangle) []xproto.Rectangle {
	out := make([]xproto.Rectangle, 0, len(rs))
	for _, r := range rs {
		if r.Empty() {
			continue
		}
		out = append(out, xproto.Rectangle{
			X:      int16(r.Min.X),
			Y:      int16(r.Min.Y),
			Width:  uint16(r.Dx()),
			Height: uint16(r.Dy()),
		})
	}
	return out
}
