package x11

import (
	"image"
	"log"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
	"github.com/suutaku/regionshot/internal/selection"
)

var (
	ErrGrabFailed    = errors.New("keyboard grab failed")
	ErrConnClosed    = errors.New("x11 connection closed")
	ErrNoAlphaVisual = errors.New("no 32-bit TrueColor visual")
)

// Session is one connection to the X server and its default screen.
type Session struct {
	c      *xgb.Conn
	screen *xproto.ScreenInfo
	keys   keymap
	closed bool
}

// Open connects to the display named by $DISPLAY.
func Open() (*Session, error) {
	c, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "open display")
	}

	setup := xproto.Setup(c)
	screen := setup.DefaultScreen(c)

	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	reply, err := xproto.GetKeyboardMapping(c, setup.MinKeycode, count).Reply()
	if err != nil {
		c.Close()
		return nil, errors.Wrap(err, "get keyboard mapping")
	}

	log.Printf("open display: screen %dx%d root %d",
		screen.WidthInPixels, screen.HeightInPixels, screen.Root)

	return &Session{
		c:      c,
		screen: screen,
		keys: keymap{
			min:     setup.MinKeycode,
			perCode: int(reply.KeysymsPerKeycode),
			keysyms: reply.Keysyms,
		},
	}, nil
}

// Close disconnects from the server. Calling it again does nothing.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	log.Println("close conn")
	s.c.Close()
	return nil
}

// Bounds is the default screen's geometry.
func (s *Session) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.screen.WidthInPixels), int(s.screen.HeightInPixels))
}

// Pointer returns the pointer position relative to the root window.
func (s *Session) Pointer() (image.Point, error) {
	reply, err := xproto.QueryPointer(s.c, s.screen.Root).Reply()
	if err != nil {
		return image.Point{}, errors.Wrap(err, "query pointer")
	}
	return image.Pt(int(reply.RootX), int(reply.RootY)), nil
}

// GrabKeyboard takes exclusive keyboard input on the root window, retrying
// while another client holds it.
func (s *Session) GrabKeyboard(attempts int, delay time.Duration) error {
	var status byte
	for i := 0; i < attempts; i++ {
		reply, err := xproto.GrabKeyboard(s.c, true, s.screen.Root, xproto.TimeCurrentTime,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Reply()
		if err != nil {
			return errors.Wrap(err, "grab keyboard")
		}
		if reply.Status == xproto.GrabStatusSuccess {
			if i > 0 {
				log.Printf("keyboard grabbed after %d attempts", i+1)
			}
			return nil
		}
		status = reply.Status
		time.Sleep(delay)
	}
	return errors.Wrapf(ErrGrabFailed, "%d attempts, last status %d", attempts, status)
}

// UngrabKeyboard releases the keyboard. It is safe to call without a grab.
func (s *Session) UngrabKeyboard() {
	xproto.UngrabKeyboard(s.c, xproto.TimeCurrentTime)
}

// NextEvent blocks for the next X event and translates it. Protocol errors
// are logged and skipped.
func (s *Session) NextEvent() (selection.Event, error) {
	for {
		ev, xerr := s.c.WaitForEvent()
		if ev == nil && xerr == nil {
			return nil, ErrConnClosed
		}
		if xerr != nil {
			log.Println(xerr)
			continue
		}
		return s.keys.translate(ev), nil
	}
}
