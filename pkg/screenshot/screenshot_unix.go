//go:build linux || freebsd || openbsd || netbsd || dragonfly

package screenshot

import (
	"github.com/suutaku/regionshot/internal/x11"
)

type x11Display struct {
	*x11.Session
}

func (d x11Display) NewOverlay() (overlay, error) {
	ov, err := d.Session.NewOverlay()
	if err != nil {
		return nil, err
	}
	return ov, nil
}

// Select opens the X display and lets the user pick a region. The overlay
// and connection are gone by the time it returns.
func Select(opts Options) (Result, error) {
	s, err := x11.Open()
	if err != nil {
		return Result{}, err
	}
	return selectOn(x11Display{s}, opts)
}
