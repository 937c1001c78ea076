package selection

import "image"

// Command is a logical key binding understood by the Machine.
type Command int

const (
	NoCommand Command = iota
	Reanchor
	SelectAll
	Escape
	Cancel
)

func (c Command) String() string {
	switch c {
	case Reanchor:
		return "reanchor"
	case SelectAll:
		return "select-all"
	case Escape:
		return "escape"
	case Cancel:
		return "cancel"
	default:
		return "none"
	}
}

// Event is one input delivered to the Machine by a Source.
type Event interface {
	event()
}

// Motion reports the pointer at P in screen coordinates.
type Motion struct {
	P image.Point
}

// Key is a key press already resolved to a Command. Ctrl is set when the
// control modifier was held.
type Key struct {
	Command Command
	Ctrl    bool
}

// Button is any pointer button press.
type Button struct{}

// Other covers every windowing event the Machine does not act on besides
// keeping the overlay on top.
type Other struct{}

func (Motion) event() {}
func (Key) event()    {}
func (Button) event() {}
func (Other) event()  {}

// Source yields events until the selection ends. It blocks until an event is
// available.
type Source interface {
	NextEvent() (Event, error)
}

// Surface is the overlay the Machine draws its feedback on.
type Surface interface {
	// Clear resets r to fully transparent.
	Clear(r image.Rectangle)
	// Fill paints rs with the dim colour.
	Fill(rs ...image.Rectangle)
	// Raise puts the surface back on top of the stacking order.
	Raise()
}

// Pointer reports the current pointer position in screen coordinates.
type Pointer interface {
	Pointer() (image.Point, error)
}
