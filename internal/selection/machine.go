package selection

import (
	"image"
	"log"

	"github.com/pkg/errors"
)

type State int

const (
	AnchorPending State = iota
	Selecting
	Terminated
)

func (s State) String() string {
	switch s {
	case AnchorPending:
		return "anchor-pending"
	case Selecting:
		return "selecting"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Outcome is how a selection ended.
type Outcome int

const (
	Pending Outcome = iota
	CommitExplicit
	CommitFullscreen
	Abort
)

func (o Outcome) String() string {
	switch o {
	case CommitExplicit:
		return "commit"
	case CommitFullscreen:
		return "commit-fullscreen"
	case Abort:
		return "abort"
	default:
		return "pending"
	}
}

// Committed reports whether the outcome asks for a capture.
func (o Outcome) Committed() bool {
	return o == CommitExplicit || o == CommitFullscreen
}

// Machine tracks the anchor and live end point of a selection and keeps the
// overlay in sync with them.
type Machine struct {
	screen  image.Rectangle
	surface Surface
	pointer Pointer

	anchor  image.Point
	end     image.Point
	state   State
	outcome Outcome
}

func New(screen image.Rectangle, surface Surface, pointer Pointer) *Machine {
	return &Machine{
		screen:  screen,
		surface: surface,
		pointer: pointer,
	}
}

// Begin anchors the selection at the current pointer position.
func (m *Machine) Begin() error {
	if m.state != AnchorPending {
		return nil
	}
	if err := m.reanchor(); err != nil {
		return err
	}
	m.state = Selecting
	return nil
}

// Handle applies one event and reports whether the selection has ended.
func (m *Machine) Handle(ev Event) (bool, error) {
	if m.state == Terminated {
		return true, nil
	}

	switch e := ev.(type) {
	case Motion:
		if m.state == Selecting {
			m.moveTo(e.P)
		}
	case Key:
		return m.handleKey(e)
	case Button:
		m.terminate(CommitExplicit)
	default:
		m.surface.Raise()
	}
	return m.state == Terminated, nil
}

func (m *Machine) handleKey(k Key) (bool, error) {
	switch k.Command {
	case Reanchor:
		if err := m.reanchor(); err != nil {
			return false, err
		}
		m.state = Selecting
	case SelectAll:
		m.anchor = m.screen.Min
		m.end = m.screen.Max
		m.terminate(CommitFullscreen)
	case Escape:
		m.terminate(Abort)
	case Cancel:
		if k.Ctrl {
			m.terminate(Abort)
		}
	}
	return m.state == Terminated, nil
}

// Run begins the selection and feeds it events from src until it ends.
func (m *Machine) Run(src Source) (Outcome, error) {
	if err := m.Begin(); err != nil {
		return Pending, err
	}
	for {
		ev, err := src.NextEvent()
		if err != nil {
			return Pending, errors.Wrap(err, "next event")
		}
		done, err := m.Handle(ev)
		if err != nil {
			return Pending, err
		}
		if done {
			return m.outcome, nil
		}
	}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Outcome() Outcome {
	return m.outcome
}

func (m *Machine) Anchor() image.Point {
	return m.anchor
}

func (m *Machine) End() image.Point {
	return m.end
}

// Rect is the selection normalized so that Min <= Max on both axes.
func (m *Machine) Rect() image.Rectangle {
	return image.Rectangle{Min: m.anchor, Max: m.end}.Canon()
}

func (m *Machine) reanchor() error {
	p, err := m.pointer.Pointer()
	if err != nil {
		return errors.Wrap(err, "query pointer")
	}
	p = clamp(m.screen, p)
	m.anchor = p
	m.end = p
	m.moveTo(p)
	return nil
}

// moveTo redraws the overlay for a new end point. The bounding box of the old
// and new selections is cleared, then everything outside the new selection
// is dimmed again.
func (m *Machine) moveTo(p image.Point) {
	p = clamp(m.screen, p)
	prev := m.Rect()
	next := image.Rectangle{Min: m.anchor, Max: p}.Canon()
	if dirty := prev.Union(next); !dirty.Empty() {
		m.surface.Clear(dirty)
	}
	if dim := DimRegions(m.screen, m.anchor, p); len(dim) > 0 {
		m.surface.Fill(dim...)
	}
	m.end = p
}

func (m *Machine) terminate(o Outcome) {
	if o == Abort {
		m.anchor, m.end = image.Point{}, image.Point{}
	}
	m.state = Terminated
	m.outcome = o
	log.Printf("selection %s: %v", o, m.Rect())
}
