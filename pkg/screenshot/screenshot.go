// Package screenshot lets the user pick a screen region on an overlay and
// hands it to an external capture tool.
package screenshot

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/suutaku/regionshot/internal/capture"
	"github.com/suutaku/regionshot/internal/selection"
)

type Outcome = selection.Outcome

const (
	CommitExplicit   = selection.CommitExplicit
	CommitFullscreen = selection.CommitFullscreen
	Abort            = selection.Abort
)

var ErrUnsupported = errors.New("interactive selection is not supported on this platform")

// Options tunes the keyboard grab.
type Options struct {
	GrabAttempts int
	GrabDelay    time.Duration
}

// DefaultOptions retries the grab for about a second.
func DefaultOptions() Options {
	return Options{
		GrabAttempts: 1000,
		GrabDelay:    time.Millisecond,
	}
}

// Result is a finished selection. Rect is normalized and only meaningful when
// Outcome is a commit.
type Result struct {
	Outcome Outcome
	Rect    image.Rectangle
}

type overlay interface {
	selection.Surface
	Destroy()
}

// display is the windowing session a selection runs on.
type display interface {
	selection.Source
	selection.Pointer
	Bounds() image.Rectangle
	NewOverlay() (overlay, error)
	GrabKeyboard(attempts int, delay time.Duration) error
	UngrabKeyboard()
	Close() error
}

// selectOn runs one selection on d and tears everything down before
// returning: keyboard, then overlay, then the connection.
func selectOn(d display, opts Options) (res Result, err error) {
	defer func() {
		if cerr := d.Close(); err == nil {
			err = cerr
		}
	}()

	ov, err := d.NewOverlay()
	if err != nil {
		return Result{}, errors.Wrap(err, "create overlay")
	}
	if err := d.GrabKeyboard(opts.GrabAttempts, opts.GrabDelay); err != nil {
		ov.Destroy()
		return Result{}, err
	}

	m := selection.New(d.Bounds(), ov, d)
	outcome, runErr := m.Run(d)

	d.UngrabKeyboard()
	ov.Destroy()

	if runErr != nil {
		return Result{}, runErr
	}
	return Result{Outcome: outcome, Rect: m.Rect()}, nil
}

// Commit captures res with tool when the selection was committed. Aborted
// selections never reach the tool.
func Commit(ctx context.Context, res Result, tool *capture.Tool) error {
	if !res.Outcome.Committed() {
		log.Printf("selection %s, nothing to capture", res.Outcome)
		return nil
	}
	return tool.Capture(ctx, res.Rect)
}

// Run selects a region on the local display and captures it with tool.
func Run(ctx context.Context, opts Options, tool *capture.Tool) error {
	res, err := Select(opts)
	if err != nil {
		return err
	}
	return Commit(ctx, res, tool)
}
