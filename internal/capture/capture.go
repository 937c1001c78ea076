// Package capture hands a selected screen area to an external screenshot
// tool.
package capture

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// DefaultTool is the capture program used when none is configured.
const DefaultTool = "scrot"

var ErrInvalidArea = errors.New("invalid capture area")

// ExitError reports a capture tool that ran but did not succeed.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// Runner starts name with args and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands directly, without a shell.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Command: name, Code: exitErr.ExitCode()}
	}
	return errors.Wrapf(err, "run %s", name)
}

// Area formats r as the "x,y,w,h" argument understood by scrot.
func Area(r image.Rectangle) (string, error) {
	r = r.Canon()
	if r.Min.X < 0 || r.Min.Y < 0 {
		return "", errors.Wrapf(ErrInvalidArea, "%v", r)
	}
	return fmt.Sprintf("%d,%d,%d,%d", r.Min.X, r.Min.Y, r.Dx(), r.Dy()), nil
}

// Tool is an external capture program taking the area as "-a x,y,w,h".
type Tool struct {
	Path   string
	Extra  []string
	Runner Runner
}

// NewTool returns a Tool running path through ExecRunner. Extra arguments
// follow the area, e.g. an output file name.
func NewTool(path string, extra ...string) *Tool {
	if path == "" {
		path = DefaultTool
	}
	return &Tool{
		Path:   path,
		Extra:  extra,
		Runner: ExecRunner{},
	}
}

// Args builds the argument vector for capturing r.
func (t *Tool) Args(r image.Rectangle) ([]string, error) {
	area, err := Area(r)
	if err != nil {
		return nil, err
	}
	return append([]string{"-a", area}, t.Extra...), nil
}

// Capture runs the tool for r and waits for it to exit.
func (t *Tool) Capture(ctx context.Context, r image.Rectangle) error {
	args, err := t.Args(r)
	if err != nil {
		return err
	}
	log.Printf("capture: %s %s", t.Path, strings.Join(args, " "))
	return t.Runner.Run(ctx, t.Path, args...)
}
