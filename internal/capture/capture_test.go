package capture

import (
	"context"
	"image"
	"os/exec"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

type recordRunner struct {
	name string
	args []string
	err  error
	n    int
}

func (r *recordRunner) Run(_ context.Context, name string, args ...string) error {
	r.n++
	r.name = name
	r.args = args
	return r.err
}

func TestArea(t *testing.T) {
	tests := []struct {
		rect image.Rectangle
		want string
	}{
		{image.Rect(100, 100, 400, 300), "100,100,300,200"},
		{image.Rectangle{Min: image.Pt(100, 100), Max: image.Pt(50, 50)}, "50,50,50,50"},
		{image.Rect(0, 0, 1920, 1080), "0,0,1920,1080"},
		{image.Rect(7, 7, 7, 7), "7,7,0,0"},
	}
	for _, tt := range tests {
		got, err := Area(tt.rect)
		if err != nil {
			t.Fatalf("Area(%v): %v", tt.rect, err)
		}
		if got != tt.want {
			t.Errorf("Area(%v) = %q, want %q", tt.rect, got, tt.want)
		}
	}
}

func TestAreaRejectsNegativeOrigin(t *testing.T) {
	_, err := Area(image.Rect(-1, 0, 10, 10))
	if errors.Cause(err) != ErrInvalidArea {
		t.Fatalf("err = %v, want ErrInvalidArea", err)
	}
}

func TestCaptureArgs(t *testing.T) {
	run := &recordRunner{}
	tool := NewTool("", "/tmp/shot.png")
	tool.Runner = run

	if err := tool.Capture(context.Background(), image.Rect(100, 100, 400, 300)); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if run.name != DefaultTool {
		t.Errorf("name = %q", run.name)
	}
	want := []string{"-a", "100,100,300,200", "/tmp/shot.png"}
	if !reflect.DeepEqual(run.args, want) {
		t.Errorf("args = %q, want %q", run.args, want)
	}
}

func TestCaptureInvalidAreaSkipsRunner(t *testing.T) {
	run := &recordRunner{}
	tool := &Tool{Path: "scrot", Runner: run}
	if err := tool.Capture(context.Background(), image.Rect(-5, -5, 1, 1)); err == nil {
		t.Fatal("expected error")
	}
	if run.n != 0 {
		t.Fatalf("runner called %d times", run.n)
	}
}

func TestExecRunnerExitStatus(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	err := ExecRunner{}.Run(context.Background(), "sh", "-c", "exit 3")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("err = %v, want *ExitError", err)
	}
	if exitErr.Code != 3 || exitErr.Command != "sh" {
		t.Fatalf("exit error = %+v", exitErr)
	}

	if err := (ExecRunner{}).Run(context.Background(), "sh", "-c", "exit 0"); err != nil {
		t.Fatalf("successful command: %v", err)
	}
}

func TestExecRunnerMissingTool(t *testing.T) {
	err := ExecRunner{}.Run(context.Background(), "regionshot-no-such-tool")
	if err == nil {
		t.Fatal("expected error")
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Fatalf("missing tool reported as exit status: %v", err)
	}
}
