package main

import (
	"testing"
	"time"

	"github.com/suutaku/regionshot/internal/capture"
)

func TestRootCmdDefaults(t *testing.T) {
	opts := &options{}
	cmd := newRootCmd(opts)
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if opts.tool != capture.DefaultTool {
		t.Errorf("tool = %q", opts.tool)
	}
	if opts.grabAttempts != 1000 || opts.grabDelay != time.Millisecond {
		t.Errorf("grab = %d x %v", opts.grabAttempts, opts.grabDelay)
	}
	if opts.verbose {
		t.Error("verbose on by default")
	}
}

func TestRootCmdFlags(t *testing.T) {
	opts := &options{}
	cmd := newRootCmd(opts)
	err := cmd.ParseFlags([]string{"--tool", "maim", "--grab-attempts", "5", "--grab-delay", "10ms", "-v"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if opts.tool != "maim" || opts.grabAttempts != 5 || opts.grabDelay != 10*time.Millisecond || !opts.verbose {
		t.Errorf("opts = %+v", *opts)
	}
}
