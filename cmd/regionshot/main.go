package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/suutaku/regionshot/internal/capture"
	"github.com/suutaku/regionshot/pkg/screenshot"
)

type options struct {
	tool         string
	grabAttempts int
	grabDelay    time.Duration
	verbose      bool
}

func main() {
	log.SetFlags(log.Lshortfile)
	if err := newRootCmd(&options{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "regionshot: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	defaults := screenshot.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "regionshot [flags] [-- capture-args...]",
		Short: "Select a screen region and capture it",
		Long: `Dims the screen and lets you select a region with the pointer.
Click to capture the selection, press s to restart it at the pointer,
a to capture the whole screen, Escape or Ctrl+c to cancel.
Remaining arguments are passed to the capture tool after the area.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.verbose)
			return run(cmd.Context(), *opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.tool, "tool", capture.DefaultTool, "capture program, invoked as <tool> -a x,y,w,h [capture-args]")
	cmd.Flags().IntVar(&opts.grabAttempts, "grab-attempts", defaults.GrabAttempts, "keyboard grab attempts before giving up")
	cmd.Flags().DurationVar(&opts.grabDelay, "grab-delay", defaults.GrabDelay, "delay between keyboard grab attempts")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	return cmd
}

func setupLogging(verbose bool) {
	if verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

func run(ctx context.Context, opts options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	tool := capture.NewTool(opts.tool, args...)
	return screenshot.Run(ctx, screenshot.Options{
		GrabAttempts: opts.grabAttempts,
		GrabDelay:    opts.grabDelay,
	}, tool)
}
