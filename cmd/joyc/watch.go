package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type watchFlags struct {
	sharedFlags
	interval time.Duration
}

func newWatchCmd() *cobra.Command {
	f := &watchFlags{}
	cmd := &cobra.Command{
		Use:   "watch <path>",
		Short: "Re-run check whenever the source file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), args[0], f)
		},
	}
	addSharedFlags(cmd.Flags(), &f.sharedFlags)
	cmd.Flags().DurationVar(&f.interval, "interval", 300*time.Millisecond, "polling interval for mtime changes")
	return cmd
}

// runWatch polls the source file's mtime and re-checks it on every change.
// No filesystem-notification dependency is wired in, so polling stays the
// idiom here; the poll loop runs in an errgroup whose context is cancelled
// on interrupt (via signal.NotifyContext), which ends the loop.
func runWatch(ctx context.Context, sourcePath string, f *watchFlags) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	rc, err := resolve(sourcePath, f.sharedFlags)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return pollAndCheck(ctx, sourcePath, rc, f.interval)
	})
	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func pollAndCheck(ctx context.Context, sourcePath string, rc resolvedConfig, interval time.Duration) error {
	var lastMod time.Time
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		info, err := os.Stat(sourcePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if info.ModTime().Equal(lastMod) {
			return
		}
		lastMod = info.ModTime()
		fmt.Fprintf(os.Stderr, "--- %s changed, re-checking ---\n", sourcePath)
		runPipeline(sourcePath, rc, false)
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			check()
		}
	}
}
