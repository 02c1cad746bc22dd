package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

// lifecycle is the part of *fx.App driven by run.
type lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

// run starts the application, blocks until ctx is cancelled or the app asks
// to shut down, then stops it. It returns the process exit code.
func run(ctx context.Context, app lifecycle, stderr io.Writer) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "bnplmart: failed to start: %v\n", err)
		return 1
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(stderr, "bnplmart: failed to stop: %v\n", err)
		return 1
	}
	return 0
}
