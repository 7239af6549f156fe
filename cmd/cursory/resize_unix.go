// ABOUTME: Unix SIGWINCH listener for the demo's redraw-on-resize
// ABOUTME: Runs until the context is cancelled; notify only sets a flag the event loop polls

//go:build unix

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// watchResize calls notify on every window size change until ctx ends.
func watchResize(ctx context.Context, notify func()) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			notify()
		}
	}
}
