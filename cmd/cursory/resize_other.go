// ABOUTME: Resize watching fallback for platforms without SIGWINCH
// ABOUTME: Waits for cancellation; the demo then only sees size changes it queries itself

//go:build !unix

package main

import "context"

func watchResize(ctx context.Context, _ func()) error {
	<-ctx.Done()
	return nil
}
