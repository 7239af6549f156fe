// ABOUTME: Sentinel errors for terminal session failures
// ABOUTME: Operations wrap the OS error together with one of these so errors.Is matches both

package term

import "errors"

var (
	// ErrNotATerminal reports a descriptor that is not an interactive terminal.
	// It is returned before any attribute is touched.
	ErrNotATerminal = errors.New("not a terminal")

	// ErrAttributeQuery reports a failed read of the terminal attributes.
	ErrAttributeQuery = errors.New("terminal attribute query failed")

	// ErrAttributeSet reports a failed install of terminal attributes.
	ErrAttributeSet = errors.New("terminal attribute set failed")

	// ErrSizeQuery reports a failed window-size query.
	ErrSizeQuery = errors.New("terminal size query failed")

	// ErrUnsupported is returned by every operation of the fallback Sys on
	// platforms without a terminal backend.
	ErrUnsupported = errors.New("terminal backend not supported on this platform")

	// ErrTimeout is returned by timed reads when no byte became ready in time.
	ErrTimeout = errors.New("read timed out")
)
