// ABOUTME: Sys is the OS capability set a Session is built on; Mode is an opaque attribute snapshot
// ABOUTME: One real implementation per platform (System) plus the in-memory Virtual for tests

// Package term owns a terminal descriptor: capability detection, raw-mode
// switching with guaranteed restore, size queries, timed byte reads and the
// cursor position report query.
package term

import "time"

// Sys abstracts the primitive terminal operations of the operating system.
// Implementations are used from a single goroutine at a time.
type Sys interface {
	IsTerminal(fd int) bool
	GetAttributes(fd int) (Mode, error)
	SetAttributes(fd int, m Mode) error
	// MakeRaw is a pure transform: it derives raw-mode attributes from m
	// without touching any descriptor.
	MakeRaw(m Mode) Mode
	GetWindowSize(fd int) (cols, rows int, err error)
	// PollReadable waits up to timeout for fd to become readable.
	PollReadable(fd int, timeout time.Duration) (bool, error)
	// Read returns 0, nil at end of input.
	Read(fd int, p []byte) (int, error)
	Write(fd int, p []byte) (int, error)
}

// Mode is an opaque snapshot of terminal attributes. Only the Sys that
// produced it can interpret it; the session only stores and reinstalls it.
type Mode struct {
	attrs any
}

// IsZero reports whether m holds no snapshot.
func (m Mode) IsZero() bool {
	return m.attrs == nil
}

// Equal reports whether two snapshots hold identical attributes.
func (m Mode) Equal(o Mode) bool {
	return m.attrs == o.attrs
}

// Size is the terminal window size in character cells.
type Size struct {
	Columns uint
	Rows    uint
}
