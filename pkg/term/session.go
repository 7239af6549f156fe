// ABOUTME: Session owns a terminal descriptor and the attributes captured when it was opened
// ABOUTME: Raw-mode enable, restore, size queries, and blocking/timed byte reads over a small buffer

package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mauromedda/cursory/internal/log"
)

// DefaultCursorTimeout bounds the wait for a cursor position report.
const DefaultCursorTimeout = 200 * time.Millisecond

// ttyPath is the controlling terminal opened by OpenTTY.
const ttyPath = "/dev/tty"

// Session is a terminal descriptor together with its original mode.
// A Session is not safe for concurrent use; it assumes a single owner.
type Session struct {
	sys  Sys
	fd   int
	out  int
	orig Mode
	in   *bufio.Reader

	cursorTimeout time.Duration

	// file is set when the session opened the descriptor itself.
	file   *os.File
	closed bool
}

// Option configures a Session.
type Option func(*Session)

// WithOutput directs writes to a different descriptor than the one read
// from, e.g. stdout when reading stdin.
func WithOutput(fd int) Option {
	return func(s *Session) { s.out = fd }
}

// WithCursorTimeout sets how long CursorPosition waits for the reply.
func WithCursorTimeout(d time.Duration) Option {
	return func(s *Session) { s.cursorTimeout = d }
}

// IsTerminal reports whether fd is connected to an interactive terminal.
func IsTerminal(fd int) bool {
	return System().IsTerminal(fd)
}

// Open captures the current attributes of fd and returns a Session that
// will reinstall them on Close. A nil sys selects System().
func Open(sys Sys, fd int, opts ...Option) (*Session, error) {
	if sys == nil {
		sys = System()
	}
	if !sys.IsTerminal(fd) {
		return nil, fmt.Errorf("open fd %d: %w", fd, ErrNotATerminal)
	}
	orig, err := sys.GetAttributes(fd)
	if err != nil {
		return nil, fmt.Errorf("open fd %d: %w: %w", fd, ErrAttributeQuery, err)
	}

	s := &Session{
		sys:           sys,
		fd:            fd,
		out:           fd,
		orig:          orig,
		cursorTimeout: DefaultCursorTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.in = bufio.NewReaderSize(fdReader{sys: sys, fd: fd}, 128)
	return s, nil
}

// OpenTTY opens the controlling terminal read/write. The descriptor belongs
// to the session and is closed by Close.
func OpenTTY(opts ...Option) (*Session, error) {
	return openPath(nil, ttyPath, opts...)
}

// openPath opens the terminal device at path and hands the descriptor to
// the session.
func openPath(sys Sys, path string, opts ...Option) (*Session, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	s, err := Open(sys, int(f.Fd()), opts...)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	s.file = f
	return s, nil
}

// With opens a session on fd, runs fn, and closes the session on every exit
// path, including a panic in fn. Close failures are joined into the result.
func With(sys Sys, fd int, fn func(*Session) error, opts ...Option) (err error) {
	s, err := Open(sys, fd, opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()
	return fn(s)
}

// Fd returns the input descriptor.
func (s *Session) Fd() int {
	return s.fd
}

// Size queries the current window size. Nothing is cached.
func (s *Session) Size() (Size, error) {
	cols, rows, err := s.sys.GetWindowSize(s.out)
	if err != nil {
		return Size{}, fmt.Errorf("size of fd %d: %w: %w", s.out, ErrSizeQuery, err)
	}
	return Size{Columns: uint(max(cols, 0)), Rows: uint(max(rows, 0))}, nil
}

// EnableRawMode installs the raw transform of the original attributes.
// Calling it again installs the same attributes.
func (s *Session) EnableRawMode() error {
	if err := s.sys.SetAttributes(s.fd, s.sys.MakeRaw(s.orig)); err != nil {
		return fmt.Errorf("raw mode on fd %d: %w: %w", s.fd, ErrAttributeSet, err)
	}
	return nil
}

// Restore reinstalls the attributes captured by Open. It may be retried
// after a failure and is a no-op in effect when repeated.
func (s *Session) Restore() error {
	if err := s.sys.SetAttributes(s.fd, s.orig); err != nil {
		return fmt.Errorf("restore fd %d: %w: %w", s.fd, ErrAttributeSet, err)
	}
	return nil
}

// Close restores the original mode once and releases an owned descriptor.
// A restore failure is logged and returned, and does not skip the release.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.Restore()
	if err != nil {
		log.Warn("terminal left in raw mode: %v", err)
	}
	if s.file != nil {
		err = errors.Join(err, s.file.Close())
	}
	return err
}

// ReadByte blocks until one byte of input is available. It returns io.EOF
// once the input is closed.
func (s *Session) ReadByte() (byte, error) {
	return s.in.ReadByte()
}

// ReadByteTimeout returns a buffered byte immediately; otherwise it waits up
// to d for input and returns ErrTimeout if none arrives.
func (s *Session) ReadByteTimeout(d time.Duration) (byte, error) {
	if err := s.await(d); err != nil {
		return 0, err
	}
	return s.in.ReadByte()
}

// ReadRaw performs one bounded read into p, waiting up to d for input.
func (s *Session) ReadRaw(p []byte, d time.Duration) (int, error) {
	if err := s.await(d); err != nil {
		return 0, err
	}
	return s.in.Read(p)
}

func (s *Session) await(d time.Duration) error {
	if s.in.Buffered() > 0 {
		return nil
	}
	ready, err := s.sys.PollReadable(s.fd, d)
	if err != nil {
		return fmt.Errorf("poll fd %d: %w", s.fd, err)
	}
	if !ready {
		return ErrTimeout
	}
	return nil
}

// Write sends p to the output descriptor unbuffered.
func (s *Session) Write(p []byte) (int, error) {
	n, err := s.sys.Write(s.out, p)
	if err != nil {
		return n, fmt.Errorf("writing to fd %d: %w", s.out, err)
	}
	return n, nil
}

// fdReader adapts Sys.Read to io.Reader.
type fdReader struct {
	sys Sys
	fd  int
}

func (r fdReader) Read(p []byte) (int, error) {
	n, err := r.sys.Read(r.fd, p)
	if n == 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}
