// ABOUTME: Unix Sys backed by golang.org/x/term and golang.org/x/sys/unix
// ABOUTME: termios ioctls for attributes, poll(2) for readiness, read/write retried on EINTR

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package term

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixSys struct{}

// System returns the Sys for the running platform.
func System() Sys {
	return unixSys{}
}

func (unixSys) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (unixSys) GetAttributes(fd int) (Mode, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return Mode{}, err
	}
	return Mode{attrs: *t}, nil
}

func (unixSys) SetAttributes(fd int, m Mode) error {
	t, ok := m.attrs.(unix.Termios)
	if !ok {
		return fmt.Errorf("mode %T was not captured by this backend", m.attrs)
	}
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, &t)
}

// MakeRaw applies the cfmakeraw(3) transform.
func (unixSys) MakeRaw(m Mode) Mode {
	t, ok := m.attrs.(unix.Termios)
	if !ok {
		return m
	}
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return Mode{attrs: t}
}

func (unixSys) GetWindowSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

func (unixSys) PollReadable(fd int, timeout time.Duration) (bool, error) {
	ms := int(timeout / time.Millisecond)
	if timeout < 0 {
		ms = -1
	}
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, ms)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

func (unixSys) Read(fd int, p []byte) (int, error) {
	for {
		n, err := unix.Read(fd, p)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if n < 0 {
			n = 0
		}
		return n, err
	}
}

func (unixSys) Write(fd int, p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := unix.Write(fd, p[written:])
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if errors.Is(err, unix.EAGAIN) {
			if err := waitWritable(fd); err != nil {
				return written, err
			}
			continue
		}
		if err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}

// waitWritable blocks until a non-blocking descriptor accepts output.
func waitWritable(fd int) error {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLOUT}}
	for {
		_, err := unix.Poll(fds, -1)
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}
