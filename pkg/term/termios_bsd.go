// ABOUTME: BSD-family termios ioctl request numbers (TIOCGETA/TIOCSETA)
// ABOUTME: Selected by build tag; sys_unix.go is shared across platforms

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package term

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA
)
