// ABOUTME: Linux and Solaris termios ioctl request numbers (TCGETS/TCSETS)
// ABOUTME: TCSETS applies immediately, without draining pending output

//go:build linux || solaris

package term

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETS
)
