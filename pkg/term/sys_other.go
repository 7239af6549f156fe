// ABOUTME: Fallback Sys for platforms without a terminal backend
// ABOUTME: A console-API implementation would replace this file behind the same interface

//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package term

import "time"

type unsupportedSys struct{}

// System returns the Sys for the running platform.
func System() Sys {
	return unsupportedSys{}
}

func (unsupportedSys) IsTerminal(int) bool                           { return false }
func (unsupportedSys) GetAttributes(int) (Mode, error)               { return Mode{}, ErrUnsupported }
func (unsupportedSys) SetAttributes(int, Mode) error                 { return ErrUnsupported }
func (unsupportedSys) MakeRaw(m Mode) Mode                           { return m }
func (unsupportedSys) GetWindowSize(int) (int, int, error)           { return 0, 0, ErrUnsupported }
func (unsupportedSys) PollReadable(int, time.Duration) (bool, error) { return false, ErrUnsupported }
func (unsupportedSys) Read(int, []byte) (int, error)                 { return 0, ErrUnsupported }
func (unsupportedSys) Write(int, []byte) (int, error)                { return 0, ErrUnsupported }
