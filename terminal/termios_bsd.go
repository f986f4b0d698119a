//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios      = unix.TIOCGETA
	ioctlSetTermiosNow   = unix.TIOCSETA
	ioctlSetTermiosFlush = unix.TIOCSETAF
)
