package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios      = unix.TCGETS
	ioctlSetTermiosNow   = unix.TCSETS
	ioctlSetTermiosFlush = unix.TCSETSF
)
