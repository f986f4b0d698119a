//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"io"
)

type ttyState struct{}

func enterRaw(fd int) (*ttyState, error) {
	return nil, &AttributeError{Op: "tcgetattr", Err: ErrUnsupported}
}

func (t *ttyState) restore() error { return nil }

func (t *ttyState) setMinRead(n uint8) error { return nil }

func (t *ttyState) reader() io.ByteReader { return nil }

func resetTerminalMode() {}
