//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ttyState holds the captured and the raw termios of the input descriptor
type ttyState struct {
	fd      int
	orig    unix.Termios
	raw     unix.Termios
	minRead uint8
}

// makeRaw derives raw attributes from t: no flow control, CR translation,
// parity, stripping, break interrupt, output processing, echo, canonical
// input, extended input or signal keys; 8-bit chars; reads return after
// at most one decisecond even with no input.
func makeRaw(t *unix.Termios) {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag &^= unix.CSIZE
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
}

func enterRaw(fd int) (*ttyState, error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, &AttributeError{Op: "tcgetattr", Err: errors.WithStack(err)}
	}

	t := &ttyState{fd: fd, orig: *orig, raw: *orig}
	makeRaw(&t.raw)

	if err := unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, &t.raw); err != nil {
		return nil, &AttributeError{Op: "tcsetattr", Err: errors.WithStack(err)}
	}
	return t, nil
}

func (t *ttyState) restore() error {
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermiosFlush, &t.orig); err != nil {
		return &AttributeError{Op: "tcsetattr", Err: errors.WithStack(err)}
	}
	return nil
}

// setMinRead switches between polling (0) and blocking (1) reads without flushing input
func (t *ttyState) setMinRead(n uint8) error {
	if t.minRead == n {
		return nil
	}
	t.raw.Cc[unix.VMIN] = n
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermiosNow, &t.raw); err != nil {
		return &AttributeError{Op: "tcsetattr", Err: errors.WithStack(err)}
	}
	t.minRead = n
	return nil
}

func (t *ttyState) reader() io.ByteReader {
	return &fdReader{tty: t}
}

// fdReader reads single bytes straight from the descriptor so that no input
// is buffered across read-timing changes
type fdReader struct {
	tty *ttyState
	b   [1]byte
}

func (r *fdReader) ReadByte() (byte, error) {
	for {
		n, err := unix.Read(r.tty.fd, r.b[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, errors.WithStack(err)
		}
		if n == 0 {
			if r.tty.minRead > 0 {
				// A blocking read only returns empty on hangup
				return 0, io.EOF
			}
			return 0, ErrNoInput
		}
		return r.b[0], nil
	}
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			termios.Oflag |= unix.OPOST
			unix.IoctlSetTermios(fd, ioctlSetTermiosNow, termios)
		}
	}
}
