package terminal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSessionActive is returned by Open while another session holds the terminal
	ErrSessionActive = errors.New("terminal session already active")
	// ErrSessionClosed is returned by operations on a closed session
	ErrSessionClosed = errors.New("terminal session closed")
	// ErrNoInput is returned when a non-blocking read timed out without a byte
	ErrNoInput = errors.New("no input available")
	// ErrInvalidSize rejects non-positive buffer dimensions
	ErrInvalidSize = errors.New("buffer dimensions must be positive")
	// ErrTooLarge rejects buffers above MaxCells
	ErrTooLarge = errors.New("buffer exceeds maximum cell count")
	// ErrUnsupported is returned on platforms without termios
	ErrUnsupported = errors.New("raw mode not supported on this platform")
	// ErrNotTerminal is returned when the input is not a terminal
	ErrNotTerminal = errors.New("input is not a terminal")
)

// AttributeError reports a failed read or write of terminal mode attributes
type AttributeError struct {
	Op  string // tcgetattr, tcsetattr
	Err error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("terminal attributes: %s: %v", e.Op, e.Err)
}

func (e *AttributeError) Unwrap() error { return e.Err }

// GeometryQueryError reports a failed terminal size query
type GeometryQueryError struct {
	Err error
}

func (e *GeometryQueryError) Error() string {
	return fmt.Sprintf("terminal geometry: %v", e.Err)
}

func (e *GeometryQueryError) Unwrap() error { return e.Err }

// AllocationError reports a cell buffer that could not be allocated
type AllocationError struct {
	Width  int
	Height int
	Err    error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocate %dx%d cell buffer: %v", e.Width, e.Height, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }
