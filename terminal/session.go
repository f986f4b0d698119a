package terminal

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// active guards the single raw-mode session a process may hold
var active atomic.Bool

// Options configures Open. The zero value uses stdin/stdout, auto colors and no logging.
type Options struct {
	In     *os.File
	Out    *os.File
	Color  ColorMode
	Logger *slog.Logger
}

// Session owns the terminal while it is in raw mode
type Session struct {
	in  *os.File
	out *os.File
	tty *ttyState

	renderer *Renderer
	decoder  *Decoder
	logger   *slog.Logger
	closed   bool
}

// Open puts the terminal into raw mode.
//
// Only one session may be open per process. The caller must Close it on every
// exit path; a process killed while raw mode is active leaves the terminal raw.
// Signal handling is not installed here.
func Open(opts Options) (*Session, error) {
	if !active.CompareAndSwap(false, true) {
		return nil, ErrSessionActive
	}

	s := &Session{
		in:     opts.In,
		out:    opts.Out,
		logger: opts.Logger,
	}
	if s.in == nil {
		s.in = os.Stdin
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	inFd := int(s.in.Fd())
	if !term.IsTerminal(inFd) {
		active.Store(false)
		return nil, &AttributeError{Op: "tcgetattr", Err: ErrNotTerminal}
	}

	tty, err := enterRaw(inFd)
	if err != nil {
		active.Store(false)
		return nil, err
	}
	s.tty = tty

	colors := opts.Color.enabled(s.out)
	s.renderer = NewRenderer(s.out, WithColors(colors))
	s.decoder = NewDecoder(tty.reader())

	s.logger.Debug("terminal raw mode enabled", "fd", inFd, "colors", colors)
	return s, nil
}

// Close restores the original terminal attributes, then homes the cursor,
// clears the screen and shows the cursor. The cleanup is attempted even when
// the restore fails; the restore error takes precedence. Safe to call twice.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	defer active.Store(false)

	restoreErr := s.tty.restore()
	if restoreErr != nil {
		s.logger.Warn("terminal restore failed", "error", restoreErr)
	}

	c := s.renderer.cursor
	c.home()
	s.renderer.w.Write(csiClear)
	c.show()
	writeErr := s.renderer.w.Flush()

	if restoreErr != nil {
		return restoreErr
	}
	if writeErr != nil {
		return errors.Wrap(writeErr, "terminal cleanup")
	}
	s.logger.Debug("terminal restored")
	return nil
}

// Renderer returns the session's renderer bound to the output stream
func (s *Session) Renderer() *Renderer {
	return s.renderer
}

// Cursor returns the session's cursor controller
func (s *Session) Cursor() *Cursor {
	return s.renderer.cursor
}

// Width queries the current terminal width
func (s *Session) Width() (int, error) {
	w, _, err := s.Size()
	return w, err
}

// Height queries the current terminal height
func (s *Session) Height() (int, error) {
	_, h, err := s.Size()
	return h, err
}

// Size queries the current terminal dimensions; never cached
func (s *Session) Size() (width, height int, err error) {
	width, height, err = term.GetSize(int(s.out.Fd()))
	if err != nil {
		return 0, 0, &GeometryQueryError{Err: errors.WithStack(err)}
	}
	return width, height, nil
}

// NewBuffer allocates a cell buffer matching the current terminal size
func (s *Session) NewBuffer() (*CellBuffer, error) {
	w, h, err := s.Size()
	if err != nil {
		return nil, err
	}
	return NewCellBuffer(w, h)
}

// Poll blocks until a key arrives and decodes it with ESC pairing.
// The read timer is switched to blocking for the read and back to polling before returning.
func (s *Session) Poll() (Event, error) {
	return s.blocking(s.decoder.Next)
}

// PollNoPrefix blocks for exactly one byte and returns it literally, ESC included
func (s *Session) PollNoPrefix() (Event, error) {
	return s.blocking(s.decoder.NextRaw)
}

// Peek decodes one event under the current read timing.
// In the default polling mode it returns ErrNoInput after one decisecond without input.
func (s *Session) Peek() (Event, error) {
	if s.closed {
		return Event{}, ErrSessionClosed
	}
	return s.decoder.Next()
}

func (s *Session) blocking(read func() (Event, error)) (Event, error) {
	if s.closed {
		return Event{}, ErrSessionClosed
	}
	if err := s.tty.setMinRead(1); err != nil {
		return Event{}, err
	}
	ev, err := read()
	if rerr := s.tty.setMinRead(0); rerr != nil && err == nil {
		err = rerr
	}
	return ev, err
}

// Recover restores the terminal if the surrounding function panics, then re-panics.
// Use as: defer s.Recover()
func (s *Session) Recover() {
	if r := recover(); r != nil {
		if err := s.Close(); err != nil {
			EmergencyReset(s.out)
		}
		s.logger.Error("panic with terminal in raw mode", "panic", r)
		panic(r)
	}
}
