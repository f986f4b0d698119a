package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellterm/terminal"
)

func newPaintCmd(root *rootOptions) *cobra.Command {
	var useTcell bool

	cmd := &cobra.Command{
		Use:   "paint",
		Short: "Draw a demo screen and move a marker with h/j/k/l",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if useTcell {
				return runPaintTcell(root)
			}

			a, err := root.open()
			if err != nil {
				return err
			}
			defer a.close()
			defer a.session.Recover()

			if err := runPaint(a); err != nil {
				return err
			}
			return a.close()
		},
	}
	cmd.Flags().BoolVar(&useTcell, "tcell", false, "host the cell buffer on a tcell screen instead of the raw session")
	return cmd
}

// painter owns the demo screen contents
type painter struct {
	buf       *terminal.CellBuffer
	markerX   int
	markerY   int
	lastEvent string
}

var markerCell = terminal.Cell{Ch: '@', Fg: terminal.ColorYellow, Bg: terminal.ColorBlue}

func newPainter(buf *terminal.CellBuffer) *painter {
	p := &painter{
		buf:       buf,
		markerX:   buf.Width() / 2,
		markerY:   buf.Height() / 2,
		lastEvent: "none",
	}
	p.clampMarker()
	return p
}

// statusRow is the row above the bottom frame
func (p *painter) statusRow() int {
	return p.buf.Height() - 2
}

// clampMarker keeps the marker inside the frame and above the status row
func (p *painter) clampMarker() {
	p.markerX = max(1, min(p.markerX, p.buf.Width()-2))
	p.markerY = max(1, min(p.markerY, p.statusRow()-1))
}

// resize adopts a new buffer and redraws everything into it
func (p *painter) resize(buf *terminal.CellBuffer) {
	p.buf = buf
	p.clampMarker()
	p.draw()
}

func (p *painter) draw() {
	b := p.buf
	w, h := b.Width(), b.Height()
	b.Clear(terminal.EmptyCell)

	// Frame
	for x := 0; x < w; x++ {
		b.SetCell(x, 0, terminal.Cell{Ch: '-', Fg: terminal.ColorCyan})
		b.SetCell(x, h-1, terminal.Cell{Ch: '-', Fg: terminal.ColorCyan})
	}
	for y := 0; y < h; y++ {
		b.SetCell(0, y, terminal.Cell{Ch: '|', Fg: terminal.ColorCyan})
		b.SetCell(w-1, y, terminal.Cell{Ch: '|', Fg: terminal.ColorCyan})
	}
	for _, c := range [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		b.SetCell(c[0], c[1], terminal.Cell{Ch: '+', Fg: terminal.ColorCyan})
	}

	title := " cellterm "
	b.PrintStyled((w-len(title))/2, 0, title, terminal.ColorBlack, terminal.ColorWhite)

	// Color swatches
	x := 2
	for c := terminal.ColorBlack; c <= terminal.ColorWhite; c++ {
		name := c.String()
		b.PrintStyled(x, 2, name, c, terminal.ColorDefault)
		x += len(name) + 1
	}
	b.Print(2, 4, "h/j/k/l move   ctrl_l redraw   ctrl_g bell   ctrl_q quit")

	p.drawStatus()
	b.SetCell(p.markerX, p.markerY, markerCell)
}

// drawStatus rewrites the status row between the side frames
func (p *painter) drawStatus() {
	b := p.buf
	y := p.statusRow()
	if y <= 0 {
		return
	}
	for x := 1; x < b.Width()-1; x++ {
		b.SetCell(x, y, terminal.EmptyCell)
	}
	status := fmt.Sprintf("last: %-16s size: %dx%d  marker: %d,%d",
		p.lastEvent, b.Width(), b.Height(), p.markerX, p.markerY)
	if limit := b.Width() - 4; len(status) > limit && limit > 0 {
		status = status[:limit]
	}
	b.PrintStyled(2, y, status, terminal.ColorGreen, terminal.ColorDefault)
}

// move shifts the marker inside the frame; reports whether it moved
func (p *painter) move(dx, dy int) bool {
	nx, ny := p.markerX+dx, p.markerY+dy
	if nx < 1 || ny < 1 || nx >= p.buf.Width()-1 || ny >= p.statusRow() {
		return false
	}
	p.buf.SetCell(p.markerX, p.markerY, terminal.EmptyCell)
	p.markerX, p.markerY = nx, ny
	p.buf.SetCell(nx, ny, markerCell)
	return true
}

// outcome tells the driving loop what a key changed
type outcome struct {
	quit   bool
	resize bool
	bell   bool
	moved  bool
	oldX   int
	oldY   int
}

// handle applies one key to the painter. The status row is redrawn unless
// the key quits or asks for a resize.
func (p *painter) handle(ev terminal.Event) outcome {
	p.lastEvent = ev.String()
	out := outcome{oldX: p.markerX, oldY: p.markerY}

	switch {
	case ev.Is(terminal.KeyCtrlQ):
		out.quit = true
		return out
	case ev.Is(terminal.KeyCtrlL):
		out.resize = true
		return out
	case ev.Is(terminal.KeyCtrlG):
		out.bell = true
	}

	if !ev.Alt() {
		switch ev.Key {
		case 'h':
			out.moved = p.move(-1, 0)
		case 'l':
			out.moved = p.move(1, 0)
		case 'k':
			out.moved = p.move(0, -1)
		case 'j':
			out.moved = p.move(0, 1)
		}
	}
	p.drawStatus()
	return out
}

func runPaint(a *app) error {
	s := a.session
	r := s.Renderer()

	buf, err := s.NewBuffer()
	if err != nil {
		return err
	}
	p := newPainter(buf)
	p.draw()

	if err := r.Cursor().Hide(); err != nil {
		return err
	}
	if err := r.ClearScreen(); err != nil {
		return err
	}
	if err := r.Refresh(buf); err != nil {
		return err
	}

	for {
		ev, err := s.Poll()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		a.logger.Debug("key", "event", ev.String())

		out := p.handle(ev)
		switch {
		case out.quit:
			return nil

		case out.resize:
			// Pick up a new terminal size
			if buf, err = s.NewBuffer(); err != nil {
				return err
			}
			p.resize(buf)
			if err := r.ClearScreen(); err != nil {
				return err
			}
			if err := r.Refresh(buf); err != nil {
				return err
			}
			continue
		}

		if out.bell {
			a.ring()
		}
		if out.moved {
			if err := r.RefreshCell(buf, out.oldX, out.oldY); err != nil {
				return err
			}
			if err := r.RefreshCell(buf, p.markerX, p.markerY); err != nil {
				return err
			}
		}
		if err := r.RefreshRow(buf, p.statusRow()); err != nil {
			return err
		}
	}
}

// tcellEvent narrows a tcell key to the single-byte event the painter reads.
// Keys with no byte form (arrows, function keys, non-ASCII runes) are dropped.
func tcellEvent(ev *tcell.EventKey) (terminal.Event, bool) {
	var key byte
	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r < 0 || r >= 0x80 {
			return terminal.Event{}, false
		}
		key = byte(r)
	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		key = byte(k - tcell.KeyCtrlSpace)
	case k >= tcell.KeyNUL && k <= tcell.KeyDEL:
		key = byte(k)
	default:
		return terminal.Event{}, false
	}

	prefix := terminal.PrefixNone
	if ev.Modifiers()&tcell.ModAlt != 0 {
		prefix = terminal.PrefixEscape
	}
	return terminal.Event{Prefix: prefix, Key: key}, true
}

// runPaintTcell drives the painter on a tcell screen; tcell owns raw mode here
func runPaintTcell(root *rootOptions) error {
	a, err := root.openWithoutSession()
	if err != nil {
		return err
	}
	defer a.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			a.logger.Error("panic on tcell screen", "panic", r)
			panic(r)
		}
	}()

	err = paintScreen(a, screen)
	screen.Fini()
	return err
}

// paintScreen runs the paint loop on an initialized screen until ctrl_q
func paintScreen(a *app, screen tcell.Screen) error {
	newBuffer := func() (*terminal.CellBuffer, error) {
		w, h := screen.Size()
		return terminal.NewCellBuffer(w, h)
	}

	buf, err := newBuffer()
	if err != nil {
		return err
	}
	p := newPainter(buf)
	p.draw()
	screen.HideCursor()
	terminal.Blit(screen, p.buf)
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return nil

		case *tcell.EventResize:
			if buf, err = newBuffer(); err != nil {
				return err
			}
			p.resize(buf)
			terminal.Blit(screen, p.buf)
			screen.Sync()

		case *tcell.EventKey:
			kev, ok := tcellEvent(ev)
			if !ok {
				continue
			}
			a.logger.Debug("key", "event", kev.String(), "frontend", "tcell")

			out := p.handle(kev)
			if out.quit {
				return nil
			}
			if out.resize {
				p.resize(p.buf)
				terminal.Blit(screen, p.buf)
				screen.Sync()
				continue
			}
			if out.bell {
				if a.bell != nil {
					a.bell.Ring()
				} else {
					screen.Beep()
				}
			}
			terminal.Blit(screen, p.buf)
			screen.Show()
		}
	}
}
