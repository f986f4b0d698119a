package terminal

import (
	"bufio"
	"io"
)

// Renderer paints cell buffers onto the terminal with full repaints
type Renderer struct {
	w      *bufio.Writer
	cursor *Cursor
	colors bool

	// SGR coalescing state, valid only within one paint
	lastFg    Color
	lastBg    Color
	lastValid bool
}

// RendererOption configures a Renderer
type RendererOption func(*Renderer)

// WithColors enables SGR color output per cell
func WithColors(enabled bool) RendererOption {
	return func(r *Renderer) {
		r.colors = enabled
	}
}

// NewRenderer creates a renderer writing to w; its Cursor shares the same buffer
func NewRenderer(w io.Writer, opts ...RendererOption) *Renderer {
	bw := bufio.NewWriterSize(w, 16384)
	r := &Renderer{
		w:      bw,
		cursor: newCursor(bw),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cursor returns the cursor controller bound to this renderer's output
func (r *Renderer) Cursor() *Cursor {
	return r.cursor
}

// Colors reports whether SGR colors are emitted
func (r *Renderer) Colors() bool {
	return r.colors
}

// Refresh repaints the whole buffer from the top-left origin.
// Cursor position and visibility are the same afterwards as before.
func (r *Renderer) Refresh(buf *CellBuffer) error {
	w := r.w
	wasVisible := r.cursor.visible
	if wasVisible {
		r.cursor.hide()
	}
	r.cursor.save()
	r.cursor.home()

	r.lastValid = false
	for y := 0; y < buf.height; y++ {
		if y > 0 {
			w.Write(rowSeparator)
		}
		row := buf.cells[y*buf.width : (y+1)*buf.width]
		for _, c := range row {
			r.writeCell(c)
		}
	}
	r.endColors()

	r.cursor.restore()
	if wasVisible {
		r.cursor.show()
	}
	return w.Flush()
}

// RefreshCell repaints the single cell at (x, y); out-of-range is a no-op
func (r *Renderer) RefreshCell(buf *CellBuffer, x, y int) error {
	if !buf.inBounds(x, y) {
		return nil
	}
	i := x + y*buf.width
	return r.paintAt(x, y, buf.cells[i:i+1])
}

// RefreshRow repaints row y with a single positioned write; out-of-range is a no-op
func (r *Renderer) RefreshRow(buf *CellBuffer, y int) error {
	if !buf.inBounds(0, y) {
		return nil
	}
	return r.paintAt(0, y, buf.cells[y*buf.width:(y+1)*buf.width])
}

// paintAt writes cells left to right from (x, y), leaving the cursor
// position and visibility as they were
func (r *Renderer) paintAt(x, y int, cells []Cell) error {
	wasVisible := r.cursor.visible
	r.cursor.hide()
	r.cursor.save()
	writeCursorPos(r.w, x, y)

	r.lastValid = false
	for _, c := range cells {
		r.writeCell(c)
	}
	r.endColors()

	r.cursor.restore()
	if wasVisible {
		r.cursor.show()
	}
	return r.w.Flush()
}

// ClearScreen emits the clear-screen sequence; no buffer involved
func (r *Renderer) ClearScreen() error {
	r.w.Write(csiClear)
	return r.w.Flush()
}

// writeCell emits the cell byte, preceded by SGR when its colors differ from the last cell
func (r *Renderer) writeCell(c Cell) {
	if r.colors && (!r.lastValid || c.Fg != r.lastFg || c.Bg != r.lastBg) {
		writeColor(r.w, c.Fg, c.Bg)
		r.lastFg = c.Fg
		r.lastBg = c.Bg
		r.lastValid = true
	}
	ch := c.Ch
	if ch < 0x20 || ch >= 0x7f {
		// Control bytes would be interpreted by the terminal
		ch = ' '
	}
	r.w.WriteByte(ch)
}

// endColors resets SGR after a colored paint
func (r *Renderer) endColors() {
	if r.lastValid {
		r.w.Write(csiSGR0)
	}
	r.lastValid = false
}
