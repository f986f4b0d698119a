package terminal

import (
	"bufio"
)

// Cursor tracks cursor visibility and emits positioning sequences
type Cursor struct {
	w       *bufio.Writer
	visible bool
}

// newCursor starts visible, matching a freshly opened terminal
func newCursor(w *bufio.Writer) *Cursor {
	return &Cursor{w: w, visible: true}
}

// Visible reports the last requested visibility
func (c *Cursor) Visible() bool {
	return c.visible
}

// Hide hides the cursor
func (c *Cursor) Hide() error {
	c.hide()
	return c.w.Flush()
}

// Show shows the cursor
func (c *Cursor) Show() error {
	c.show()
	return c.w.Flush()
}

// SetPosition moves the cursor to 0-indexed (x, y); no bounds checks
func (c *Cursor) SetPosition(x, y int) error {
	writeCursorPos(c.w, x, y)
	return c.w.Flush()
}

func (c *Cursor) hide() {
	c.visible = false
	c.w.Write(csiCursorHide)
}

func (c *Cursor) show() {
	c.visible = true
	c.w.Write(csiCursorShow)
}

func (c *Cursor) save() {
	c.w.Write(csiCursorSave)
}

func (c *Cursor) restore() {
	c.w.Write(csiCursorRestore)
}

func (c *Cursor) home() {
	c.w.Write(csiHome)
}
