package terminal

import (
	"bufio"
)

// ESC is the escape byte that starts control sequences and Alt-prefixed keys
const ESC byte = 0x1b

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J")
	// Origin is emitted as 0;0, which terminals clamp to 1;1
	csiHome = []byte("\x1b[0;0H")

	// Cursor control
	csiCursorHide    = []byte("\x1b[?25l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiCursorSave    = []byte("\x1b[s")
	csiCursorRestore = []byte("\x1b[u")

	rowSeparator = []byte("\r\n")
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes ESC [ row ; col H for 0-indexed x, y
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeColor writes ESC [ fg ; bg m
func writeColor(w *bufio.Writer, fg, bg Color) {
	w.Write(csi)
	writeInt(w, fg.fgCode())
	w.WriteByte(';')
	writeInt(w, bg.bgCode())
	w.WriteByte('m')
}
