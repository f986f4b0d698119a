package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Session.Close cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
