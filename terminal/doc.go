// Package terminal provides a minimal raw-mode terminal substrate.
//
// Features:
//   - Raw mode session with exact termios control and restoration
//   - Flat cell buffer of single-byte cells with 8 ANSI colors
//   - Full-repaint renderer over direct ANSI sequences
//   - Byte-level input decoding with ESC-prefix (Alt) pairing
//
// Every Refresh repaints the whole grid; there is no diffing or scrollback.
// Restoring the terminal after a crash or signal is the caller's job: defer
// Session.Close, or Session.Recover for panics.
package terminal
