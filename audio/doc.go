// Package audio synthesizes an audible terminal bell with beep.
//
// Terminals answer BEL (0x07) inconsistently, often with nothing at all.
// Bell produces a short faded tone on the system speaker instead. Wave,
// pitch, length and volume come from CELLTERM_BELL_* variables.
package audio
