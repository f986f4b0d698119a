package terminal

// Control-byte key codes as delivered by a terminal in raw mode.
// Several names alias the same byte; the terminal cannot tell them apart.
const (
	KeyCtrlTilde      byte = 0x00
	KeyCtrl2          byte = 0x00
	KeyCtrlA          byte = 0x01
	KeyCtrlB          byte = 0x02
	KeyCtrlC          byte = 0x03
	KeyCtrlD          byte = 0x04
	KeyCtrlE          byte = 0x05
	KeyCtrlF          byte = 0x06
	KeyCtrlG          byte = 0x07
	KeyBackspace      byte = 0x08
	KeyCtrlH          byte = 0x08
	KeyTab            byte = 0x09
	KeyCtrlI          byte = 0x09
	KeyCtrlJ          byte = 0x0a
	KeyCtrlK          byte = 0x0b
	KeyCtrlL          byte = 0x0c
	KeyEnter          byte = 0x0d
	KeyCtrlM          byte = 0x0d
	KeyCtrlN          byte = 0x0e
	KeyCtrlO          byte = 0x0f
	KeyCtrlP          byte = 0x10
	KeyCtrlQ          byte = 0x11
	KeyCtrlR          byte = 0x12
	KeyCtrlS          byte = 0x13
	KeyCtrlT          byte = 0x14
	KeyCtrlU          byte = 0x15
	KeyCtrlV          byte = 0x16
	KeyCtrlW          byte = 0x17
	KeyCtrlX          byte = 0x18
	KeyCtrlY          byte = 0x19
	KeyCtrlZ          byte = 0x1a
	KeyEsc            byte = 0x1b
	KeyCtrlLsqBracket byte = 0x1b
	KeyCtrl3          byte = 0x1b
	KeyCtrl4          byte = 0x1c
	KeyCtrlBackslash  byte = 0x1c
	KeyCtrl5          byte = 0x1d
	KeyCtrlRsqBracket byte = 0x1d
	KeyCtrl6          byte = 0x1e
	KeyCtrl7          byte = 0x1f
	KeyCtrlSlash      byte = 0x1f
	KeyCtrlUnderscore byte = 0x1f
	KeySpace          byte = 0x20
	KeyBackspace2     byte = 0x7f
	KeyCtrl8          byte = 0x7f
)

// CtrlKey returns the byte a terminal sends for Ctrl+k
func CtrlKey(k byte) byte {
	return k & 0x1f
}

// Prefix marks keys that arrived after an ESC byte
type Prefix uint8

const (
	PrefixNone Prefix = iota
	PrefixEscape
)

// Event is one decoded key press
type Event struct {
	Prefix Prefix
	Key    byte
}

// Alt reports whether the key was ESC-prefixed, the common encoding of Alt+key
func (e Event) Alt() bool {
	return e.Prefix == PrefixEscape
}

// Is reports whether the event is the unprefixed key k
func (e Event) Is(k byte) bool {
	return e.Prefix == PrefixNone && e.Key == k
}
