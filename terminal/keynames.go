package terminal

import (
	"strconv"
)

// keyToName maps control bytes to canonical names
var keyToName = map[byte]string{
	0x00:          "ctrl_space",
	KeyBackspace:  "backspace",
	KeyTab:        "tab",
	KeyCtrlJ:      "ctrl_j",
	KeyEnter:      "enter",
	KeyEsc:        "escape",
	0x1c:          "ctrl_backslash",
	0x1d:          "ctrl_bracket_right",
	0x1e:          "ctrl_caret",
	0x1f:          "ctrl_underscore",
	KeySpace:      "space",
	KeyBackspace2: "backspace2",
}

// KeyName returns a readable name for a raw key byte
func KeyName(k byte) string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	switch {
	case k >= KeyCtrlA && k <= KeyCtrlZ:
		return "ctrl_" + string(rune('a'+k-KeyCtrlA))
	case k > 0x20 && k < 0x7f:
		return string(rune(k))
	}
	return "0x" + strconv.FormatUint(uint64(k), 16)
}

// String renders the event as e.g. "a", "ctrl_c", "alt+x", "alt+escape"
func (e Event) String() string {
	if e.Alt() {
		return "alt+" + KeyName(e.Key)
	}
	return KeyName(e.Key)
}
