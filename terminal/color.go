package terminal

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Color is one of the eight ANSI colors or the terminal default
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = [...]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// Valid reports whether c is a member of the enum
func (c Color) Valid() bool {
	return c <= ColorWhite
}

func (c Color) String() string {
	if !c.Valid() {
		return "default"
	}
	return colorNames[c]
}

// ParseColor resolves a lowercase color name
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// fgCode returns the SGR foreground parameter (30-37, 39 for default)
func (c Color) fgCode() int {
	if c == ColorDefault || !c.Valid() {
		return 39
	}
	return int(c) + 29
}

// bgCode returns the SGR background parameter (40-47, 49 for default)
func (c Color) bgCode() int {
	if c == ColorDefault || !c.Valid() {
		return 49
	}
	return int(c) + 39
}

// ColorMode selects whether the renderer emits SGR color sequences
type ColorMode uint8

const (
	ColorAuto ColorMode = iota // detect from environment
	ColorAlways
	ColorNever
)

// ParseColorMode resolves auto, always or never
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, true
	case "always", "on":
		return ColorAlways, true
	case "never", "off":
		return ColorNever, true
	}
	return ColorAuto, false
}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// enabled resolves the mode for output written to out.
// Auto honors NO_COLOR/CLICOLOR/CLICOLOR_FORCE and the color profile of out.
func (m ColorMode) enabled(out io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return termenv.NewOutput(out).EnvColorProfile() != termenv.Ascii
}
