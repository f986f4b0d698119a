package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorCodes(t *testing.T) {
	for c := ColorBlack; c <= ColorWhite; c++ {
		assert.Equal(t, int(c)+29, c.fgCode(), c.String())
		assert.Equal(t, int(c)+39, c.bgCode(), c.String())
	}
	assert.Equal(t, 39, ColorDefault.fgCode())
	assert.Equal(t, 49, ColorDefault.bgCode())
}

func TestParseColor(t *testing.T) {
	for c := ColorDefault; c <= ColorWhite; c++ {
		got, ok := ParseColor(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}

	got, ok := ParseColor(" Magenta ")
	assert.True(t, ok)
	assert.Equal(t, ColorMagenta, got)

	_, ok = ParseColor("orange")
	assert.False(t, ok)
	assert.Equal(t, "default", Color(99).String())
}

func TestColorMode(t *testing.T) {
	for _, s := range []string{"auto", "always", "never"} {
		m, ok := ParseColorMode(s)
		assert.True(t, ok)
		assert.Equal(t, s, m.String())
	}
	_, ok := ParseColorMode("sometimes")
	assert.False(t, ok)
}

func TestColorModeEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	var out bytes.Buffer

	assert.True(t, ColorAlways.enabled(&out))
	assert.False(t, ColorNever.enabled(&out))
	// Not a terminal
	assert.False(t, ColorAuto.enabled(&out))

	t.Setenv("CLICOLOR_FORCE", "1")
	assert.True(t, ColorAuto.enabled(&out))
	assert.False(t, ColorNever.enabled(&out))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorAuto.enabled(&out))
	assert.True(t, ColorAlways.enabled(&out))
}
