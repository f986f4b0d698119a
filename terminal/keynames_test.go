package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyName(t *testing.T) {
	cases := map[byte]string{
		'a':           "a",
		'~':           "~",
		KeySpace:      "space",
		KeyCtrlA:      "ctrl_a",
		KeyCtrlC:      "ctrl_c",
		KeyCtrlZ:      "ctrl_z",
		KeyTab:        "tab",
		KeyEnter:      "enter",
		KeyBackspace:  "backspace",
		KeyBackspace2: "backspace2",
		KeyEsc:        "escape",
		0x00:          "ctrl_space",
		0x1f:          "ctrl_underscore",
		0xe9:          "0xe9",
	}
	for k, want := range cases {
		assert.Equal(t, want, KeyName(k), "key 0x%02x", k)
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "q", Event{Key: 'q'}.String())
	assert.Equal(t, "alt+x", Event{Prefix: PrefixEscape, Key: 'x'}.String())
	assert.Equal(t, "alt+escape", Event{Prefix: PrefixEscape, Key: KeyEsc}.String())
	assert.Equal(t, "alt+ctrl_c", Event{Prefix: PrefixEscape, Key: KeyCtrlC}.String())
}

func TestEventPredicates(t *testing.T) {
	ev := Event{Key: KeyCtrlQ}
	assert.True(t, ev.Is(CtrlKey('q')))
	assert.True(t, ev.Is(CtrlKey('Q')))
	assert.False(t, ev.Alt())

	alt := Event{Prefix: PrefixEscape, Key: 'q'}
	assert.True(t, alt.Alt())
	assert.False(t, alt.Is('q'))
}
