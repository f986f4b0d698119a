package terminal

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(fn func(w *bufio.Writer)) string {
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	fn(w)
	w.Flush()
	return out.String()
}

func TestWriteInt(t *testing.T) {
	cases := map[int]string{0: "0", 7: "7", 10: "10", 99: "99", 100: "100", 999: "999", 12345: "12345", -3: "0"}
	for n, want := range cases {
		got := sequence(func(w *bufio.Writer) { writeInt(w, n) })
		assert.Equal(t, want, got, "writeInt(%d)", n)
	}
}

func TestWriteCursorPos(t *testing.T) {
	assert.Equal(t, "\x1b[1;1H", sequence(func(w *bufio.Writer) { writeCursorPos(w, 0, 0) }))
	// Row comes first: y then x
	assert.Equal(t, "\x1b[5;10H", sequence(func(w *bufio.Writer) { writeCursorPos(w, 9, 4) }))
	assert.Equal(t, "\x1b[300;1000H", sequence(func(w *bufio.Writer) { writeCursorPos(w, 999, 299) }))
}

func TestWriteColor(t *testing.T) {
	assert.Equal(t, "\x1b[30;47m", sequence(func(w *bufio.Writer) { writeColor(w, ColorBlack, ColorWhite) }))
	assert.Equal(t, "\x1b[31;44m", sequence(func(w *bufio.Writer) { writeColor(w, ColorRed, ColorBlue) }))
	assert.Equal(t, "\x1b[39;49m", sequence(func(w *bufio.Writer) { writeColor(w, ColorDefault, ColorDefault) }))
	assert.Equal(t, "\x1b[37;49m", sequence(func(w *bufio.Writer) { writeColor(w, ColorWhite, Color(42)) }))
}
