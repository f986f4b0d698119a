package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuffer(t *testing.T, rows ...string) *CellBuffer {
	t.Helper()
	buf, err := NewCellBuffer(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		buf.Print(0, y, row)
	}
	return buf
}

func TestRefreshSequence(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	buf := newTestBuffer(t, "ab", "cd")

	require.NoError(t, r.Refresh(buf))
	assert.Equal(t, "\x1b[?25l\x1b[s\x1b[0;0Hab\r\ncd\x1b[u\x1b[?25h", out.String())
	assert.True(t, r.Cursor().Visible())
}

func TestRefreshRowSeparators(t *testing.T) {
	for h := 1; h <= 12; h++ {
		var out bytes.Buffer
		r := NewRenderer(&out)
		buf, err := NewCellBuffer(7, h)
		require.NoError(t, err)

		require.NoError(t, r.Refresh(buf))
		assert.Equal(t, h-1, strings.Count(out.String(), "\r\n"), "height %d", h)
		assert.Equal(t, 7*h, strings.Count(out.String(), " "), "height %d", h)
	}
}

func TestRefreshKeepsHiddenCursor(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	require.NoError(t, r.Cursor().Hide())
	out.Reset()

	require.NoError(t, r.Refresh(newTestBuffer(t, "x")))
	assert.Equal(t, "\x1b[s\x1b[0;0Hx\x1b[u", out.String())
	assert.False(t, r.Cursor().Visible())
}

func TestRefreshRestoresVisibility(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	c := r.Cursor()
	buf := newTestBuffer(t, "x")

	require.NoError(t, r.Refresh(buf))
	assert.True(t, c.Visible())

	require.NoError(t, c.Hide())
	require.NoError(t, r.Refresh(buf))
	assert.False(t, c.Visible())

	require.NoError(t, c.Show())
	require.NoError(t, r.Refresh(buf))
	assert.True(t, c.Visible())
}

func TestRefreshSanitizesControlBytes(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	buf := newTestBuffer(t, "a\nb")

	require.NoError(t, r.Refresh(buf))
	assert.Contains(t, out.String(), "a b")
	assert.Equal(t, 0, strings.Count(out.String(), "\n"))
}

func TestRefreshColors(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, WithColors(true))
	assert.True(t, r.Colors())

	buf, err := NewCellBuffer(3, 1)
	require.NoError(t, err)
	buf.PrintStyled(0, 0, "ab", ColorRed, ColorDefault)
	buf.SetCell(2, 0, Cell{Ch: 'c', Fg: ColorGreen, Bg: ColorBlue})

	require.NoError(t, r.Refresh(buf))
	// Unchanged colors are not repeated; SGR is reset before the cursor is restored
	assert.Equal(t, "\x1b[?25l\x1b[s\x1b[0;0H\x1b[31;49mab\x1b[32;44mc\x1b[0m\x1b[u\x1b[?25h", out.String())
}

func TestRefreshCell(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	buf := newTestBuffer(t, "abc", "def")

	require.NoError(t, r.RefreshCell(buf, 1, 1))
	assert.Equal(t, "\x1b[?25l\x1b[s\x1b[2;2He\x1b[u\x1b[?25h", out.String())
	assert.True(t, r.Cursor().Visible())
}

func TestRefreshCellKeepsHiddenCursor(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	require.NoError(t, r.Cursor().Hide())
	out.Reset()

	buf := newTestBuffer(t, "abc")
	require.NoError(t, r.RefreshCell(buf, 2, 0))
	assert.Equal(t, "\x1b[?25l\x1b[s\x1b[1;3Hc\x1b[u", out.String())
	assert.False(t, r.Cursor().Visible())
}

func TestRefreshCellOutOfRange(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	buf := newTestBuffer(t, "abc")

	require.NoError(t, r.RefreshCell(buf, 3, 0))
	require.NoError(t, r.RefreshCell(buf, 0, 1))
	require.NoError(t, r.RefreshCell(buf, -1, 0))
	assert.Empty(t, out.String())
}

func TestRefreshRow(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, WithColors(true))
	buf := newTestBuffer(t, "abc", "def")
	buf.SetCell(2, 1, Cell{Ch: 'F', Fg: ColorRed})

	require.NoError(t, r.RefreshRow(buf, 1))
	assert.Equal(t, "\x1b[?25l\x1b[s\x1b[2;1H\x1b[39;49mde\x1b[31;49mF\x1b[0m\x1b[u\x1b[?25h", out.String())
	assert.True(t, r.Cursor().Visible())
}

func TestRefreshRowKeepsHiddenCursor(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	require.NoError(t, r.Cursor().Hide())
	out.Reset()

	buf := newTestBuffer(t, "abc", "def")
	require.NoError(t, r.RefreshRow(buf, 0))
	assert.Equal(t, "\x1b[?25l\x1b[s\x1b[1;1Habc\x1b[u", out.String())
	assert.False(t, r.Cursor().Visible())
}

func TestRefreshRowOutOfRange(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	buf := newTestBuffer(t, "abc")

	require.NoError(t, r.RefreshRow(buf, 1))
	require.NoError(t, r.RefreshRow(buf, -1))
	assert.Empty(t, out.String())
}

func TestClearScreen(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	require.NoError(t, r.ClearScreen())
	assert.Equal(t, "\x1b[2J", out.String())
}
