package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorVisibility(t *testing.T) {
	var out bytes.Buffer
	c := NewRenderer(&out).Cursor()

	assert.True(t, c.Visible())

	require.NoError(t, c.Hide())
	assert.False(t, c.Visible())
	assert.Equal(t, "\x1b[?25l", out.String())

	require.NoError(t, c.Show())
	assert.True(t, c.Visible())
	assert.Equal(t, "\x1b[?25l\x1b[?25h", out.String())
}

func TestCursorSetPosition(t *testing.T) {
	var out bytes.Buffer
	c := NewRenderer(&out).Cursor()

	require.NoError(t, c.SetPosition(0, 0))
	assert.Equal(t, "\x1b[1;1H", out.String())

	out.Reset()
	require.NoError(t, c.SetPosition(3, 7))
	assert.Equal(t, "\x1b[8;4H", out.String())

	// No clamping against any buffer
	out.Reset()
	require.NoError(t, c.SetPosition(500, 200))
	assert.Equal(t, "\x1b[201;501H", out.String())
}
