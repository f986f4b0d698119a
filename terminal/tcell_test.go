package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTcellColor(t *testing.T) {
	assert.Equal(t, tcell.ColorDefault, ColorDefault.TcellColor())
	assert.Equal(t, tcell.PaletteColor(0), ColorBlack.TcellColor())
	assert.Equal(t, tcell.PaletteColor(1), ColorRed.TcellColor())
	assert.Equal(t, tcell.PaletteColor(7), ColorWhite.TcellColor())
	assert.Equal(t, tcell.ColorDefault, Color(200).TcellColor())
}

func TestBlit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(4, 2)

	// Wider than the screen: the last column is clipped
	buf, err := NewCellBuffer(5, 2)
	require.NoError(t, err)
	buf.PrintStyled(0, 0, "hello", ColorYellow, ColorBlue)
	buf.Print(0, 1, "ok")

	Blit(screen, buf)

	ch, _, style, _ := screen.GetContent(1, 0)
	assert.Equal(t, 'e', ch)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, ColorYellow.TcellColor(), fg)
	assert.Equal(t, ColorBlue.TcellColor(), bg)

	ch, _, style, _ = screen.GetContent(3, 0)
	assert.Equal(t, 'l', ch)

	ch, _, style, _ = screen.GetContent(1, 1)
	assert.Equal(t, 'k', ch)
	fg, bg, _ = style.Decompose()
	assert.Equal(t, tcell.ColorDefault, fg)
	assert.Equal(t, tcell.ColorDefault, bg)

	ch, _, _, _ = screen.GetContent(3, 1)
	assert.Equal(t, ' ', ch)
}
