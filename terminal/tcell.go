package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// TcellColor maps c onto tcell's palette; ANSI black..white are palette 0-7
func (c Color) TcellColor() tcell.Color {
	if c == ColorDefault || !c.Valid() {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c) - 1)
}

// TcellStyle returns the tcell style for a cell's colors
func (c Cell) TcellStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Fg.TcellColor()).Background(c.Bg.TcellColor())
}

// Blit copies buf onto screen starting at the origin, clipped to the screen size.
// The caller shows or syncs the screen afterwards.
func Blit(screen tcell.Screen, buf *CellBuffer) {
	sw, sh := screen.Size()
	w := min(buf.width, sw)
	h := min(buf.height, sh)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := buf.cells[x+y*buf.width]
			ch := rune(c.Ch)
			if c.Ch < 0x20 || c.Ch >= 0x7f {
				ch = ' '
			}
			screen.SetContent(x, y, ch, nil, c.TcellStyle())
		}
	}
}
