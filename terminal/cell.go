package terminal

// MaxCells bounds a single buffer allocation
const MaxCells = 1 << 24

// Cell is one character position: an ASCII byte and its colors
type Cell struct {
	Ch byte
	Fg Color
	Bg Color
}

// EmptyCell is a space in default colors
var EmptyCell = Cell{Ch: ' ', Fg: ColorDefault, Bg: ColorDefault}

// CellBuffer is a row-major grid of cells: cells[x + y*width]
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewCellBuffer allocates a width x height buffer filled with EmptyCell
func NewCellBuffer(width, height int) (*CellBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, &AllocationError{Width: width, Height: height, Err: ErrInvalidSize}
	}
	// Division form avoids overflow on the product
	if width > MaxCells/height {
		return nil, &AllocationError{Width: width, Height: height, Err: ErrTooLarge}
	}

	b := &CellBuffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear(EmptyCell)
	return b, nil
}

// Width returns the buffer width
func (b *CellBuffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *CellBuffer) Height() int {
	return b.height
}

// Cells exposes the backing slice; callers must keep the length intact
func (b *CellBuffer) Cells() []Cell {
	return b.cells
}

// Clear overwrites every cell with fill
func (b *CellBuffer) Clear(fill Cell) {
	for i := range b.cells {
		b.cells[i] = fill
	}
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// SetCell stores c at (x, y); out-of-range writes are ignored
func (b *CellBuffer) SetCell(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[x+y*b.width] = c
}

// Cell returns the cell at (x, y) and whether it is in range
func (b *CellBuffer) Cell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[x+y*b.width], true
}

// Print writes text one byte per cell from (x, y) rightwards in default colors.
// No wrapping: bytes past the right edge are dropped.
func (b *CellBuffer) Print(x, y int, text string) {
	b.PrintStyled(x, y, text, ColorDefault, ColorDefault)
}

// PrintStyled is Print with explicit colors
func (b *CellBuffer) PrintStyled(x, y int, text string, fg, bg Color) {
	for i := 0; i < len(text); i++ {
		b.SetCell(x+i, y, Cell{Ch: text[i], Fg: fg, Bg: bg})
	}
}
