package avada

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// FrameBuffer is a grid of Cells. The logical size can shrink and grow freely;
// the backing storage only ever grows, and when it does it doubles the
// requested dimension so repeated interactive resizes rarely reallocate.
//
// A FrameBuffer is not safe for concurrent use
type FrameBuffer struct {
	rows   int
	cols   int
	rowCap int
	colCap int
	// cells is row-major with a stride of colCap
	cells []Cell
}

// NewFrameBuffer returns a FrameBuffer of the given logical size. All cells
// are default and dirty
func NewFrameBuffer(rows int, cols int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(rows, cols)
	return fb
}

// Size returns the logical size
func (fb *FrameBuffer) Size() (rows int, cols int) {
	return fb.rows, fb.cols
}

// Capacity returns the allocated size
func (fb *FrameBuffer) Capacity() (rows int, cols int) {
	return fb.rowCap, fb.colCap
}

// Resize changes the logical size. Content within the previous capacity is
// kept; nothing else is guaranteed about cells which become visible
func (fb *FrameBuffer) Resize(rows int, cols int) {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("avada: negative frame buffer size %dx%d", rows, cols))
	}
	rowCap, colCap := fb.rowCap, fb.colCap
	if rows > rowCap {
		rowCap = rows * 2
	}
	if cols > colCap {
		colCap = cols * 2
	}
	if rowCap != fb.rowCap || colCap != fb.colCap {
		cells := make([]Cell, rowCap*colCap)
		for row := 0; row < fb.rowCap; row += 1 {
			copy(cells[row*colCap:row*colCap+fb.colCap], fb.cells[row*fb.colCap:(row+1)*fb.colCap])
		}
		fb.cells = cells
		fb.rowCap = rowCap
		fb.colCap = colCap
	}
	fb.rows = rows
	fb.cols = cols
}

// Cell returns the cell at row, col. Accessing a cell outside of the logical
// size panics
func (fb *FrameBuffer) Cell(row int, col int) *Cell {
	if row < 0 || row >= fb.rows || col < 0 || col >= fb.cols {
		panic(fmt.Sprintf("avada: cell (%d, %d) out of range %dx%d", row, col, fb.rows, fb.cols))
	}
	return &fb.cells[row*fb.colCap+col]
}

// Clear resets every cell to the default cell
func (fb *FrameBuffer) Clear() {
	for row := 0; row < fb.rows; row += 1 {
		line := fb.cells[row*fb.colCap : row*fb.colCap+fb.cols]
		for col := range line {
			line[col].Reset()
		}
	}
}

// Fill assigns cell to every position. Only cells which change become dirty
func (fb *FrameBuffer) Fill(cell Cell) {
	for row := 0; row < fb.rows; row += 1 {
		line := fb.cells[row*fb.colCap : row*fb.colCap+fb.cols]
		for col := range line {
			line[col].Assign(&cell)
		}
	}
}

// Print writes s starting at row, col and returns the number of columns used.
// Each grapheme cluster takes one cell holding its first character. Clusters
// which render two columns wide are replaced with U+FFFD and a blank cell,
// since a cell advances the cursor exactly one column. Text is clipped at the
// right edge
func (fb *FrameBuffer) Print(row int, col int, s string, fg Color, bg Color, attrs AttributeMask) int {
	if row < 0 || row >= fb.rows {
		return 0
	}
	first := col
	if first < 0 {
		first = 0
	}
	g := uniseg.NewGraphemes(s)
	for g.Next() && col < fb.cols {
		cluster := g.Str()
		w := gwidth(cluster, activeWidthMethod)
		if w == 0 {
			continue
		}
		if col < 0 {
			col += w
			continue
		}
		cell := fb.Cell(row, col)
		cell.SetFg(fg)
		cell.SetBg(bg)
		cell.SetAttrs(attrs)
		col += 1
		if w == 1 {
			cell.SetGlyph(cluster)
			continue
		}
		cell.SetRune('\uFFFD')
		if col < fb.cols {
			pad := fb.Cell(row, col)
			pad.SetGlyph(" ")
			pad.SetFg(fg)
			pad.SetBg(bg)
			pad.SetAttrs(attrs)
			col += 1
		}
	}
	if col < first {
		return 0
	}
	return col - first
}
