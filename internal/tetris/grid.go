package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Cell is one board square. The zero value is empty.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Grid is the fixed-size board of settled blocks.
// Cells are stored in row-major order: index = y*w + x.
// Row 0 is the top of the well.
type Grid struct {
	w     int
	h     int
	cells []Cell
}

// NewGrid creates an empty grid. Panics if either dimension is not positive.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic("tetris: grid dimensions must be positive")
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	return y*g.w + x
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// IsOccupied reports whether the cell holds a settled block.
// Callers check bounds first.
func (g *Grid) IsOccupied(x, y int) bool {
	return g.cells[g.index(x, y)].Filled
}

// At returns the cell at the given coordinate.
// Returns an empty cell if out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.cells[g.index(x, y)]
}

// Set marks the cell as occupied with the given color.
// Out-of-bounds coordinates are ignored.
func (g *Grid) Set(x, y int, c core.Color) {
	if g.InBounds(x, y) {
		g.cells[g.index(x, y)] = Cell{Filled: true, Color: c}
	}
}

// rowFull reports whether no cell in row y is empty.
func (g *Grid) rowFull(y int) bool {
	row := g.cells[g.index(0, y):g.index(0, y+1)]
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row at once and returns how many were
// removed. Remaining rows keep their relative order and slide down; the
// same number of empty rows appear at the top.
func (g *Grid) ClearFullRows() int {
	write := g.h - 1
	for read := g.h - 1; read >= 0; read-- {
		if g.rowFull(read) {
			continue
		}
		if write != read {
			copy(g.cells[g.index(0, write):g.index(0, write+1)], g.cells[g.index(0, read):g.index(0, read+1)])
		}
		write--
	}

	cleared := write + 1
	for i := range g.cells[:g.index(0, cleared)] {
		g.cells[i] = Cell{}
	}
	return cleared
}

// Rows returns a copy of the board as [row][col].
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.h)
	for y := range rows {
		rows[y] = make([]Cell, g.w)
		copy(rows[y], g.cells[g.index(0, y):g.index(0, y+1)])
	}
	return rows
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, c := range g.cells {
		if c.Filled {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
