package core

// CellKind is the content of a single grid cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellSnake
	CellFruit
)

// String returns a human-readable name for the cell kind.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellFruit:
		return "fruit"
	default:
		return "unknown"
	}
}

// Grid is a fixed rows x cols board of cells. The zero value of every cell
// is CellEmpty. Cells are stored row-major in a single slice.
type Grid struct {
	rows  int
	cols  int
	cells []CellKind
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellKind, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// Center returns the middle cell of the grid.
func (g *Grid) Center() Point {
	return Point{X: g.cols / 2, Y: g.rows / 2}
}

// Contains reports whether p lies on the grid.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// At returns the kind of the cell at p. Points off the grid read as empty.
func (g *Grid) At(p Point) CellKind {
	if !g.Contains(p) {
		return CellEmpty
	}
	return g.cells[p.Y*g.cols+p.X]
}

// Set stores kind at p. Out-of-bounds points are silently ignored.
func (g *Grid) Set(p Point, kind CellKind) {
	if !g.Contains(p) {
		return
	}
	g.cells[p.Y*g.cols+p.X] = kind
}

// Count returns how many cells hold kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, c := range g.cells {
		if c == kind {
			n++
		}
	}
	return n
}

// Points returns every point holding kind, in row-major order.
func (g *Grid) Points(kind CellKind) []Point {
	var out []Point
	for i, c := range g.cells {
		if c == kind {
			out = append(out, Point{X: i % g.cols, Y: i / g.cols})
		}
	}
	return out
}

// Clear resets every cell to CellEmpty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = CellEmpty
	}
}

// CopyFrom overwrites this grid with the contents of src.
// Both grids must have the same dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if g.rows != src.rows || g.cols != src.cols {
		panic("core: CopyFrom on grids of different size")
	}
	copy(g.cells, src.cells)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.cells, g.cells)
	return c
}

// Diff returns the points whose kind differs between g and prev,
// in row-major order.
func (g *Grid) Diff(prev *Grid) []Point {
	if g.rows != prev.rows || g.cols != prev.cols {
		panic("core: Diff on grids of different size")
	}
	var out []Point
	for i, c := range g.cells {
		if c != prev.cells[i] {
			out = append(out, Point{X: i % g.cols, Y: i / g.cols})
		}
	}
	return out
}
