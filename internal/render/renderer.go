package render

import (
	"fmt"

	"github.com/vovakirdan/torsnake/internal/core"
)

// Sink receives positioned glyph writes. Writes may be buffered until Flush.
// Coordinates are screen cells: x is the column, y the row, both 0-based.
type Sink interface {
	SetCell(x, y int, g Glyph)
	Flush() error
}

// Renderer draws a bordered board and keeps it in sync with a grid.
// Grid cell (x, y) is drawn at screen cell (x+1, y+1), inside the border.
type Renderer struct {
	sink  Sink
	theme Theme
	prev  *core.Grid

	status      string
	statusDirty bool
	statusWidth int // Widest status drawn so far, for clearing leftovers
}

// New creates a renderer for a rows x cols board.
func New(sink Sink, theme Theme, rows, cols int) *Renderer {
	return &Renderer{
		sink:  sink,
		theme: theme,
		prev:  core.NewGrid(rows, cols),
	}
}

// Width returns the screen width the board occupies, border included.
func (r *Renderer) Width() int {
	return r.prev.Cols() + 2
}

// Height returns the screen height the board occupies, border and status
// line included.
func (r *Renderer) Height() int {
	return r.prev.Rows() + 3
}

// DrawBoard draws the border and an empty play area, then flushes.
// Call it once before the first Draw.
func (r *Renderer) DrawBoard() error {
	rows, cols := r.prev.Rows(), r.prev.Cols()
	border := r.theme.Border

	for x := 0; x < cols+2; x++ {
		r.sink.SetCell(x, 0, border)
		r.sink.SetCell(x, rows+1, border)
	}
	for y := 1; y <= rows; y++ {
		r.sink.SetCell(0, y, border)
		r.sink.SetCell(cols+1, y, border)
	}

	r.prev.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.sink.SetCell(x+1, y+1, r.theme.Empty)
		}
	}

	if err := r.sink.Flush(); err != nil {
		return fmt.Errorf("render: cannot draw board: %w", err)
	}
	return nil
}

// SetStatus sets the text shown under the board. It is drawn on the next
// Draw, and only if it changed.
func (r *Renderer) SetStatus(text string) {
	if text == r.status {
		return
	}
	r.status = text
	r.statusDirty = true
}

// Draw writes every cell of g whose kind differs from the previous frame,
// flushes once and returns the number of grid cells written. A status text
// changed by SetStatus is redrawn in the same flush; those writes are not
// grid cells and are not counted.
func (r *Renderer) Draw(g *core.Grid) (int, error) {
	changed := g.Diff(r.prev)
	for _, p := range changed {
		r.sink.SetCell(p.X+1, p.Y+1, r.theme.For(g.At(p)))
	}

	if r.statusDirty {
		r.drawStatus()
	}

	if err := r.sink.Flush(); err != nil {
		return len(changed), fmt.Errorf("render: flush failed: %w", err)
	}
	r.prev.CopyFrom(g)
	return len(changed), nil
}

// drawStatus writes the status line, blanking any tail of a longer one.
func (r *Renderer) drawStatus() {
	y := r.prev.Rows() + 2
	runes := []rune(r.status)
	for i, ch := range runes {
		r.sink.SetCell(i, y, Glyph{Rune: ch})
	}
	for i := len(runes); i < r.statusWidth; i++ {
		r.sink.SetCell(i, y, Glyph{Rune: ' '})
	}
	r.statusWidth = max(r.statusWidth, len(runes))
	r.statusDirty = false
}
