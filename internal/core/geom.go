// Package core provides the grid model shared by the snake simulation,
// the renderer and the input layer. It has no terminal dependencies so the
// game logic stays pure and testable.
package core

// Direction is a movement direction on the grid.
// There is no neutral value: the snake always travels somewhere.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Point is a 0-indexed grid coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Step returns the neighbouring point in direction d on a cols x rows torus.
// Moving past the last column or row wraps to 0, moving before 0 wraps to
// the last index.
func (p Point) Step(d Direction, cols, rows int) Point {
	switch d {
	case DirUp:
		return Point{X: p.X, Y: Wrap(p.Y-1, rows)}
	case DirDown:
		return Point{X: p.X, Y: Wrap(p.Y+1, rows)}
	case DirLeft:
		return Point{X: Wrap(p.X-1, cols), Y: p.Y}
	case DirRight:
		return Point{X: Wrap(p.X+1, cols), Y: p.Y}
	}
	return p
}

// Wrap maps v into [0, n) with toroidal arithmetic.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
