// Package snake implements the toroidal snake simulation: the snake body,
// the grid occupancy and the fruit, advanced one tick at a time.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/torsnake/internal/core"
)

// Outcome is the result of a single tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeLost             // head ran into the body
	OutcomeWon              // snake fills the board
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool {
	return o == OutcomeLost || o == OutcomeWon
}

// State is one game run. Every point of the snake is marked CellSnake on
// the grid and no other cell is; the fruit cell is marked CellFruit and is
// never part of the snake.
type State struct {
	grid   *core.Grid
	placer *FruitPlacer

	// Snake state
	snake     []core.Point // Head at index 0, capacity rows*cols
	direction core.Direction

	fruit    core.Point
	hasFruit bool // false only once the board is full

	tick    uint64
	score   int // Fruit eaten
	outcome Outcome
}

// New creates a game with a length-1 snake at the grid center heading up
// and one fruit on a random empty cell.
func New(rows, cols int, rng *rand.Rand, maxAttempts int) (*State, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("snake: grid %dx%d is too small", rows, cols)
	}

	s := &State{
		grid:      core.NewGrid(rows, cols),
		placer:    NewFruitPlacer(rng, maxAttempts),
		snake:     make([]core.Point, 1, rows*cols),
		direction: core.DirUp,
	}
	s.snake[0] = s.grid.Center()
	s.grid.Set(s.snake[0], core.CellSnake)

	fruit, err := s.placer.Place(s.grid)
	if err != nil {
		return nil, err
	}
	s.fruit = fruit
	s.hasFruit = true

	return s, nil
}

// Tick advances the game by one step in direction dir.
// Reversing straight into the neck is not filtered: it is a collision like
// any other. Once a terminal outcome is reported further ticks are no-ops.
func (s *State) Tick(dir core.Direction) Outcome {
	if s.outcome.Terminal() {
		return s.outcome
	}

	s.tick++
	s.direction = dir

	rows, cols := s.grid.Rows(), s.grid.Cols()
	next := s.snake[0].Step(dir, cols, rows)

	// The grid still holds last tick's body, tail included.
	if s.grid.At(next) == core.CellSnake {
		s.outcome = OutcomeLost
		return s.outcome
	}

	tail := s.snake[len(s.snake)-1]
	for i := len(s.snake) - 1; i > 0; i-- {
		s.snake[i] = s.snake[i-1]
	}
	s.snake[0] = next

	if s.hasFruit && next == s.fruit {
		// Grow into the vacated tail cell so the body stays contiguous.
		s.snake = append(s.snake, tail)
		s.score++
		s.hasFruit = false
		s.grid.Set(next, core.CellSnake)

		// Board full must be checked before placing: sampling would never
		// find an empty cell.
		if len(s.snake) == s.grid.Size() {
			s.outcome = OutcomeWon
			return s.outcome
		}
		s.spawnFruit()
		return OutcomeContinue
	}

	s.grid.Set(tail, core.CellEmpty)
	s.grid.Set(next, core.CellSnake)
	return OutcomeContinue
}

// spawnFruit places a new fruit. The caller guarantees an empty cell exists,
// so a placement failure is a broken invariant.
func (s *State) spawnFruit() {
	p, err := s.placer.Place(s.grid)
	if err != nil {
		panic(fmt.Sprintf("snake: fruit placement with %d/%d cells occupied: %v",
			len(s.snake), s.grid.Size(), err))
	}
	s.fruit = p
	s.hasFruit = true
}

// Grid returns the occupancy grid. Callers must not modify it.
func (s *State) Grid() *core.Grid {
	return s.grid
}

// Snake returns a copy of the body, head first.
func (s *State) Snake() []core.Point {
	out := make([]core.Point, len(s.snake))
	copy(out, s.snake)
	return out
}

// Head returns the head position.
func (s *State) Head() core.Point {
	return s.snake[0]
}

// Len returns the snake length.
func (s *State) Len() int {
	return len(s.snake)
}

// Fruit returns the fruit position and whether a fruit is on the board.
func (s *State) Fruit() (core.Point, bool) {
	return s.fruit, s.hasFruit
}

// Direction returns the direction of the last tick.
func (s *State) Direction() core.Direction {
	return s.direction
}

// Score returns the number of fruit eaten.
func (s *State) Score() int {
	return s.score
}

// Ticks returns the number of ticks processed.
func (s *State) Ticks() uint64 {
	return s.tick
}

// Outcome returns the latest outcome.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Validate checks the body/grid bijection and the fruit invariants.
func (s *State) Validate() error {
	seen := make(map[core.Point]bool, len(s.snake))
	for i, p := range s.snake {
		if !s.grid.Contains(p) {
			return fmt.Errorf("snake: segment %d at %+v is off the grid", i, p)
		}
		if seen[p] {
			return fmt.Errorf("snake: segment %d at %+v overlaps the body", i, p)
		}
		seen[p] = true
		if k := s.grid.At(p); k != core.CellSnake {
			return fmt.Errorf("snake: segment %d at %+v is marked %v", i, p, k)
		}
	}
	if n := s.grid.Count(core.CellSnake); n != len(s.snake) {
		return fmt.Errorf("snake: grid has %d body cells, snake has %d segments", n, len(s.snake))
	}

	fruitCells := s.grid.Count(core.CellFruit)
	if !s.hasFruit {
		if fruitCells != 0 {
			return fmt.Errorf("snake: %d fruit cells with no fruit placed", fruitCells)
		}
		return nil
	}
	if fruitCells != 1 || s.grid.At(s.fruit) != core.CellFruit {
		return fmt.Errorf("snake: fruit at %+v not marked on grid (%d fruit cells)", s.fruit, fruitCells)
	}
	if seen[s.fruit] {
		return fmt.Errorf("snake: fruit at %+v is inside the snake", s.fruit)
	}
	return nil
}
