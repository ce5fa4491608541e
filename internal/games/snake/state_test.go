package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/torsnake/internal/core"
)

const (
	refRows = 15
	refCols = 17
)

func newTestState(t *testing.T, rows, cols int, seed int64) *State {
	t.Helper()
	s, err := New(rows, cols, rand.New(rand.NewSource(seed)), 64*rows*cols)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

// arrange replaces the snake and fruit of a fresh state with a fixed layout.
func arrange(t *testing.T, rows, cols int, body []core.Point, fruit core.Point) *State {
	t.Helper()
	s := newTestState(t, rows, cols, 1)
	s.grid.Clear()
	s.snake = append(s.snake[:0], body...)
	for _, p := range body {
		s.grid.Set(p, core.CellSnake)
	}
	s.fruit = fruit
	s.hasFruit = true
	s.grid.Set(fruit, core.CellFruit)
	if err := s.Validate(); err != nil {
		t.Fatalf("arranged state is invalid: %v", err)
	}
	return s
}

// serpentine lists every cell of the grid in boustrophedon order, so
// consecutive points are always neighbours.
func serpentine(rows, cols int) []core.Point {
	path := make([]core.Point, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for i := 0; i < cols; i++ {
			x := i
			if y%2 == 1 {
				x = cols - 1 - i
			}
			path = append(path, core.Point{X: x, Y: y})
		}
	}
	return path
}

func TestNewInitialState(t *testing.T) {
	s := newTestState(t, refRows, refCols, 42)

	if s.Len() != 1 {
		t.Fatalf("initial length = %d, expected 1", s.Len())
	}
	if s.Head() != (core.Point{X: 8, Y: 7}) {
		t.Errorf("initial head = %+v, expected {8 7}", s.Head())
	}
	if s.Direction() != core.DirUp {
		t.Errorf("initial direction = %v, expected up", s.Direction())
	}
	if _, ok := s.Fruit(); !ok {
		t.Error("a fruit should be placed at start")
	}
	if s.Outcome() != OutcomeContinue {
		t.Errorf("initial outcome = %v", s.Outcome())
	}
	if err := s.Validate(); err != nil {
		t.Error(err)
	}
}

func TestNewRejectsTinyGrid(t *testing.T) {
	if _, err := New(1, 1, rand.New(rand.NewSource(1)), 10); err == nil {
		t.Error("New() should reject a grid with no room for fruit")
	}
}

func TestTickMovesUp(t *testing.T) {
	// Scenario: single segment at the center, no fruit ahead.
	s := arrange(t, refRows, refCols, []core.Point{{X: 8, Y: 7}}, core.Point{X: 0, Y: 0})

	if out := s.Tick(core.DirUp); out != OutcomeContinue {
		t.Fatalf("Tick() = %v, expected continue", out)
	}
	if s.Len() != 1 {
		t.Errorf("length = %d, expected 1", s.Len())
	}
	if s.Head() != (core.Point{X: 8, Y: 6}) {
		t.Errorf("head = %+v, expected {8 6}", s.Head())
	}
	if s.Grid().At(core.Point{X: 8, Y: 7}) != core.CellEmpty {
		t.Error("vacated cell should be empty")
	}
	if err := s.Validate(); err != nil {
		t.Error(err)
	}
}

func TestTickWrapsAround(t *testing.T) {
	tests := []struct {
		name     string
		head     core.Point
		dir      core.Direction
		expected core.Point
	}{
		{"left edge", core.Point{X: 0, Y: 5}, core.DirLeft, core.Point{X: 16, Y: 5}},
		{"right edge", core.Point{X: 16, Y: 5}, core.DirRight, core.Point{X: 0, Y: 5}},
		{"top edge", core.Point{X: 4, Y: 0}, core.DirUp, core.Point{X: 4, Y: 14}},
		{"bottom edge", core.Point{X: 4, Y: 14}, core.DirDown, core.Point{X: 4, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := arrange(t, refRows, refCols, []core.Point{tc.head}, core.Point{X: 9, Y: 9})
			if out := s.Tick(tc.dir); out != OutcomeContinue {
				t.Fatalf("Tick() = %v, expected continue", out)
			}
			if s.Head() != tc.expected {
				t.Errorf("head = %+v, expected %+v", s.Head(), tc.expected)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	// Reversing into the neck is a collision, not a no-op.
	body := []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}}
	s := arrange(t, refRows, refCols, body, core.Point{X: 0, Y: 0})
	before := s.Snapshot()

	if out := s.Tick(core.DirDown); out != OutcomeLost {
		t.Fatalf("Tick() = %v, expected lost", out)
	}

	// Lost leaves the board as it was.
	after := s.Snapshot()
	if after.HeadX != before.HeadX || after.HeadY != before.HeadY || after.SnakeLen != before.SnakeLen {
		t.Errorf("lost tick moved the snake: %+v -> %+v", before, after)
	}
	if err := s.Validate(); err != nil {
		t.Error(err)
	}

	// Terminal outcomes are sticky.
	if out := s.Tick(core.DirLeft); out != OutcomeLost {
		t.Errorf("Tick() after loss = %v, expected lost", out)
	}
	if s.Ticks() != 1 {
		t.Errorf("ticks = %d, expected 1", s.Ticks())
	}
}

func TestMovingIntoTailCellIsCollision(t *testing.T) {
	// The tail is still on the grid when the head moves, so chasing it loses.
	body := []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	s := arrange(t, refRows, refCols, body, core.Point{X: 10, Y: 10})

	if out := s.Tick(core.DirDown); out != OutcomeLost {
		t.Errorf("Tick() = %v, expected lost", out)
	}
}

func TestSnakeGrowth(t *testing.T) {
	body := []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}}
	s := arrange(t, refRows, refCols, body, core.Point{X: 5, Y: 4})
	oldTail := body[1]

	if out := s.Tick(core.DirUp); out != OutcomeContinue {
		t.Fatalf("Tick() = %v, expected continue", out)
	}
	if s.Len() != 3 {
		t.Fatalf("length = %d, expected 3", s.Len())
	}
	segs := s.Snake()
	expected := []core.Point{{X: 5, Y: 4}, {X: 5, Y: 5}, oldTail}
	for i := range expected {
		if segs[i] != expected[i] {
			t.Errorf("segment %d = %+v, expected %+v", i, segs[i], expected[i])
		}
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, expected 1", s.Score())
	}

	fruit, ok := s.Fruit()
	if !ok {
		t.Fatal("a new fruit should be placed")
	}
	if fruit == (core.Point{X: 5, Y: 4}) {
		t.Error("new fruit reuses the eaten cell")
	}
	if err := s.Validate(); err != nil {
		t.Error(err)
	}
}

func TestWinOnFullBoard(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"tiny", 2, 3},
		{"reference", refRows, refCols},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := serpentine(tc.rows, tc.cols)
			// Fruit on the first cell, head right next to it heading left.
			s := arrange(t, tc.rows, tc.cols, path[1:], path[0])
			if s.Len() != tc.rows*tc.cols-1 {
				t.Fatalf("length = %d, expected %d", s.Len(), tc.rows*tc.cols-1)
			}

			if out := s.Tick(core.DirLeft); out != OutcomeWon {
				t.Fatalf("Tick() = %v, expected won", out)
			}
			if s.Len() != tc.rows*tc.cols {
				t.Errorf("length = %d, expected %d", s.Len(), tc.rows*tc.cols)
			}
			if _, ok := s.Fruit(); ok {
				t.Error("no fruit should be placed on a full board")
			}
			if err := s.Validate(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestSnakeCapacityIsBounded(t *testing.T) {
	path := serpentine(3, 3)
	s := arrange(t, 3, 3, path[1:], path[0])
	s.Tick(core.DirLeft)

	if cap(s.snake) != 9 {
		t.Errorf("snake capacity = %d, expected 9", cap(s.snake))
	}
}

// TestInvariantsUnderRandomPlay drives many games with random directions and
// checks every law of the tick transition after each step.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	dirs := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

	for seed := int64(1); seed <= 40; seed++ {
		s := newTestState(t, 6, 7, seed)
		rng := rand.New(rand.NewSource(seed * 7919))

		for step := 0; step < 500 && !s.Outcome().Terminal(); step++ {
			dir := dirs[rng.Intn(len(dirs))]
			prevLen := s.Len()
			prevTail := s.snake[prevLen-1]
			target := s.Head().Step(dir, s.grid.Cols(), s.grid.Rows())
			wasBody := s.grid.At(target) == core.CellSnake

			out := s.Tick(dir)

			if (out == OutcomeLost) != wasBody {
				t.Fatalf("seed %d step %d: outcome %v but target body=%v", seed, step, out, wasBody)
			}
			if out == OutcomeLost {
				break
			}
			if err := s.Validate(); err != nil {
				t.Fatalf("seed %d step %d: %v", seed, step, err)
			}
			switch s.Len() {
			case prevLen:
			case prevLen + 1:
				if tail := s.snake[s.Len()-1]; tail != prevTail {
					t.Fatalf("seed %d step %d: grew with tail %+v, expected %+v", seed, step, tail, prevTail)
				}
			default:
				t.Fatalf("seed %d step %d: length jumped %d -> %d", seed, step, prevLen, s.Len())
			}
			if (out == OutcomeWon) != (s.Len() == s.grid.Size()) {
				t.Fatalf("seed %d step %d: outcome %v with length %d", seed, step, out, s.Len())
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots.
	g1 := newTestState(t, refRows, refCols, 12345)
	g2 := newTestState(t, refRows, refCols, 12345)

	dir := core.DirUp
	for i := 0; i < 100; i++ {
		if i == 20 {
			dir = core.DirRight
		}
		if i == 40 {
			dir = core.DirDown
		}
		g1.Tick(dir)
		g2.Tick(dir)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshot mismatch:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeWon.String() != "won" || OutcomeLost.String() != "lost" {
		t.Error("unexpected outcome names")
	}
	if OutcomeContinue.Terminal() {
		t.Error("continue is not terminal")
	}
}
