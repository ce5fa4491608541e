package snake

import (
	"fmt"

	"github.com/vovakirdan/torsnake/internal/core"
)

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      core.Direction
	FoodX    int // -1 when no fruit is on the board
	FoodY    int
	Outcome  Outcome
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	foodX, foodY := -1, -1
	if s.hasFruit {
		foodX, foodY = s.fruit.X, s.fruit.Y
	}
	return Snapshot{
		Tick:     s.tick,
		Score:    s.score,
		SnakeLen: len(s.snake),
		HeadX:    s.snake[0].X,
		HeadY:    s.snake[0].Y,
		Dir:      s.direction,
		FoodX:    foodX,
		FoodY:    foodY,
		Outcome:  s.outcome,
	}
}

// DebugState returns a one-line summary of the game for debug logs.
func (s *State) DebugState() string {
	snap := s.Snapshot()
	return fmt.Sprintf("tick=%d outcome=%s score=%d len=%d head=(%d,%d) dir=%s food=(%d,%d)",
		snap.Tick, snap.Outcome, snap.Score, snap.SnakeLen,
		snap.HeadX, snap.HeadY, snap.Dir, snap.FoodX, snap.FoodY)
}
