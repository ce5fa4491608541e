package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/torsnake/internal/core"
)

// ErrPlacementExhausted means the grid has no empty cell for fruit.
// Callers prevent this by checking for a full board first, so seeing it
// indicates a logic error rather than a game outcome.
var ErrPlacementExhausted = errors.New("snake: no empty cell found for fruit")

// FruitPlacer picks fruit locations uniformly among empty cells.
type FruitPlacer struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewFruitPlacer creates a placer drawing from rng.
// maxAttempts caps rejection sampling; values < 1 are treated as 1.
func NewFruitPlacer(rng *rand.Rand, maxAttempts int) *FruitPlacer {
	return &FruitPlacer{
		rng:         rng,
		maxAttempts: max(1, maxAttempts),
	}
}

// Place samples row and column independently until it hits an empty cell,
// marks that cell as fruit and returns it. If every sample lands on an
// occupied cell it picks uniformly among the empty cells instead, so only a
// full grid returns ErrPlacementExhausted.
func (f *FruitPlacer) Place(g *core.Grid) (core.Point, error) {
	for i := 0; i < f.maxAttempts; i++ {
		p := core.Point{
			X: f.rng.Intn(g.Cols()),
			Y: f.rng.Intn(g.Rows()),
		}
		if g.At(p) == core.CellEmpty {
			g.Set(p, core.CellFruit)
			return p, nil
		}
	}

	empty := g.Points(core.CellEmpty)
	if len(empty) == 0 {
		return core.Point{}, fmt.Errorf("%w after %d attempts", ErrPlacementExhausted, f.maxAttempts)
	}
	p := empty[f.rng.Intn(len(empty))]
	g.Set(p, core.CellFruit)
	return p, nil
}
