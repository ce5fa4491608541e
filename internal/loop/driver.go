// Package loop runs a snake game at a fixed tick rate: it reads the input
// slot once per tick, advances the simulation and redraws what changed.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/torsnake/internal/config"
	"github.com/vovakirdan/torsnake/internal/games/snake"
	"github.com/vovakirdan/torsnake/internal/input"
	"github.com/vovakirdan/torsnake/internal/render"
)

// Outcome is how a game run ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
	OutcomeQuit Outcome = "quit" // exit signal or cancelled context
)

// ErrBoardTooSmall is returned when a terminal cannot show the whole board.
var ErrBoardTooSmall = errors.New("loop: terminal too small for the board")

// Result summarizes a finished run.
type Result struct {
	Outcome  Outcome
	Length   int
	Score    int
	Ticks    uint64
	Duration time.Duration
}

// Driver owns one game run. The State and Renderer are used only from the
// goroutine calling Run; the Reader runs on its own goroutine and talks to
// the loop through Slot and Exit.
type Driver struct {
	State    *snake.State
	Renderer *render.Renderer
	Reader   *input.Reader
	Slot     *input.Slot
	Exit     *atomic.Bool
	Tick     time.Duration
	Logger   *log.Logger
}

// New builds a driver for one game described by cfg, reading keys from src
// and drawing onto sink. A zero cfg.Seed seeds from the clock.
func New(cfg config.Config, src input.Source, sink render.Sink, logger *log.Logger) (*Driver, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols
	state, err := snake.New(rows, cols, rand.New(rand.NewSource(seed)), cfg.FruitAttempts())
	if err != nil {
		return nil, fmt.Errorf("loop: %w", err)
	}
	logger.Debug("new game", "rows", rows, "cols", cols, "seed", seed)

	slot := &input.Slot{}
	exit := &atomic.Bool{}
	return &Driver{
		State:    state,
		Renderer: render.New(sink, render.ThemeFromConfig(cfg), rows, cols),
		Reader:   input.NewReader(src, slot, exit, cfg.Timing.InputPoll, logger),
		Slot:     slot,
		Exit:     exit,
		Tick:     cfg.Timing.Tick,
		Logger:   logger,
	}, nil
}

// Fit checks that a width x height terminal can hold the board of cfg,
// border and status line included.
func Fit(cfg config.Config, width, height int) error {
	needW, needH := cfg.Grid.Cols+2, cfg.Grid.Rows+3
	if width < needW || height < needH {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrBoardTooSmall, needW, needH, width, height)
	}
	return nil
}

// Run plays the game until it is won, lost or the exit signal is seen.
// It always stops and joins the reader before returning. Errors are fatal
// I/O failures from the input source or the output sink.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	start := time.Now()
	readerErr := make(chan error, 1)
	go func() { readerErr <- d.Reader.Run() }()

	outcome, runErr := d.run(ctx, logger)

	// Stop and join the reader before reporting anything.
	d.Exit.Store(true)
	inErr := <-readerErr

	res := Result{
		Outcome:  outcome,
		Length:   d.State.Len(),
		Score:    d.State.Score(),
		Ticks:    d.State.Ticks(),
		Duration: time.Since(start),
	}

	if runErr != nil {
		return res, runErr
	}
	if inErr != nil {
		return res, fmt.Errorf("loop: %w", inErr)
	}

	logger.Info("game over", "outcome", res.Outcome, "length", res.Length, "ticks", res.Ticks)
	logger.Debug("final state", "state", d.State.DebugState())
	return res, nil
}

func (d *Driver) run(ctx context.Context, logger *log.Logger) (Outcome, error) {
	if err := d.Renderer.DrawBoard(); err != nil {
		return OutcomeQuit, fmt.Errorf("loop: %w", err)
	}
	d.Renderer.SetStatus(d.status())
	if _, err := d.Renderer.Draw(d.State.Grid()); err != nil {
		return OutcomeQuit, fmt.Errorf("loop: %w", err)
	}

	timer := time.NewTimer(d.Tick)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("context cancelled", "error", ctx.Err())
			return OutcomeQuit, nil
		case <-timer.C:
		}
		tickStart := time.Now()

		// One snapshot per tick; later key presses wait for the next tick.
		sig := d.Slot.Load()
		dir, ok := sig.Direction()
		if !ok {
			return OutcomeQuit, nil
		}

		out := d.State.Tick(dir)
		d.Renderer.SetStatus(d.status())
		if _, err := d.Renderer.Draw(d.State.Grid()); err != nil {
			return OutcomeQuit, fmt.Errorf("loop: %w", err)
		}

		switch out {
		case snake.OutcomeLost:
			return OutcomeLost, nil
		case snake.OutcomeWon:
			return OutcomeWon, nil
		}

		// Sleep only for what is left of this tick.
		timer.Reset(max(0, d.Tick-time.Since(tickStart)))
	}
}

func (d *Driver) status() string {
	return fmt.Sprintf("Length: %d  Score: %d", d.State.Len(), d.State.Score())
}
