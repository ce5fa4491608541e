// Package terminal runs a game on the local terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/torsnake/internal/config"
	"github.com/vovakirdan/torsnake/internal/input"
	"github.com/vovakirdan/torsnake/internal/loop"
	"github.com/vovakirdan/torsnake/internal/render"
)

// Play puts the terminal in raw mode, plays one game and restores the
// terminal before returning.
func Play(ctx context.Context, cfg config.Config, logger *log.Logger) (loop.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return loop.Result{}, fmt.Errorf("terminal: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return loop.Result{}, fmt.Errorf("terminal: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	return Run(ctx, screen, cfg, logger)
}

// Run plays one game on an initialized screen. The caller owns the screen.
func Run(ctx context.Context, screen tcell.Screen, cfg config.Config, logger *log.Logger) (loop.Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := screen.Size()
	if err := loop.Fit(cfg, w, h); err != nil {
		return loop.Result{}, err
	}
	screen.HideCursor()
	screen.Clear()

	src := input.NewScreenSource(screen)
	defer src.Close()

	d, err := loop.New(cfg, src, render.NewScreenSink(screen), logger)
	if err != nil {
		return loop.Result{}, err
	}
	return d.Run(ctx)
}
