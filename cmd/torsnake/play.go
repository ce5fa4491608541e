package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/torsnake/internal/loop"
	"github.com/vovakirdan/torsnake/internal/platform/terminal"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a game on the current terminal.

Controls:
  W/Up      - Move up
  A/Left    - Move left
  S/Down    - Move down
  D/Right   - Move right
  Ctrl+C    - Quit

The snake keeps moving in the last direction pressed. Turning straight
back into your own neck counts as a collision.

Examples:
  torsnake play
  torsnake play --seed 42
  torsnake play --config ./my-snake.yaml --log ./snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("torsnake: play needs an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger("torsnake")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	res, err := terminal.Play(ctx, cfg, logger)
	if err != nil {
		logger.Error("game failed", "error", err)
		return err
	}

	switch res.Outcome {
	case loop.OutcomeWon:
		fmt.Printf("You won! The snake filled the board in %d ticks.\n", res.Ticks)
	case loop.OutcomeLost:
		fmt.Printf("Game over. Length %d, score %d.\n", res.Length, res.Score)
	default:
		fmt.Printf("Quit. Length %d, score %d.\n", res.Length, res.Score)
	}
	return nil
}
