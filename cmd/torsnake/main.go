// torsnake is a snake game on a wrap-around board, played in the terminal.
//
// Usage:
//
//	torsnake [play]          - Play on the local terminal
//	torsnake serve           - Start SSH server for remote play
//	torsnake config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Configuration file (default: search standard locations)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--log <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/torsnake/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "torsnake",
	Short: "Snake on a torus, in your terminal",
	Long: `torsnake is a snake game whose board wraps around at every edge.

Eat fruit to grow. Running into your own body ends the game; filling
the whole board wins it.

Available commands:
  play     - Play on this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  torsnake
  torsnake play --seed 42
  torsnake serve --ssh :2222
  torsnake config > my-snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else random)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

// openLogger returns a debug logger writing to --log, or one that discards
// everything. The returned close function is never nil.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
