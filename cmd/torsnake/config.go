package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/torsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the config file,
environment overrides and --seed are applied.

Environment overrides (also read from a .env file):
  ` + config.EnvRows + `, ` + config.EnvCols + `, ` + config.EnvTick + `, ` + config.EnvSeed,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
