package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvRows = "TORSNAKE_ROWS"
	EnvCols = "TORSNAKE_COLS"
	EnvTick = "TORSNAKE_TICK"
	EnvSeed = "TORSNAKE_SEED"
)

// Load loads the game configuration, applies environment overrides and
// validates the result.
// Search order: customPath -> ~/.torsnake/config.yaml -> ./configs/torsnake.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile resolves the YAML layer of the configuration.
// Files only need to set the keys they change; the rest keep their defaults.
func loadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := Default()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "torsnake.yaml")); err == nil {
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".torsnake", filename)
}

// ApplyEnv overrides cfg from TORSNAKE_* environment variables.
// A .env file in the working directory is loaded first if present;
// variables already set in the process environment take precedence over it.
func ApplyEnv(cfg *Config) error {
	//nolint:errcheck // A missing .env file is the common case
	godotenv.Load()

	if err := envInt(EnvRows, &cfg.Grid.Rows); err != nil {
		return err
	}
	if err := envInt(EnvCols, &cfg.Grid.Cols); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvTick); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a duration: %w", EnvTick, err)
		}
		cfg.Timing.Tick = d
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
