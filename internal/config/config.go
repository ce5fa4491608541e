// Package config provides YAML-based configuration loading for the snake
// game: grid dimensions, tick timing, display glyphs and colors.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/torsnake/internal/core"
)

// Config contains all tunable parameters of a game run.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Glyphs GlyphConfig  `yaml:"glyphs"`
	Colors ColorConfig  `yaml:"colors"`
	Fruit  FruitConfig  `yaml:"fruit"`
	Seed   int64        `yaml:"seed"` // 0 means use current time
}

// GridConfig defines the play area dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the tick cadence and the input poll interval.
type TimingConfig struct {
	Tick      time.Duration `yaml:"tick"`
	InputPoll time.Duration `yaml:"input_poll"`
}

// GlyphConfig defines the characters drawn for each cell kind.
// Each value must be exactly one character.
type GlyphConfig struct {
	Empty   string `yaml:"empty"`
	Snake   string `yaml:"snake"`
	Fruit   string `yaml:"fruit"`
	Border  string `yaml:"border"`
	Unknown string `yaml:"unknown"`
}

// ColorConfig defines foreground colors by palette name (see core.ParseColor).
type ColorConfig struct {
	Snake  string `yaml:"snake"`
	Fruit  string `yaml:"fruit"`
	Border string `yaml:"border"`
}

// FruitConfig tunes the fruit placer.
type FruitConfig struct {
	// MaxAttempts caps rejection sampling. 0 derives a cap from the grid size.
	MaxAttempts int `yaml:"max_attempts"`
}

// Cells returns the number of cells on the board.
func (c Config) Cells() int {
	return c.Grid.Rows * c.Grid.Cols
}

// FruitAttempts returns the effective rejection-sampling cap.
func (c Config) FruitAttempts() int {
	if c.Fruit.MaxAttempts > 0 {
		return c.Fruit.MaxAttempts
	}
	return 64 * c.Cells()
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	var errs []error

	// A single row or column wraps the head onto itself on the first turn.
	if c.Grid.Rows < 2 || c.Grid.Cols < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Rows, c.Grid.Cols))
	}
	if c.Timing.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick interval must be positive, got %s", c.Timing.Tick))
	}
	if c.Timing.InputPoll <= 0 {
		errs = append(errs, fmt.Errorf("input poll interval must be positive, got %s", c.Timing.InputPoll))
	}
	if n := c.Fruit.MaxAttempts; n != 0 && n < c.Cells() {
		errs = append(errs, fmt.Errorf("fruit max_attempts must be 0 or at least rows*cols (%d), got %d", c.Cells(), n))
	}

	glyphs := []struct{ name, value string }{
		{"empty", c.Glyphs.Empty},
		{"snake", c.Glyphs.Snake},
		{"fruit", c.Glyphs.Fruit},
		{"border", c.Glyphs.Border},
		{"unknown", c.Glyphs.Unknown},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			errs = append(errs, fmt.Errorf("glyph %s must be a single character, got %q", g.name, g.value))
		}
	}

	for _, name := range []string{c.Colors.Snake, c.Colors.Fruit, c.Colors.Border} {
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

// Glyph returns the first rune of a glyph string, or fallback if empty.
func Glyph(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
