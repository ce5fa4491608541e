package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/torsnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 15x17 board ticking every
// 100ms with plain ASCII glyphs.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows: 15,
			Cols: 17,
		},
		Timing: TimingConfig{
			Tick:      100 * time.Millisecond,
			InputPoll: 50 * time.Millisecond,
		},
		Glyphs: GlyphConfig{
			Empty:   " ",
			Snake:   "o",
			Fruit:   "*",
			Border:  "#",
			Unknown: "?",
		},
		Colors: ColorConfig{
			Snake:  "bright_green",
			Fruit:  "bright_red",
			Border: "gray",
		},
	}
}
