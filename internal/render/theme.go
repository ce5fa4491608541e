// Package render draws the snake board onto a terminal. It keeps the last
// frame it drew and only rewrites cells whose content changed.
package render

import (
	"github.com/vovakirdan/torsnake/internal/config"
	"github.com/vovakirdan/torsnake/internal/core"
)

// Glyph is a single colored character.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Theme maps cell kinds to glyphs. It is a plain value and never mutated
// after construction.
type Theme struct {
	Empty   Glyph
	Snake   Glyph
	Fruit   Glyph
	Border  Glyph
	Unknown Glyph
}

// DefaultTheme returns the theme of the built-in configuration.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.Default())
}

// ThemeFromConfig builds a theme from validated configuration.
// Unparseable colors fall back to the default color.
func ThemeFromConfig(cfg config.Config) Theme {
	color := func(name string) core.Color {
		c, err := core.ParseColor(name)
		if err != nil {
			return core.ColorDefault
		}
		return c
	}
	return Theme{
		Empty:   Glyph{Rune: config.Glyph(cfg.Glyphs.Empty, ' ')},
		Snake:   Glyph{Rune: config.Glyph(cfg.Glyphs.Snake, 'o'), Color: color(cfg.Colors.Snake)},
		Fruit:   Glyph{Rune: config.Glyph(cfg.Glyphs.Fruit, '*'), Color: color(cfg.Colors.Fruit)},
		Border:  Glyph{Rune: config.Glyph(cfg.Glyphs.Border, '#'), Color: color(cfg.Colors.Border)},
		Unknown: Glyph{Rune: config.Glyph(cfg.Glyphs.Unknown, '?')},
	}
}

// For returns the glyph for a cell kind. Unexpected kinds get the
// Unknown glyph.
func (t Theme) For(kind core.CellKind) Glyph {
	switch kind {
	case core.CellEmpty:
		return t.Empty
	case core.CellSnake:
		return t.Snake
	case core.CellFruit:
		return t.Fruit
	default:
		return t.Unknown
	}
}
