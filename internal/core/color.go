package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
}

// ParseColor looks up a color by its config name (e.g. "bright_green").
// An empty name is the default color.
func ParseColor(name string) (Color, error) {
	if name == "" {
		return ColorDefault, nil
	}
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorDefault, fmt.Errorf("core: unknown color %q", name)
	}
	return c, nil
}

// Code returns the ANSI 256-color palette index for the color.
// ColorDefault has no code and returns -1.
func (c Color) Code() int {
	switch c {
	case ColorDefault:
		return -1
	case ColorOrange:
		return 208
	case ColorGray:
		return 245
	}
	if c >= ColorBrightRed && c <= ColorBrightWhite {
		return int(c-ColorBrightRed) + 9
	}
	if c >= ColorRed && c <= ColorWhite {
		return int(c-ColorRed) + 1
	}
	return -1
}
