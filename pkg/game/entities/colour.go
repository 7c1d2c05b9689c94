package entities

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"fortress/pkg/engine/world"
)

// Palette colours shared by blocks and gateways
const (
	Red world.Colour = iota
	Orange
	Yellow
	Green
	Blue
	Purple
)

// paletteKeys holds the translation key of each palette colour, in palette order
var paletteKeys = []string{
	"COLOUR_RED",
	"COLOUR_ORANGE",
	"COLOUR_YELLOW",
	"COLOUR_GREEN",
	"COLOUR_BLUE",
	"COLOUR_PURPLE",
}

// PaletteLen is the number of colours the game knows how to show
var PaletteLen = len(paletteKeys)

// Palette returns the first size colours, in palette order
func Palette(size int) []world.Colour {
	if size > PaletteLen {
		size = PaletteLen
	}
	colours := make([]world.Colour, 0, size)
	for i := 0; i < size; i++ {
		colours = append(colours, world.Colour(i))
	}
	return colours
}

// ColourName returns the translated name of a palette colour
func ColourName(c world.Colour) string {
	if c < 0 || int(c) >= PaletteLen {
		return fmt.Sprintf("Colour %d", c)
	}
	return gotext.Get(paletteKeys[c])
}
