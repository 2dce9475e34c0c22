package bdfsheet

import (
	"fmt"
	"image"
)

// GlyphMissingError is returned by Compose when the font has no glyph for a
// printable code point.
type GlyphMissingError struct {
	Rune rune
}

func (e *GlyphMissingError) Error() string {
	return fmt.Sprintf("glyph %q (%U) not found", e.Rune, e.Rune)
}

// GeometryMismatchError is returned by Compose when a glyph is not the same
// size as the space glyph. Sizes are width,height pairs.
type GeometryMismatchError struct {
	Rune     rune
	Got      image.Point
	Expected image.Point
}

func (e *GeometryMismatchError) Error() string {
	return fmt.Sprintf("glyph %q (%U) is %dx%d, expected %dx%d",
		e.Rune, e.Rune, e.Got.X, e.Got.Y, e.Expected.X, e.Expected.Y)
}
