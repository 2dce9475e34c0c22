// Package bdfsheet lays out the printable ASCII glyphs of a fixed-size bitmap
// font as a single sprite sheet image. Glyphs 0x20 through 0x7E are placed
// left to right, top to bottom in a 16 column by 6 row grid where every cell
// is exactly one glyph in size. Lit glyph pixels are opaque white and every
// other pixel is fully transparent, so the sheet can be tinted at draw time.
//
// Fonts are consumed through the small Font and Glyph interfaces. The bdf
// subpackage loads BDF files, and the face subpackage adapts bitmap
// font.Face implementations such as basicfont.Face7x13.
package bdfsheet

import (
	"image"
	"image/color"
)

const (
	// FirstRune is the first glyph placed on a sheet (space).
	FirstRune rune = 0x20
	// LastRune is the last glyph placed on a sheet (tilde).
	LastRune rune = 0x7E

	// Columns and Rows give the sheet grid size in cells.
	Columns = 16
	Rows    = 6
)

// White is the color of every lit pixel on a sheet.
var White = color.RGBA{0xff, 0xff, 0xff, 0xff}

// Glyph is a rectangular 1-bit bitmap. Get reports whether the pixel at x,y
// is part of the glyph mark, for 0 <= x < Width() and 0 <= y < Height().
type Glyph interface {
	Width() int
	Height() int
	Get(x, y int) bool
}

// Font looks glyphs up by code point. The boolean result is false when the
// font has no glyph for r.
type Font interface {
	Glyph(r rune) (Glyph, bool)
}

// Drawable is an interface which supports setting an x,y coordinate to a color.
// *image.RGBA and StringDrawable both satisfy it.
type Drawable interface {
	Set(x, y int, c color.Color)
}

// DrawGlyph draws g into dr with its top-left corner at x,y. Drawable.Set is
// called once for each lit pixel in the glyph, leaving all other pixels in
// the Drawable as-is.
func DrawGlyph(dr Drawable, x, y int, g Glyph, clr color.Color) {
	w, h := g.Width(), g.Height()
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			if g.Get(xx, yy) {
				dr.Set(x+xx, y+yy, clr)
			}
		}
	}
}

// CellOrigin returns the top-left pixel of the sheet cell holding r when each
// cell is w by h pixels. r must be within FirstRune..LastRune.
func CellOrigin(r rune, w, h int) image.Point {
	i := int(r - FirstRune)
	return image.Pt(w*(i%Columns), h*(i/Columns))
}

// Compose builds the sprite sheet for f. The space glyph fixes the cell size
// and every other printable glyph must match it exactly. The first missing
// glyph or size mismatch aborts composition and no image is returned.
func Compose(f Font) (*image.RGBA, error) {
	ref, ok := f.Glyph(FirstRune)
	if !ok {
		return nil, &GlyphMissingError{Rune: FirstRune}
	}
	size := image.Pt(ref.Width(), ref.Height())

	img := image.NewRGBA(image.Rect(0, 0, Columns*size.X, Rows*size.Y))
	for r := FirstRune; r <= LastRune; r++ {
		g, ok := f.Glyph(r)
		if !ok {
			return nil, &GlyphMissingError{Rune: r}
		}
		if got := image.Pt(g.Width(), g.Height()); got != size {
			return nil, &GeometryMismatchError{Rune: r, Got: got, Expected: size}
		}

		o := CellOrigin(r, size.X, size.Y)
		DrawGlyph(img, o.X, o.Y, g, White)
	}
	return img, nil
}
