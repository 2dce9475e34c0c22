// Package bdf reads fonts in the Glyph Bitmap Distribution Format.
//
// Only the parts of the format needed to recover glyph bitmaps are
// interpreted; everything else is kept as plain strings or ignored.
// See https://www.adobe.com/content/dam/acom/en/devnet/font/pdfs/5005.BDF_Spec.pdf
package bdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbnjay/bdfsheet"
)

// Char represents a single glyph in the BDF font definition.
type Char struct {
	Name     string // "SPACE"
	Encoding rune   // 32, or -1 when the glyph has no standard encoding

	SWidth [2]int // scalable advance, 1/1000 of the point size
	DWidth [2]int // device advance in pixels

	BoundingBox [4]int   // Width, Height, X offset, Y offset
	Bitmap      [][]byte // [Height] rows, leftmost pixel in the MSB of the first byte
}

// Width is the glyph bitmap width in pixels (the BBX width).
func (c *Char) Width() int { return c.BoundingBox[0] }

// Height is the glyph bitmap height in pixels (the BBX height).
func (c *Char) Height() int { return c.BoundingBox[1] }

// Get reports whether the pixel at x,y is set.
func (c *Char) Get(x, y int) bool {
	return c.Bitmap[y][x>>3]&(0x80>>uint(x&7)) != 0
}

func (c *Char) String() string {
	s := make([]string, 0, c.Height())
	raster := make([]byte, c.Width())
	for y := 0; y < c.Height(); y++ {
		for x := range raster {
			raster[x] = ' '
			if c.Get(x, y) {
				raster[x] = 'X'
			}
		}
		s = append(s, fmt.Sprintf("%c  [%s]", c.Encoding, raster))
	}
	return strings.Join(s, "\n")
}

// Font represents a set of glyphs in the BDF font definition.
type Font struct {
	Version  string // "2.1"
	Comments string
	FontName string

	PointSize   int // font point size e.g. 8
	ResolutionX int // display resolution e.g. 72
	ResolutionY int

	BoundingBox [4]int // Width, Height, X offset, Y offset

	Properties map[string]string

	NumGlyphs int            // as declared by CHARS
	Chars     []*Char        // in file order, including unencoded glyphs
	Glyphs    map[rune]*Char // encoded glyphs; later duplicates win
}

var _ bdfsheet.Font = (*Font)(nil)

// Glyph returns the glyph encoded as r.
func (f *Font) Glyph(r rune) (bdfsheet.Glyph, bool) {
	ch, ok := f.Glyphs[r]
	if !ok {
		return nil, false
	}
	return ch, true
}

// Open reads the BDF font at path.
func Open(path string) (*Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
