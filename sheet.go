package bdfsheet

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"
)

// SheetFont is a Font backed by a composed sprite sheet. It recovers the
// original glyph bitmaps by slicing the sheet into its grid and treating
// every pixel that is at least half opaque as lit.
//
// Since a SheetFont is itself a Font, composing it again yields the same
// sheet it was built from.
type SheetFont struct {
	img        image.Image
	cellWidth  int
	cellHeight int
}

// NewSheetFont wraps a sheet image whose cells are w by h pixels. The image
// bounds must be exactly Columns*w by Rows*h.
func NewSheetFont(img image.Image, w, h int) (*SheetFont, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("invalid cell size %dx%d", w, h)
	}
	b := img.Bounds()
	if b.Dx() != Columns*w || b.Dy() != Rows*h {
		return nil, fmt.Errorf("sheet is %dx%d, expected %dx%d for %dx%d cells",
			b.Dx(), b.Dy(), Columns*w, Rows*h, w, h)
	}
	return &SheetFont{img: img, cellWidth: w, cellHeight: h}, nil
}

// CellSize returns the width and height of a single glyph.
func (s *SheetFont) CellSize() (int, int) {
	return s.cellWidth, s.cellHeight
}

// Glyph returns the cell for r. Only FirstRune..LastRune are present.
func (s *SheetFont) Glyph(r rune) (Glyph, bool) {
	if r < FirstRune || r > LastRune {
		return nil, false
	}
	o := CellOrigin(r, s.cellWidth, s.cellHeight).Add(s.img.Bounds().Min)
	return &sheetGlyph{s.img, o, s.cellWidth, s.cellHeight}, true
}

// DrawRune uses this SheetFont to display a single rune in the provided color
// and position in Drawable. The x,y position represents the top-left corner of
// the rune. If the rune has no cell on the sheet, DrawRune returns false and no
// drawing is done.
func (s *SheetFont) DrawRune(dr Drawable, x, y int, c rune, clr color.Color) bool {
	g, ok := s.Glyph(c)
	if !ok {
		return false
	}
	DrawGlyph(dr, x, y, g, clr)
	return true
}

// DrawString draws s starting at x,y, advancing one cell width per rune.
// Runes without a cell leave a blank cell behind.
func (s *SheetFont) DrawString(dr Drawable, x, y int, str string, clr color.Color) {
	for _, c := range str {
		s.DrawRune(dr, x, y, c, clr)
		x += s.cellWidth
	}
}

// MeasureString returns the width in pixels of str as drawn by DrawString.
func (s *SheetFont) MeasureString(str string) int {
	return utf8.RuneCountInString(str) * s.cellWidth
}

type sheetGlyph struct {
	img    image.Image
	origin image.Point
	w, h   int
}

func (g *sheetGlyph) Width() int  { return g.w }
func (g *sheetGlyph) Height() int { return g.h }

func (g *sheetGlyph) Get(x, y int) bool {
	_, _, _, a := g.img.At(g.origin.X+x, g.origin.Y+y).RGBA()
	return a >= 0x8000
}
