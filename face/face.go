// Package face adapts bitmap font.Face implementations, such as
// basicfont.Face7x13, to the bdfsheet.Font interface.
package face

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/pbnjay/bdfsheet"
)

// Font wraps a font.Face. Glyph sizes are the destination rectangles the face
// reports at the zero dot, and a pixel is lit when its mask alpha is at least
// half intensity.
type Font struct {
	face font.Face
}

var _ bdfsheet.Font = (*Font)(nil)

// New returns a Font backed by f.
func New(f font.Face) *Font {
	return &Font{face: f}
}

// Glyph returns the face's glyph for r. Faces that substitute a fallback
// glyph for unknown runes report it as found.
func (f *Font) Glyph(r rune) (bdfsheet.Glyph, bool) {
	dr, mask, maskp, _, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok || mask == nil {
		return nil, false
	}
	return &glyph{mask: mask, origin: maskp, size: dr.Size()}, true
}

type glyph struct {
	mask   image.Image
	origin image.Point
	size   image.Point
}

func (g *glyph) Width() int  { return g.size.X }
func (g *glyph) Height() int { return g.size.Y }

func (g *glyph) Get(x, y int) bool {
	_, _, _, a := g.mask.At(g.origin.X+x, g.origin.Y+y).RGBA()
	return a >= 0x8000
}
