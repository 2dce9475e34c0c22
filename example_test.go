package bdfsheet_test

import (
	"fmt"
	"image/color"

	"github.com/pbnjay/bdfsheet"
)

// boxFont draws every printable glyph as a 4x4 outline.
type boxFont struct{}

type box struct{}

func (box) Width() int  { return 4 }
func (box) Height() int { return 4 }
func (box) Get(x, y int) bool {
	return x == 0 || y == 0 || x == 3 || y == 3
}

func (boxFont) Glyph(r rune) (bdfsheet.Glyph, bool) {
	return box{}, r >= bdfsheet.FirstRune && r <= bdfsheet.LastRune
}

func ExampleCompose() {
	img, err := bdfsheet.Compose(boxFont{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(img.Bounds().Size())
	fmt.Println(img.At(0, 0) == color.Color(bdfsheet.White), img.RGBAAt(1, 1).A)
	// Output:
	// (64,24)
	// true 0
}

func ExampleSheetFont_DrawString() {
	img, _ := bdfsheet.Compose(boxFont{})
	sf, _ := bdfsheet.NewSheetFont(img, 4, 4)

	sd := &bdfsheet.StringDrawable{}
	sf.DrawString(sd, 0, 0, "ab", nil)
	fmt.Print(sd.PrefixString("// "))
	// Output:
	// // XXXXXXXX
	// // X  XX  X
	// // X  XX  X
	// // XXXXXXXX
}
