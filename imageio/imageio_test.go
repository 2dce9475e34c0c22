package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func checkerboard(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.RGBA{0xff, 0xff, 0xff, 0xff})
			}
		}
	}
	return img
}

func assertSamePixels(t *testing.T, want image.Image, got image.Image) {
	t.Helper()
	if want.Bounds().Size() != got.Bounds().Size() {
		t.Fatalf("size mismatch: %v vs %v", want.Bounds(), got.Bounds())
	}
	wb, gb := want.Bounds(), got.Bounds()
	for y := 0; y < wb.Dy(); y++ {
		for x := 0; x < wb.Dx(); x++ {
			w := color.NRGBAModel.Convert(want.At(wb.Min.X+x, wb.Min.Y+y))
			g := color.NRGBAModel.Convert(got.At(gb.Min.X+x, gb.Min.Y+y))
			if w != g {
				t.Fatalf("pixel (%d, %d): expected %v got %v", x, y, w, g)
			}
		}
	}
}

func TestLosslessRoundTrip(t *testing.T) {
	src := checkerboard(16, 6)
	for _, name := range []string{"sheet.png", "sheet.PNG", "sheet.tif", "sheet.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Save(path, src); err != nil {
				t.Fatal(err)
			}
			img, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			assertSamePixels(t, src, img)
		})
	}
}

func TestOtherFormats(t *testing.T) {
	src := checkerboard(16, 6)
	for _, name := range []string{"sheet.bmp", "sheet.gif", "sheet.jpg", "sheet.jpeg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Save(path, src); err != nil {
				t.Fatal(err)
			}
			img, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Size() != src.Bounds().Size() {
				t.Errorf("size mismatch: %v", img.Bounds())
			}
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	for _, name := range []string{"sheet.webp", "sheet"} {
		t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
			dir := t.TempDir()
			err := Save(filepath.Join(dir, name), checkerboard(1, 1))
			var uerr *UnsupportedFormatError
			if !errors.As(err, &uerr) {
				t.Fatalf("expected *UnsupportedFormatError, got %v", err)
			}
			if CheckFormat(name) == nil {
				t.Error("CheckFormat should fail")
			}
			entries, _ := os.ReadDir(dir)
			if len(entries) != 0 {
				t.Errorf("expected no files, found %d", len(entries))
			}
		})
	}
}

func TestFailedEncodeLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.png")

	// png rejects zero-sized images
	if err := Save(path, image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Fatal("expected an error for an empty image")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files, found %v", entries[0].Name())
	}
}

func TestPreservesAlpha(t *testing.T) {
	for name, want := range map[string]bool{
		"a.png": true, "a.BMP": true, "a.tiff": true,
		"a.jpg": false, "a.JPEG": false, "a.gif": false,
	} {
		if got := PreservesAlpha(name); got != want {
			t.Errorf("%s: expected %v", name, want)
		}
	}
}

func TestOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	src := checkerboard(4, 4)
	if err := Save(path, src); err != nil {
		t.Fatal(err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	assertSamePixels(t, src, img)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
