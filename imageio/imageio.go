// Package imageio saves and loads sheet images, picking the encoding from the
// file extension.
package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// UnsupportedFormatError is returned for paths whose extension has no encoder.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "no file extension to infer an image format from"
	}
	return fmt.Sprintf("unsupported image format %q", e.Ext)
}

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif":  encodeGIF,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func encoderFor(path string) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, &UnsupportedFormatError{Ext: ext}
	}
	return enc, nil
}

// CheckFormat returns an *UnsupportedFormatError if Save cannot encode to path.
func CheckFormat(path string) error {
	_, err := encoderFor(path)
	return err
}

// PreservesAlpha reports whether the format chosen for path keeps the alpha
// channel. JPEG has none and GIF keeps at most one transparent palette entry.
func PreservesAlpha(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".gif":
		return false
	}
	return true
}

// Save encodes img to path. The image is written to a temporary file next to
// path and renamed into place, so a failed encode never leaves a partial
// file behind. An existing file at path is replaced.
func Save(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := enc(tmp, img); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load decodes the image at path in any format Save can write.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
