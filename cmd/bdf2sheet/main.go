// Command bdf2sheet opens a BDF format font and lays out its printable ASCII
// glyphs as a 16x6 sprite sheet image:
//
//	bdf2sheet font.bdf font.png
//
// The output format follows the image path's extension (.png, .bmp, .tif,
// .tiff, .gif, .jpg or .jpeg). An existing file is replaced.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/pbnjay/bdfsheet"
	"github.com/pbnjay/bdfsheet/bdf"
	"github.com/pbnjay/bdfsheet/imageio"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if len(args) != 3 {
		fmt.Fprintf(stderr, "Usage: %s <bdf_path> <image_path>\n", progName(args))
		return 1
	}

	log := newLogger(stderr)
	if err := convert(log, args[1], args[2]); err != nil {
		log.WithError(err).Error("conversion failed")
		return 1
	}
	return 0
}

func progName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "bdf2sheet"
	}
	return filepath.Base(args[0])
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func convert(log logrus.FieldLogger, bdfPath, imgPath string) error {
	// fail before reading the font if the sheet can't be written anyway
	if err := imageio.CheckFormat(imgPath); err != nil {
		return fmt.Errorf("writing %s: %w", imgPath, err)
	}
	if !imageio.PreservesAlpha(imgPath) {
		log.WithField("path", imgPath).Warn("output format drops transparency")
	}

	font, err := bdf.Open(bdfPath)
	if err != nil {
		return fmt.Errorf("loading font %s: %w", bdfPath, err)
	}
	log.WithFields(logrus.Fields{
		"font":   font.FontName,
		"glyphs": len(font.Glyphs),
	}).Debug("font loaded")

	img, err := bdfsheet.Compose(font)
	if err != nil {
		return fmt.Errorf("composing sheet from %s: %w", bdfPath, err)
	}

	if err := imageio.Save(imgPath, img); err != nil {
		return fmt.Errorf("writing %s: %w", imgPath, err)
	}
	log.WithFields(logrus.Fields{
		"path": imgPath,
		"size": img.Bounds().Size().String(),
	}).Debug("sheet written")
	return nil
}
