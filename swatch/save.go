package swatch

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const jpegQuality = 95

// Encode writes swatch to w in requested format: "svg" or any raster format
// known to imaging (png, jpeg, gif, tiff, bmp).
func Encode(w io.Writer, format string, cells []Cell, l Layout) error {
	if strings.EqualFold(format, "svg") {
		_, err := BuildSVG(cells, l).WriteTo(w)
		return err
	}

	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("unsupported swatch format '%s': %w", format, err)
	}

	img, err := Rasterize(cells, l)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, f, imaging.PNGCompressionLevel(png.BestCompression), imaging.JPEGQuality(jpegQuality))
}

// Save writes swatch to file, format is selected by file extension.
func Save(fname string, cells []Cell, l Layout) (err error) {
	ext := strings.TrimPrefix(filepath.Ext(fname), ".")
	if ext == "" {
		return fmt.Errorf("unable to select swatch format for '%s': no file extension", fname)
	}

	out, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create swatch file '%s': %w", fname, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(fname)
		}
	}()

	return Encode(out, ext, cells, l)
}
