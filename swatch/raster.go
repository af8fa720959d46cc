package swatch

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"chartstyle/css"
)

// maxRasterDim is the maximum pixel dimension (width or height) allowed when
// rasterizing. Configuration permits swatches far larger than anything
// reasonable to allocate.
var maxRasterDim = 8192

// ErrTooLarge is returned when swatch dimensions exceed rasterization limits.
var ErrTooLarge = errors.New("swatch is too large to rasterize")

// Rasterize renders swatch at its intrinsic size. The SVG rasterizer does not
// support text, so captions are drawn on top of the result with a bitmap font.
func Rasterize(cells []Cell, l Layout) (*image.RGBA, error) {
	data, err := SVG(cells, l)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w > maxRasterDim || h > maxRasterDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, w, h)
	}
	w, h = max(w, 1), max(h, 1)

	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(toNRGBA(l.Background)), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	drawCaptions(dst, cells, l)
	return dst, nil
}

func drawCaptions(dst draw.Image, cells []Cell, l Layout) {
	face := basicfont.Face7x13
	ink := image.NewUniform(captionColor(l.Background))
	maxChars := max(l.CellSize/face.Advance, 1)

	for i, c := range cells {
		x, y := l.Origin(i)
		text := []rune(c.Path)
		if len(text) > maxChars {
			text = append(text[:maxChars-1], '~')
		}

		d := &font.Drawer{Dst: dst, Src: ink, Face: face}
		width := d.MeasureString(string(text)).Ceil()
		d.Dot = fixed.P(x+(l.CellSize-width)/2, y+l.CellSize+l.LabelHeight-4)
		d.DrawString(string(text))
	}
}

// captionColor picks black or white, whichever is readable on bg.
func captionColor(bg css.Color) color.Color {
	l, _, _ := colorful.Color{R: bg.R, G: bg.G, B: bg.B}.Lab()
	if bg.A < 0.5 || l > 0.5 {
		return color.Black
	}
	return color.White
}

func toNRGBA(c css.Color) color.NRGBA {
	b := func(v float64) uint8 { return uint8(math.Round(min(max(v, 0), 1) * 255)) }
	return color.NRGBA{R: b(c.R), G: b(c.G), B: b(c.B), A: b(c.A)}
}
