// Package preview renders the conversion output for human inspection: the
// processed raster image, a per-region colored overlay for debugging the
// tracer, and a single-image SVG built from the curve-command strings.
// Page layout, pagination and multi-image containers stay out of scope.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/anthonynsimon/bild/imgio"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/greyline/pagetrace/internal/raster"
	"github.com/greyline/pagetrace/internal/vector"
)

// Render copies the processed buffer into a standard image for encoding.
func Render(b *raster.Buffer) image.Image {
	return b.ToImage()
}

// Overlay draws each extracted path's simplified polyline in a distinct
// hue on a white canvas of the given dimensions. One color per region
// makes it obvious when the tracer merged or split regions unexpectedly.
func Overlay(width, height int, paths []vector.Path) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	for i, p := range paths {
		c := regionColor(i, len(paths))
		pts := p.Points
		for j := 1; j < len(pts); j++ {
			drawLine(img, pts[j-1], pts[j], c)
		}
	}
	return img
}

// regionColor spreads hues evenly around the color wheel so neighboring
// regions stay visually distinct.
func regionColor(i, n int) color.NRGBA {
	if n < 1 {
		n = 1
	}
	hue := float64(i) * 360.0 / float64(n)
	r, g, b := colorful.Hsv(hue, 0.85, 0.80).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// drawLine draws a straight segment between two pixel-space points using
// fixed-step interpolation. Preview quality only; no anti-aliasing.
func drawLine(img *image.NRGBA, a, b vector.Point, c color.NRGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(max64(abs64(dx), abs64(dy))) + 1
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := int(a.X + dx*t + 0.5)
		y := int(a.Y + dy*t + 0.5)
		if image.Pt(x, y).In(img.Rect) {
			img.SetNRGBA(x, y, c)
		}
	}
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// SavePNG encodes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// ParseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func ParseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length: %d", len(hex))
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
