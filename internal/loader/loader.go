// Package loader is the external-decoder collaborator: it turns image
// files on disk into pixel buffers the core pipeline can consume. The core
// itself never opens files.
package loader

import (
	"fmt"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/greyline/pagetrace/internal/raster"
)

// Loader decodes image files into raster buffers.
type Loader struct {
	// MaxDimension, when positive, downscales any image whose width or
	// height exceeds it, preserving aspect ratio. This bounds the cost of
	// the whole pipeline at the decode boundary; zero disables the clamp.
	MaxDimension int
}

// Load decodes the file at path into a Buffer.
//
// JPEG EXIF orientation is applied during decode so portrait photos come
// out upright. Supported containers are PNG, JPEG, GIF, BMP, TIFF and
// WebP.
func (l Loader) Load(path string) (*raster.Buffer, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if l.MaxDimension > 0 {
		b := img.Bounds()
		if b.Dx() > l.MaxDimension || b.Dy() > l.MaxDimension {
			img = imaging.Fit(img, l.MaxDimension, l.MaxDimension, imaging.Lanczos)
		}
	}

	buf, err := raster.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", path, err)
	}
	return buf, nil
}
