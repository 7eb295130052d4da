package raster

import (
	"errors"
	"fmt"
	"image"
)

// pixelStride is the number of channel bytes per pixel (R, G, B, A).
const pixelStride = 4

// ErrInvalidInput reports a zero-area or malformed pixel buffer.
//
// It is returned (wrapped) by Pipeline.Run before any stage executes, and
// by Buffer.Validate. A batch caller should treat it as fatal for the
// offending image only.
var ErrInvalidInput = errors.New("invalid input buffer")

// Buffer owns raw per-pixel channel data for one image.
//
// Pix holds interleaved R,G,B,A bytes in row-major order; its length is
// always Width*Height*4. Filter stages never mutate their input Buffer —
// each stage allocates and returns a fresh one — so a Buffer handed to the
// pipeline remains valid afterwards.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a Buffer of the given dimensions with all channels zero.
// Dimensions must both be positive.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*pixelStride),
	}, nil
}

// Validate checks the Buffer invariant: positive dimensions and a channel
// slice of exactly Width*Height*4 bytes.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidInput)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, b.Width, b.Height)
	}
	if want := b.Width * b.Height * pixelStride; len(b.Pix) != want {
		return fmt.Errorf("%w: channel slice length %d, want %d", ErrInvalidInput, len(b.Pix), want)
	}
	return nil
}

// Clone returns a deep copy of the Buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// blank returns a new Buffer of the same dimensions with zeroed channels.
func (b *Buffer) blank() *Buffer {
	return &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]uint8, len(b.Pix)),
	}
}

// offset returns the index of pixel (x, y)'s red channel in Pix.
// No bounds checking is performed; callers clamp first.
func (b *Buffer) offset(x, y int) int {
	return (y*b.Width + x) * pixelStride
}

// Gray returns the red channel at (x, y). After the grayscale stage all
// three color channels are equal, so red serves as the luminance proxy.
func (b *Buffer) Gray(x, y int) uint8 {
	return b.Pix[b.offset(x, y)]
}

// SetGray writes v into R, G and B at (x, y) and forces alpha to opaque.
func (b *Buffer) SetGray(x, y int, v uint8) {
	i := b.offset(x, y)
	b.Pix[i] = v
	b.Pix[i+1] = v
	b.Pix[i+2] = v
	b.Pix[i+3] = 255
}

// Ink reports whether the pixel at (x, y) is classified as foreground
// (dark) after binarization: channel value below 128.
func (b *Buffer) Ink(x, y int) bool {
	return b.Pix[b.offset(x, y)] < 128
}

// FromImage decodes a standard library image into a fresh Buffer.
//
// The image's bounds origin is normalized to (0,0). Channel values are
// reduced from 16-bit to 8-bit precision, matching what every supported
// decoder produces for 8-bit sources.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, bl, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			i := buf.offset(x, y)
			buf.Pix[i] = uint8(r >> 8)
			buf.Pix[i+1] = uint8(g >> 8)
			buf.Pix[i+2] = uint8(bl >> 8)
			buf.Pix[i+3] = uint8(a >> 8)
		}
	}
	return buf, nil
}

// ToImage copies the Buffer into an *image.NRGBA sharing no memory with it.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution and neighborhood operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// clampChannel constrains a float to the 0-255 channel range and rounds it.
func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
