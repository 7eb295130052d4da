package raster

import "math"

// StageFunc is a pure buffer transform: it reads its input Buffer and the
// run Settings and returns a new Buffer, leaving the input untouched.
type StageFunc func(*Buffer, Settings) *Buffer

// Stage pairs a transform with a name for logging and per-stage testing.
type Stage struct {
	Name  string
	Apply StageFunc
}

// Grayscale converts every pixel to its ITU-R BT.601 luminance,
// gray = round(0.299*R + 0.587*G + 0.114*B), written into R, G and B.
// Alpha is untouched. Applying Grayscale twice equals applying it once.
func Grayscale(b *Buffer, _ Settings) *Buffer {
	out := b.Clone()
	for i := 0; i < len(out.Pix); i += pixelStride {
		gray := clampChannel(0.299*float64(out.Pix[i]) +
			0.587*float64(out.Pix[i+1]) +
			0.114*float64(out.Pix[i+2]))
		out.Pix[i] = gray
		out.Pix[i+1] = gray
		out.Pix[i+2] = gray
	}
	return out
}

// AdjustContrast remaps every color channel as
// v' = clamp(0, 255, (v-128)*contrast + 128 + brightness).
// With contrast 1 and brightness 0 it is the identity transform.
func AdjustContrast(b *Buffer, s Settings) *Buffer {
	out := b.Clone()
	// Channel values repeat, so precompute the 256-entry remap once.
	var table [256]uint8
	for v := 0; v < 256; v++ {
		table[v] = clampChannel((float64(v)-128)*s.Contrast + 128 + float64(s.Brightness))
	}
	for i := 0; i < len(out.Pix); i += pixelStride {
		out.Pix[i] = table[out.Pix[i]]
		out.Pix[i+1] = table[out.Pix[i+1]]
		out.Pix[i+2] = table[out.Pix[i+2]]
	}
	return out
}

// GaussianBlur smooths the buffer with a separable Gaussian of
// sigma = radius/2 to suppress pixel noise before gradient computation.
// Border pixels are blurred against their nearest valid neighbors, never
// cropped. A radius of zero returns an unmodified copy.
func GaussianBlur(b *Buffer, s Settings) *Buffer {
	kernel := gaussianKernel(s.GaussianRadius)
	if kernel == nil {
		return b.Clone()
	}
	half := len(kernel) / 2

	// Horizontal pass.
	tmp := b.blank()
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			var r, g, bl float64
			for k := -half; k <= half; k++ {
				px := clamp(x+k, 0, b.Width-1)
				i := b.offset(px, y)
				w := kernel[k+half]
				r += w * float64(b.Pix[i])
				g += w * float64(b.Pix[i+1])
				bl += w * float64(b.Pix[i+2])
			}
			i := tmp.offset(x, y)
			tmp.Pix[i] = clampChannel(r)
			tmp.Pix[i+1] = clampChannel(g)
			tmp.Pix[i+2] = clampChannel(bl)
			tmp.Pix[i+3] = b.Pix[b.offset(x, y)+3]
		}
	}

	// Vertical pass.
	out := b.blank()
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			var r, g, bl float64
			for k := -half; k <= half; k++ {
				py := clamp(y+k, 0, b.Height-1)
				i := tmp.offset(x, py)
				w := kernel[k+half]
				r += w * float64(tmp.Pix[i])
				g += w * float64(tmp.Pix[i+1])
				bl += w * float64(tmp.Pix[i+2])
			}
			i := out.offset(x, y)
			out.Pix[i] = clampChannel(r)
			out.Pix[i+1] = clampChannel(g)
			out.Pix[i+2] = clampChannel(bl)
			out.Pix[i+3] = tmp.Pix[tmp.offset(x, y)+3]
		}
	}
	return out
}

// gaussianKernel builds a normalized 1D Gaussian for the given radius, or
// nil when the radius is too small to change anything.
func gaussianKernel(radius float64) []float64 {
	sigma := radius / 2
	if sigma < 1e-3 {
		return nil
	}
	half := int(math.Ceil(2 * sigma))
	kernel := make([]float64, 2*half+1)
	var sum float64
	for i := -half; i <= half; i++ {
		w := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+half] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// sobelX and sobelY are the horizontal and vertical 3x3 gradient kernels.
var sobelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float64{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// DetectEdges computes the Sobel gradient magnitude on the red channel
// (the luminance proxy after Grayscale) and thresholds it: pixels whose
// magnitude exceeds Settings.EdgeThreshold become ink (0), everything else
// becomes background (255).
//
// The 3x3 operator leaves the one-pixel border ring undefined, so the ring
// is explicitly set to background; otherwise the image boundary itself
// would register as a spurious edge.
func DetectEdges(b *Buffer, s Settings) *Buffer {
	out := b.blank()
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if x == 0 || y == 0 || x == b.Width-1 || y == b.Height-1 {
				out.SetGray(x, y, 255)
				continue
			}
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := float64(b.Gray(x+kx, y+ky))
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			if math.Sqrt(gx*gx+gy*gy) > s.EdgeThreshold {
				out.SetGray(x, y, 0)
			} else {
				out.SetGray(x, y, 255)
			}
		}
	}
	return out
}

// Dilate grows ink regions: every pixel takes the minimum (darkest) value
// in its (2r+1) square neighborhood, r = Settings.MorphologyRadius.
func Dilate(b *Buffer, s Settings) *Buffer {
	return neighborhood(b, s.MorphologyRadius, func(best, v uint8) bool { return v < best })
}

// Erode shrinks ink regions: every pixel takes the maximum (brightest)
// value in its (2r+1) square neighborhood.
func Erode(b *Buffer, s Settings) *Buffer {
	return neighborhood(b, s.MorphologyRadius, func(best, v uint8) bool { return v > best })
}

// neighborhood applies a min/max-style selection over a (2r+1) square
// window with clamped borders. better reports whether v should replace the
// current selection.
func neighborhood(b *Buffer, r int, better func(best, v uint8) bool) *Buffer {
	out := b.blank()
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			best := b.Gray(x, y)
			for ky := -r; ky <= r; ky++ {
				for kx := -r; kx <= r; kx++ {
					v := b.Gray(clamp(x+kx, 0, b.Width-1), clamp(y+ky, 0, b.Height-1))
					if better(best, v) {
						best = v
					}
				}
			}
			out.SetGray(x, y, best)
		}
	}
	return out
}

// Open performs morphological opening — erosion followed by dilation — for
// the number of rounds selected by Settings.Complexity. Opening removes
// isolated ink speckles without adding ink outside the original regions;
// zero rounds (complex mode) is a no-op.
func Open(b *Buffer, s Settings) *Buffer {
	out := b
	for i := 0; i < s.Complexity.OpeningRounds(); i++ {
		out = Dilate(Erode(out, s), s)
	}
	if out == b {
		return b.Clone()
	}
	return out
}

// Thicken applies the extra dilation passes selected by
// Settings.LineWeight: Iterations()-1 passes, so thin and medium weights
// leave the buffer unchanged.
func Thicken(b *Buffer, s Settings) *Buffer {
	passes := s.LineWeight.Iterations() - 1
	out := b
	for i := 0; i < passes; i++ {
		out = Dilate(out, s)
	}
	if out == b {
		return b.Clone()
	}
	return out
}

// Binarize forces every pixel to pure ink (0) or pure background (255)
// using the fixed 127 midpoint, guaranteeing strictly two-valued output
// for the region tracer. Alpha is forced to opaque. Idempotent.
func Binarize(b *Buffer, _ Settings) *Buffer {
	out := b.blank()
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Gray(x, y) > 127 {
				out.SetGray(x, y, 255)
			} else {
				out.SetGray(x, y, 0)
			}
		}
	}
	return out
}
