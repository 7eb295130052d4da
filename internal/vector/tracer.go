package vector

import (
	"errors"
	"fmt"

	"github.com/greyline/pagetrace/internal/raster"
)

// ErrNotBinarized reports a tracer precondition violation: the buffer
// handed to Extract was not strictly two-valued. This is a programmer
// error (the pipeline's binarize stage was skipped), not a property of
// the photograph.
var ErrNotBinarized = errors.New("buffer is not binarized")

// ErrContourTooLarge reports a contour that hit the configured point cap
// and was skipped. Other contours of the same image proceed.
var ErrContourTooLarge = errors.New("contour exceeds point cap")

// Options bounds and tunes vector extraction. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// MinContourPoints discards smaller traced regions as noise.
	MinContourPoints int

	// MaxContourPoints caps a single flood traversal, bounding memory on
	// pathological inputs (one huge connected region). A contour hitting
	// the cap is dropped, not truncated into a partial path.
	MaxContourPoints int

	// SimplifyTolerance is the Douglas–Peucker error bound in pixels.
	SimplifyTolerance float64
}

// DefaultOptions returns the extraction bounds used when the caller has
// no opinion.
func DefaultOptions() Options {
	return Options{
		MinContourPoints:  10,
		MaxContourPoints:  50000,
		SimplifyTolerance: 2.0,
	}
}

// Validate rejects bounds the tracer cannot honor.
func (o Options) Validate() error {
	if o.MinContourPoints < 1 {
		return fmt.Errorf("min contour points must be >= 1, got %d", o.MinContourPoints)
	}
	if o.MaxContourPoints < o.MinContourPoints {
		return fmt.Errorf("max contour points %d below minimum %d", o.MaxContourPoints, o.MinContourPoints)
	}
	if o.SimplifyTolerance < 0 {
		return fmt.Errorf("simplify tolerance must be >= 0, got %g", o.SimplifyTolerance)
	}
	return nil
}

// Contour is one traced connected ink region: a filled point cloud, not a
// boundary outline (see the package comment). Truncated marks a contour
// that hit MaxContourPoints and must be skipped by consumers.
type Contour struct {
	Points    []Point
	Truncated bool
}

// Trace scans a binarized buffer in row-major order and flood-fills each
// unvisited ink pixel into a Contour over 8-connected neighbors.
//
// Region membership is a pure function of 8-connectivity from the seed;
// only the point ordering depends on traversal order. Contours smaller
// than MinContourPoints are discarded and counted in noise. Contours
// hitting MaxContourPoints come back with Truncated set; the traversal
// still marks the whole component visited so the region cannot seed a
// duplicate.
func Trace(b *raster.Buffer, opts Options) (contours []Contour, noise int) {
	width, height := b.Width, b.Height
	visited := make([]bool, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y*width+x] || !b.Ink(x, y) {
				continue
			}
			c := floodTrace(b, visited, x, y, opts.MaxContourPoints)
			if c.Truncated {
				contours = append(contours, c)
				continue
			}
			if len(c.Points) < opts.MinContourPoints {
				noise++
				continue
			}
			contours = append(contours, c)
		}
	}
	return contours, noise
}

// floodTrace performs an iterative, explicitly stacked flood traversal
// from (startX, startY), collecting every visited ink coordinate up to
// the point cap. Stack-based rather than recursive so a large region
// cannot overflow the goroutine stack.
func floodTrace(b *raster.Buffer, visited []bool, startX, startY, maxPoints int) Contour {
	type pixel struct{ x, y int }

	width, height := b.Width, b.Height
	stack := []pixel{{startX, startY}}
	c := Contour{}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= width || p.y < 0 || p.y >= height {
			continue
		}
		if visited[p.y*width+p.x] || !b.Ink(p.x, p.y) {
			continue
		}
		visited[p.y*width+p.x] = true

		if len(c.Points) < maxPoints {
			c.Points = append(c.Points, Point{X: float64(p.x), Y: float64(p.y)})
		} else {
			// Keep draining the stack so the whole component is marked
			// visited, but stop collecting.
			c.Truncated = true
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, pixel{p.x + dx, p.y + dy})
			}
		}
	}
	return c
}
