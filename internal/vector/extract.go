package vector

import (
	"fmt"

	"github.com/greyline/pagetrace/internal/raster"
)

// Report counts what happened to every contour of one image. Dropped
// contours are counted, never silently discarded: Traced = built paths +
// Oversized + Degenerate, and Noise regions were filtered before tracing
// completed.
type Report struct {
	// Traced is the number of connected ink regions that met the minimum
	// size and entered the smoothing/simplification stages.
	Traced int `json:"traced"`

	// Noise is the number of regions discarded below MinContourPoints.
	Noise int `json:"noise"`

	// Oversized is the number of contours dropped at MaxContourPoints.
	Oversized int `json:"oversized"`

	// Degenerate is the number of contours whose simplification left
	// fewer than two points, so no path could be built.
	Degenerate int `json:"degenerate"`

	// Errors records each dropped contour with the reason; oversized
	// contours carry ErrContourTooLarge.
	Errors []ContourError `json:"-"`
}

// ContourError records one dropped contour and why it was dropped.
type ContourError struct {
	Contour int // index in trace order
	Err     error
}

// Dropped is the total number of traced contours that produced no path.
func (r Report) Dropped() int {
	return r.Oversized + r.Degenerate
}

// Extract converts a binarized buffer into vector paths, composing
// Trace -> Smooth -> Simplify -> BuildPath per contour. Contours are
// independent of each other; a dropped contour never aborts its siblings.
//
// Extract fails only when the invariant it depends on is violated: the
// buffer must be strictly two-valued (every pixel 0 or 255 with equal
// R, G, B), or it returns a wrapped ErrNotBinarized. An image with no ink
// yields an empty path list and a nil error.
func Extract(b *raster.Buffer, opts Options) ([]Path, Report, error) {
	var report Report
	if err := b.Validate(); err != nil {
		return nil, report, err
	}
	if err := opts.Validate(); err != nil {
		return nil, report, fmt.Errorf("invalid extraction options: %w", err)
	}
	if err := checkBinarized(b); err != nil {
		return nil, report, err
	}

	contours, noise := Trace(b, opts)
	report.Noise = noise

	var paths []Path
	for i, c := range contours {
		if c.Truncated {
			report.Traced++
			report.Oversized++
			report.Errors = append(report.Errors, ContourError{Contour: i, Err: ErrContourTooLarge})
			continue
		}
		report.Traced++
		simplified := Simplify(Smooth(c.Points), opts.SimplifyTolerance)
		p := BuildPath(simplified)
		if p == nil {
			report.Degenerate++
			continue
		}
		paths = append(paths, *p)
	}
	return paths, report, nil
}

// checkBinarized verifies every pixel is pure ink or pure background.
func checkBinarized(b *raster.Buffer) error {
	for i := 0; i < len(b.Pix); i += 4 {
		r, g, bl := b.Pix[i], b.Pix[i+1], b.Pix[i+2]
		if r != g || g != bl || (r != 0 && r != 255) {
			x := (i / 4) % b.Width
			y := (i / 4) / b.Width
			return fmt.Errorf("%w: pixel (%d,%d) has channels (%d,%d,%d)", ErrNotBinarized, x, y, r, g, bl)
		}
	}
	return nil
}
