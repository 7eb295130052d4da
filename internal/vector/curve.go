package vector

import (
	"fmt"
	"strings"
)

// Path is one extracted vector path: the simplified points it was built
// from, a curve-command string describing a smooth rendering of them, the
// cumulative polyline length, and the axis-aligned bounding box. A Path is
// immutable once built.
type Path struct {
	// Points is the simplified point sequence the commands were fit to.
	Points []Point `json:"points"`

	// Commands is the SVG-style command string: M/Q/L with two-decimal
	// coordinates, e.g. "M 3.00 4.00 Q 5.00 6.00 7.00 8.00 L 9.00 9.00".
	Commands string `json:"commands"`

	// Length is the polyline length of Points, computed before curve
	// fitting.
	Length float64 `json:"length"`

	// Bounds is the axis-aligned bounding box of Points.
	Bounds Rect `json:"bounds"`
}

// BuildPath fits a smooth curve description to a simplified point
// sequence. It returns nil when fewer than 2 points survive
// simplification; callers filter nils.
//
// Two points produce a single straight segment. Three or more produce a
// move to the first point, then one quadratic segment per interior point —
// the interior point as control, the midpoint to the next point as the
// segment end — and a final straight segment into the last point. Using
// midpoints as join points keeps consecutive quadratics tangent-continuous
// without computing tangents explicitly.
func BuildPath(points []Point) *Path {
	if len(points) < 2 {
		return nil
	}

	var cmd strings.Builder
	writeCoord(&cmd, "M", points[0])

	if len(points) == 2 {
		writeCoord(&cmd, " L", points[1])
	} else {
		for i := 1; i < len(points)-1; i++ {
			mid := midpoint(points[i], points[i+1])
			fmt.Fprintf(&cmd, " Q %.2f %.2f %.2f %.2f", points[i].X, points[i].Y, mid.X, mid.Y)
		}
		writeCoord(&cmd, " L", points[len(points)-1])
	}

	return &Path{
		Points:   points,
		Commands: cmd.String(),
		Length:   polylineLength(points),
		Bounds:   boundsOf(points),
	}
}

func writeCoord(b *strings.Builder, op string, p Point) {
	fmt.Fprintf(b, "%s %.2f %.2f", op, p.X, p.Y)
}
