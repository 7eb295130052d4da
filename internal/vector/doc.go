// Package vector converts a binarized pixel buffer into smooth, simplified
// scalable paths: the second half of the photo-to-line-art conversion.
//
// The extraction sequence per image is
//
//	Trace -> Smooth -> Simplify -> BuildPath
//
// Trace flood-fills 8-connected ink regions into point sequences, Smooth
// applies a circular moving average, Simplify runs Douglas–Peucker
// reduction, and BuildPath fits quadratic curve segments and derives the
// path length and bounding box. Extract composes all four and reports
// every contour it drops.
//
// # Point clouds, not outlines
//
// Trace deliberately collects every interior ink pixel of a connected
// region, not just its boundary: the result is a filled-region point
// cloud. Downstream smoothing and curve fitting are tuned for that dense
// input, so callers must not substitute a border-following tracer.
//
// Self-intersecting and open contours are acceptable output; topological
// correctness of the extracted polygons is not guaranteed.
package vector
