package vector

// Simplify reduces a point sequence with the Douglas–Peucker algorithm:
// the output keeps the endpoints plus every point whose perpendicular
// distance from the local chord exceeds tolerance.
//
// The output length never exceeds the input length. Degenerate input
// (two points or fewer) is returned unchanged. With tolerance 0 every
// non-collinear point survives; with a tolerance larger than any
// deviation only the two endpoints remain.
func Simplify(points []Point, tolerance float64) []Point {
	if len(points) <= 2 {
		return points
	}

	first := points[0]
	last := points[len(points)-1]

	maxDist := 0.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		// Coincident endpoints leave the chord without a direction;
		// perpendicularDistance falls back to point-to-point distance.
		d := perpendicularDistance(points[i], first, last)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= tolerance {
		return []Point{first, last}
	}

	left := Simplify(points[:maxIdx+1], tolerance)
	right := Simplify(points[maxIdx:], tolerance)

	// The split point ends left and starts right; keep one copy.
	out := make([]Point, 0, len(left)+len(right)-1)
	out = append(out, left...)
	out = append(out, right[1:]...)
	return out
}
