package vector

// Smooth applies a circular moving average to a point sequence and returns
// a new sequence of the same length.
//
// Each output point is the mean of its neighbors at indices i-w..i+w taken
// modulo the sequence length, with w = min(5, len/10). The wrap-around
// treats every contour as closed, which matches the flood-traced regions
// the tracer produces. Sequences shorter than 5 points are returned
// unchanged.
func Smooth(points []Point) []Point {
	n := len(points)
	if n < 5 {
		return points
	}
	w := n / 10
	if w > 5 {
		w = 5
	}
	if w == 0 {
		return points
	}

	out := make([]Point, n)
	for i := 0; i < n; i++ {
		var sx, sy float64
		for k := -w; k <= w; k++ {
			p := points[((i+k)%n+n)%n]
			sx += p.X
			sy += p.Y
		}
		span := float64(2*w + 1)
		out[i] = Point{X: sx / span, Y: sy / span}
	}
	return out
}
