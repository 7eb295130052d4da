package vector

import (
	"math"
	"reflect"
	"testing"
)

// zigzag builds a sequence where every interior point deviates from the
// endpoint chord, so zero-tolerance simplification keeps all of them.
func zigzag(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		y := 0.0
		if i%2 == 1 {
			y = 1.0
		}
		pts[i] = Point{X: float64(i), Y: y}
	}
	return pts
}

func TestSimplifyDegenerateInput(t *testing.T) {
	for n := 0; n <= 2; n++ {
		pts := zigzag(n)
		if got := Simplify(pts, 1); !reflect.DeepEqual(got, pts) {
			t.Errorf("length %d: degenerate input changed", n)
		}
	}
}

func TestSimplifyZeroToleranceKeepsDeviatingPoints(t *testing.T) {
	pts := zigzag(9)
	got := Simplify(pts, 0)
	if !reflect.DeepEqual(got, pts) {
		t.Errorf("tolerance 0: got %d points, want all %d", len(got), len(pts))
	}
}

func TestSimplifyInfiniteToleranceKeepsEndpoints(t *testing.T) {
	pts := zigzag(50)
	got := Simplify(pts, math.Inf(1))
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if got[0] != pts[0] || got[1] != pts[len(pts)-1] {
		t.Errorf("endpoints not preserved: %+v", got)
	}
}

func TestSimplifyNeverGrows(t *testing.T) {
	pts := zigzag(33)
	for _, tol := range []float64{0, 0.25, 0.5, 1, 2, 10} {
		got := Simplify(pts, tol)
		if len(got) > len(pts) {
			t.Errorf("tolerance %g: %d points from %d input", tol, len(got), len(pts))
		}
	}
}

func TestSimplifyKeepsExtremePoint(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0.1}, {5, 10}, {9, 0.1}, {10, 0}}
	got := Simplify(pts, 1)

	found := false
	for _, p := range got {
		if p == (Point{5, 10}) {
			found = true
		}
	}
	if !found {
		t.Errorf("maximum-deviation point dropped: %+v", got)
	}
}

func TestSimplifyCoincidentEndpoints(t *testing.T) {
	// A closed loop: the chord has zero length, so the point-to-point
	// fallback must kick in without dividing by zero.
	pts := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	got := Simplify(pts, 1)

	if len(got) > len(pts) {
		t.Fatalf("output grew: %d points", len(got))
	}
	for _, p := range got {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatal("NaN coordinate in output")
		}
	}
	if len(got) < 3 {
		t.Errorf("loop collapsed to %d points", len(got))
	}
}
