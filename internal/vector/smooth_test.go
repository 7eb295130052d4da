package vector

import (
	"math"
	"reflect"
	"testing"
)

func TestSmoothShortSequencesUnchanged(t *testing.T) {
	for n := 0; n < 5; n++ {
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Point{X: float64(i * 3), Y: float64(i * i)}
		}
		got := Smooth(pts)
		if !reflect.DeepEqual(got, pts) {
			t.Errorf("length %d: smoothing changed the sequence", n)
		}
	}
}

func TestSmoothPreservesLength(t *testing.T) {
	for _, n := range []int{5, 10, 37, 200} {
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Point{X: float64(i), Y: float64(i % 7)}
		}
		if got := Smooth(pts); len(got) != n {
			t.Errorf("length %d: got %d points back", n, len(got))
		}
	}
}

func TestSmoothCircularWindow(t *testing.T) {
	// 10 points gives window w=1, so out[0] averages points 9, 0 and 1.
	pts := make([]Point, 10)
	for i := range pts {
		pts[i] = Point{X: float64(i), Y: 0}
	}

	out := Smooth(pts)

	want := (9.0 + 0.0 + 1.0) / 3
	if math.Abs(out[0].X-want) > 1e-9 {
		t.Errorf("out[0].X: got %g, want %g (wrap-around average)", out[0].X, want)
	}
	// An interior point is the plain average of its neighbors.
	if math.Abs(out[5].X-5) > 1e-9 {
		t.Errorf("out[5].X: got %g, want 5", out[5].X)
	}
}

func TestSmoothConstantSequenceIsFixedPoint(t *testing.T) {
	pts := make([]Point, 20)
	for i := range pts {
		pts[i] = Point{X: 4, Y: -2}
	}
	for i, p := range Smooth(pts) {
		if math.Abs(p.X-4) > 1e-9 || math.Abs(p.Y+2) > 1e-9 {
			t.Fatalf("point %d moved to %+v", i, p)
		}
	}
}
