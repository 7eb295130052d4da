package vector

import (
	"errors"
	"testing"

	"github.com/greyline/pagetrace/internal/raster"
)

func TestExtractRejectsNonBinarized(t *testing.T) {
	b := whiteBuffer(t, 8, 8)
	b.SetGray(3, 3, 128) // neither ink nor background

	_, _, err := Extract(b, DefaultOptions())
	if !errors.Is(err, ErrNotBinarized) {
		t.Errorf("got %v, want ErrNotBinarized", err)
	}
}

func TestExtractRejectsUnequalChannels(t *testing.T) {
	b := whiteBuffer(t, 8, 8)
	b.Pix[0] = 0 // red-only pixel

	_, _, err := Extract(b, DefaultOptions())
	if !errors.Is(err, ErrNotBinarized) {
		t.Errorf("got %v, want ErrNotBinarized", err)
	}
}

func TestExtractAllBackground(t *testing.T) {
	b := whiteBuffer(t, 50, 50)

	paths, report, err := Extract(b, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("got %d paths, want 0", len(paths))
	}
	if report.Traced != 0 || report.Dropped() != 0 {
		t.Errorf("report not empty: %+v", report)
	}
}

func TestExtractBlackSquare(t *testing.T) {
	b := whiteBuffer(t, 10, 10)
	inkSquare(b, 3, 3, 6, 6)

	paths, report, err := Extract(b, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	if report.Traced != 1 || report.Dropped() != 0 {
		t.Errorf("report: %+v", report)
	}

	p := paths[0]
	if p.Length <= 0 {
		t.Errorf("length: got %g, want > 0", p.Length)
	}
	// Smoothing pulls points toward the region's interior, so the box
	// sits within the 3..6 square give or take a pixel.
	bb := p.Bounds
	if bb.X < 2 || bb.X > 5 || bb.Y < 2 || bb.Y > 5 {
		t.Errorf("bounds origin out of range: %+v", bb)
	}
	if bb.Width <= 0 || bb.Width > 4 || bb.Height <= 0 || bb.Height > 4 {
		t.Errorf("bounds size out of range: %+v", bb)
	}
	if p.Commands == "" {
		t.Error("empty command string")
	}
}

func TestExtractSkipsOversizedContour(t *testing.T) {
	b := whiteBuffer(t, 30, 30)
	inkSquare(b, 2, 2, 20, 20)   // 361 pixels, over the cap below
	inkSquare(b, 25, 25, 28, 28) // 16 pixels, traceable

	opts := Options{MinContourPoints: 10, MaxContourPoints: 100, SimplifyTolerance: 2}

	paths, report, err := Extract(b, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if report.Oversized != 1 {
		t.Errorf("oversized count: got %d, want 1", report.Oversized)
	}
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1 (the small region)", len(paths))
	}
	if report.Dropped() != 1 {
		t.Errorf("dropped: got %d, want 1", report.Dropped())
	}
	if len(report.Errors) != 1 || !errors.Is(report.Errors[0].Err, ErrContourTooLarge) {
		t.Errorf("want one ErrContourTooLarge record, got %v", report.Errors)
	}
}

func TestExtractCountsNoise(t *testing.T) {
	b := whiteBuffer(t, 20, 20)
	b.SetGray(2, 2, 0)  // 1-pixel speckle
	b.SetGray(17, 3, 0) // another speckle
	inkSquare(b, 6, 6, 12, 12)

	opts := Options{MinContourPoints: 10, MaxContourPoints: 1 << 20, SimplifyTolerance: 2}

	paths, report, err := Extract(b, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if report.Noise != 2 {
		t.Errorf("noise: got %d, want 2", report.Noise)
	}
	if len(paths) != 1 {
		t.Errorf("got %d paths, want 1", len(paths))
	}
}

func TestExtractRejectsInvalidBuffer(t *testing.T) {
	bad := &raster.Buffer{Width: 0, Height: 5}
	if _, _, err := Extract(bad, DefaultOptions()); !errors.Is(err, raster.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestExtractRejectsInvalidOptions(t *testing.T) {
	b := whiteBuffer(t, 5, 5)
	opts := DefaultOptions()
	opts.SimplifyTolerance = -1

	if _, _, err := Extract(b, opts); err == nil {
		t.Error("expected an error for invalid options")
	}
}
