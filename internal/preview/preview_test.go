package preview

import (
	"image/color"
	"testing"

	"github.com/greyline/pagetrace/internal/raster"
	"github.com/greyline/pagetrace/internal/vector"
)

func TestRenderDimensions(t *testing.T) {
	b, err := raster.New(17, 9)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	img := Render(b)
	if img.Bounds().Dx() != 17 || img.Bounds().Dy() != 9 {
		t.Errorf("dimensions: got %dx%d, want 17x9", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestOverlayDrawsRegions(t *testing.T) {
	paths := []vector.Path{
		{Points: []vector.Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}}},
		{Points: []vector.Point{{X: 12, Y: 12}, {X: 18, Y: 18}}},
	}

	img := Overlay(20, 20, paths)

	// Background stays white.
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("background: got %+v, want white", got)
	}

	// Both polylines leave non-white pixels, in different hues.
	c1 := img.NRGBAAt(5, 2)
	c2 := img.NRGBAAt(15, 15)
	white := color.NRGBA{255, 255, 255, 255}
	if c1 == white {
		t.Error("first path left no mark at (5,2)")
	}
	if c2 == white {
		t.Error("second path left no mark at (15,15)")
	}
	if c1 == c2 {
		t.Error("regions share a color")
	}
}

func TestOverlayEmptyPathList(t *testing.T) {
	img := Overlay(5, 5, nil)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if img.NRGBAAt(x, y) != (color.NRGBA{255, 255, 255, 255}) {
				t.Fatalf("pixel (%d,%d) not white", x, y)
			}
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb with hash", "#FF8000", color.NRGBA{255, 128, 0, 255}, false},
		{"rgb without hash", "00FF00", color.NRGBA{0, 255, 0, 255}, false},
		{"rgba", "#FF000080", color.NRGBA{255, 0, 0, 128}, false},
		{"empty", "", color.NRGBA{}, true},
		{"bad length", "#FFF", color.NRGBA{}, true},
		{"not hex", "#GGGGGG", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: got %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
