package raster

import "fmt"

// LineWeight selects how thick the final ink lines are drawn.
type LineWeight string

// Supported line weights.
const (
	LineThin   LineWeight = "thin"
	LineMedium LineWeight = "medium"
	LineThick  LineWeight = "thick"
)

// Iterations maps the weight to its nominal dilation count. The thickening
// stage applies Iterations()-1 extra passes, so thin and medium add none.
func (w LineWeight) Iterations() int {
	switch w {
	case LineThin:
		return 0
	case LineThick:
		return 2
	default:
		return 1
	}
}

// ParseLineWeight converts a user-supplied string into a LineWeight.
func ParseLineWeight(s string) (LineWeight, error) {
	switch LineWeight(s) {
	case LineThin, LineMedium, LineThick:
		return LineWeight(s), nil
	}
	return "", fmt.Errorf("unknown line weight %q (want thin, medium or thick)", s)
}

// Complexity selects how aggressively small detail is removed.
type Complexity string

// Supported complexity levels.
const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// OpeningRounds maps the level to the number of morphological opening
// rounds. Complex keeps every detail (zero rounds, a no-op).
func (c Complexity) OpeningRounds() int {
	switch c {
	case ComplexitySimple:
		return 2
	case ComplexityComplex:
		return 0
	default:
		return 1
	}
}

// ParseComplexity converts a user-supplied string into a Complexity.
func ParseComplexity(s string) (Complexity, error) {
	switch Complexity(s) {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex:
		return Complexity(s), nil
	}
	return "", fmt.Errorf("unknown complexity %q (want simple, moderate or complex)", s)
}

// Settings holds the per-run pipeline configuration.
//
// A Settings value is immutable for the duration of one run: it is passed
// by value into every stage, so a caller mutating its own copy cannot
// affect an in-flight run.
type Settings struct {
	// EdgeThreshold is the Sobel gradient magnitude above which a pixel
	// becomes ink. Lower values keep fainter edges.
	EdgeThreshold float64

	// LineWeight controls post-opening ink thickening.
	LineWeight LineWeight

	// Complexity controls how many opening rounds remove fine detail.
	Complexity Complexity

	// GaussianRadius is the pre-edge-detection blur radius in pixels.
	// Zero disables the blur entirely.
	GaussianRadius float64

	// MorphologyRadius is the structuring-element radius for erosion and
	// dilation; the neighborhood is (2r+1) pixels square. Minimum 1.
	MorphologyRadius int

	// Contrast scales channel values around the 128 midpoint. 1.0 is the
	// identity; must be positive.
	Contrast float64

	// Brightness is added to every channel value after contrast scaling.
	Brightness int
}

// DefaultSettings returns the configuration used when the caller has no
// opinion: medium lines, moderate detail, a gentle contrast boost.
func DefaultSettings() Settings {
	return Settings{
		EdgeThreshold:    50,
		LineWeight:       LineMedium,
		Complexity:       ComplexityModerate,
		GaussianRadius:   2.0,
		MorphologyRadius: 1,
		Contrast:         1.2,
		Brightness:       0,
	}
}

// Validate rejects settings the stages cannot honor.
func (s Settings) Validate() error {
	if s.GaussianRadius < 0 {
		return fmt.Errorf("gaussian radius must be >= 0, got %g", s.GaussianRadius)
	}
	if s.MorphologyRadius < 1 {
		return fmt.Errorf("morphology radius must be >= 1, got %d", s.MorphologyRadius)
	}
	if s.Contrast <= 0 {
		return fmt.Errorf("contrast factor must be > 0, got %g", s.Contrast)
	}
	if _, err := ParseLineWeight(string(s.LineWeight)); err != nil {
		return err
	}
	if _, err := ParseComplexity(string(s.Complexity)); err != nil {
		return err
	}
	return nil
}
