package raster

import (
	"context"
	"fmt"
)

// Stages returns the fixed processing sequence in execution order. The
// pipeline is an ordered list of pure transforms rather than a type
// hierarchy, so callers and tests can run any prefix or single stage.
func Stages() []Stage {
	return []Stage{
		{Name: "grayscale", Apply: Grayscale},
		{Name: "contrast", Apply: AdjustContrast},
		{Name: "blur", Apply: GaussianBlur},
		{Name: "edges", Apply: DetectEdges},
		{Name: "open", Apply: Open},
		{Name: "thicken", Apply: Thicken},
		{Name: "binarize", Apply: Binarize},
	}
}

// Pipeline applies the fixed stage sequence to one image at a time.
// The zero value is not usable; call NewPipeline.
type Pipeline struct {
	stages []Stage
}

// NewPipeline returns a Pipeline running the standard stage order.
func NewPipeline() *Pipeline {
	return &Pipeline{stages: Stages()}
}

// Run executes every stage in order and returns the final binarized
// Buffer. The input buffer is never mutated.
//
// Run fails with a wrapped ErrInvalidInput before any stage executes if
// the buffer is zero-area or malformed, and with the context's error if
// ctx is cancelled; cancellation is honored between stages (the stage in
// progress finishes and its output is discarded).
func (p *Pipeline) Run(ctx context.Context, b *Buffer, s Settings) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	out := b
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline cancelled before %s stage: %w", stage.Name, err)
		}
		out = stage.Apply(out, s)
	}
	return out, nil
}
