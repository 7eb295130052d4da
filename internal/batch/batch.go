// Package batch runs the full conversion — filter pipeline plus vector
// extraction — over a sequence of images, one image fully at a time.
//
// Sequential processing is deliberate: pixel buffers can be tens of
// megabytes, so at most one image is in flight and memory pressure stays
// deterministic. Cancellation is cooperative via context.Context, checked
// between pipeline stages and between images; the work in progress when
// cancellation lands is discarded, never partially returned.
//
// A single image's failure never aborts the batch: the caller receives the
// partial result set plus a per-image error record, and the Result totals
// account for every image and every dropped contour.
package batch

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/greyline/pagetrace/internal/raster"
	"github.com/greyline/pagetrace/internal/vector"
)

// Source is one decoded input image plus its filename for metadata. The
// core never touches the filesystem; decoding happens upstream.
type Source struct {
	Name   string
	Buffer *raster.Buffer
}

// ImageResult bundles everything extracted from one source image. It is
// never mutated after creation.
type ImageResult struct {
	Name      string         `json:"name"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Processed *raster.Buffer `json:"-"`
	Paths     []vector.Path  `json:"paths"`
	Report    vector.Report  `json:"report"`
}

// ImageError records why one image produced no result.
type ImageError struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

// Reason returns the per-failure reason string for batch reporting.
func (e ImageError) Reason() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Result is the outcome of one batch run: successful images in input
// order, plus an error record for every image that failed.
type Result struct {
	Images   []ImageResult `json:"images"`
	Failures []ImageError  `json:"failures"`
}

// Succeeded returns the number of images that produced results.
func (r *Result) Succeeded() int { return len(r.Images) }

// Failed returns the number of images recorded as failed.
func (r *Result) Failed() int { return len(r.Failures) }

// Config is the read-only configuration for one batch run. Copy-on-call
// semantics apply: mutating the caller's Config after Process starts has
// no effect on the run.
type Config struct {
	// Settings drives the raster pipeline stages.
	Settings raster.Settings

	// Vector bounds tracing and simplification.
	Vector vector.Options

	// Logger receives one structured entry per image. Nil disables
	// logging.
	Logger *logrus.Logger

	// Progress, if non-nil, is called after each image (success or
	// failure) with the number completed and the batch total.
	Progress func(done, total int)
}

// DefaultConfig returns a Config with default pipeline settings and
// extraction bounds and no logger.
func DefaultConfig() Config {
	return Config{
		Settings: raster.DefaultSettings(),
		Vector:   vector.DefaultOptions(),
	}
}

// Processor runs batches with a fixed configuration.
type Processor struct {
	cfg      Config
	pipeline *raster.Pipeline
}

// New returns a Processor for the given configuration.
func New(cfg Config) *Processor {
	return &Processor{cfg: cfg, pipeline: raster.NewPipeline()}
}

// Process converts every source in order and returns the collected
// results. It returns a non-nil Result even on error.
//
// The only error Process itself returns is ctx's error when the run is
// cancelled; everything already completed is in the Result. Per-image
// failures (zero-area buffers, extraction precondition violations) are
// recorded in Result.Failures and processing continues with the next
// image.
func (p *Processor) Process(ctx context.Context, sources []Source) (*Result, error) {
	result := &Result{}
	total := len(sources)

	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("batch cancelled after %d of %d images: %w", i, total, err)
		}

		if err := p.processOne(ctx, src, result); err != nil {
			if ctx.Err() != nil {
				return result, fmt.Errorf("batch cancelled after %d of %d images: %w", i, total, ctx.Err())
			}
			result.Failures = append(result.Failures, ImageError{Name: src.Name, Err: err})
			p.log(src.Name, logrus.Fields{"error": err.Error()}, "image failed")
		}

		if p.cfg.Progress != nil {
			p.cfg.Progress(i+1, total)
		}
	}
	return result, nil
}

// processOne runs the pipeline and extraction for a single source,
// appending to result on success.
func (p *Processor) processOne(ctx context.Context, src Source, result *Result) error {
	processed, err := p.pipeline.Run(ctx, src.Buffer, p.cfg.Settings)
	if err != nil {
		return err
	}

	paths, report, err := vector.Extract(processed, p.cfg.Vector)
	if err != nil {
		return err
	}

	result.Images = append(result.Images, ImageResult{
		Name:      src.Name,
		Width:     processed.Width,
		Height:    processed.Height,
		Processed: processed,
		Paths:     paths,
		Report:    report,
	})
	p.log(src.Name, logrus.Fields{
		"width":   processed.Width,
		"height":  processed.Height,
		"paths":   len(paths),
		"noise":   report.Noise,
		"dropped": report.Dropped(),
	}, "image converted")
	return nil
}

func (p *Processor) log(name string, fields logrus.Fields, msg string) {
	if p.cfg.Logger == nil {
		return
	}
	fields["image"] = name
	p.cfg.Logger.WithFields(fields).Info(msg)
}
