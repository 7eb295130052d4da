package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/greyline/pagetrace/internal/batch"
	"github.com/greyline/pagetrace/internal/loader"
	"github.com/greyline/pagetrace/internal/preview"
	"github.com/greyline/pagetrace/internal/raster"
	"github.com/greyline/pagetrace/internal/vector"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Options holds the CLI configuration for one conversion run.
type Options struct {
	OutDir        string
	EdgeThreshold float64
	LineWeight    string
	Complexity    string
	GaussianRad   float64
	MorphRadius   int
	Contrast      float64
	Brightness    int
	Tolerance     float64
	MinContour    int
	MaxContour    int
	MaxDimension  int
	PageSize      string
	PageTheme     string
	StrokeColor   string
	StrokeWidth   float64
	WritePreview  bool
	WriteOverlay  bool
	Debug         bool
}

var opts Options

var rootCmd = &cobra.Command{
	Use:   "pagetrace [flags] image...",
	Short: "Convert photos into printable coloring-page line art",
	Long: `pagetrace reduces each photograph to black-and-white line regions and
converts those regions into smooth, simplified vector paths, written out
as a single-page SVG per input image.`,
	Version:      fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.OutDir, "out", "o", ".", "Output directory for SVG and preview files")
	f.Float64VarP(&opts.EdgeThreshold, "edge-threshold", "e", 50, "Gradient magnitude above which a pixel becomes ink")
	f.StringVarP(&opts.LineWeight, "line-weight", "w", "medium", "Line thickness: thin, medium or thick")
	f.StringVarP(&opts.Complexity, "complexity", "c", "moderate", "Detail level: simple, moderate or complex")
	f.Float64Var(&opts.GaussianRad, "gaussian-radius", 2.0, "Pre-edge blur radius in pixels (0 disables)")
	f.IntVar(&opts.MorphRadius, "morphology-radius", 1, "Structuring-element radius for opening and thickening")
	f.Float64Var(&opts.Contrast, "contrast", 1.2, "Contrast factor applied before edge detection")
	f.IntVar(&opts.Brightness, "brightness", 0, "Brightness offset applied before edge detection")
	f.Float64VarP(&opts.Tolerance, "tolerance", "t", 2.0, "Douglas-Peucker simplification tolerance in pixels")
	f.IntVar(&opts.MinContour, "min-contour", 10, "Discard traced regions smaller than this many points")
	f.IntVar(&opts.MaxContour, "max-contour", 50000, "Skip traced regions larger than this many points")
	f.IntVar(&opts.MaxDimension, "max-dimension", 2048, "Downscale inputs larger than this on either axis (0 disables)")
	f.StringVar(&opts.PageSize, "page-size", "a4", "SVG page size: a4, letter or a3")
	f.StringVar(&opts.PageTheme, "page-theme", "minimal", "SVG page theme: minimal, decorative or educational")
	f.StringVar(&opts.StrokeColor, "stroke-color", "#000000", "SVG stroke color as #RRGGBB")
	f.Float64Var(&opts.StrokeWidth, "stroke-width", 2, "SVG stroke width in pixels")
	f.BoolVar(&opts.WritePreview, "preview", false, "Also write the processed raster as <name>.preview.png")
	f.BoolVar(&opts.WriteOverlay, "overlay", false, "Also write a per-region colored overlay as <name>.overlay.png")
	f.BoolVarP(&opts.Debug, "debug", "d", false, "Enable verbose logging")
}

func run(files []string) error {
	logger := initLogger(opts.Debug)

	settings := raster.Settings{
		EdgeThreshold:    opts.EdgeThreshold,
		GaussianRadius:   opts.GaussianRad,
		MorphologyRadius: opts.MorphRadius,
		Contrast:         opts.Contrast,
		Brightness:       opts.Brightness,
	}
	var err error
	if settings.LineWeight, err = raster.ParseLineWeight(opts.LineWeight); err != nil {
		return err
	}
	if settings.Complexity, err = raster.ParseComplexity(opts.Complexity); err != nil {
		return err
	}
	if err = settings.Validate(); err != nil {
		return err
	}

	svgOpts := preview.DefaultSVGOptions()
	if svgOpts.Page, err = preview.ParsePageSize(opts.PageSize); err != nil {
		return err
	}
	if svgOpts.Theme, err = preview.ParsePageTheme(opts.PageTheme); err != nil {
		return err
	}
	if svgOpts.Stroke, err = preview.ParseHexColor(opts.StrokeColor); err != nil {
		return fmt.Errorf("invalid stroke color: %w", err)
	}
	svgOpts.StrokeWidth = opts.StrokeWidth

	if err = os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Decode everything up front; a file that fails to decode is reported
	// alongside per-image processing failures, not as a batch abort.
	ld := loader.Loader{MaxDimension: opts.MaxDimension}
	sources := make([]batch.Source, 0, len(files))
	var loadFailures []batch.ImageError
	for _, path := range files {
		buf, err := ld.Load(path)
		if err != nil {
			loadFailures = append(loadFailures, batch.ImageError{Name: path, Err: err})
			logger.WithFields(logrus.Fields{"image": path, "error": err.Error()}).Warn("decode failed")
			continue
		}
		sources = append(sources, batch.Source{Name: path, Buffer: buf})
	}

	bar := progressbar.NewOptions(len(sources),
		progressbar.OptionSetDescription("Tracing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)

	proc := batch.New(batch.Config{
		Settings: settings,
		Vector: vector.Options{
			MinContourPoints:  opts.MinContour,
			MaxContourPoints:  opts.MaxContour,
			SimplifyTolerance: opts.Tolerance,
		},
		Logger:   logger,
		Progress: func(done, total int) { _ = bar.Set(done) },
	})

	result, err := proc.Process(cmdContext(), sources)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr)

	for _, img := range result.Images {
		if err := writeOutputs(img, svgOpts); err != nil {
			return err
		}
	}

	failures := append(loadFailures, result.Failures...)
	fmt.Printf("%d succeeded, %d failed\n", result.Succeeded(), len(failures))
	for _, f := range failures {
		fmt.Printf("  failed: %s\n", f.Reason())
	}
	if result.Succeeded() == 0 && len(failures) > 0 {
		return fmt.Errorf("no image could be converted")
	}
	return nil
}

// writeOutputs writes the SVG and any requested raster previews for one
// converted image into the output directory.
func writeOutputs(img batch.ImageResult, svgOpts preview.SVGOptions) error {
	base := strings.TrimSuffix(filepath.Base(img.Name), filepath.Ext(img.Name))
	svgOpts.Title = base

	commands := make([]string, len(img.Paths))
	for i, p := range img.Paths {
		commands[i] = p.Commands
	}

	svgPath := filepath.Join(opts.OutDir, base+".svg")
	f, err := os.Create(svgPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", svgPath, err)
	}
	if err := preview.WriteSVG(f, commands, img.Width, img.Height, svgOpts); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", svgPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if opts.WritePreview {
		if err := preview.SavePNG(filepath.Join(opts.OutDir, base+".preview.png"), preview.Render(img.Processed)); err != nil {
			return err
		}
	}
	if opts.WriteOverlay {
		if err := preview.SavePNG(filepath.Join(opts.OutDir, base+".overlay.png"), preview.Overlay(img.Width, img.Height, img.Paths)); err != nil {
			return err
		}
	}
	return nil
}

// cmdContext returns a context cancelled by Ctrl-C or SIGTERM, so a long
// batch stops at the next image boundary instead of mid-write.
func cmdContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx
}

func initLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
