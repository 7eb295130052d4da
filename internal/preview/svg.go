package preview

import (
	"fmt"
	"image/color"
	"io"
)

// PageSize names a standard output page.
type PageSize string

// Supported page sizes.
const (
	PageA4     PageSize = "a4"
	PageLetter PageSize = "letter"
	PageA3     PageSize = "a3"
)

// Dimensions returns the page's pixel dimensions at 96 dpi, portrait.
func (p PageSize) Dimensions() (width, height int) {
	switch p {
	case PageLetter:
		return 816, 1056
	case PageA3:
		return 1123, 1587
	default: // a4
		return 794, 1123
	}
}

// ParsePageSize converts a user-supplied string into a PageSize.
func ParsePageSize(s string) (PageSize, error) {
	switch PageSize(s) {
	case PageA4, PageLetter, PageA3:
		return PageSize(s), nil
	}
	return "", fmt.Errorf("unknown page size %q (want a4, letter or a3)", s)
}

// PageTheme names the page decoration style.
type PageTheme string

// Supported page themes.
const (
	ThemeMinimal     PageTheme = "minimal"
	ThemeDecorative  PageTheme = "decorative"
	ThemeEducational PageTheme = "educational"
)

// ParsePageTheme converts a user-supplied string into a PageTheme.
func ParsePageTheme(s string) (PageTheme, error) {
	switch PageTheme(s) {
	case ThemeMinimal, ThemeDecorative, ThemeEducational:
		return PageTheme(s), nil
	}
	return "", fmt.Errorf("unknown page theme %q (want minimal, decorative or educational)", s)
}

// SVGOptions configures a single-image SVG document.
type SVGOptions struct {
	// Page selects the outer document dimensions.
	Page PageSize

	// Theme selects decoration: decorative adds a double frame,
	// educational a single ruled frame, minimal nothing.
	Theme PageTheme

	// Stroke is the path stroke color.
	Stroke color.NRGBA

	// StrokeWidth is the path stroke width in pixels.
	StrokeWidth float64

	// Title, if non-empty, is emitted as the document title element.
	Title string
}

// DefaultSVGOptions returns A4, minimal theme, 2px black strokes.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Page:        PageA4,
		Theme:       ThemeMinimal,
		Stroke:      color.NRGBA{A: 255},
		StrokeWidth: 2,
	}
}

// WriteSVG writes one image's paths as a standalone SVG document. The
// image area (imgWidth x imgHeight) is centered and scaled to fit inside
// the page with a fixed margin; the curve-command strings go into path
// elements verbatim.
func WriteSVG(w io.Writer, commands []string, imgWidth, imgHeight int, opts SVGOptions) error {
	if imgWidth <= 0 || imgHeight <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", imgWidth, imgHeight)
	}
	pageW, pageH := opts.Page.Dimensions()

	const margin = 40.0
	availW := float64(pageW) - 2*margin
	availH := float64(pageH) - 2*margin
	scale := availW / float64(imgWidth)
	if s := availH / float64(imgHeight); s < scale {
		scale = s
	}
	offX := (float64(pageW) - float64(imgWidth)*scale) / 2
	offY := (float64(pageH) - float64(imgHeight)*scale) / 2

	stroke := fmt.Sprintf("#%02X%02X%02X", opts.Stroke.R, opts.Stroke.G, opts.Stroke.B)

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		pageW, pageH, pageW, pageH); err != nil {
		return err
	}
	if opts.Title != "" {
		fmt.Fprintf(w, "  <title>%s</title>\n", opts.Title)
	}
	fmt.Fprintf(w, "  <rect width=\"%d\" height=\"%d\" fill=\"white\"/>\n", pageW, pageH)

	switch opts.Theme {
	case ThemeDecorative:
		fmt.Fprintf(w, "  <rect x=\"10\" y=\"10\" width=\"%d\" height=\"%d\" fill=\"none\" stroke=\"%s\" stroke-width=\"3\"/>\n",
			pageW-20, pageH-20, stroke)
		fmt.Fprintf(w, "  <rect x=\"18\" y=\"18\" width=\"%d\" height=\"%d\" fill=\"none\" stroke=\"%s\" stroke-width=\"1\"/>\n",
			pageW-36, pageH-36, stroke)
	case ThemeEducational:
		fmt.Fprintf(w, "  <rect x=\"10\" y=\"10\" width=\"%d\" height=\"%d\" fill=\"none\" stroke=\"%s\" stroke-width=\"1\"/>\n",
			pageW-20, pageH-20, stroke)
	}

	fmt.Fprintf(w, "  <g transform=\"translate(%.2f %.2f) scale(%.4f)\" fill=\"none\" stroke=\"%s\" stroke-width=\"%.2f\" stroke-linecap=\"round\" stroke-linejoin=\"round\">\n",
		offX, offY, scale, stroke, opts.StrokeWidth)
	for _, d := range commands {
		if _, err := fmt.Fprintf(w, "    <path d=\"%s\"/>\n", d); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "  </g>")
	_, err := fmt.Fprintln(w, "</svg>")
	return err
}
