package ohmylogo

import (
	"fmt"
	"os"
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// defaultFigletFont is the figlet font used for non-Japanese text.
const defaultFigletFont = "standard"

// Renderer encapsulates the configuration for turning text into
// colored block art. Renderers are cheap to construct and safe for
// concurrent use once constructed, because rendering never mutates
// them.
type Renderer struct {
	paletteName string
	stops       []string
	direction   Direction
	figletFont  string
	store       FontStore
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options. The
// defaults render with DefaultPalette, a vertical gradient, the
// standard figlet font, and the embedded glyph font.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		paletteName: DefaultPalette,
		direction:   DirectionVertical,
		figletFont:  defaultFigletFont,
		store:       defaultFontStore,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithPalette selects a palette by registered name, or by a
// comma-separated list of hex stops.
func WithPalette(name string) RendererOption {
	return func(r *Renderer) {
		r.paletteName = name
		r.stops = nil
	}
}

// WithColors sets the gradient stops directly from hex color strings,
// overriding any named palette.
func WithColors(stops ...string) RendererOption {
	return func(r *Renderer) {
		r.stops = append([]string{}, stops...)
	}
}

// WithDirection sets the gradient direction. The empty direction
// keeps the default, vertical.
func WithDirection(d Direction) RendererOption {
	return func(r *Renderer) {
		if d != "" {
			r.direction = d
		}
	}
}

// WithFigletFont sets the figlet font used for non-Japanese text.
func WithFigletFont(name string) RendererOption {
	return func(r *Renderer) {
		if name != "" {
			r.figletFont = name
		}
	}
}

// WithFontResource loads the Japanese glyph store from a font
// resource on disk instead of the embedded font. A file that cannot
// be read leaves the embedded store in place with a warning, keeping
// construction fail-soft.
func WithFontResource(path string) RendererOption {
	return func(r *Renderer) {
		store, err := LoadFontStore(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: %v; falling back to the embedded font\n", err)
			return
		}
		r.store = store
	}
}

// palette resolves the configured palette into gradient stops.
func (r *Renderer) palette() (Palette, error) {
	if len(r.stops) > 0 {
		return parseStops(r.stops)
	}
	return ResolvePalette(r.paletteName)
}

// Render renders text as colored block art. Japanese text draws from
// the glyph font with placeholder fallback; everything else goes
// through the figlet font. Newline-separated lines render as
// independent canvases stacked with a blank row between them. The
// returned string is ready to print; empty input renders to "".
func (r *Renderer) Render(text string) (string, error) {
	palette, err := r.palette()
	if err != nil {
		return "", err
	}
	canvas, err := r.layout(text)
	if err != nil {
		return "", err
	}
	if len(canvas) == 0 {
		return "", nil
	}
	colored := Colorize(canvas, palette, r.direction)
	return CompressANSI(strings.Join(colored, "\n")), nil
}

// RenderFilled renders every character of text as a solid five-row
// block and colors the result like Render.
func (r *Renderer) RenderFilled(text string) (string, error) {
	palette, err := r.palette()
	if err != nil {
		return "", err
	}
	canvas := r.layoutFilled(text)
	if len(canvas) == 0 {
		return "", nil
	}
	colored := Colorize(canvas, palette, r.direction)
	return CompressANSI(strings.Join(colored, "\n")), nil
}

// RenderCells renders text into an uncolored canvas plus the matching
// per-cell colors, for callers that draw to something other than an
// ANSI stream, such as a cell-based screen or an image.
func (r *Renderer) RenderCells(text string) (Canvas, [][]RGB, error) {
	palette, err := r.palette()
	if err != nil {
		return nil, nil, err
	}
	canvas, err := r.layout(text)
	if err != nil {
		return nil, nil, err
	}
	return canvas, canvasColors(canvas, palette, r.direction), nil
}

// RenderFilledCells is RenderCells for the filled block style.
func (r *Renderer) RenderFilledCells(text string) (Canvas, [][]RGB, error) {
	palette, err := r.palette()
	if err != nil {
		return nil, nil, err
	}
	canvas := r.layoutFilled(text)
	return canvas, canvasColors(canvas, palette, r.direction), nil
}

// layout builds the uncolored canvas for text.
func (r *Renderer) layout(text string) (Canvas, error) {
	var canvases []Canvas
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		if ContainsJapanese(line) {
			canvases = append(canvases, layoutJapanese(line, r.store))
			continue
		}
		c, err := layoutFiglet(line, r.figletFont)
		if err != nil {
			return nil, err
		}
		canvases = append(canvases, c)
	}
	return padRectangular(stackCanvases(canvases)), nil
}

// layoutFilled builds the uncolored filled-style canvas for text.
func (r *Renderer) layoutFilled(text string) Canvas {
	var canvases []Canvas
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		canvases = append(canvases, composeCharBlocks(line))
	}
	return padRectangular(stackCanvases(canvases))
}

// layoutFiglet renders non-Japanese text through the figlet font and
// squares the rows off into a rectangle. The figlet library panics on
// unknown font names, so the panic is recovered into an error.
func layoutFiglet(text, fontName string) (canvas Canvas, err error) {
	defer func() {
		if r := recover(); r != nil {
			canvas = nil
			err = fmt.Errorf("error loading figlet font %q: %v", fontName, r)
		}
	}()
	rows := figure.NewFigure(text, fontName, false).Slicify()
	return padRectangular(Canvas(rows)), nil
}
