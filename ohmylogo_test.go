package ohmylogo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func renderedLines(t *testing.T, out string) []string {
	t.Helper()
	return strings.Split(StripANSI(out), "\n")
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Direction
		ok    bool
	}{
		{"", DirectionVertical, true},
		{"vertical", DirectionVertical, true},
		{"Horizontal", DirectionHorizontal, true},
		{"DIAGONAL", DirectionDiagonal, true},
		{" vertical ", DirectionVertical, true},
		{"sideways", "", false},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseDirection(%q): unexpected error state: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %q, expected %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderJapanese(t *testing.T) {
	t.Parallel()

	out, err := Render("日", nil, DirectionVertical)
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	lines := renderedLines(t, out)
	if len(lines) != 16 {
		t.Fatalf("Expected 16 lines from the glyph font, got %d", len(lines))
	}
	inkLines := 0
	for _, line := range lines {
		if strings.Contains(line, "█") {
			inkLines++
		}
	}
	if inkLines < 10 {
		t.Errorf("Expected at least 10 ink lines, got %d", inkLines)
	}
	if lines[0] != "   ██████████   " {
		t.Errorf("Top line %q", lines[0])
	}
}

func TestRenderGrowsWithText(t *testing.T) {
	t.Parallel()

	one, err := Render("世", nil, DirectionVertical)
	if err != nil {
		t.Fatalf("Failed to render one character: %v", err)
	}
	two, err := Render("世界", nil, DirectionVertical)
	if err != nil {
		t.Fatalf("Failed to render two characters: %v", err)
	}
	w1 := rowDisplayWidth(renderedLines(t, one)[0])
	w2 := rowDisplayWidth(renderedLines(t, two)[0])
	if w2 <= w1 {
		t.Errorf("Two characters should render wider than one: %d vs %d", w2, w1)
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	out, err := Render("", nil, DirectionVertical)
	if err != nil {
		t.Fatalf("Empty input should not error: %v", err)
	}
	if out != "" {
		t.Errorf("Empty input should render to the empty string, got %q", out)
	}

	out, err = RenderFilled("", nil, DirectionVertical)
	if err != nil || out != "" {
		t.Errorf("Empty filled input should render to the empty string, got (%q, %v)", out, err)
	}
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	for _, d := range []Direction{DirectionVertical, DirectionHorizontal, DirectionDiagonal} {
		a, err := Render("日本語", nil, d)
		if err != nil {
			t.Fatalf("Direction %s: %v", d, err)
		}
		b, _ := Render("日本語", nil, d)
		if a != b {
			t.Errorf("Direction %s: repeated renders differ", d)
		}
	}
}

func TestRenderLatinThroughFiglet(t *testing.T) {
	t.Parallel()

	out, err := Render("Hi", nil, DirectionVertical)
	if err != nil {
		t.Fatalf("Failed to render latin text: %v", err)
	}
	lines := renderedLines(t, out)
	if len(lines) < 3 {
		t.Fatalf("Expected multi-line figlet output, got %d lines", len(lines))
	}
	if strings.TrimSpace(StripANSI(out)) == "" {
		t.Error("Figlet output should carry visible cells")
	}
	// Figlet canvases are squared off
	width := rowDisplayWidth(lines[0])
	for i, line := range lines {
		if w := rowDisplayWidth(line); w != width {
			t.Errorf("Line %d: width %d, expected %d", i, w, width)
		}
	}
}

func TestRenderMixedScriptUsesGlyphPath(t *testing.T) {
	t.Parallel()

	out, err := Render("Go世界", nil, DirectionVertical)
	if err != nil {
		t.Fatalf("Failed to render mixed text: %v", err)
	}
	lines := renderedLines(t, out)
	if len(lines) != 16 {
		t.Errorf("Mixed line should take the glyph path, got %d lines", len(lines))
	}
}

func TestRenderMultiline(t *testing.T) {
	t.Parallel()

	out, err := Render(`日
日`, nil, DirectionVertical)
	if err != nil {
		t.Fatalf("Failed to render multiline text: %v", err)
	}
	lines := renderedLines(t, out)
	if len(lines) != 33 {
		t.Fatalf("Expected 16+1+16 lines, got %d", len(lines))
	}
	if lines[16] != strings.Repeat(" ", 16) {
		t.Errorf("Expected a blank spacer line, got %q", lines[16])
	}
}

func TestRenderFilled(t *testing.T) {
	t.Parallel()

	out, err := RenderFilled("Go", nil, DirectionVertical)
	if err != nil {
		t.Fatalf("Failed to render filled: %v", err)
	}
	lines := renderedLines(t, out)
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d", len(lines))
	}
	if lines[0] != "██████  ██████" {
		t.Errorf("Top line %q", lines[0])
	}
	if lines[2] != "██G███  ██o███" {
		t.Errorf("Middle line %q", lines[2])
	}
}

func TestRenderWithExplicitStops(t *testing.T) {
	t.Parallel()

	out, err := Render("日", []string{"#ff0000", "#0000ff"}, DirectionVertical)
	if err != nil {
		t.Fatalf("Failed to render with stops: %v", err)
	}
	if !strings.Contains(out, "38;2;255;0;0") {
		t.Error("Expected the first stop on the first ink row")
	}
	if !strings.Contains(out, "38;2;0;0;255") {
		t.Error("Expected the last stop on the last ink row")
	}

	if _, err := Render("日", []string{"#nothex"}, DirectionVertical); err == nil {
		t.Error("Expected an error for an invalid stop")
	}
}

func TestRenderUnknownPalette(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(WithPalette("nope")).Render("日")
	if err == nil {
		t.Fatal("Expected an error for an unknown palette")
	}
	if !strings.Contains(err.Error(), "unknown palette") {
		t.Errorf("Unexpected error text: %v", err)
	}
}

func TestRenderUnknownFigletFont(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(WithFigletFont("no-such-font")).Render("Hi")
	if err == nil {
		t.Fatal("Expected an error for an unknown figlet font")
	}
	if !strings.Contains(err.Error(), "no-such-font") {
		t.Errorf("Error should name the font: %v", err)
	}
}

func TestRendererOptions(t *testing.T) {
	t.Parallel()

	r := NewRenderer(
		WithPalette("fire"),
		WithDirection(DirectionDiagonal),
		WithFigletFont("slant"),
	)
	if r.paletteName != "fire" {
		t.Errorf("Expected paletteName='fire', got %q", r.paletteName)
	}
	if r.direction != DirectionDiagonal {
		t.Errorf("Expected diagonal direction, got %q", r.direction)
	}
	if r.figletFont != "slant" {
		t.Errorf("Expected figletFont='slant', got %q", r.figletFont)
	}

	// Defaults survive empty option values
	r = NewRenderer(WithDirection(""), WithFigletFont(""))
	if r.direction != DirectionVertical || r.figletFont != defaultFigletFont {
		t.Errorf("Empty options should keep defaults, got (%q, %q)", r.direction, r.figletFont)
	}

	// Explicit stops override the named palette, and a later named
	// palette clears them again
	r = NewRenderer(WithPalette("fire"), WithColors("#ffffff", "#000000"))
	if len(r.stops) != 2 {
		t.Errorf("Expected 2 stops, got %d", len(r.stops))
	}
	p, err := r.palette()
	if err != nil {
		t.Fatalf("Failed to resolve stops: %v", err)
	}
	if p[0] != (RGB{255, 255, 255}) {
		t.Errorf("Expected explicit stops to win, got %+v", p[0])
	}
	r = NewRenderer(WithColors("#ffffff"), WithPalette("fire"))
	if len(r.stops) != 0 {
		t.Errorf("Named palette should clear explicit stops, got %v", r.stops)
	}
}

func TestWithFontResource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "font.txt")
	if err := os.WriteFile(path, []byte(fontFixture), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	r := NewRenderer(WithFontResource(path))
	if len(r.store) != 3 {
		t.Errorf("Expected the fixture store, got %d glyphs", len(r.store))
	}
	if _, ok := r.store["4b5c"]; ok {
		t.Error("Fixture store should not carry embedded glyphs")
	}

	// An unreadable path keeps the embedded store
	r = NewRenderer(WithFontResource(filepath.Join(t.TempDir(), "missing.txt")))
	if _, ok := r.store["4b5c"]; !ok {
		t.Error("Missing resource should fall back to the embedded font")
	}
}

func TestRenderCells(t *testing.T) {
	t.Parallel()

	canvas, colors, err := NewRenderer().RenderCells("日")
	if err != nil {
		t.Fatalf("Failed to render cells: %v", err)
	}
	if len(colors) != len(canvas) {
		t.Fatalf("Expected %d color rows, got %d", len(canvas), len(colors))
	}
	for i, row := range canvas {
		if len(colors[i]) != len([]rune(row)) {
			t.Errorf("Row %d: %d colors for %d cells", i, len(colors[i]), len([]rune(row)))
		}
	}

	canvas, colors, err = NewRenderer().RenderFilledCells("A")
	if err != nil {
		t.Fatalf("Failed to render filled cells: %v", err)
	}
	if len(canvas) != charBlockHeight || len(colors) != charBlockHeight {
		t.Errorf("Expected %d rows, got %d canvas and %d colors",
			charBlockHeight, len(canvas), len(colors))
	}
}

// Benchmarks for the full pipeline

func BenchmarkRenderJapanese(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Render("日本語", nil, DirectionVertical); err != nil {
			b.Fatalf("Failed to render: %v", err)
		}
	}
}

func BenchmarkRenderFilled(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := RenderFilled("LOGO", nil, DirectionHorizontal); err != nil {
			b.Fatalf("Failed to render: %v", err)
		}
	}
}

func BenchmarkCompressANSI(b *testing.B) {
	art, err := Render("日本語", nil, DirectionHorizontal)
	if err != nil {
		b.Fatalf("Failed to render: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CompressANSI(art)
	}
}
