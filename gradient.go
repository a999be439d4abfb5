package ohmylogo

import (
	"strings"
)

// Palette is an ordered sequence of gradient color stops. Stops are
// spread evenly across the gradient span; a single-stop palette
// colors everything flat.
type Palette []RGB

// clamp01 clamps v to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// paletteAt returns the gradient color at position t in [0, 1], with
// the palette's stops spread evenly across the span and linear
// blending between adjacent stops.
func paletteAt(p Palette, t float64) RGB {
	if len(p) == 0 {
		return RGB{}
	}
	if len(p) == 1 {
		return p[0]
	}
	seg := clamp01(t) * float64(len(p)-1)
	idx := int(seg)
	if idx >= len(p)-1 {
		return p[len(p)-1]
	}
	return p[idx].blend(p[idx+1], seg-float64(idx))
}

// rotatePalette rotates the palette's stops left by n positions.
func rotatePalette(p Palette, n int) Palette {
	if len(p) == 0 {
		return p
	}
	n %= len(p)
	if n == 0 {
		return p
	}
	rotated := make(Palette, 0, len(p))
	rotated = append(rotated, p[n:]...)
	rotated = append(rotated, p[:n]...)
	return rotated
}

// isBlank reports whether a row carries no ink.
func isBlank(row string) bool {
	return strings.TrimSpace(row) == ""
}

// inkSpan returns the indices of the first and last rows that carry
// ink. ok is false when every row is blank.
func inkSpan(rows []string) (first, last int, ok bool) {
	first = -1
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return 0, 0, false
	}
	return first, last, true
}

// colorizeLine colors a single row with a left-to-right gradient.
// Every cell gets the palette color at its horizontal position;
// spaces stay bare. Blank rows are returned unmodified.
func colorizeLine(line string, p Palette) string {
	if len(p) == 0 || isBlank(line) {
		return line
	}
	cells := []rune(line)
	span := len(cells) - 1
	var sb strings.Builder
	for i, cell := range cells {
		if cell == ' ' {
			sb.WriteRune(cell)
			continue
		}
		var t float64
		if span > 0 {
			t = float64(i) / float64(span)
		}
		sb.WriteString(ansiForeground(paletteAt(p, t)))
		sb.WriteRune(cell)
	}
	sb.WriteString(ansiReset)
	return sb.String()
}

// colorizeBlock colors a block of rows with one vertical gradient
// running from the first non-blank row to the last. Every cell in a
// row shares that row's color; blank rows are returned unmodified.
func colorizeBlock(block []string, p Palette) []string {
	out := make([]string, len(block))
	copy(out, block)
	if len(p) == 0 {
		return out
	}
	first, last, ok := inkSpan(block)
	if !ok {
		return out
	}
	span := last - first
	for i := first; i <= last; i++ {
		if isBlank(block[i]) {
			continue
		}
		var t float64
		if span > 0 {
			t = float64(i-first) / float64(span)
		}
		out[i] = ansiForeground(paletteAt(p, t)) + block[i] + ansiReset
	}
	return out
}

// Colorize applies the palette to a composed canvas along the given
// direction. Vertical runs a single gradient down the block,
// horizontal runs the gradient across every row, and diagonal runs it
// across every row with the palette rotated further at each step down
// the canvas. Blank rows always pass through unmodified, and an empty
// palette leaves the canvas untouched.
func Colorize(canvas Canvas, p Palette, direction Direction) Canvas {
	if len(canvas) == 0 || len(p) == 0 {
		return canvas
	}
	switch direction {
	case DirectionHorizontal:
		out := make(Canvas, len(canvas))
		for i, row := range canvas {
			out[i] = colorizeLine(row, p)
		}
		return out
	case DirectionDiagonal:
		n := len(canvas)
		out := make(Canvas, n)
		for i, row := range canvas {
			shift := int(float64(i) / float64(n) * float64(len(p)))
			out[i] = colorizeLine(row, rotatePalette(p, shift))
		}
		return out
	default:
		return Canvas(colorizeBlock(canvas, p))
	}
}

// canvasColors computes the gradient color of every cell in the
// canvas, using the same placement rules as Colorize. The result
// holds one color per rune of each row; callers decide which cells
// count as ink. An empty palette falls back to plain white.
func canvasColors(canvas Canvas, p Palette, direction Direction) [][]RGB {
	if len(p) == 0 {
		p = Palette{{R: 255, G: 255, B: 255}}
	}
	first, last, _ := inkSpan(canvas)
	vspan := last - first
	n := len(canvas)

	colors := make([][]RGB, n)
	for i, row := range canvas {
		cells := []rune(row)
		rowColors := make([]RGB, len(cells))
		switch direction {
		case DirectionHorizontal, DirectionDiagonal:
			rowPalette := p
			if direction == DirectionDiagonal {
				rowPalette = rotatePalette(p, int(float64(i)/float64(n)*float64(len(p))))
			}
			span := len(cells) - 1
			for j := range cells {
				var t float64
				if span > 0 {
					t = float64(j) / float64(span)
				}
				rowColors[j] = paletteAt(rowPalette, t)
			}
		default:
			var t float64
			if vspan > 0 {
				t = clamp01(float64(i-first) / float64(vspan))
			}
			c := paletteAt(p, t)
			for j := range rowColors {
				rowColors[j] = c
			}
		}
		colors[i] = rowColors
	}
	return colors
}
