package ohmylogo

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// charBlockHeight is the row count of a filled-style character block.
const charBlockHeight = 5

// displayWidth returns the number of terminal columns a character
// occupies. Unknown and zero-width characters count as one column so
// every cell advances the cursor.
func displayWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 1 {
		return w
	}
	return 1
}

// rowDisplayWidth returns the number of terminal columns a row
// occupies.
func rowDisplayWidth(row string) int {
	return runewidth.StringWidth(row)
}

// glyphDisplayWidth returns the widest row of a glyph. Glyph rows are
// rectangular by construction, so this is normally the width of every
// row.
func glyphDisplayWidth(g Glyph) int {
	width := 0
	for _, row := range g {
		if w := rowDisplayWidth(row); w > width {
			width = w
		}
	}
	return width
}

// padRow pads a row with trailing spaces to the given display width.
func padRow(row string, width int) string {
	if pad := width - rowDisplayWidth(row); pad > 0 {
		return row + strings.Repeat(" ", pad)
	}
	return row
}

// composeUniform concatenates glyphs side by side on a shared grid.
// Canvas height is the tallest glyph's row count; shorter glyphs are
// padded below their art with blank rows of their own width, and a
// single blank column separates neighbors. Zero glyphs compose to an
// empty canvas.
func composeUniform(glyphs []Glyph) Canvas {
	if len(glyphs) == 0 {
		return Canvas{}
	}
	height := 0
	widths := make([]int, len(glyphs))
	for i, g := range glyphs {
		if len(g) > height {
			height = len(g)
		}
		widths[i] = glyphDisplayWidth(g)
	}
	canvas := make(Canvas, height)
	for ri := 0; ri < height; ri++ {
		var sb strings.Builder
		for gi, g := range glyphs {
			if gi > 0 {
				sb.WriteByte(' ')
			}
			if ri < len(g) {
				sb.WriteString(padRow(g[ri], widths[gi]))
			} else {
				sb.WriteString(strings.Repeat(" ", widths[gi]))
			}
		}
		canvas[ri] = sb.String()
	}
	return canvas
}

// composeCharBlocks renders text as one solid block per character,
// five rows tall. A block is three times the character's display
// width with a floor of six columns: solid ink on the top and bottom
// rows, the character itself set into ink on the middle row with any
// odd padding cell falling to the right, and ink-bordered blank rows
// between. Two blank columns separate neighboring blocks.
func composeCharBlocks(text string) Canvas {
	chars := []rune(text)
	if len(chars) == 0 {
		return Canvas{}
	}
	rows := make([]strings.Builder, charBlockHeight)
	for ci, c := range chars {
		block := charBlock(c)
		for ri := range rows {
			if ci > 0 {
				rows[ri].WriteString("  ")
			}
			rows[ri].WriteString(block[ri])
		}
	}
	canvas := make(Canvas, charBlockHeight)
	for i := range rows {
		canvas[i] = rows[i].String()
	}
	return canvas
}

// charBlock builds the five-row block for one character.
func charBlock(c rune) Glyph {
	dw := displayWidth(c)
	width := dw * 3
	if width < 6 {
		width = 6
	}
	pad := width - dw
	left := pad / 2
	solid := strings.Repeat(inkCell, width)
	hollow := inkCell + strings.Repeat(" ", width-2) + inkCell
	middle := strings.Repeat(inkCell, left) + string(c) + strings.Repeat(inkCell, pad-left)
	return Glyph{solid, hollow, middle, hollow, solid}
}

// stackCanvases joins canvases vertically with one blank spacer row
// between non-empty neighbors.
func stackCanvases(canvases []Canvas) Canvas {
	var out Canvas
	for _, c := range canvases {
		if len(c) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, c...)
	}
	return out
}

// padRectangular pads every row with trailing spaces to the width of
// the widest row, squaring the canvas off into a rectangle.
func padRectangular(canvas Canvas) Canvas {
	width := 0
	for _, row := range canvas {
		if w := rowDisplayWidth(row); w > width {
			width = w
		}
	}
	out := make(Canvas, len(canvas))
	for i, row := range canvas {
		out[i] = padRow(row, width)
	}
	return out
}
