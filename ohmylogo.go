// Package ohmylogo renders short strings as oversized block-character
// art for terminals, colored with a directional gradient. Japanese
// text is drawn from an embedded legacy bitmap font, with synthesized
// placeholder art for characters the font cannot supply; everything
// else is rendered through a figlet font.
package ohmylogo

import (
	"fmt"
	"strings"
)

const (
	// ESC is the ANSI escape character used in color sequences.
	ESC = "\u001b"

	// inkCell is the canonical filled cell used for glyph strokes.
	inkCell = "█"
)

// A Glyph is the text art for a single character: an ordered sequence
// of rows of equal visual width whose cells are either ink or space.
type Glyph []string

// A Canvas is a rectangular block of text rows holding one or more
// composed glyphs.
type Canvas []string

// Direction selects how the gradient flows across the rendered art.
type Direction string

const (
	DirectionVertical   Direction = "vertical"
	DirectionHorizontal Direction = "horizontal"
	DirectionDiagonal   Direction = "diagonal"
)

// ParseDirection parses a direction name, ignoring case. The empty
// string selects DirectionVertical.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return DirectionVertical, nil
	case "horizontal":
		return DirectionHorizontal, nil
	case "diagonal":
		return DirectionDiagonal, nil
	}
	return "", fmt.Errorf("unknown direction %q (valid: vertical, horizontal, diagonal)", s)
}

// Render renders text as a colored multi-line block with the given
// palette stops and direction. A nil palette uses the default palette
// and the empty direction renders vertically. The returned string is
// ready to print.
func Render(text string, palette []string, direction Direction) (string, error) {
	opts := []RendererOption{WithDirection(direction)}
	if len(palette) > 0 {
		opts = append(opts, WithColors(palette...))
	}
	return NewRenderer(opts...).Render(text)
}

// RenderFilled renders every character of text as a solid block in
// the filled style, colored like Render.
func RenderFilled(text string, palette []string, direction Direction) (string, error) {
	opts := []RendererOption{WithDirection(direction)}
	if len(palette) > 0 {
		opts = append(opts, WithColors(palette...))
	}
	return NewRenderer(opts...).RenderFilled(text)
}
