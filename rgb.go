package ohmylogo

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. Gradient colors are
// carried as RGB values until they are written out as ANSI escape
// sequences, screen cells, or image pixels.
type RGB struct {
	R, G, B uint8
}

// Uint32 packs the color into a 32-bit value, 0xRRGGBB.
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// rgbFromUint32 converts a 32-bit unsigned integer to an RGB color
func rgbFromUint32(color uint32) RGB {
	return RGB{
		R: uint8(color >> 16),
		G: uint8(color >> 8),
		B: uint8(color),
	}
}

// rgbFromColorful converts a colorful.Color to an RGB color, clamping
// each channel into the displayable range.
func rgbFromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// toColorful converts an RGB color to a colorful.Color.
func (c RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// blend mixes the color with another in plain RGB space. The factor t
// runs from 0 (this color) to 1 (the other color).
func (c RGB) blend(other RGB, t float64) RGB {
	return rgbFromColorful(c.toColorful().BlendRgb(other.toColorful(), t))
}
