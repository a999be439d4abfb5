package ohmylogo

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Cell dimensions in pixels for PNG export. A terminal cell is about
// twice as tall as it is wide, so an 8x16 pixel cell keeps exported
// art proportioned like the terminal rendering.
const (
	cellPixelWidth  = 8
	cellPixelHeight = 16
)

// SavePNG writes the canvas to a PNG file at the given path, painting
// each non-space cell as a solid rectangle in its gradient color. The
// colors grid comes from RenderCells or RenderFilledCells. A scale
// factor other than 1 resizes the image with nearest-neighbor
// sampling, which keeps the block edges crisp.
func SavePNG(canvas Canvas, colors [][]RGB, path string, scale float64) error {
	width := 0
	for _, row := range canvas {
		if w := rowDisplayWidth(row); w > width {
			width = w
		}
	}
	if len(canvas) == 0 || width == 0 {
		return fmt.Errorf("error exporting PNG: empty canvas")
	}

	img := image.NewRGBA(image.Rect(0, 0, width*cellPixelWidth, len(canvas)*cellPixelHeight))
	for y, row := range canvas {
		x := 0
		i := 0
		for _, r := range row {
			dw := displayWidth(r)
			if r == ' ' {
				x += dw
				i++
				continue
			}
			var c RGB
			if y < len(colors) && i < len(colors[y]) {
				c = colors[y][i]
			}
			rect := image.Rect(x*cellPixelWidth, y*cellPixelHeight, (x+dw)*cellPixelWidth, (y+1)*cellPixelHeight)
			draw.Draw(img, rect, image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}), image.Point{}, draw.Src)
			x += dw
			i++
		}
	}

	out := image.Image(img)
	if scale > 0 && scale != 1 {
		scaled := image.NewRGBA(image.Rect(0, 0,
			int(float64(img.Bounds().Dx())*scale),
			int(float64(img.Bounds().Dy())*scale)))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		out = scaled
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("error encoding PNG: %v", err)
	}
	return nil
}
