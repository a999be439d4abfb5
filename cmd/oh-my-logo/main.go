package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	ohmylogo "github.com/AkaakuHub/oh-my-logo"
)

// printPalettes prints the registered palette names with a color
// swatch and the hex stops for each, marking the default palette
// with an asterisk.
func printPalettes() {
	fmt.Println("Available palettes:")
	for _, name := range ohmylogo.PaletteNames() {
		stops, _ := ohmylogo.PaletteStops(name)
		marker := "  "
		if name == ohmylogo.DefaultPalette {
			marker = "* "
		}
		fmt.Printf("%s%-10s %s  %s\n",
			marker, name, ohmylogo.PaletteSwatch(name), strings.Join(stops, " "))
	}
}

func renderText(r *ohmylogo.Renderer, text string, filled bool) (string, error) {
	if filled {
		return r.RenderFilled(text)
	}
	return r.Render(text)
}

func renderCells(r *ohmylogo.Renderer, text string, filled bool) (ohmylogo.Canvas, [][]ohmylogo.RGB, error) {
	if filled {
		return r.RenderFilledCells(text)
	}
	return r.RenderCells(text)
}

func main() {
	paletteName := flag.String("palette", ohmylogo.DefaultPalette,
		"Palette name (see -l) or comma-separated hex stops "+
			"like '#ff0000,#0000ff'")
	directionName := flag.String("direction", "vertical",
		"Gradient direction: vertical, horizontal, or diagonal")
	filled := flag.Bool("filled", false,
		"Render every character as a solid block instead of outline art")
	figletFont := flag.String("font", "standard",
		"Figlet font for non-Japanese text")
	fontFile := flag.String("fontfile", "",
		"Path to a bitmap font resource for Japanese glyphs "+
			"(default: embedded font)")
	listPalettes := flag.Bool("l", false,
		"List the available palettes and exit")
	outputFile := flag.String("o", "",
		"Path to save the output (if not specified, prints to stdout)")
	scaleFactor := flag.Float64("scale", 1.0,
		"Scale factor for PNG output")
	display := flag.Bool("display", false,
		"Render to an interactive terminal screen instead of stdout")
	flag.Parse()

	if *listPalettes {
		printPalettes()
		return
	}

	if flag.NArg() < 1 {
		fmt.Println("Please provide the text to render as an argument")
		fmt.Println("Usage: oh-my-logo [options] <text> [palette]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Literal \n in the argument splits the text into stacked lines,
	// so shells do not need to pass real newlines.
	text := strings.ReplaceAll(flag.Arg(0), `\n`, "\n")
	if flag.NArg() > 1 {
		*paletteName = flag.Arg(1)
	}

	direction, err := ohmylogo.ParseDirection(*directionName)
	if err != nil {
		fmt.Printf("Error parsing direction: %v\n", err)
		os.Exit(1)
	}

	opts := []ohmylogo.RendererOption{
		ohmylogo.WithPalette(*paletteName),
		ohmylogo.WithDirection(direction),
		ohmylogo.WithFigletFont(*figletFont),
	}
	if *fontFile != "" {
		opts = append(opts, ohmylogo.WithFontResource(*fontFile))
	}
	renderer := ohmylogo.NewRenderer(opts...)

	switch {
	case *display:
		canvas, colors, err := renderCells(renderer, text, *filled)
		if err != nil {
			fmt.Printf("Error rendering: %v\n", err)
			os.Exit(1)
		}
		if err := displayCanvas(canvas, colors); err != nil {
			fmt.Printf("Error displaying: %v\n", err)
			os.Exit(1)
		}
	case strings.HasSuffix(strings.ToLower(*outputFile), ".png"):
		canvas, colors, err := renderCells(renderer, text, *filled)
		if err != nil {
			fmt.Printf("Error rendering: %v\n", err)
			os.Exit(1)
		}
		if err := ohmylogo.SavePNG(canvas, colors, *outputFile, *scaleFactor); err != nil {
			fmt.Printf("Error writing PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG output written to %s\n", *outputFile)
	default:
		art, err := renderText(renderer, text, *filled)
		if err != nil {
			fmt.Printf("Error rendering: %v\n", err)
			os.Exit(1)
		}
		if *outputFile != "" {
			if err := os.WriteFile(*outputFile, []byte(art+"\n"), 0644); err != nil {
				fmt.Printf("Error writing to file: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Output written to %s\n", *outputFile)
		} else {
			fmt.Println(art)
		}
	}
}
