package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	ohmylogo "github.com/AkaakuHub/oh-my-logo"
)

// keyPattern matches a bare 4-hex-digit codepoint, as opposed to a
// literal character to resolve through the encoding schemes.
var keyPattern = regexp.MustCompile(`^[0-9a-fA-F]{4}$`)

// glyphSize returns the widest row and the row count of a glyph.
func glyphSize(g ohmylogo.Glyph) (width, height int) {
	for _, row := range g {
		if n := utf8.RuneCountInString(row); n > width {
			width = n
		}
	}
	return width, len(g)
}

// listGlyphs prints every stored codepoint with its glyph dimensions,
// in codepoint order.
func listGlyphs(store ohmylogo.FontStore) {
	keys := make([]string, 0, len(store))
	for k := range store {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		w, h := glyphSize(store[k])
		fmt.Printf("%s  %dx%d\n", k, w, h)
	}
}

// printGlyph prints a single glyph inside a frame so trailing blanks
// are visible. The ref is either a 4-hex-digit codepoint or a literal
// character resolved through the encoding schemes.
func printGlyph(store ohmylogo.FontStore, ref string) {
	var glyph ohmylogo.Glyph
	var ok bool
	if keyPattern.MatchString(ref) {
		glyph, ok = store[strings.ToLower(ref)]
	} else {
		r, _ := utf8.DecodeRuneInString(ref)
		glyph, ok = store.Lookup(r)
	}
	if !ok {
		log.Fatalf("No glyph for %q in the store", ref)
	}

	width, _ := glyphSize(glyph)
	border := "+" + strings.Repeat("-", width) + "+"
	fmt.Println(border)
	for _, row := range glyph {
		pad := width - utf8.RuneCountInString(row)
		if pad < 0 {
			pad = 0
		}
		fmt.Printf("|%s%s|\n", row, strings.Repeat(" ", pad))
	}
	fmt.Println(border)
}

func main() {
	fontFile := flag.String("font", "", "Path to the font resource file (required)")
	glyph := flag.String("glyph", "", "Character or 4-hex-digit codepoint to print; empty lists the store")
	flag.Parse()

	if *fontFile == "" {
		fmt.Println("The -font flag is required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	store, err := ohmylogo.LoadFontStore(*fontFile)
	if err != nil {
		log.Fatalf("Failed to load font resource: %v", err)
	}
	log.Printf("Loaded %d glyphs from %s", len(store), *fontFile)

	if *glyph == "" {
		listGlyphs(store)
		return
	}
	printGlyph(store, *glyph)
}
