package ohmylogo

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPalette is the palette name used when the caller selects
// nothing else.
const DefaultPalette = "grad-blue"

// builtinPalettes holds the named palettes in registration order so
// listings come out stable.
var builtinPalettes = NewPaletteMap()

func init() {
	builtinPalettes.Set("grad-blue", []string{"#4ea8ff", "#7f88ff"})
	builtinPalettes.Set("sunset", []string{"#ff9966", "#ff5e62", "#ffa34e"})
	builtinPalettes.Set("dawn", []string{"#00c6ff", "#0072ff"})
	builtinPalettes.Set("nebula", []string{"#654ea3", "#eaafc8"})
	builtinPalettes.Set("ocean", []string{"#667eea", "#764ba2"})
	builtinPalettes.Set("fire", []string{"#ff0844", "#ffb199"})
	builtinPalettes.Set("forest", []string{"#134e5e", "#71b280"})
	builtinPalettes.Set("gold", []string{"#f7971e", "#ffd200"})
	builtinPalettes.Set("purple", []string{"#667db6", "#0082c8", "#0082c8", "#667db6"})
	builtinPalettes.Set("mint", []string{"#00b09b", "#96c93d"})
	builtinPalettes.Set("coral", []string{"#ff9a9e", "#fecfef"})
	builtinPalettes.Set("matrix", []string{"#00ff41", "#008f11"})
	builtinPalettes.Set("mono", []string{"#f07178", "#f07178"})
}

// ResolvePalette turns a palette selector into gradient stops. The
// selector is either a registered palette name or a comma-separated
// list of hex colors. Unknown names produce an error that lists the
// registered names.
func ResolvePalette(selector string) (Palette, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		selector = DefaultPalette
	}
	if stops, ok := builtinPalettes.Get(selector); ok {
		return parseStops(stops)
	}
	if strings.Contains(selector, "#") {
		return parseStops(strings.Split(selector, ","))
	}
	return nil, fmt.Errorf("unknown palette %q (available: %s)",
		selector, strings.Join(PaletteNames(), ", "))
}

// PaletteNames returns the built-in palette names in registration
// order.
func PaletteNames() []string {
	return builtinPalettes.Keys()
}

// PaletteStops returns the hex stops registered under a palette name.
func PaletteStops(name string) ([]string, bool) {
	return builtinPalettes.Get(name)
}

// PaletteSwatch returns a small colored preview of the named palette
// for terminal listings, or "" for unknown names.
func PaletteSwatch(name string) string {
	stops, ok := builtinPalettes.Get(name)
	if !ok {
		return ""
	}
	var sb strings.Builder
	for _, stop := range stops {
		c, err := parseHexColor(strings.TrimSpace(stop))
		if err != nil {
			continue
		}
		sb.WriteString(ansiForeground(c))
		sb.WriteString(inkCell)
		sb.WriteString(inkCell)
	}
	sb.WriteString(ansiReset)
	return sb.String()
}

// parseStops parses hex color stops into a Palette.
func parseStops(stops []string) (Palette, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("palette has no color stops")
	}
	p := make(Palette, 0, len(stops))
	for _, stop := range stops {
		c, err := parseHexColor(strings.TrimSpace(stop))
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// parseHexColor parses a #RRGGBB or #RGB hex color string.
func parseHexColor(hexColor string) (RGB, error) {
	hexStr := strings.TrimPrefix(hexColor, "#")
	if len(hexStr) == 3 {
		hexStr = string([]byte{
			hexStr[0], hexStr[0],
			hexStr[1], hexStr[1],
			hexStr[2], hexStr[2],
		})
	}
	if len(hexStr) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", hexColor)
	}
	val, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %v", hexColor, err)
	}
	return rgbFromUint32(uint32(val)), nil
}
