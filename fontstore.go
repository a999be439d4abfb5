package ohmylogo

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// FontStore maps legacy codepoints, as lowercase 4-hex-digit strings,
// to the glyphs parsed from a font resource. The store is built once
// and read-only afterwards.
type FontStore map[string]Glyph

// Markers used by the font resource format.
const (
	fontInkMarker   = "*"
	fontRowContinue = "$"
	fontGlyphEnd    = ";"
)

// entryPattern matches the header line that opens a character entry:
// the codepoint as a decimal number, whitespace, then the same
// codepoint in hex. Everything before the first match is header text.
var entryPattern = regexp.MustCompile(`^\s*(\d+)\s+([0-9a-fA-F]+)\s*$`)

//go:embed fontdata/shinonome16.txt
var embeddedFontData []byte

// defaultFontStore holds the glyphs of the embedded font, populated
// once at init.
var defaultFontStore FontStore

func init() {
	defaultFontStore = loadFontStore(embeddedFontData)
	if len(defaultFontStore) == 0 {
		fmt.Fprintf(os.Stderr, "WARNING: embedded glyph font is empty or unreadable; Japanese text will render as placeholder art.\n")
	}
}

// loadFontStore parses a legacy font resource into a FontStore. The
// parser is a tolerant scanner: lines before the first entry header
// are skipped, malformed rows are dropped, and a corrupt or empty
// resource yields an empty store rather than an error. Entries that
// end up with zero rows are not stored.
func loadFontStore(data []byte) FontStore {
	store := make(FontStore)
	if len(data) == 0 {
		return store
	}

	var key string
	var rows []string
	flush := func() {
		if key != "" && len(rows) > 0 {
			store[key] = Glyph(rows)
		}
		key = ""
		rows = nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if m := entryPattern.FindStringSubmatch(line); m != nil {
			flush()
			key = normalizeCodepoint(m[2])
			continue
		}
		if key == "" {
			// Header or comment line before the first entry
			continue
		}
		switch {
		case strings.HasSuffix(line, fontGlyphEnd):
			rows = append(rows, glyphRow(strings.TrimSuffix(line, fontGlyphEnd)))
			flush()
		case strings.HasSuffix(line, fontRowContinue):
			rows = append(rows, glyphRow(strings.TrimSuffix(line, fontRowContinue)))
		default:
			// Not a glyph row; skip it
		}
	}

	flush()
	return store
}

// glyphRow converts a raw resource row into canvas cells, replacing
// the resource's ink marker with the canonical ink cell.
func glyphRow(row string) string {
	return strings.ReplaceAll(row, fontInkMarker, inkCell)
}

// normalizeCodepoint lowercases a hex codepoint and zero-pads it to
// four digits so store keys always compare consistently.
func normalizeCodepoint(hex string) string {
	hex = strings.ToLower(hex)
	for len(hex) < 4 {
		hex = "0" + hex
	}
	return hex
}

// LoadFontStore loads a font resource from disk. Unlike the embedded
// load, an unreadable file is reported to the caller so a mistyped
// path does not silently disable the font.
func LoadFontStore(path string) (FontStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading font resource: %v", err)
	}
	return loadFontStore(data), nil
}
