package ohmylogo

// ContainsJapanese reports whether text contains at least one
// character from the Hiragana, Katakana, or CJK Unified Ideograph
// blocks. The test runs per Unicode code point, so supplementary
// plane characters never mis-split into false positives.
func ContainsJapanese(text string) bool {
	for _, r := range text {
		if isJapanese(r) {
			return true
		}
	}
	return false
}

func isJapanese(r rune) bool {
	switch {
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // Katakana
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	}
	return false
}

// layoutJapanese renders one line of Japanese text as a canvas. Each
// character draws from the glyph font when the store resolves it, and
// falls back to placeholder art otherwise.
func layoutJapanese(text string, store FontStore) Canvas {
	var glyphs []Glyph
	for _, r := range text {
		if glyph, ok := store.Lookup(r); ok {
			glyphs = append(glyphs, glyph)
			continue
		}
		glyphs = append(glyphs, patternFor(r))
	}
	return composeUniform(glyphs)
}
