package ohmylogo

import (
	"strings"
)

// placeholderHeight is the row count every placeholder glyph shares.
const placeholderHeight = 10

// curatedPatterns holds hand-authored art for a small set of common
// characters, each exactly placeholderHeight rows of uniform width.
var curatedPatterns = map[rune]Glyph{
	' ': {
		"    ",
		"    ",
		"    ",
		"    ",
		"    ",
		"    ",
		"    ",
		"    ",
		"    ",
		"    ",
	},
	'日': {
		"██████████",
		"██      ██",
		"██      ██",
		"██      ██",
		"██████████",
		"██      ██",
		"██      ██",
		"██      ██",
		"██      ██",
		"██████████",
	},
	'月': {
		" █████████",
		" ██     ██",
		" ██     ██",
		" █████████",
		" ██     ██",
		" █████████",
		" ██     ██",
		" ██     ██",
		"██      ██",
		"█       ██",
	},
	'木': {
		"    ██    ",
		"    ██    ",
		"██████████",
		"    ██    ",
		"   ████   ",
		"  ██████  ",
		" ██ ██ ██ ",
		"██  ██  ██",
		"    ██    ",
		"    ██    ",
	},
	'山': {
		"    ██    ",
		"    ██    ",
		"    ██    ",
		"██  ██  ██",
		"██  ██  ██",
		"██  ██  ██",
		"██  ██  ██",
		"██      ██",
		"██      ██",
		"██████████",
	},
	'川': {
		"██  ██  ██",
		"██  ██  ██",
		"██  ██  ██",
		"██  ██  ██",
		"██  ██  ██",
		"██  ██  ██",
		"██  ██  ██",
		" █  ██  ██",
		" █  ██  ██",
		" █  ██  ██",
	},
	'口': {
		"██████████",
		"██      ██",
		"██      ██",
		"██      ██",
		"██      ██",
		"██      ██",
		"██      ██",
		"██      ██",
		"██      ██",
		"██████████",
	},
	'人': {
		"    ██    ",
		"    ██    ",
		"   ████   ",
		"   ████   ",
		"  ██  ██  ",
		"  ██  ██  ",
		" ██    ██ ",
		" ██    ██ ",
		"██      ██",
		"██      ██",
	},
	'大': {
		"    ██    ",
		"    ██    ",
		"██████████",
		"    ██    ",
		"   ████   ",
		"   ████   ",
		"  ██  ██  ",
		"  ██  ██  ",
		" ██    ██ ",
		"██      ██",
	},
	'中': {
		"    ██    ",
		"    ██    ",
		"██████████",
		"██  ██  ██",
		"██  ██  ██",
		"██████████",
		"    ██    ",
		"    ██    ",
		"    ██    ",
		"    ██    ",
	},
	'ー': {
		"          ",
		"          ",
		"          ",
		"          ",
		"██████████",
		"██████████",
		"          ",
		"          ",
		"          ",
		"          ",
	},
}

// patternFor returns placeholder art for a character that could not
// be resolved against the glyph font. Curated characters use the
// hand-authored patterns above; everything else gets a generic
// bordered block. patternFor is total: it always returns a glyph of
// placeholderHeight rows and never fails.
func patternFor(r rune) Glyph {
	if g, ok := curatedPatterns[r]; ok {
		return g
	}
	return genericPattern(r)
}

// genericPattern synthesizes a bordered block with the character set
// into the middle row. The block widens with the character's display
// width so wide characters do not distort the border.
func genericPattern(r rune) Glyph {
	interior := displayWidth(r) + 4
	top := strings.Repeat(inkCell, interior+2)
	hollow := inkCell + strings.Repeat(" ", interior) + inkCell
	middle := inkCell + "  " + string(r) + "  " + inkCell
	return Glyph{top, hollow, hollow, hollow, middle, hollow, hollow, hollow, hollow, top}
}
