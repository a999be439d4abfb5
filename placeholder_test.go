package ohmylogo

import (
	"reflect"
	"strings"
	"testing"
)

func TestCuratedPatternsGeometry(t *testing.T) {
	t.Parallel()

	for r, g := range curatedPatterns {
		if len(g) != placeholderHeight {
			t.Errorf("Pattern %q: expected %d rows, got %d", r, placeholderHeight, len(g))
		}
		width := rowDisplayWidth(g[0])
		for i, row := range g {
			if w := rowDisplayWidth(row); w != width {
				t.Errorf("Pattern %q row %d: width %d, expected %d", r, i, w, width)
			}
			if strings.Trim(row, "█ ") != "" {
				t.Errorf("Pattern %q row %d: unexpected cells in %q", r, i, row)
			}
		}
	}
}

func TestPatternForCurated(t *testing.T) {
	t.Parallel()

	if !reflect.DeepEqual(patternFor('日'), curatedPatterns['日']) {
		t.Error("Curated character should use its hand-authored pattern")
	}
	if !reflect.DeepEqual(patternFor(' '), curatedPatterns[' ']) {
		t.Error("Space should use its curated blank pattern")
	}
}

func TestGenericPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		r     rune
		width int
	}{
		{"wide kanji", '猫', 8},
		{"narrow latin", 'x', 7},
	}
	for _, tt := range tests {
		g := patternFor(tt.r)
		if len(g) != placeholderHeight {
			t.Fatalf("%s: expected %d rows, got %d", tt.name, placeholderHeight, len(g))
		}
		for i, row := range g {
			if w := rowDisplayWidth(row); w != tt.width {
				t.Errorf("%s row %d: width %d, expected %d", tt.name, i, w, tt.width)
			}
		}
		if !strings.Contains(g[4], string(tt.r)) {
			t.Errorf("%s: middle row %q should carry the character", tt.name, g[4])
		}
		if g[0] != strings.Repeat("█", tt.width) || g[len(g)-1] != g[0] {
			t.Errorf("%s: expected solid border rows, got %q and %q", tt.name, g[0], g[len(g)-1])
		}
	}
}

func TestPatternForDeterministic(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'日', '猫', 'Q', '€'} {
		if !reflect.DeepEqual(patternFor(r), patternFor(r)) {
			t.Errorf("patternFor(%q) is not reproducible", r)
		}
	}
}
