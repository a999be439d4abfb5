package ohmylogo

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const ansiReset = ESC + "[0m"

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// ansiForeground formats a 24-bit foreground color escape sequence
// for the given color.
func ansiForeground(c RGB) string {
	return fmt.Sprintf("%s[38;2;%d;%d;%dm", ESC, c.R, c.G, c.B)
}

// StripANSI removes every ANSI color sequence from a string, leaving
// only the visible text.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// CompressANSI compresses colored output by merging runs of adjacent
// cells that share the same foreground color under a single escape
// sequence. The function takes colored text and returns an equivalent
// string that renders identically with fewer escapes.
func CompressANSI(ansi string) string {
	var compressed strings.Builder
	for li, line := range strings.Split(ansi, "\n") {
		if li > 0 {
			compressed.WriteByte('\n')
		}
		compressLine(&compressed, line)
	}
	return compressed.String()
}

// compressLine rewrites one line of colored text into color-run form
// and terminates it with a reset. Lines carrying no escapes are
// copied through untouched.
func compressLine(out *strings.Builder, line string) {
	if !strings.Contains(line, ESC) {
		out.WriteString(line)
		return
	}

	var run strings.Builder
	var runFg, currentFg string
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runFg != "" {
			out.WriteString(ESC + "[" + runFg + "m")
		}
		out.WriteString(run.String())
		run.Reset()
	}

	rest := line
	for len(rest) > 0 {
		if strings.HasPrefix(rest, ESC+"[") {
			end := strings.IndexByte(rest, 'm')
			if end < 0 {
				// Unterminated escape; keep the tail verbatim
				run.WriteString(rest)
				break
			}
			code := rest[len(ESC)+1 : end]
			rest = rest[end+1:]
			if fg := extractForeground(code); fg != "" {
				currentFg = fg
			} else if code == "" || code == "0" {
				currentFg = ""
			}
			continue
		}

		cell, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
		cellFg := currentFg
		if cell == ' ' {
			// Spaces render the same under any foreground color
			cellFg = ""
		}
		if cellFg != runFg {
			flush()
			runFg = cellFg
		}
		run.WriteRune(cell)
	}
	flush()
	out.WriteString(ansiReset)
}

// extractForeground extracts the 24-bit foreground color parameters
// from an SGR parameter list, or "" when the list carries none.
func extractForeground(code string) string {
	params := strings.Split(code, ";")
	for i := 0; i < len(params); i++ {
		if params[i] == "38" && i+4 < len(params) && params[i+1] == "2" {
			return strings.Join(params[i:i+5], ";")
		}
	}
	return ""
}
