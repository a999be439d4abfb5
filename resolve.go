package ohmylogo

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
)

// payloadRule selects how the bytes produced by an encoding scheme
// are reduced to the two payload bytes of a legacy codepoint.
type payloadRule int

const (
	// payloadEscaped strips the 7-bit escape framing around the
	// payload and requires exactly two bytes to remain.
	payloadEscaped payloadRule = iota
	// payloadShifted requires the encoder to emit exactly two bytes.
	payloadShifted
	// payloadPrefix takes the first two bytes the encoder emitted.
	payloadPrefix
)

// codepointScheme is one strategy for turning a rune into a candidate
// legacy codepoint. The encoding values are stateless factories, so
// the scheme list is safe to share; encoders are created per call.
type codepointScheme struct {
	name string
	enc  encoding.Encoding
	rule payloadRule
}

// resolverSchemes lists the conversion strategies in priority order:
// the classic escape-framed scheme, the classic shifted scheme, then
// the same two encodings resolved by name through the IANA registry.
var resolverSchemes = buildResolverSchemes()

func buildResolverSchemes() []codepointScheme {
	schemes := []codepointScheme{
		{name: "iso-2022-jp", enc: japanese.ISO2022JP, rule: payloadEscaped},
		{name: "euc-jp", enc: japanese.EUCJP, rule: payloadShifted},
	}
	for _, alias := range []string{"ISO-2022-JP", "EUC-JP"} {
		e, err := ianaindex.IANA.Encoding(alias)
		if err != nil || e == nil {
			continue
		}
		schemes = append(schemes, codepointScheme{
			name: "iana-" + strings.ToLower(alias),
			enc:  e,
			rule: payloadPrefix,
		})
	}
	return schemes
}

// legacyKey encodes a single rune under the scheme and reduces the
// output to a 4-hex-digit codepoint key, big-endian. Encoder errors
// and unexpected payload sizes are a miss for this scheme only.
func (s codepointScheme) legacyKey(r rune) (string, bool) {
	encoded, err := s.enc.NewEncoder().String(string(r))
	if err != nil {
		return "", false
	}
	payload := []byte(encoded)
	switch s.rule {
	case payloadEscaped:
		payload = stripEscapeFraming(payload)
		if len(payload) != 2 {
			return "", false
		}
	case payloadShifted:
		if len(payload) != 2 {
			return "", false
		}
	case payloadPrefix:
		if len(payload) < 2 {
			return "", false
		}
		payload = payload[:2]
	}
	return fmt.Sprintf("%02x%02x", payload[0], payload[1]), true
}

// stripEscapeFraming drops the escape sequences that shift 7-bit
// encoded output into and back out of the double-byte character set,
// leaving only the payload bytes.
func stripEscapeFraming(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0x1b && b[1] == '$' {
		b = b[3:]
	}
	if len(b) >= 3 && b[len(b)-3] == 0x1b && b[len(b)-2] == '(' {
		b = b[:len(b)-3]
	}
	return b
}

// resolve maps a rune to the codepoint key of a glyph present in the
// store. Schemes run in order and the first candidate that is an
// actual store key wins. A conversion that succeeds but has no glyph
// in the store counts as a miss, so later schemes still get a chance.
// The second return value is false when every scheme misses.
func resolve(r rune, store FontStore) (string, bool) {
	if len(store) == 0 {
		return "", false
	}
	for _, scheme := range resolverSchemes {
		key, ok := scheme.legacyKey(r)
		if !ok {
			continue
		}
		if _, present := store[key]; present {
			return key, true
		}
	}
	return "", false
}

// Lookup resolves a rune to its glyph in the store. It reports false
// when no conversion scheme maps the rune to a stored codepoint.
func (s FontStore) Lookup(r rune) (Glyph, bool) {
	key, ok := resolve(r, s)
	if !ok {
		return nil, false
	}
	return s[key], true
}
