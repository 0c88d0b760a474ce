// Package textnorm rewrites extracted chat text into the character repertoire
// the PDF fonts can draw: printable ASCII, CR/LF/TAB, Latin-1 supplement, and
// the substitute codepoints of a glyph map.
//
// Normalization runs these steps in order:
//
//  1. NFC composition, so decomposed accents become Latin-1 letters where possible.
//  2. Look-alike punctuation and math symbols become ASCII (curly quotes,
//     ellipsis, dashes, arrows, comparison operators).
//  3. Keycap emoji (digit + U+20E3) collapse to "<digit>.".
//  4. Zero-width, format, variation-selector and combining-mark codepoints are removed.
//  5. Emoji and dingbats are substituted through the glyph map or deleted.
//  6. Residual disallowed codepoints become a space; control characters are deleted.
//  7. Runs of two or more spaces collapse to one.
//
// The result is deterministic and idempotent.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/xahram/ai-chat-exporter/glyphmap"
)

const keycap = '\u20E3'

var lookalikes = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`, "‟", `"`, "″", `"`,
	"‘", "'", "’", "'", "‚", "'", "‛", "'", "′", "'",
	"…", "...",
	"–", "-", "—", "-", "‒", "-", "―", "-", "−", "-",
	"→", "->", "←", "<-", "↔", "<->",
	"⇒", "=>", "⇐", "<=", "⇔", "<=>",
	"•", "*", "·", ".",
	"×", "x", "÷", "/",
	"≠", "!=", "≤", "<=", "≥", ">=", "≈", "~=",
	"±", "+/-", "∞", "inf",
)

var invisible = runes.Remove(runes.Predicate(isInvisible))

// Normalizer applies the normalization pipeline with a specific glyph map.
type Normalizer struct {
	glyphs *glyphmap.Map
}

// New returns a Normalizer substituting emoji through glyphs. A nil map deletes
// every emoji.
func New(glyphs *glyphmap.Map) *Normalizer {
	return &Normalizer{glyphs: glyphs}
}

// Glyphs returns the map used for substitution.
func (n *Normalizer) Glyphs() *glyphmap.Map { return n.glyphs }

// Normalize rewrites text into the allowed repertoire.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return text
	}
	s := norm.NFC.String(text)
	s = lookalikes.Replace(s)
	s = collapseKeycaps(s)
	if out, _, err := transform.String(invisible, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if glyphmap.InPictographicRange(r) {
			sub, ok := n.glyphs.Lookup(r)
			if !ok {
				continue
			}
			r = sub
		}
		if !n.Allowed(r) {
			if unicode.IsControl(r) {
				continue
			}
			r = ' '
		}
		if r == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Allowed reports whether r may appear in normalized output.
func (n *Normalizer) Allowed(r rune) bool {
	switch {
	case r >= 0x20 && r <= 0x7E:
		return true
	case r == '\n' || r == '\r' || r == '\t':
		return true
	case r >= 0xA0 && r <= 0xFF:
		return true
	default:
		return n.glyphs.IsSubstitute(r)
	}
}

// collapseKeycaps turns a digit followed by an optional U+FE0F and U+20E3 into "<digit>.".
func collapseKeycaps(s string) string {
	if !strings.ContainsRune(s, keycap) {
		return s
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r >= '0' && r <= '9' {
			j := i + 1
			if j < len(rs) && rs[j] == '\uFE0F' {
				j++
			}
			if j < len(rs) && rs[j] == keycap {
				b.WriteRune(r)
				b.WriteByte('.')
				i = j
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isInvisible(r rune) bool {
	switch {
	case r >= 0xFE00 && r <= 0xFE0F, r >= 0xE0100 && r <= 0xE01EF:
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tone modifiers
		return true
	case r >= 0x200B && r <= 0x200F, r >= 0x2060 && r <= 0x206F:
		return true
	case r == 0xFEFF, r == 0x00AD:
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf)
}
