package layout

import (
	"strings"
	"unicode"

	"github.com/xahram/ai-chat-exporter/glyphmap"
)

// Placeholder stands in for every special glyph when measuring: substitute
// codepoints live in the glyph font, so body-font metrics for them are
// meaningless. "M" is about as wide as a typical emoji glyph.
const Placeholder = 'M'

// unit is one plain character of a marked string and whether it sits inside
// a bold span.
type unit struct {
	r    rune
	bold bool
}

// toUnits splits marked into units. A bare carriage return becomes a space:
// wrappers drop it, which would shift every later break by one rune.
func toUnits(marked string, parseBold bool) []unit {
	var out []unit
	if !parseBold {
		for _, r := range marked {
			out = append(out, unit{r: unCR(r)})
		}
		return out
	}
	for _, run := range ExtractBold(marked) {
		for _, r := range run.Text {
			out = append(out, unit{r: unCR(r), bold: run.Bold})
		}
	}
	return out
}

func unCR(r rune) rune {
	if r == '\r' {
		return ' '
	}
	return r
}

func measurable(us []unit, glyphs *glyphmap.Map) []rune {
	out := make([]rune, len(us))
	for i, u := range us {
		if glyphs.IsSubstitute(u.r) {
			out[i] = Placeholder
		} else {
			out[i] = u.r
		}
	}
	return out
}

// ToMeasurable strips paired bold markers from marked and replaces every
// special glyph with Placeholder. The result has exactly one rune per plain
// character of marked.
func ToMeasurable(marked string, glyphs *glyphmap.Map) string {
	return string(measurable(toUnits(marked, true), glyphs))
}

// RemapBreaks maps lines wrapped from ToMeasurable(marked) back onto marked.
// Each returned line carries its own balanced bold markers: a bold span cut by
// a break is closed at the end of one line and reopened on the next.
//
// Wrappers may drop the whitespace they break at; it is skipped here too.
// When a proxy line cannot be located verbatim, its rune count is consumed.
func RemapBreaks(marked string, proxyLines []string, glyphs *glyphmap.Map) []string {
	return remap(toUnits(marked, true), proxyLines, glyphs, true)
}

func remap(us []unit, proxyLines []string, glyphs *glyphmap.Map, mark bool) []string {
	proxy := measurable(us, glyphs)
	out := make([]string, 0, len(proxyLines))
	pos := 0
	for _, pl := range proxyLines {
		lr := []rune(pl)
		start := pos
		if !hasRunePrefix(proxy[start:], lr) {
			for start < len(proxy) && unicode.IsSpace(proxy[start]) {
				start++
			}
		}
		end := start + len(lr)
		if end > len(us) {
			end = len(us)
		}
		out = append(out, render(us[start:end], mark))
		pos = end
	}
	if rest := us[pos:]; strings.TrimSpace(string(measurable(rest, glyphs))) != "" {
		out = append(out, strings.TrimLeftFunc(render(rest, mark), unicode.IsSpace))
	}
	return out
}

func hasRunePrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

// render writes units back out, wrapping bold stretches in markers.
func render(us []unit, mark bool) string {
	var b strings.Builder
	bold := false
	for _, u := range us {
		if mark && u.bold != bold {
			b.WriteString(boldMarker)
			bold = u.bold
		}
		b.WriteRune(u.r)
	}
	if bold {
		b.WriteString(boldMarker)
	}
	return b.String()
}

// Wrap wraps a marked line to width using the canvas's current font. The
// returned lines keep bold markers; draw each with ExtractBold.
func Wrap(c Canvas, marked string, width float64, glyphs *glyphmap.Map) []string {
	return wrapUnits(c, toUnits(marked, true), width, glyphs, true)
}

// wrapLiteral wraps text that has no bold markup, such as code.
func wrapLiteral(c Canvas, text string, width float64, glyphs *glyphmap.Map) []string {
	return wrapUnits(c, toUnits(text, false), width, glyphs, false)
}

func wrapUnits(c Canvas, us []unit, width float64, glyphs *glyphmap.Map, mark bool) []string {
	if len(us) == 0 {
		return nil
	}
	proxy := string(measurable(us, glyphs))
	return remap(us, c.WrapText(proxy, width), glyphs, mark)
}
