package layout

import (
	"strings"

	"github.com/xahram/ai-chat-exporter/glyphmap"
)

const boldMarker = "**"

// TextRun is a piece of a line with uniform weight.
type TextRun struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// GlyphRun is a piece of text drawn with a single font: either the body font
// or the special-glyph font.
type GlyphRun struct {
	Text    string `json:"text"`
	Special bool   `json:"special,omitempty"`
}

// pairedMarkers returns byte offsets of "**" markers that form open/close
// pairs, scanning left to right. An opener without a closer is not included.
func pairedMarkers(s string) []int {
	var out []int
	for i := 0; i < len(s); {
		open := strings.Index(s[i:], boldMarker)
		if open < 0 {
			break
		}
		open += i
		closeAt := strings.Index(s[open+len(boldMarker):], boldMarker)
		if closeAt < 0 {
			break
		}
		closeAt += open + len(boldMarker)
		out = append(out, open, closeAt)
		i = closeAt + len(boldMarker)
	}
	return out
}

// ExtractBold splits line on paired "**" markers. Unmatched markers stay in
// the text as literal asterisks. Adjacent runs of equal weight are merged and
// empty runs dropped.
func ExtractBold(line string) []TextRun {
	marks := pairedMarkers(line)
	var runs []TextRun
	add := func(text string, bold bool) {
		if text == "" {
			return
		}
		if n := len(runs); n > 0 && runs[n-1].Bold == bold {
			runs[n-1].Text += text
			return
		}
		runs = append(runs, TextRun{Text: text, Bold: bold})
	}
	pos := 0
	for k := 0; k < len(marks); k += 2 {
		open, closeAt := marks[k], marks[k+1]
		add(line[pos:open], false)
		add(line[open+len(boldMarker):closeAt], true)
		pos = closeAt + len(boldMarker)
	}
	add(line[pos:], false)
	return runs
}

// StripBold removes paired markers, leaving literal ones.
func StripBold(line string) string {
	var b strings.Builder
	for _, r := range ExtractBold(line) {
		b.WriteString(r.Text)
	}
	return b.String()
}

// SplitGlyphRuns groups consecutive characters by whether they are
// substitute-glyph codepoints in glyphs.
func SplitGlyphRuns(text string, glyphs *glyphmap.Map) []GlyphRun {
	var runs []GlyphRun
	start := 0
	special := false
	for i, r := range text {
		s := glyphs.IsSubstitute(r)
		if i == 0 {
			special = s
			continue
		}
		if s != special {
			runs = append(runs, GlyphRun{Text: text[start:i], Special: special})
			start, special = i, s
		}
	}
	if start < len(text) {
		runs = append(runs, GlyphRun{Text: text[start:], Special: special})
	}
	return runs
}
