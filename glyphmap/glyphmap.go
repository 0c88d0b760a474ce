// Package glyphmap holds the codepoint substitution tables used to render emoji
// and pictographic symbols with a limited-coverage glyph font.
//
// A Map sends an original codepoint (for example U+1F600) to the private-use
// codepoint under which the glyph font stores the same picture. Maps are
// read-only once built and safe for concurrent use.
package glyphmap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// PUABase is the first private-use codepoint handed out by Sequential.
const PUABase rune = 0xE000

// PUAEnd is the last codepoint of the BMP private use area. Sequential never
// assigns past it.
const PUAEnd rune = 0xF8FF

// Map is a static originalCodepoint -> substituteCodepoint table.
// The zero value and a nil *Map are valid empty tables.
type Map struct {
	forward     map[rune]rune
	substitutes map[rune]struct{}
}

// New builds a Map from explicit pairs.
func New(pairs map[rune]rune) *Map {
	m := &Map{
		forward:     make(map[rune]rune, len(pairs)),
		substitutes: make(map[rune]struct{}, len(pairs)),
	}
	for from, to := range pairs {
		m.forward[from] = to
		m.substitutes[to] = struct{}{}
	}
	return m
}

// Sequential assigns base, base+1, ... to codepoints in order. Duplicates keep
// their first slot, so the order of the list is the order of the font's glyphs.
// Codepoints that would land past PUAEnd stay unmapped.
func Sequential(base rune, codepoints []rune) *Map {
	pairs := make(map[rune]rune, len(codepoints))
	next := base
	for _, cp := range codepoints {
		if next > PUAEnd {
			break
		}
		if _, ok := pairs[cp]; ok {
			continue
		}
		pairs[cp] = next
		next++
	}
	return New(pairs)
}

var defaultMap = sync.OnceValue(func() *Map {
	return Sequential(PUABase, DefaultCodepoints)
})

// Default returns the table matching the bundled emoji ordering.
func Default() *Map { return defaultMap() }

// Empty returns a table without entries. Text normalized with it loses every emoji.
func Empty() *Map { return &Map{} }

// Lookup returns the substitute for r.
func (m *Map) Lookup(r rune) (rune, bool) {
	if m == nil || m.forward == nil {
		return 0, false
	}
	sub, ok := m.forward[r]
	return sub, ok
}

// IsSubstitute reports whether r is one of the table's substitute codepoints.
func (m *Map) IsSubstitute(r rune) bool {
	if m == nil || m.substitutes == nil {
		return false
	}
	_, ok := m.substitutes[r]
	return ok
}

// Len returns the number of mapped codepoints.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.forward)
}

// Load reads a table description: one hexadecimal codepoint per line, with an
// optional "U+" prefix. Blank lines and '#' comments are ignored. Entries are
// assigned sequentially from base, the same way the glyph font was built.
func Load(r io.Reader, base rune) (*Map, error) {
	var cps []rune
	seen := make(map[rune]struct{})
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimPrefix(strings.TrimPrefix(line, "U+"), "0x")
		v, err := strconv.ParseUint(line, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("glyph map line %d: %w", lineNo, err)
		}
		cp := rune(v)
		if !utf8.ValidRune(cp) {
			return nil, fmt.Errorf("glyph map line %d: %q is not a valid codepoint", lineNo, line)
		}
		cps = append(cps, cp)
		seen[cp] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read glyph map: %w", err)
	}
	if last := base + rune(len(seen)) - 1; len(seen) > 0 && (base < PUABase || last > PUAEnd) {
		return nil, fmt.Errorf("glyph map: %d entries from %U do not fit in U+E000..U+F8FF", len(seen), base)
	}
	return Sequential(base, cps), nil
}

// pictographic lists the emoji and dingbat blocks handled by substitution.
// Characters inside these ranges are either substituted or dropped; they never
// survive as themselves.
var pictographic = [][2]rune{
	{0x2300, 0x23FF},   // miscellaneous technical
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x2900, 0x297F},   // supplemental arrows-B
	{0x2B00, 0x2BFF},   // miscellaneous symbols and arrows
	{0x1F000, 0x1FAFF}, // mahjong tiles through symbols and pictographs extended-A
}

// InPictographicRange reports whether r belongs to a supported emoji/dingbat range.
func InPictographicRange(r rune) bool {
	for _, rng := range pictographic {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}
