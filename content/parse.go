package content

import (
	"sort"
	"strings"
)

// scanners in priority order: a later match overlapping an accepted one is dropped.
var scanners = []func(string) []Block{
	scanCode,
	scanDisplayMath,
	scanInlineMath,
	scanTables,
}

// Parse splits s into blocks sorted by Start. Text between special blocks
// becomes text blocks; whitespace-only gaps are dropped, so an empty or blank
// message yields no blocks.
//
// Gaps are trimmed on every side that touches the message boundary or a
// block-level construct. A side touching inline math keeps its whitespace so
// the prose still reads as one sentence.
func Parse(s string) []Block {
	var accepted []Block
	for _, scan := range scanners {
		for _, m := range scan(s) {
			if !overlapsAny(m, accepted) {
				accepted = append(accepted, m)
			}
		}
	}
	sort.Slice(accepted, func(i, j int) bool { return accepted[i].Start < accepted[j].Start })

	out := make([]Block, 0, 2*len(accepted)+1)
	pos := 0
	for i, b := range accepted {
		var prev *Block
		if i > 0 {
			prev = &accepted[i-1]
		}
		if t, ok := gap(s, pos, b.Start, prev, &b); ok {
			out = append(out, t)
		}
		out = append(out, b)
		pos = b.End
	}
	var last *Block
	if len(accepted) > 0 {
		last = &accepted[len(accepted)-1]
	}
	if t, ok := gap(s, pos, len(s), last, nil); ok {
		out = append(out, t)
	}
	return out
}

func overlapsAny(m Block, accepted []Block) bool {
	for _, a := range accepted {
		if m.Start < a.End && a.Start < m.End {
			return true
		}
	}
	return false
}

func gap(s string, start, end int, before, after *Block) (Block, bool) {
	raw := s[start:end]
	if strings.TrimSpace(raw) == "" {
		return Block{}, false
	}
	text := raw
	if before == nil || !before.Inline() {
		text = strings.TrimLeft(text, " \t\r\n")
	}
	if after == nil || !after.Inline() {
		text = strings.TrimRight(text, " \t\r\n")
	}
	return Block{Kind: KindText, Start: start, End: end, Text: text}, true
}
