package content

import "strings"

// Each scanner walks the whole string once and reports every match it finds,
// independently of the others. Overlaps are settled later by priority.

const fence = "```"

// scanCode finds ```lang\nbody``` fences. The language tag is the rest of the
// opening line. A fence without a closing marker matches nothing.
func scanCode(s string) []Block {
	var out []Block
	for i := 0; i < len(s); {
		open := strings.Index(s[i:], fence)
		if open < 0 {
			break
		}
		open += i
		nl := strings.IndexByte(s[open+len(fence):], '\n')
		if nl < 0 {
			break
		}
		bodyStart := open + len(fence) + nl + 1
		closeAt := strings.Index(s[bodyStart:], fence)
		if closeAt < 0 {
			i = open + 1
			continue
		}
		closeAt += bodyStart
		lang := strings.TrimSpace(s[open+len(fence) : bodyStart-1])
		if lang == "" {
			lang = "code"
		}
		end := closeAt + len(fence)
		out = append(out, Block{
			Kind:     KindCode,
			Start:    open,
			End:      end,
			Language: lang,
			Text:     strings.TrimSpace(s[bodyStart:closeAt]),
		})
		i = end
	}
	return out
}

// scanDisplayMath finds $$...$$ with a non-blank body. The body may span lines.
func scanDisplayMath(s string) []Block {
	var out []Block
	for i := 0; i < len(s); {
		open := strings.Index(s[i:], "$$")
		if open < 0 {
			break
		}
		open += i
		closeAt := strings.Index(s[open+2:], "$$")
		if closeAt < 0 {
			break
		}
		closeAt += open + 2
		body := strings.TrimSpace(s[open+2 : closeAt])
		if body == "" {
			i = open + 2
			continue
		}
		out = append(out, Block{Kind: KindLatex, Start: open, End: closeAt + 2, Text: body, Display: true})
		i = closeAt + 2
	}
	return out
}

// scanInlineMath finds $\cmd...$ on a single line. Requiring the leading
// backslash keeps prices like "$5 and $10" out.
func scanInlineMath(s string) []Block {
	var out []Block
	for i := 0; i < len(s); i++ {
		if s[i] != '$' || i+1 >= len(s) || s[i+1] != '\\' {
			continue
		}
		if i > 0 && s[i-1] == '$' {
			continue
		}
		end := -1
		for j := i + 2; j < len(s); j++ {
			if s[j] == '\n' {
				break
			}
			if s[j] == '$' {
				if j+1 < len(s) && s[j+1] == '$' {
					break
				}
				end = j
				break
			}
		}
		if end < 0 {
			continue
		}
		out = append(out, Block{Kind: KindLatex, Start: i, End: end + 1, Text: strings.TrimSpace(s[i+1 : end])})
		i = end
	}
	return out
}

// scanTables finds markdown pipe tables: a header row, a separator row of
// dashes, then at least one body row. The span starts at the header's first
// pipe and ends after the last row's line break. Separator rows are not data.
func scanTables(s string) []Block {
	var out []Block
	lines := splitLines(s)
	for i := 0; i+2 < len(lines); {
		hdr, sep := lines[i], lines[i+1]
		if !isPipeRow(hdr.text) || !isSeparatorRow(sep.text) {
			i++
			continue
		}
		j := i + 2
		for j < len(lines) && isPipeRow(lines[j].text) {
			j++
		}
		if j == i+2 {
			i++
			continue
		}
		rows := [][]string{splitCells(hdr.text)}
		for _, ln := range lines[i+2 : j] {
			if isSeparatorRow(ln.text) {
				continue
			}
			rows = append(rows, splitCells(ln.text))
		}
		start := hdr.start + strings.IndexByte(hdr.text, '|')
		out = append(out, Block{Kind: KindTable, Start: start, End: lines[j-1].next, Rows: rows})
		i = j
	}
	return out
}

type line struct {
	text  string // without the terminator
	start int
	next  int // offset just past the terminator
}

func splitLines(s string) []line {
	var out []line
	for start := 0; start < len(s); {
		nl := strings.IndexByte(s[start:], '\n')
		if nl < 0 {
			out = append(out, line{text: strings.TrimSuffix(s[start:], "\r"), start: start, next: len(s)})
			break
		}
		end := start + nl
		out = append(out, line{text: strings.TrimSuffix(s[start:end], "\r"), start: start, next: end + 1})
		start = end + 1
	}
	return out
}

func isPipeRow(l string) bool {
	t := strings.TrimSpace(l)
	return len(t) >= 3 && t[0] == '|' && t[len(t)-1] == '|'
}

func isSeparatorRow(l string) bool {
	t := strings.TrimSpace(l)
	if !isPipeRow(t) || !strings.Contains(t, "-") {
		return false
	}
	for _, r := range t {
		switch r {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

func splitCells(l string) []string {
	t := strings.TrimSpace(l)
	t = t[1 : len(t)-1]
	parts := strings.Split(t, "|")
	cells := make([]string, len(parts))
	for k, p := range parts {
		cells[k] = strings.TrimSpace(p)
	}
	return cells
}
