package content

import (
	"reflect"
	"strings"
	"testing"
)

// stripSpans drops offsets so expectations can be written by payload only.
func stripSpans(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		b.Start, b.End = 0, 0
		out[i] = b
	}
	return out
}

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Block
	}{
		{
			name: "text then table",
			in:   "Hello\n\n| A | B |\n|---|---|\n| 1 | 2 |\n",
			want: []Block{
				Text("Hello"),
				{Kind: KindTable, Rows: [][]string{{"A", "B"}, {"1", "2"}}},
			},
		},
		{
			name: "inline math keeps surrounding spaces",
			in:   "Use $\\alpha$ here",
			want: []Block{
				Text("Use "),
				{Kind: KindLatex, Text: "\\alpha"},
				Text(" here"),
			},
		},
		{
			name: "display math",
			in:   "Energy:\n$$E = mc^2$$\ndone",
			want: []Block{
				Text("Energy:"),
				{Kind: KindLatex, Text: "E = mc^2", Display: true},
				Text("done"),
			},
		},
		{
			name: "plain message is one trimmed block",
			in:   "  just words\n",
			want: []Block{Text("just words")},
		},
		{
			name: "currency is not math",
			in:   "costs $5 or $10",
			want: []Block{Text("costs $5 or $10")},
		},
		{
			name: "code fence with language",
			in:   "See:\n```go\nfmt.Println(1)\n```\nok",
			want: []Block{
				Text("See:"),
				{Kind: KindCode, Language: "go", Text: "fmt.Println(1)"},
				Text("ok"),
			},
		},
		{
			name: "code fence without language",
			in:   "```\nx := 1\n```",
			want: []Block{{Kind: KindCode, Language: "code", Text: "x := 1"}},
		},
		{
			name: "unterminated fence is text",
			in:   "```python\nprint(1)",
			want: []Block{Text("```python\nprint(1)")},
		},
		{
			name: "separator rows are not data",
			in:   "| h |\n| :-: |\n| a |\n|---|\n| b |",
			want: []Block{{Kind: KindTable, Rows: [][]string{{"h"}, {"a"}, {"b"}}}},
		},
		{
			name: "table needs a body row",
			in:   "| h |\n|---|\ntext",
			want: []Block{Text("| h |\n|---|\ntext")},
		},
		{
			name: "empty message",
			in:   " \n\t",
			want: []Block{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripSpans(Parse(tt.in))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q)\n got  %v\n want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCodeWinsOverMath(t *testing.T) {
	blocks := Parse("```text\ncontaining $$x$$ and $\\beta$\n| a |\n|---|\n| b |\n```")
	if len(blocks) != 1 {
		t.Fatalf("expected exactly one block, got %v", blocks)
	}
	if blocks[0].Kind != KindCode {
		t.Fatalf("expected code block, got %v", blocks[0].Kind)
	}
	if !strings.Contains(blocks[0].Text, "$$x$$") {
		t.Fatalf("code body lost math text: %q", blocks[0].Text)
	}
}

func TestParseMathWinsOverTable(t *testing.T) {
	in := "| a | $\\frac{1}{2}$ |\n|---|---|\n| b | c |"
	blocks := Parse(in)
	for _, b := range blocks {
		if b.Kind == KindTable {
			t.Fatalf("table overlapping inline math should be dropped: %v", blocks)
		}
	}
}

func TestParseCoverage(t *testing.T) {
	inputs := []string{
		"Hello\n\n| A | B |\n|---|---|\n| 1 | 2 |\n",
		"Use $\\alpha$ here",
		"a\n```js\nlet x\n```\n\n$$\\sum_i i$$ tail $\\pi$.",
		"```\nunterminated $$y$$",
		"",
	}
	for _, in := range inputs {
		blocks := Parse(in)
		pos := 0
		for i, b := range blocks {
			if b.Start < pos {
				t.Fatalf("%q: block %d starts at %d before %d", in, i, b.Start, pos)
			}
			if strings.TrimSpace(in[pos:b.Start]) != "" {
				t.Fatalf("%q: uncovered text %q before block %d", in, in[pos:b.Start], i)
			}
			if b.End <= b.Start {
				t.Fatalf("%q: empty span for block %d", in, i)
			}
			pos = b.End
		}
		if strings.TrimSpace(in[pos:]) != "" {
			t.Fatalf("%q: uncovered tail %q", in, in[pos:])
		}
	}
}

func TestParseUnterminatedFenceStillScansMath(t *testing.T) {
	blocks := Parse("```\nunterminated $$y$$")
	var kinds []Kind
	for _, b := range blocks {
		kinds = append(kinds, b.Kind)
	}
	want := []Kind{KindText, KindLatex}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	if blocks[0].Text != "```\nunterminated" {
		t.Fatalf("text = %q", blocks[0].Text)
	}
}
