package layout

import (
	"reflect"
	"testing"

	"github.com/xahram/ai-chat-exporter/glyphmap"
)

func TestExtractBold(t *testing.T) {
	tests := []struct {
		in   string
		want []TextRun
	}{
		{"**bold bold bold** plain", []TextRun{{Text: "bold bold bold", Bold: true}, {Text: " plain"}}},
		{"a **b** c **d**", []TextRun{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c "}, {Text: "d", Bold: true}}},
		{"2 ** 3 is power", []TextRun{{Text: "2 ** 3 is power"}}},
		{"**x** and **y", []TextRun{{Text: "x", Bold: true}, {Text: " and **y"}}},
		{"****tail", []TextRun{{Text: "tail"}}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := ExtractBold(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("ExtractBold(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if got := StripBold("**a** b **c"); got != "a b **c" {
		t.Fatalf("StripBold = %q", got)
	}
}

func TestSplitGlyphRuns(t *testing.T) {
	glyphs := glyphmap.Default()
	grin, _ := glyphs.Lookup(0x1F600)
	heart, _ := glyphs.Lookup(0x2764)
	text := "hi " + string(grin) + string(heart) + " yo" + string(grin)

	got := SplitGlyphRuns(text, glyphs)
	want := []GlyphRun{
		{Text: "hi "},
		{Text: string(grin) + string(heart), Special: true},
		{Text: " yo"},
		{Text: string(grin), Special: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitGlyphRuns = %+v, want %+v", got, want)
	}
	if runs := SplitGlyphRuns(text, glyphmap.Empty()); len(runs) != 1 || runs[0].Special {
		t.Fatalf("empty map should yield one plain run, got %+v", runs)
	}
	if runs := SplitGlyphRuns("", glyphs); len(runs) != 0 {
		t.Fatalf("expected no runs for empty text")
	}
}
