package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xahram/ai-chat-exporter/glyphmap"
)

func TestToMeasurable(t *testing.T) {
	glyphs := glyphmap.Default()
	grin, _ := glyphs.Lookup(0x1F600)
	got := ToMeasurable("**hey** "+string(grin)+" 2 ** 3", glyphs)
	if got != "hey M 2 ** 3" {
		t.Fatalf("ToMeasurable = %q", got)
	}
}

func TestToMeasurableCarriageReturn(t *testing.T) {
	if got := ToMeasurable("foo\rbar **b\rc**", glyphmap.Empty()); got != "foo bar b c" {
		t.Fatalf("ToMeasurable = %q", got)
	}
}

func TestWrapBoldRoundTrip(t *testing.T) {
	c := newFakeCanvas()
	const in = "**bold bold bold** plain"
	lines := Wrap(c, in, 20, glyphmap.Empty())

	want := []string{"**bold bold**", "**bold** plain"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("Wrap = %q, want %q", lines, want)
	}

	var plain []string
	for _, l := range lines {
		plain = append(plain, StripBold(l))
	}
	if got := strings.Join(plain, " "); got != StripBold(in) {
		t.Fatalf("round trip = %q, want %q", got, StripBold(in))
	}

	second := ExtractBold(lines[1])
	if len(second) != 2 || !second[0].Bold || second[0].Text != "bold" || second[1].Bold {
		t.Fatalf("second line runs = %+v", second)
	}
}

func TestWrapNarrowKeepsEveryCharacter(t *testing.T) {
	c := newFakeCanvas()
	in := "alpha **beta gamma delta** epsilon zeta **eta**"
	for _, width := range []float64{6, 10, 14, 30, 200} {
		lines := Wrap(c, in, width, glyphmap.Empty())
		var parts []string
		for _, l := range lines {
			if w := c.MeasureWidth(StripBold(l)); w > width && len(StripBold(l)) > 1 {
				t.Fatalf("width %g: line %q measures %g", width, l, w)
			}
			parts = append(parts, StripBold(l))
		}
		joined := strings.ReplaceAll(strings.Join(parts, ""), " ", "")
		if want := strings.ReplaceAll(StripBold(in), " ", ""); joined != want {
			t.Fatalf("width %g: lost characters: %q vs %q", width, joined, want)
		}
	}
}

func TestRemapBreaksWithGlyphs(t *testing.T) {
	glyphs := glyphmap.Default()
	grin, _ := glyphs.Lookup(0x1F600)
	marked := "go " + string(grin) + " **now**"

	got := RemapBreaks(marked, []string{"go M", "now"}, glyphs)
	want := []string{"go " + string(grin), "**now**"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RemapBreaks = %q, want %q", got, want)
	}
}

func TestRemapBreaksFallsBackToCounts(t *testing.T) {
	got := RemapBreaks("abcdef", []string{"xyz", "uvw"}, glyphmap.Empty())
	if !reflect.DeepEqual(got, []string{"abc", "def"}) {
		t.Fatalf("RemapBreaks = %q", got)
	}
	got = RemapBreaks("abc def", []string{"abc"}, glyphmap.Empty())
	if !reflect.DeepEqual(got, []string{"abc", "def"}) {
		t.Fatalf("dropped tail not recovered: %q", got)
	}
}

func TestWrapLiteralKeepsAsterisks(t *testing.T) {
	c := newFakeCanvas()
	lines := wrapLiteral(c, "x = a ** b", 100, glyphmap.Empty())
	if len(lines) != 1 || lines[0] != "x = a ** b" {
		t.Fatalf("wrapLiteral = %q", lines)
	}
}
