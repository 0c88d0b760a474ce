package canvasrenderer

import "testing"

// 当第一行宽度与容器宽度恰好相等且后面紧跟一个显式换行时，不应产生额外的空行。
func TestNoBlankLineWhenEqualWidthThenNewline(t *testing.T) {
	r := NewRenderer()
	r.SetFontSize(12)

	first := "SAMPLE-A"
	limit := r.MeasureWidth(first)
	if limit <= 0 {
		t.Fatalf("invalid measured width: %g", limit)
	}

	lines := r.WrapText(first+"\n"+"SAMPLE-B", limit)
	if got := len(lines); got != 2 {
		t.Fatalf("expected 2 lines without blank, got %d", got)
	}
	if lines[0] != first {
		t.Fatalf("first line mismatch: got=%q want=%q", lines[0], first)
	}
	if lines[1] != "SAMPLE-B" {
		t.Fatalf("second line mismatch: got=%q want=%q", lines[1], "SAMPLE-B")
	}
}
