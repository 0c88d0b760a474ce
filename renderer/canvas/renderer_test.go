package canvasrenderer

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/xahram/ai-chat-exporter/conversation"
	"github.com/xahram/ai-chat-exporter/glyphmap"
	"github.com/xahram/ai-chat-exporter/layout"
	"github.com/xahram/ai-chat-exporter/renderer"
)

func TestWrapTextGreedyWrapsText(t *testing.T) {
	r := NewRenderer()
	r.SetFontSize(12)

	lines := r.WrapText("hello world again", 10)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %d", len(lines))
	}
}

func TestWrapTextHonorsNewlines(t *testing.T) {
	r := NewRenderer()
	lines := r.WrapText("foo\n\nbar", 100)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines including blank, got %d", len(lines))
	}
	if lines[1] != "" {
		t.Fatalf("expected middle line to be blank, got %q", lines[1])
	}
}

// 裸 \r 会被折行器丢弃，必须先转成空格，否则断点回映错位。
func TestLayoutWrapCarriageReturn(t *testing.T) {
	r := NewRenderer()
	lines := layout.Wrap(r, "foo\rbar baz", 200, glyphmap.Empty())
	if want := []string{"foo bar baz"}; !reflect.DeepEqual(lines, want) {
		t.Fatalf("Wrap = %q, want %q", lines, want)
	}
	lines = layout.Wrap(r, "foo\rbar baz", 12, glyphmap.Empty())
	if got := strings.Join(lines, " "); got != "foo bar baz" {
		t.Fatalf("narrow Wrap = %q", lines)
	}
}

// 每行宽度不超过限制（mm）。
func TestWrapTextWidthLimit(t *testing.T) {
	r := NewRenderer()
	r.SetFontSize(12)

	limit := 30.0
	lines := r.WrapText("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", limit)
	if len(lines) < 2 {
		t.Fatalf("expected the word to be split, got %q", lines)
	}
	for i, ln := range lines {
		if w := r.MeasureWidth(ln); w-limit > 1e-6 {
			t.Fatalf("line %d width exceeds limit: width=%g limit=%g", i, w, limit)
		}
	}
}

func TestMeasureWidthFollowsFontState(t *testing.T) {
	r := NewRenderer()
	r.SetFontSize(10)
	small := r.MeasureWidth("Hello")
	r.SetFontSize(20)
	large := r.MeasureWidth("Hello")
	if small <= 0 || large <= small*1.9 {
		t.Fatalf("width does not scale with size: 10pt=%g 20pt=%g", small, large)
	}

	r.SetFont(layout.FamilyMono, layout.StyleRegular)
	if d := r.MeasureWidth("iiii") - r.MeasureWidth("MMMM"); d > 1e-9 || d < -1e-9 {
		t.Fatalf("mono family is not monospaced")
	}
}

func TestNewPageResetsState(t *testing.T) {
	r := NewRenderer()
	r.SetFont(layout.FamilyMono, layout.StyleBold)
	r.SetFontSize(20)
	r.NewPage()
	if r.family != layout.FamilyBody || r.style != layout.StyleRegular || r.size != defaultFontSize {
		t.Fatalf("state not reset: %s %v %g", r.family, r.style, r.size)
	}
	if r.Pages() != 2 {
		t.Fatalf("expected 2 pages, got %d", r.Pages())
	}
}

func TestRegisterGlyphFont(t *testing.T) {
	r := NewRenderer()
	if err := r.RegisterGlyphFont([]byte("not a font"), "glyph"); err == nil {
		t.Fatalf("expected error for invalid font data")
	}
	if err := r.RegisterGlyphFont(goregular.TTF, "glyph"); err != nil {
		t.Fatalf("RegisterGlyphFont: %v", err)
	}
	r.SetFont("glyph", layout.StyleBold)
	if r.MeasureWidth("A") <= 0 {
		t.Fatalf("glyph family not usable")
	}
}

func TestDrawImageInvalidDataIsSticky(t *testing.T) {
	r := NewRenderer()
	r.DrawImage([]byte("garbage"), 10, 10, 20, 5)
	if r.Err() == nil {
		t.Fatalf("expected sticky error")
	}
	if _, err := r.Render(); err == nil {
		t.Fatalf("Render should report the sticky error")
	}
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRendererWithOptions(Options{Meta: renderer.Meta{
		Title:   "Sorting in Go",
		Subject: "Claude conversation",
		Creator: "chatpdf",
	}})

	doc := &conversation.Document{
		Title: "Sorting in Go",
		Messages: []conversation.Message{
			{Role: conversation.RoleUser, Content: "How do I **sort** a slice?"},
			{Role: conversation.RoleAssistant, Content: "Use this:\n```go\nsort.Ints(xs)\n```\n| A | B |\n|---|---|\n| 1 | 2 |"},
		},
	}
	stats, err := layout.Render(context.Background(), r, doc, layout.DefaultOptions())
	if err != nil {
		t.Fatalf("layout.Render: %v", err)
	}
	if stats.Pages != r.Pages() {
		t.Fatalf("stats pages %d, renderer pages %d", stats.Pages, r.Pages())
	}

	// 一张小图，验证图片绘制路径
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	r.DrawImage(buf.Bytes(), 20, 200, 16, 8)

	files, err := r.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(files) != 1 || !bytes.HasPrefix(files[0], []byte("%PDF")) {
		t.Fatalf("expected one PDF file")
	}
}
