package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/xahram/ai-chat-exporter/conversation"
	"github.com/xahram/ai-chat-exporter/layout"
)

func TestPageSizeInPixels(t *testing.T) {
	c := New(Options{})
	b := c.Pages()[0].Bounds()
	if b.Dx() != 840 || b.Dy() != 1188 {
		t.Fatalf("A4 at 4 px/mm: got %v", b)
	}
	if got := c.Pages()[0].RGBAAt(10, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("page background = %v", got)
	}
}

func TestMeasureWidth(t *testing.T) {
	c := New(Options{})
	c.SetFontSize(10)
	small := c.MeasureWidth("Hello world")
	c.SetFontSize(20)
	large := c.MeasureWidth("Hello world")
	if small <= 0 || large < small*1.8 {
		t.Fatalf("width does not scale with size: %g %g", small, large)
	}
	c.SetFont(layout.FamilyBody, layout.StyleBold)
	if c.MeasureWidth("Hello world") <= large*0.9 {
		t.Fatalf("bold face not used")
	}
	lines := c.WrapText("Hello world again and again", small)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", lines)
	}
}

func TestDrawRectFillsPixels(t *testing.T) {
	c := New(Options{})
	c.SetFillColor(layout.RGB(59, 130, 246))
	c.DrawRect(10, 10, 10, 5, layout.Fill)
	if got := c.Pages()[0].RGBAAt(60, 50); got != (color.RGBA{59, 130, 246, 255}) {
		t.Fatalf("fill pixel = %v", got)
	}
	if got := c.Pages()[0].RGBAAt(90, 50); got.R != 255 {
		t.Fatalf("pixel outside rect painted: %v", got)
	}
}

func TestDrawRoundedRectLeavesCorners(t *testing.T) {
	c := New(Options{})
	c.SetFillColor(layout.RGB(217, 119, 6))
	c.DrawRoundedRect(10, 10, 40, 10, 2, layout.Fill)
	img := c.Pages()[0]
	if got := img.RGBAAt(40, 40); got.R != 255 || got.G != 255 {
		t.Fatalf("corner pixel painted: %v", got)
	}
	if got := img.RGBAAt(100, 60); got != (color.RGBA{217, 119, 6, 255}) {
		t.Fatalf("centre pixel = %v", got)
	}
}

func TestDrawImageScales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, color.Black)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	c := New(Options{})
	c.DrawImage(buf.Bytes(), 10, 10, 10, 10)
	if got := c.Pages()[0].RGBAAt(60, 60); got.R > 10 {
		t.Fatalf("image not drawn into its box: %v", got)
	}

	c.DrawImage([]byte("nope"), 0, 0, 1, 1)
	if c.Err() == nil {
		t.Fatalf("expected sticky decode error")
	}
	if _, err := c.Render(); err == nil {
		t.Fatalf("Render should report the sticky error")
	}
}

func TestRegisterGlyphFont(t *testing.T) {
	c := New(Options{})
	if err := c.RegisterGlyphFont([]byte("junk"), "glyph"); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := c.RegisterGlyphFont(goregular.TTF, "glyph"); err != nil {
		t.Fatalf("RegisterGlyphFont: %v", err)
	}
	c.SetFont("glyph", layout.StyleBold)
	if c.MeasureWidth("A") <= 0 {
		t.Fatalf("glyph family falls back to its regular face")
	}
}

func TestRenderDocumentPages(t *testing.T) {
	c := New(Options{})
	var long string
	for range 120 {
		long += "A paragraph line that keeps going.\n"
	}
	doc := &conversation.Document{
		Title: "Preview",
		Messages: []conversation.Message{
			{Role: conversation.RoleUser, Content: "Show me **everything**"},
			{Role: conversation.RoleAssistant, Content: long},
		},
	}
	stats, err := layout.Render(context.Background(), c, doc, layout.DefaultOptions())
	if err != nil {
		t.Fatalf("layout.Render: %v", err)
	}
	if stats.Pages < 2 {
		t.Fatalf("expected several pages, got %d", stats.Pages)
	}
	files, err := c.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(files) != stats.Pages {
		t.Fatalf("got %d PNGs for %d pages", len(files), stats.Pages)
	}
	img, err := png.Decode(bytes.NewReader(files[0]))
	if err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if img.Bounds().Dx() != 840 {
		t.Fatalf("page width %d", img.Bounds().Dx())
	}
}
