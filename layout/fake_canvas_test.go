package layout

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// drawOp records one call on fakeCanvas together with the drawing state at
// the time of the call.
type drawOp struct {
	kind   string // text, line, rect, rrect, image
	text   string
	x, y   float64
	w, h   float64
	mode   PaintMode
	page   int
	family string
	style  FontStyle
	size   float64
	color  Color // text colour for text, fill colour for shapes
}

// fakeCanvas is a Canvas where every rune is charWidth millimetres wide.
// NewPage resets the drawing state, as a fresh PDF page would.
type fakeCanvas struct {
	width, height float64
	charWidth     float64

	page      int
	family    string
	style     FontStyle
	size      float64
	textColor Color
	fillColor Color

	ops        []drawOp
	glyphFonts map[string][]byte

	registerErr error
	failAfter   int // fail once this many ops were drawn; 0 disables
	err         error
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{width: 210, height: 297, charWidth: 2, glyphFonts: map[string][]byte{}}
}

func (c *fakeCanvas) SetFont(family string, style FontStyle) { c.family, c.style = family, style }
func (c *fakeCanvas) SetFontSize(pt float64)                 { c.size = pt }
func (c *fakeCanvas) SetTextColor(col Color)                 { c.textColor = col }
func (c *fakeCanvas) SetFillColor(col Color)                 { c.fillColor = col }
func (c *fakeCanvas) SetDrawColor(Color)                     {}
func (c *fakeCanvas) SetLineWidth(float64)                   {}

func (c *fakeCanvas) MeasureWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * c.charWidth
}

// WrapText breaks at single spaces, dropping the space, and splits words
// longer than maxWidth.
func (c *fakeCanvas) WrapText(text string, maxWidth float64) []string {
	var lines []string
	var cur string
	for _, word := range strings.Split(text, " ") {
		for c.MeasureWidth(word) > maxWidth {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			n := int(maxWidth / c.charWidth)
			if n < 1 {
				n = 1
			}
			r := []rune(word)
			lines = append(lines, string(r[:n]))
			word = string(r[n:])
		}
		switch {
		case cur == "":
			cur = word
		case c.MeasureWidth(cur+" "+word) <= maxWidth:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func (c *fakeCanvas) record(op drawOp) {
	if c.failAfter > 0 && len(c.ops) >= c.failAfter && c.err == nil {
		c.err = errors.New("disk full")
	}
	op.page = c.page
	op.family, op.style, op.size = c.family, c.style, c.size
	c.ops = append(c.ops, op)
}

func (c *fakeCanvas) DrawText(text string, x, y float64) {
	c.record(drawOp{kind: "text", text: text, x: x, y: y, color: c.textColor})
}

func (c *fakeCanvas) DrawLine(x1, y1, x2, y2 float64) {
	c.record(drawOp{kind: "line", x: x1, y: y1, w: x2 - x1, h: y2 - y1})
}

func (c *fakeCanvas) DrawRect(x, y, w, h float64, mode PaintMode) {
	c.record(drawOp{kind: "rect", x: x, y: y, w: w, h: h, mode: mode, color: c.fillColor})
}

func (c *fakeCanvas) DrawRoundedRect(x, y, w, h, r float64, mode PaintMode) {
	c.record(drawOp{kind: "rrect", x: x, y: y, w: w, h: h, mode: mode, color: c.fillColor})
}

func (c *fakeCanvas) DrawImage(png []byte, x, y, w, h float64) {
	c.record(drawOp{kind: "image", x: x, y: y, w: w, h: h})
}

func (c *fakeCanvas) NewPage() {
	c.page++
	c.family, c.style, c.size = "", StyleRegular, 0
	c.textColor, c.fillColor = Color{}, Color{}
}

func (c *fakeCanvas) PageSize() (float64, float64) { return c.width, c.height }

func (c *fakeCanvas) RegisterGlyphFont(data []byte, name string) error {
	if c.registerErr != nil {
		return c.registerErr
	}
	c.glyphFonts[name] = data
	return nil
}

func (c *fakeCanvas) Err() error { return c.err }

func (c *fakeCanvas) texts() []drawOp { return c.filter("text") }

func (c *fakeCanvas) filter(kind string) []drawOp {
	var out []drawOp
	for _, op := range c.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (c *fakeCanvas) findText(s string) (drawOp, bool) {
	for _, op := range c.texts() {
		if op.text == s {
			return op, true
		}
	}
	return drawOp{}, false
}
