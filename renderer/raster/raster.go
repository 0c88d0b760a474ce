// Package raster is a layout.Canvas that paints pages into RGBA images with
// github.com/golang/freetype and encodes each page as a PNG.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/xahram/ai-chat-exporter/fonts"
	"github.com/xahram/ai-chat-exporter/layout"
	"github.com/xahram/ai-chat-exporter/renderer"
)

// DefaultDPMM is about 100 dpi.
const DefaultDPMM = 4.0

const defaultFontSize = 10.0

// Options configures a raster canvas.
type Options struct {
	PageWidth  float64 // mm, A4 when zero
	PageHeight float64 // mm
	DPMM       float64 // pixels per millimetre
}

type family [4]*truetype.Font // indexed by layout.FontStyle

type faceKey struct {
	font *truetype.Font
	size float64
}

// Canvas paints onto one RGBA image per page.
type Canvas struct {
	opts  Options
	pages []*image.RGBA
	dc    *freetype.Context

	families map[string]*family
	faces    map[faceKey]font.Face

	family    string
	style     layout.FontStyle
	size      float64
	textColor layout.Color
	fillColor layout.Color
	drawColor layout.Color
	lineWidth float64

	err error
}

var _ renderer.Renderer = (*Canvas)(nil)

// New creates a canvas with the bundled body and mono families and opens the
// first page.
func New(opts Options) *Canvas {
	if opts.PageWidth <= 0 || opts.PageHeight <= 0 {
		opts.PageWidth, opts.PageHeight = 210, 297
	}
	if opts.DPMM <= 0 {
		opts.DPMM = DefaultDPMM
	}
	c := &Canvas{
		opts:     opts,
		families: map[string]*family{},
		faces:    map[faceKey]font.Face{},
	}
	for name, source := range map[string]func(fonts.Style) []byte{
		layout.FamilyBody: fonts.Body,
		layout.FamilyMono: fonts.Mono,
	} {
		var fam family
		for i, s := range []fonts.Style{fonts.Regular, fonts.Bold, fonts.Italic, fonts.BoldItalic} {
			ft, err := truetype.Parse(source(s))
			if err != nil {
				c.fail(fmt.Errorf("parse font %s: %w", name, err))
				continue
			}
			fam[i] = ft
		}
		c.families[name] = &fam
	}

	c.dc = freetype.NewContext()
	c.dc.SetDPI(c.dpi())
	c.NewPage()
	return c
}

func (c *Canvas) dpi() float64 { return c.opts.DPMM * 25.4 }

func (c *Canvas) px(mm float64) float64 { return mm * c.opts.DPMM }

func (c *Canvas) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// NewPage starts a white page and resets the drawing state.
func (c *Canvas) NewPage() {
	w := int(math.Ceil(c.px(c.opts.PageWidth)))
	h := int(math.Ceil(c.px(c.opts.PageHeight)))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	c.pages = append(c.pages, img)
	c.dc.SetDst(img)
	c.dc.SetClip(img.Bounds())

	c.family, c.style, c.size = layout.FamilyBody, layout.StyleRegular, defaultFontSize
	c.textColor, c.fillColor, c.drawColor = layout.Color{}, layout.White, layout.Color{}
	c.lineWidth = 0.2
}

// Pages returns the painted page images.
func (c *Canvas) Pages() []*image.RGBA { return c.pages }

func (c *Canvas) PageSize() (float64, float64) { return c.opts.PageWidth, c.opts.PageHeight }

func (c *Canvas) SetFont(family string, style layout.FontStyle) { c.family, c.style = family, style }
func (c *Canvas) SetFontSize(pt float64)                        { c.size = pt }
func (c *Canvas) SetTextColor(col layout.Color)                 { c.textColor = col }
func (c *Canvas) SetFillColor(col layout.Color)                 { c.fillColor = col }
func (c *Canvas) SetDrawColor(col layout.Color)                 { c.drawColor = col }
func (c *Canvas) SetLineWidth(mm float64)                       { c.lineWidth = mm }

func (c *Canvas) Err() error { return c.err }

// RegisterGlyphFont adds a family that only has a regular face.
func (c *Canvas) RegisterGlyphFont(data []byte, name string) error {
	ft, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse glyph font %s: %w", name, err)
	}
	c.families[name] = &family{ft}
	return nil
}

// font resolves the current family and style, falling back to the regular
// face and then to the body family.
func (c *Canvas) font() *truetype.Font {
	fam, ok := c.families[c.family]
	if !ok {
		fam = c.families[layout.FamilyBody]
	}
	if fam == nil {
		return nil
	}
	if ft := fam[c.style&layout.StyleBoldItalic]; ft != nil {
		return ft
	}
	return fam[layout.StyleRegular]
}

func (c *Canvas) fontSize() float64 {
	if c.size <= 0 {
		return defaultFontSize
	}
	return c.size
}

func (c *Canvas) face(ft *truetype.Font) font.Face {
	key := faceKey{font: ft, size: c.fontSize()}
	if f, ok := c.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(ft, &truetype.Options{Size: key.size, DPI: c.dpi(), Hinting: font.HintingFull})
	c.faces[key] = f
	return f
}

// MeasureWidth returns the advance of text in millimetres.
func (c *Canvas) MeasureWidth(text string) float64 {
	ft := c.font()
	if ft == nil || text == "" {
		return 0
	}
	d := font.Drawer{Face: c.face(ft)}
	return float64(d.MeasureString(text)) / 64 / c.opts.DPMM
}

func (c *Canvas) WrapText(text string, maxWidth float64) []string {
	return renderer.Wrap(text, maxWidth, c.MeasureWidth)
}

// DrawText draws text with its baseline at y.
func (c *Canvas) DrawText(text string, x, y float64) {
	if text == "" {
		return
	}
	ft := c.font()
	if ft == nil {
		c.fail(errors.New("no font available"))
		return
	}
	c.dc.SetFont(ft)
	c.dc.SetFontSize(c.fontSize())
	c.dc.SetSrc(image.NewUniform(toRGBA(c.textColor)))
	pt := freetype.Pt(int(math.Round(c.px(x))), int(math.Round(c.px(y))))
	if _, err := c.dc.DrawString(text, pt); err != nil {
		c.fail(fmt.Errorf("draw text: %w", err))
	}
}

func (c *Canvas) page() *image.RGBA { return c.pages[len(c.pages)-1] }

// stroke is the line width in pixels, at least one.
func (c *Canvas) stroke() int {
	return max(1, int(math.Round(c.px(c.lineWidth))))
}

func (c *Canvas) rect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Round(c.px(x))), int(math.Round(c.px(y))),
		int(math.Round(c.px(x+w))), int(math.Round(c.px(y+h))),
	)
}

func (c *Canvas) fillRect(r image.Rectangle, col layout.Color) {
	draw.Draw(c.page(), r, image.NewUniform(toRGBA(col)), image.Point{}, draw.Src)
}

// DrawLine draws axis-aligned lines as thin rectangles and anything else as
// a run of square dots.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	t := c.stroke()
	p1 := image.Pt(int(math.Round(c.px(x1))), int(math.Round(c.px(y1))))
	p2 := image.Pt(int(math.Round(c.px(x2))), int(math.Round(c.px(y2))))
	switch {
	case p1.Y == p2.Y:
		c.fillRect(image.Rect(p1.X, p1.Y-t/2, p2.X, p1.Y-t/2+t).Canon(), c.drawColor)
	case p1.X == p2.X:
		c.fillRect(image.Rect(p1.X-t/2, p1.Y, p1.X-t/2+t, p2.Y).Canon(), c.drawColor)
	default:
		steps := max(abs(p2.X-p1.X), abs(p2.Y-p1.Y))
		for i := 0; i <= steps; i++ {
			px := p1.X + (p2.X-p1.X)*i/steps
			py := p1.Y + (p2.Y-p1.Y)*i/steps
			c.fillRect(image.Rect(px-t/2, py-t/2, px-t/2+t, py-t/2+t), c.drawColor)
		}
	}
}

func (c *Canvas) DrawRect(x, y, w, h float64, mode layout.PaintMode) {
	r := c.rect(x, y, w, h).Canon()
	if mode != layout.Stroke {
		c.fillRect(r, c.fillColor)
	}
	if mode != layout.Fill {
		c.strokeRect(r)
	}
}

func (c *Canvas) strokeRect(r image.Rectangle) {
	t := c.stroke()
	c.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), c.drawColor)
	c.fillRect(image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), c.drawColor)
	c.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), c.drawColor)
	c.fillRect(image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), c.drawColor)
}

// DrawRoundedRect fills pixels inside the rounded outline; the stroke is
// drawn as a plain rectangle.
func (c *Canvas) DrawRoundedRect(x, y, w, h, radius float64, mode layout.PaintMode) {
	r := c.rect(x, y, w, h).Canon()
	if mode != layout.Stroke {
		rad := int(math.Round(c.px(radius)))
		rad = min(rad, r.Dx()/2, r.Dy()/2)
		fill := toRGBA(c.fillColor)
		img := c.page()
		for py := r.Min.Y; py < r.Max.Y; py++ {
			for px := r.Min.X; px < r.Max.X; px++ {
				if insideRounded(px, py, r, rad) {
					img.SetRGBA(px, py, fill)
				}
			}
		}
	}
	if mode != layout.Fill {
		c.strokeRect(r)
	}
}

func insideRounded(px, py int, r image.Rectangle, rad int) bool {
	if rad <= 0 {
		return true
	}
	cx, cy := px, py
	switch {
	case px < r.Min.X+rad:
		cx = r.Min.X + rad
	case px >= r.Max.X-rad:
		cx = r.Max.X - rad - 1
	}
	switch {
	case py < r.Min.Y+rad:
		cy = r.Min.Y + rad
	case py >= r.Max.Y-rad:
		cy = r.Max.Y - rad - 1
	}
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= rad*rad
}

// DrawImage decodes a PNG and scales it into the box whose top-left corner is
// (x, y).
func (c *Canvas) DrawImage(data []byte, x, y, w, h float64) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		c.fail(fmt.Errorf("decode image: %w", err))
		return
	}
	dst := c.rect(x, y, w, h).Canon()
	if dst.Empty() {
		return
	}
	xdraw.CatmullRom.Scale(c.page(), dst, src, src.Bounds(), xdraw.Over, nil)
}

// Render encodes every page as a PNG.
func (c *Canvas) Render() ([][]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make([][]byte, 0, len(c.pages))
	for i, img := range c.pages {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", i+1, err)
		}
		out = append(out, buf.Bytes())
	}
	return out, nil
}

func toRGBA(c layout.Color) color.RGBA {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xFF}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
