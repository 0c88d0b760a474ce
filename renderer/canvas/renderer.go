package canvasrenderer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/xahram/ai-chat-exporter/fonts"
	"github.com/xahram/ai-chat-exporter/layout"
	"github.com/xahram/ai-chat-exporter/renderer"
)

// A4 纸张尺寸（mm）。
const (
	A4Width  = 210.0
	A4Height = 297.0
)

const defaultFontSize = 10.0

// Renderer draws onto github.com/tdewolff/canvas pages and writes them out as
// a single PDF.
type Renderer struct {
	opts Options

	pages []*canvas.Canvas
	ctx   *canvas.Context

	families map[string]*canvas.FontFamily
	faces    map[faceKey]*canvas.FontFace

	// 当前绘图状态，NewPage 时重置
	family    string
	style     layout.FontStyle
	size      float64 // pt
	textColor layout.Color
	fillColor layout.Color
	drawColor layout.Color
	lineWidth float64 // mm

	err error
}

var _ renderer.Renderer = (*Renderer)(nil)

type faceKey struct {
	family string
	style  layout.FontStyle
	size   float64
	color  layout.Color
}

// Options configures the canvas renderer.
type Options struct {
	PageWidth  float64 // mm, A4 when zero
	PageHeight float64 // mm
	Meta       renderer.Meta
}

// NewRenderer creates an A4 renderer with the bundled body and mono families.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer and opens its first page.
func NewRendererWithOptions(opts Options) *Renderer {
	if opts.PageWidth <= 0 || opts.PageHeight <= 0 {
		opts.PageWidth, opts.PageHeight = A4Width, A4Height
	}
	r := &Renderer{
		opts:     opts,
		families: map[string]*canvas.FontFamily{},
		faces:    map[faceKey]*canvas.FontFace{},
	}
	if err := r.loadFamily(layout.FamilyBody, fonts.Body); err != nil {
		r.fail(err)
	}
	if err := r.loadFamily(layout.FamilyMono, fonts.Mono); err != nil {
		r.fail(err)
	}
	r.NewPage()
	return r
}

// loadFamily 载入一个字体家族的四种样式。
func (r *Renderer) loadFamily(name string, source func(fonts.Style) []byte) error {
	family := canvas.NewFontFamily(name)
	for _, s := range []fonts.Style{fonts.Regular, fonts.Bold, fonts.Italic, fonts.BoldItalic} {
		if err := family.LoadFont(source(s), 0, canvasStyle(layoutStyle(s))); err != nil {
			return fmt.Errorf("load font %s/%s: %w", name, layoutStyle(s), err)
		}
	}
	r.families[name] = family
	return nil
}

// Render writes every page into one PDF.
func (r *Renderer) Render() ([][]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.pages) == 0 {
		return nil, errors.New("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, r.opts.PageWidth, r.opts.PageHeight, nil)
	r.applyMeta(writer)
	for i, c := range r.pages {
		if i > 0 {
			writer.NewPage(r.opts.PageWidth, r.opts.PageHeight)
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return [][]byte{buf.Bytes()}, nil
}

func (r *Renderer) applyMeta(writer *pdf.PDF) {
	meta := r.opts.Meta
	writer.SetInfo(meta.Title, meta.Subject, strings.Join(meta.Keywords, ", "), meta.Author, meta.Creator)
}

// NewPage 开始新页面，字体、字号与颜色回到默认状态。
func (r *Renderer) NewPage() {
	c := canvas.New(r.opts.PageWidth, r.opts.PageHeight)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点
	r.pages = append(r.pages, c)
	r.ctx = ctx

	r.family, r.style, r.size = layout.FamilyBody, layout.StyleRegular, defaultFontSize
	r.textColor, r.fillColor, r.drawColor = layout.Color{}, layout.White, layout.Color{}
	r.lineWidth = 0.2
}

// Pages is the number of pages started so far.
func (r *Renderer) Pages() int { return len(r.pages) }

func (r *Renderer) PageSize() (float64, float64) { return r.opts.PageWidth, r.opts.PageHeight }

func (r *Renderer) SetFont(family string, style layout.FontStyle) { r.family, r.style = family, style }
func (r *Renderer) SetFontSize(pt float64)                        { r.size = pt }
func (r *Renderer) SetTextColor(c layout.Color)                   { r.textColor = c }
func (r *Renderer) SetFillColor(c layout.Color)                   { r.fillColor = c }
func (r *Renderer) SetDrawColor(c layout.Color)                   { r.drawColor = c }
func (r *Renderer) SetLineWidth(mm float64)                       { r.lineWidth = mm }

// RegisterGlyphFont 注册只含常规样式的字体家族，例如 PUA 表情字体。
func (r *Renderer) RegisterGlyphFont(data []byte, name string) error {
	if len(data) == 0 {
		return fmt.Errorf("字体 %s 数据为空", name)
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return fmt.Errorf("load glyph font %s: %w", name, err)
	}
	r.families[name] = family
	return nil
}

func (r *Renderer) Err() error { return r.err }

func (r *Renderer) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// face 返回当前状态对应的字体面。未知家族回退到正文字体，
// 只注册了常规样式的家族忽略粗斜体。
func (r *Renderer) face() *canvas.FontFace {
	key := faceKey{family: r.family, style: r.style, size: r.size, color: r.textColor}
	if f, ok := r.faces[key]; ok {
		return f
	}
	family, ok := r.families[r.family]
	if !ok {
		family = r.families[layout.FamilyBody]
	}
	if family == nil {
		return nil
	}
	style := r.style
	if r.family != layout.FamilyBody && r.family != layout.FamilyMono {
		style = layout.StyleRegular
	}
	size := r.size
	if size <= 0 {
		size = defaultFontSize
	}
	f := family.Face(size, colorFromLayout(r.textColor), canvasStyle(style), canvas.FontNormal)
	r.faces[key] = f
	return f
}

// MeasureWidth 返回文本宽度（mm）。
func (r *Renderer) MeasureWidth(text string) float64 {
	f := r.face()
	if f == nil {
		return 0
	}
	return f.TextWidth(text)
}

func (r *Renderer) WrapText(text string, maxWidth float64) []string {
	return renderer.Wrap(text, maxWidth, r.MeasureWidth)
}

// DrawText 在基线 y 处左对齐绘制文本。
func (r *Renderer) DrawText(text string, x, y float64) {
	if text == "" {
		return
	}
	f := r.face()
	if f == nil {
		r.fail(errors.New("没有可用的字体"))
		return
	}
	r.ctx.DrawText(x, y, canvas.NewTextLine(f, text, canvas.Left))
}

func (r *Renderer) DrawLine(x1, y1, x2, y2 float64) {
	r.ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	r.ctx.SetStrokeColor(colorFromLayout(r.drawColor))
	r.ctx.SetStrokeWidth(r.lineWidth)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(x2-x1, y2-y1)
	r.ctx.DrawPath(x1, y1, p)
}

func (r *Renderer) DrawRect(x, y, w, h float64, mode layout.PaintMode) {
	r.paint(mode)
	r.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

func (r *Renderer) DrawRoundedRect(x, y, w, h, radius float64, mode layout.PaintMode) {
	r.paint(mode)
	r.ctx.DrawPath(x, y, canvas.RoundedRectangle(w, h, radius))
}

// paint 按绘制模式设置填充与描边。
func (r *Renderer) paint(mode layout.PaintMode) {
	var fill, stroke color.Color = color.RGBA{0, 0, 0, 0}, color.RGBA{0, 0, 0, 0}
	switch mode {
	case layout.Fill:
		fill = colorFromLayout(r.fillColor)
	case layout.Stroke:
		stroke = colorFromLayout(r.drawColor)
	case layout.FillStroke:
		fill, stroke = colorFromLayout(r.fillColor), colorFromLayout(r.drawColor)
	}
	r.ctx.SetFillColor(fill)
	r.ctx.SetStrokeColor(stroke)
	r.ctx.SetStrokeWidth(r.lineWidth)
}

// DrawImage 解码 PNG 并以 (x, y) 为左上角绘制为 w 宽，高度由图片比例决定。
func (r *Renderer) DrawImage(data []byte, x, y, w, h float64) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		r.fail(fmt.Errorf("解码图片失败: %w", err))
		return
	}
	if w <= 0 {
		w = float64(img.Bounds().Dx()) / 4.0
	}
	dpmm := float64(img.Bounds().Dx()) / w
	if dpmm <= 0 {
		dpmm = 1
	}
	r.ctx.DrawImage(x, y, img, canvas.DPMM(dpmm))
}

func layoutStyle(s fonts.Style) layout.FontStyle {
	switch s {
	case fonts.Bold:
		return layout.StyleBold
	case fonts.Italic:
		return layout.StyleItalic
	case fonts.BoldItalic:
		return layout.StyleBoldItalic
	}
	return layout.StyleRegular
}

func canvasStyle(s layout.FontStyle) canvas.FontStyle {
	result := canvas.FontRegular
	if s&layout.StyleBold != 0 {
		result = canvas.FontBold
	}
	if s&layout.StyleItalic != 0 {
		result |= canvas.FontItalic
	}
	return result
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
