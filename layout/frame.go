package layout

import (
	"context"
	"fmt"

	"github.com/xahram/ai-chat-exporter/content"
	"github.com/xahram/ai-chat-exporter/glyphmap"
	"github.com/xahram/ai-chat-exporter/textnorm"
)

// Frame is the drawing context threaded through every block renderer: the
// canvas, the paginator that owns the cursor, the content column and the
// text pipeline.
type Frame struct {
	Canvas Canvas
	Pager  *Paginator
	Left   float64 // content column left edge, mm
	Width  float64 // content column width, mm
	Norm   *textnorm.Normalizer
	Opts   Options

	renderers map[content.Kind]BlockRenderer
	stats     *Stats
}

// NewFrame builds a frame over c with the given content column. The cursor
// starts at top.
func NewFrame(c Canvas, opts Options, left, width, top, bottom float64) *Frame {
	opts = opts.withDefaults()
	return &Frame{
		Canvas: c,
		Pager:  NewPaginator(c, top, bottom),
		Left:   left,
		Width:  width,
		Norm:   textnorm.New(opts.Glyphs),
		Opts:   opts,
		renderers: map[content.Kind]BlockRenderer{
			content.KindText:  TextRenderer{},
			content.KindCode:  CodeRenderer{},
			content.KindTable: TableRenderer{},
			content.KindLatex: LatexRenderer{},
		},
		stats: &Stats{},
	}
}

// Glyphs is the active glyph map.
func (f *Frame) Glyphs() *glyphmap.Map { return f.Opts.Glyphs }

// BlockRenderer draws one content block at the frame's cursor.
type BlockRenderer interface {
	RenderBlock(ctx context.Context, f *Frame, b content.Block) error
}

// Draw renders b with the renderer registered for its kind and returns how far
// the cursor travelled, summed across page breaks.
func (f *Frame) Draw(ctx context.Context, b content.Block) (float64, error) {
	r, ok := f.renderers[b.Kind]
	if !ok {
		return 0, fmt.Errorf("no renderer for %s block", b.Kind)
	}
	before := f.Pager.Travel()
	if err := r.RenderBlock(ctx, f, b); err != nil {
		return 0, err
	}
	if err := checkCanvas(f.Canvas, b.Kind.String()); err != nil {
		return 0, err
	}
	return f.Pager.Travel() - before, nil
}

// textStyle is the drawing state a renderer must restore after a page break.
type textStyle struct {
	family string
	style  FontStyle
	size   float64
	color  Color
}

func (f *Frame) apply(s textStyle) {
	f.Canvas.SetFont(s.family, s.style)
	f.Canvas.SetFontSize(s.size)
	f.Canvas.SetTextColor(s.color)
}

// ensureRoom is Pager.EnsureRoom followed by re-applying s when a page was
// started.
func (f *Frame) ensureRoom(h float64, s textStyle) bool {
	if f.Pager.EnsureRoom(h) {
		f.apply(s)
		return true
	}
	return false
}

// drawMarked draws a line carrying bold markers, switching between the base
// style, its bold variant and the glyph font per run. The base style is
// active again afterwards.
func (f *Frame) drawMarked(line string, x, y float64, s textStyle) float64 {
	for _, tr := range ExtractBold(line) {
		st := s
		if tr.Bold {
			st.style |= StyleBold
		}
		x = f.drawGlyphRuns(tr.Text, x, y, st)
	}
	f.Canvas.SetFont(s.family, s.style)
	return x
}

// drawGlyphRuns draws text with font switching at glyph-font boundaries and
// returns the x after the last run.
func (f *Frame) drawGlyphRuns(text string, x, y float64, s textStyle) float64 {
	for _, gr := range SplitGlyphRuns(text, f.Opts.Glyphs) {
		if gr.Special {
			f.Canvas.SetFont(f.Opts.GlyphFamily, StyleRegular)
		} else {
			f.Canvas.SetFont(s.family, s.style)
		}
		f.Canvas.DrawText(gr.Text, x, y)
		x += f.Canvas.MeasureWidth(gr.Text)
	}
	return x
}
