package layout

import (
	"context"
	"fmt"
	"time"

	"github.com/xahram/ai-chat-exporter/content"
	"github.com/xahram/ai-chat-exporter/conversation"
	"github.com/xahram/ai-chat-exporter/glyphmap"
	"github.com/xahram/ai-chat-exporter/internal/logging"
)

// Stats summarises a finished render.
type Stats struct {
	Pages          int `json:"pages"`
	Messages       int `json:"messages"`
	Blocks         int `json:"blocks"`
	Formulas       int `json:"formulas"`
	LatexFallbacks int `json:"latexFallbacks"`
}

const (
	titleLineHeight = 8.0
	messageRoom     = 20.0
	pillHeight      = 10.0
	messageGap      = 8.0
)

// Render lays out doc onto c: the title header, then every message in order
// with its role pill, content blocks and separator. Rendering is sequential;
// the only suspensions are calls into the typesetter between blocks.
//
// A canvas failure aborts the render and is returned as *CanvasError. LaTeX
// failures are drawn as literal text and never returned.
func Render(ctx context.Context, c Canvas, doc *conversation.Document, opts Options) (Stats, error) {
	if doc == nil {
		return Stats{}, fmt.Errorf("layout: nil document")
	}
	start := time.Now()
	logging.RenderStart(ctx, doc.Title, len(doc.Messages))
	if doc.HasHiddenContent {
		logging.LoggerFromContext(ctx).Warn("hidden_content", "title", doc.Title,
			"detail", "some turns were collapsed in the source and may be incomplete")
	}

	opts = registerGlyphFont(ctx, c, opts)
	pageW, pageH := c.PageSize()
	m := opts.withDefaults().Margin
	f := NewFrame(c, opts, m, pageW-2*m, m, pageH-m)

	f.drawHeader(doc)
	if err := checkCanvas(c, "header"); err != nil {
		return Stats{}, err
	}
	for i, msg := range doc.Messages {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}
		if err := f.drawMessage(ctx, msg); err != nil {
			return Stats{}, fmt.Errorf("message %d: %w", i, err)
		}
	}

	stats := *f.stats
	stats.Pages = f.Pager.Pages()
	stats.Messages = len(doc.Messages)
	logging.RenderDone(ctx, stats.Pages, time.Since(start),
		"blocks", stats.Blocks, "latex_fallbacks", stats.LatexFallbacks)
	return stats, nil
}

// registerGlyphFont registers the glyph font once, before any drawing. When
// there is no font, or it fails to load, the glyph map is emptied so emoji
// are deleted instead of drawn from a missing font.
func registerGlyphFont(ctx context.Context, c Canvas, opts Options) Options {
	if len(opts.GlyphFont) == 0 {
		opts.Glyphs = glyphmap.Empty()
		return opts
	}
	family := opts.GlyphFamily
	if family == "" {
		family = DefaultOptions().GlyphFamily
	}
	if err := c.RegisterGlyphFont(opts.GlyphFont, family); err != nil {
		logging.LoggerFromContext(ctx).Warn("glyph_font_unavailable", "error", err.Error())
		opts.Glyphs = glyphmap.Empty()
		return opts
	}
	logging.LoggerFromContext(ctx).Debug("glyph_font_registered", "family", family, "glyphs", opts.Glyphs.Len())
	return opts
}

func (f *Frame) drawHeader(doc *conversation.Document) {
	title := textStyle{family: FamilyBody, style: StyleBold, size: f.Opts.TitleSize, color: Gray(50)}
	f.apply(title)
	for _, line := range Wrap(f.Canvas, f.Norm.Normalize(doc.Title), f.Width, f.Opts.Glyphs) {
		f.ensureRoom(titleLineHeight, title)
		f.drawMarked(line, f.Left, f.Pager.Y(), title)
		f.Pager.Advance(titleLineHeight)
	}

	f.Pager.Advance(3)
	f.apply(textStyle{family: FamilyBody, style: StyleItalic, size: 9, color: Gray(120)})
	f.Canvas.DrawText("Exported: "+doc.ExportDate.Format(f.Opts.DateLayout), f.Left, f.Pager.Y())
	f.Pager.Advance(10)

	f.Canvas.SetDrawColor(Gray(200))
	f.Canvas.SetLineWidth(0.5)
	f.Canvas.DrawLine(f.Left, f.Pager.Y(), f.Left+f.Width, f.Pager.Y())
	f.Pager.Advance(10)
}

func (f *Frame) drawMessage(ctx context.Context, msg conversation.Message) error {
	f.Pager.EnsureRoom(messageRoom)
	f.drawPill(msg.Role)

	for _, b := range content.Parse(msg.Content) {
		if _, err := f.Draw(ctx, b); err != nil {
			return err
		}
		f.stats.Blocks++
	}
	f.Pager.Advance(messageGap)
	f.drawSeparator()
	return checkCanvas(f.Canvas, "message")
}

// drawPill draws the rounded role label above a message.
func (f *Frame) drawPill(role conversation.Role) {
	label, fill := f.Opts.AssistantName, f.Opts.AssistantColor
	if role == conversation.RoleUser {
		label, fill = f.Opts.UserName, f.Opts.UserColor
	}
	style := textStyle{family: FamilyBody, style: StyleBold, size: f.Opts.HeaderSize, color: White}
	y := f.Pager.Y()
	f.Canvas.SetFillColor(fill)
	f.Canvas.DrawRoundedRect(f.Left, y-5, f.Width, pillHeight, 2, Fill)
	f.apply(style)
	f.drawMarked(f.Norm.Normalize(label), f.Left+5, y+1, style)
	f.Pager.Advance(12)
}

// drawSeparator rules off a message when the page still has room below it.
func (f *Frame) drawSeparator() {
	y := f.Pager.Y()
	if y >= f.Pager.Bottom()-5 {
		return
	}
	f.Canvas.SetDrawColor(Gray(230))
	f.Canvas.SetLineWidth(0.3)
	f.Canvas.DrawLine(f.Left+10, y-4, f.Left+f.Width-10, y-4)
}
