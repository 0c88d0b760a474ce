package layout

import (
	"context"
	"regexp"
	"strings"

	"github.com/xahram/ai-chat-exporter/content"
)

const (
	textLineHeight = 5.0
	textLineRoom   = 6.0
	blankGap       = 3.0
	textBlockGap   = 4.0
	ruleAdvance    = 4.0
	markerOffset   = 3.0
)

var (
	bulletRe   = regexp.MustCompile(`^(\s*)(•|-|\*)\s+(.*)$`)
	numberedRe = regexp.MustCompile(`^(\s*)(\d+)\.\s+(.*)$`)
	codeSpanRe = regexp.MustCompile("`([^`]+)`")
)

// TextRenderer draws prose: paragraphs, bullet and numbered items with a
// hanging indent, and "---" rules.
type TextRenderer struct{}

// listItem is a paragraph after list-marker detection. indent is measured
// from the content column's left edge.
type listItem struct {
	marker string
	text   string
	indent float64
	nest   float64
}

func parseListItem(paragraph string) listItem {
	if m := bulletRe.FindStringSubmatch(paragraph); m != nil {
		nest := float64(len(m[1])) * 2
		return listItem{marker: "•", text: m[3], indent: 8 + nest, nest: nest}
	}
	if m := numberedRe.FindStringSubmatch(paragraph); m != nil {
		nest := float64(len(m[1])) * 2
		return listItem{marker: m[2] + ".", text: m[3], indent: 10 + nest, nest: nest}
	}
	return listItem{text: paragraph, indent: markerOffset}
}

func (f *Frame) bodyStyle() textStyle {
	return textStyle{family: FamilyBody, style: StyleRegular, size: f.Opts.ContentSize, color: Gray(30)}
}

// RenderBlock implements BlockRenderer.
func (TextRenderer) RenderBlock(_ context.Context, f *Frame, b content.Block) error {
	style := f.bodyStyle()
	f.apply(style)
	for _, paragraph := range strings.Split(b.Text, "\n") {
		paragraph = strings.TrimRight(paragraph, "\r")
		if strings.TrimSpace(paragraph) == "" {
			f.Pager.Advance(blankGap)
			continue
		}
		if strings.TrimSpace(paragraph) == "---" {
			f.drawRule(style)
			continue
		}
		f.drawParagraph(paragraph, style)
	}
	f.Pager.Advance(textBlockGap)
	return nil
}

func (f *Frame) drawRule(style textStyle) {
	f.ensureRoom(ruleAdvance, style)
	y := f.Pager.Y() - 1.5
	f.Canvas.SetDrawColor(Gray(200))
	f.Canvas.SetLineWidth(0.3)
	f.Canvas.DrawLine(f.Left+markerOffset, y, f.Left+f.Width-markerOffset, y)
	f.Pager.Advance(ruleAdvance)
}

func (f *Frame) drawParagraph(paragraph string, style textStyle) {
	item := parseListItem(paragraph)
	text := f.Norm.Normalize(codeSpanRe.ReplaceAllString(item.text, "$1"))

	if item.marker != "" {
		f.ensureRoom(textLineRoom, style)
		f.Canvas.SetFont(style.family, style.style|StyleBold)
		f.Canvas.DrawText(item.marker, f.Left+markerOffset+item.nest, f.Pager.Y())
		f.Canvas.SetFont(style.family, style.style)
	}

	avail := f.Width - item.indent - markerOffset
	if item.marker == "" {
		avail = f.Width - 2*markerOffset
	}
	for _, line := range Wrap(f.Canvas, text, avail, f.Opts.Glyphs) {
		f.ensureRoom(textLineRoom, style)
		f.drawMarked(line, f.Left+item.indent, f.Pager.Y(), style)
		f.Pager.Advance(textLineHeight)
	}
}
