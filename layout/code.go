package layout

import (
	"context"
	"math"
	"strings"

	"github.com/xahram/ai-chat-exporter/content"
)

const (
	codeLineHeight = 4.0
	codeLineRoom   = codeLineHeight + 2
	codeLeadIn     = 50.0
	codeLabelSize  = 7.0
	codeInset      = 5.0
)

// CodeRenderer draws a fenced code block: an upper-case language label, then
// the source lines in the monospace font over a tinted box. Lines that do not
// fit continue on the next page in a new box.
type CodeRenderer struct{}

// RenderBlock implements BlockRenderer.
func (CodeRenderer) RenderBlock(_ context.Context, f *Frame, b content.Block) error {
	codeStyle := textStyle{family: FamilyMono, style: StyleRegular, size: f.Opts.CodeSize, color: Gray(40)}
	labelStyle := textStyle{family: FamilyMono, style: StyleRegular, size: codeLabelSize, color: Gray(100)}

	f.apply(codeStyle)
	codeWidth := f.Width - 2*codeInset
	var lines []string
	for _, src := range strings.Split(b.Text, "\n") {
		src = strings.TrimRight(src, "\r")
		if src == "" {
			lines = append(lines, "")
			continue
		}
		wrapped := wrapLiteral(f.Canvas, f.Norm.Normalize(src), codeWidth, f.Opts.Glyphs)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}

	blockHeight := math.Min(float64(len(lines))*codeLineHeight+12, f.Pager.Usable())
	f.Pager.EnsureRoom(math.Min(blockHeight, codeLeadIn))

	label := b.Language
	if label == "" {
		label = "code"
	}
	f.apply(labelStyle)
	f.Canvas.DrawText(strings.ToUpper(f.Norm.Normalize(label)), f.Left+4, f.Pager.Y()+2)
	f.Pager.Advance(8)

	f.apply(codeStyle)
	for len(lines) > 0 {
		f.ensureRoom(codeLineRoom, codeStyle)
		n := f.linesFitting(len(lines))
		f.drawCodeBox(n)
		for _, line := range lines[:n] {
			f.drawGlyphRuns(line, f.Left+codeInset, f.Pager.Y(), codeStyle)
			f.Pager.Advance(codeLineHeight)
		}
		lines = lines[n:]
	}
	f.Pager.Advance(6)
	return nil
}

// linesFitting counts how many of the next limit code lines fit on this
// page, applying the same room check each line would. It never returns less
// than one so a page shorter than a line still makes progress.
func (f *Frame) linesFitting(limit int) int {
	n := 0
	for n < limit && f.Pager.Fits(float64(n)*codeLineHeight+codeLineRoom) {
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}

// drawCodeBox paints the tinted background for n lines starting at the cursor.
func (f *Frame) drawCodeBox(n int) {
	f.Canvas.SetFillColor(Gray(245))
	f.Canvas.SetDrawColor(Gray(180))
	f.Canvas.SetLineWidth(0.3)
	top := f.Pager.Y() - 3.5
	f.Canvas.DrawRect(f.Left+2, top, f.Width-4, float64(n)*codeLineHeight+1.5, FillStroke)
}
