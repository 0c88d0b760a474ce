package layout

import (
	"context"

	"github.com/xahram/ai-chat-exporter/content"
)

const (
	tableRowHeight = 7.0
	tableRowRoom   = tableRowHeight + 2
	tableFontSize  = 9.0
	tableInset     = 3.0
	cellInset      = 5.0
	cellPadding    = 4.0
	minCellWidth   = 1.0
)

// TableRenderer draws a pipe table with uniform column widths. Each cell is
// cut to its first wrapped line; the header row is shaded and bold. The
// outer border is drawn per page once that page's rows are out.
type TableRenderer struct{}

// RenderBlock implements BlockRenderer.
func (TableRenderer) RenderBlock(_ context.Context, f *Frame, b content.Block) error {
	cols := 0
	for _, row := range b.Rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return nil
	}
	colWidth := (f.Width - 2*cellInset) / float64(cols)
	// A non-positive limit means unbounded to the wrappers.
	cellWidth := max(colWidth-cellPadding, minCellWidth)
	body := textStyle{family: FamilyBody, style: StyleRegular, size: tableFontSize, color: Gray(30)}
	header := body
	header.style = StyleBold

	f.Pager.EnsureRoom(tableRowHeight*2 + 10)
	f.apply(body)
	f.Canvas.SetLineWidth(0.3)

	segTop := f.Pager.Y()
	for i, row := range b.Rows {
		if !f.Pager.Fits(tableRowRoom) {
			f.drawTableBorder(segTop)
			f.ensureRoom(tableRowRoom, body)
			f.Canvas.SetLineWidth(0.3)
			segTop = f.Pager.Y()
		}
		y := f.Pager.Y()
		style := body
		if i == 0 {
			style = header
			f.Canvas.SetFillColor(Gray(240))
			f.Canvas.DrawRect(f.Left+tableInset, y-5, f.Width-2*tableInset, tableRowHeight, Fill)
		}
		f.apply(style)
		for col, cell := range row {
			text := f.Norm.Normalize(cell)
			if lines := Wrap(f.Canvas, text, cellWidth, f.Opts.Glyphs); len(lines) > 0 {
				f.drawMarked(lines[0], f.Left+cellInset+float64(col)*colWidth, y, style)
			}
		}
		f.Canvas.SetDrawColor(Gray(200))
		f.Canvas.DrawLine(f.Left+tableInset, y+2, f.Left+f.Width-tableInset, y+2)
		f.Pager.Advance(tableRowHeight)
	}
	f.drawTableBorder(segTop)
	f.Pager.Advance(6)
	return nil
}

// drawTableBorder outlines the rows drawn on the current page since segTop.
func (f *Frame) drawTableBorder(segTop float64) {
	f.Canvas.SetDrawColor(Gray(180))
	f.Canvas.DrawRect(f.Left+tableInset, segTop-5, f.Width-2*tableInset, f.Pager.Y()-segTop+2, Stroke)
}
