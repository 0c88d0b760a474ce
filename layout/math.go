package layout

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"

	"github.com/xahram/ai-chat-exporter/content"
	"github.com/xahram/ai-chat-exporter/internal/logging"
	"github.com/xahram/ai-chat-exporter/latex"
)

// ErrNoTypesetter is the fallback cause when no typesetter is configured.
var ErrNoTypesetter = errors.New("no typesetter configured")

const mathGap = 2.0

// LatexRenderer draws a formula as an image from the configured typesetter.
// Display formulas are centred, inline ones left-aligned on their own row.
// Any typesetting failure falls back to the literal source in a muted style.
type LatexRenderer struct{}

// RenderBlock implements BlockRenderer. Typesetting errors never escape.
func (LatexRenderer) RenderBlock(ctx context.Context, f *Frame, b content.Block) error {
	img, err := f.typeset(ctx, b)
	if err != nil {
		logging.LatexFallback(ctx, b.Text, b.Display, err)
		f.stats.LatexFallbacks++
		f.drawLatexFallback(b)
		return nil
	}

	w, h := img.WidthMM, img.HeightMM
	if w > f.Width {
		h *= f.Width / w
		w = f.Width
	}
	if usable := f.Pager.Usable() - mathGap; h > usable {
		w *= usable / h
		h = usable
	}
	f.Pager.EnsureRoom(h + mathGap)
	x := f.Left + markerOffset
	if b.Display {
		x = f.Left + (f.Width-w)/2
	}
	f.Canvas.DrawImage(img.PNG, x, f.Pager.Y()-3.5, w, h)
	f.Pager.Advance(h + mathGap)
	f.stats.Formulas++
	return nil
}

func (f *Frame) typeset(ctx context.Context, b content.Block) (latex.Image, error) {
	if f.Opts.Typesetter == nil {
		return latex.Image{}, &latex.TypesetError{Source: b.Text, Display: b.Display, Err: ErrNoTypesetter}
	}
	img, err := f.Opts.Typesetter.Render(ctx, b.Text, b.Display)
	if err != nil {
		return latex.Image{}, err
	}
	if len(img.PNG) == 0 || img.WidthMM <= 0 || img.HeightMM <= 0 {
		return latex.Image{}, &latex.TypesetError{Source: b.Text, Display: b.Display, Err: fmt.Errorf("empty image")}
	}
	// Backends report an undecodable image as a canvas error.
	if _, err := png.Decode(bytes.NewReader(img.PNG)); err != nil {
		return latex.Image{}, &latex.TypesetError{Source: b.Text, Display: b.Display, Err: fmt.Errorf("decode image: %w", err)}
	}
	return img, nil
}

// drawLatexFallback writes $src$ or $$src$$ as grey italic text.
func (f *Frame) drawLatexFallback(b content.Block) {
	delim := "$"
	if b.Display {
		delim = "$$"
	}
	style := textStyle{family: FamilyBody, style: StyleItalic, size: f.Opts.ContentSize, color: Gray(120)}
	f.apply(style)
	literal := f.Norm.Normalize(delim + b.Text + delim)
	for _, line := range wrapLiteral(f.Canvas, literal, f.Width-2*markerOffset, f.Opts.Glyphs) {
		f.ensureRoom(textLineRoom, style)
		f.drawGlyphRuns(line, f.Left+markerOffset, f.Pager.Y(), style)
		f.Pager.Advance(textLineHeight)
	}
	f.Pager.Advance(mathGap)
}
