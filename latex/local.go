package latex

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// Local typesets formulas in-process with canvas.ParseLaTeX and rasterizes
// the resulting path.
type Local struct {
	// DPMM is the raster resolution in dots per millimetre.
	DPMM float64
	// Padding in millimetres around the formula's bounding box.
	Padding float64
	// Scale multiplies the formula's natural size.
	Scale float64
}

// NewLocal returns a Local typesetter rendering at roughly 300 dpi.
func NewLocal() *Local {
	return &Local{DPMM: 12, Padding: 0.5, Scale: 1}
}

// Render implements Typesetter.
func (l *Local) Render(ctx context.Context, source string, display bool) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, typesetErr(source, display, err)
	}
	src := strings.TrimSpace(source)
	if src == "" {
		return Image{}, typesetErr(source, display, ErrEmpty)
	}
	formula := "$" + src + "$"
	if display {
		formula = `$\displaystyle ` + src + "$"
	}
	path, err := parseLaTeX(formula)
	if err != nil {
		return Image{}, typesetErr(source, display, err)
	}
	if l.Scale > 0 && l.Scale != 1 {
		path = path.Transform(canvas.Identity.Scale(l.Scale, l.Scale))
	}

	bounds := path.Bounds()
	if bounds.W() <= 0 || bounds.H() <= 0 {
		return Image{}, typesetErr(source, display, fmt.Errorf("formula has no visible extent"))
	}
	w := bounds.W() + 2*l.Padding
	h := bounds.H() + 2*l.Padding
	c := canvas.New(w, h)
	cctx := canvas.NewContext(c)
	cctx.SetFillColor(canvas.Black)
	cctx.DrawPath(l.Padding-bounds.X0, l.Padding-bounds.Y0, path)

	dpmm := l.DPMM
	if dpmm <= 0 {
		dpmm = 12
	}
	img := rasterizer.Draw(c, canvas.DPMM(dpmm), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Image{}, typesetErr(source, display, err)
	}
	return Image{PNG: buf.Bytes(), WidthMM: w, HeightMM: h}, nil
}

// parseLaTeX shields callers from panics inside the TeX engine on malformed input.
func parseLaTeX(formula string) (p *canvas.Path, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("tex engine: %v", r)
		}
	}()
	return canvas.ParseLaTeX(formula)
}
