// Package latex turns LaTeX math into raster images for the layout engine.
//
// Two typesetters are provided: Local renders in-process through the canvas
// LaTeX parser and rasterizer, Remote asks an HTTP service for a PNG. Both
// report failures as *TypesetError so callers can fall back to literal text.
package latex

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmpty is returned for blank sources.
var ErrEmpty = errors.New("empty formula")

// Image is a rendered formula. The physical size is what the formula should
// occupy on the page.
type Image struct {
	PNG      []byte
	WidthMM  float64
	HeightMM float64
}

// Typesetter renders a formula. display selects display style ($$...$$)
// instead of inline style.
type Typesetter interface {
	Render(ctx context.Context, source string, display bool) (Image, error)
}

// Func adapts a function to the Typesetter interface.
type Func func(ctx context.Context, source string, display bool) (Image, error)

func (f Func) Render(ctx context.Context, source string, display bool) (Image, error) {
	return f(ctx, source, display)
}

// TypesetError wraps any failure to produce an image for a formula.
type TypesetError struct {
	Source  string
	Display bool
	Err     error
}

func (e *TypesetError) Error() string {
	kind := "inline"
	if e.Display {
		kind = "display"
	}
	return fmt.Sprintf("typeset %s formula %q: %v", kind, e.Source, e.Err)
}

func (e *TypesetError) Unwrap() error { return e.Err }

func typesetErr(source string, display bool, err error) error {
	var te *TypesetError
	if errors.As(err, &te) {
		return err
	}
	return &TypesetError{Source: source, Display: display, Err: err}
}
