package layout

import "fmt"

// Canvas 是排版引擎所需的绘图能力，由宿主（PDF、PNG 等后端）提供。
// 坐标单位为毫米，原点位于页面左上角；DrawText 的 y 为基线位置。
// 绘制方法不返回错误，首个失败会被记录下来，通过 Err 取回。
type Canvas interface {
	SetFont(family string, style FontStyle)
	SetFontSize(pt float64)
	SetTextColor(c Color)
	SetFillColor(c Color)
	SetDrawColor(c Color)
	SetLineWidth(mm float64)

	// MeasureWidth 返回 text 以当前字体绘制时的宽度（mm）。
	MeasureWidth(text string) float64
	// WrapText 将 text 按当前字体折成宽度不超过 maxWidth 的若干行。
	WrapText(text string, maxWidth float64) []string

	DrawText(text string, x, y float64)
	DrawLine(x1, y1, x2, y2 float64)
	DrawRect(x, y, w, h float64, mode PaintMode)
	DrawRoundedRect(x, y, w, h, r float64, mode PaintMode)
	// DrawImage 以 (x, y) 为左上角绘制 PNG 数据。
	DrawImage(png []byte, x, y, w, h float64)

	// NewPage 开始新页面。新页面的字体、字号与颜色均回到默认状态。
	NewPage()
	PageSize() (width, height float64)
	RegisterGlyphFont(data []byte, name string) error
	Err() error
}

// FontStyle 是字重与斜体的组合。
type FontStyle int

const (
	StyleRegular    FontStyle = 0
	StyleBold       FontStyle = 1
	StyleItalic     FontStyle = 2
	StyleBoldItalic           = StyleBold | StyleItalic
)

func (s FontStyle) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bolditalic"
	}
	return "regular"
}

// Font families every backend must provide.
const (
	FamilyBody = "body"
	FamilyMono = "mono"
)

// PaintMode selects how shapes are painted.
type PaintMode int

const (
	Stroke PaintMode = iota
	Fill
	FillStroke
)

// CanvasError reports a drawing failure. It aborts the document render.
type CanvasError struct {
	Op  string
	Err error
}

func (e *CanvasError) Error() string { return fmt.Sprintf("canvas: %s: %v", e.Op, e.Err) }

func (e *CanvasError) Unwrap() error { return e.Err }

// checkCanvas wraps the canvas's sticky error, if any.
func checkCanvas(c Canvas, op string) error {
	if err := c.Err(); err != nil {
		return &CanvasError{Op: op, Err: err}
	}
	return nil
}
