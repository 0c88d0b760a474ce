package layout

// Cursor is where the next unit is drawn: a zero-based page index and the
// vertical offset (baseline) from the page top in millimetres.
type Cursor struct {
	Page int     `json:"page"`
	Y    float64 `json:"y"`
}

// Paginator owns the cursor for one document render and starts new pages
// before a unit would cross the bottom of the content area.
type Paginator struct {
	canvas Canvas
	top    float64
	bottom float64
	cur    Cursor
	// travel accumulates every Advance, across pages.
	travel float64
}

// NewPaginator places the cursor at the top of the content area of page 0.
// The canvas is expected to already have its first page.
func NewPaginator(c Canvas, top, bottom float64) *Paginator {
	return &Paginator{canvas: c, top: top, bottom: bottom, cur: Cursor{Y: top}}
}

// EnsureRoom starts a new page when y+height would pass the content bottom.
// It reports whether a page was started; callers must then re-apply their
// font, size and colour.
func (p *Paginator) EnsureRoom(height float64) bool {
	if p.Fits(height) {
		return false
	}
	p.pageBreak()
	return true
}

// Fits reports whether height fits below the cursor on the current page.
func (p *Paginator) Fits(height float64) bool {
	return p.cur.Y+height <= p.bottom
}

func (p *Paginator) pageBreak() {
	p.canvas.NewPage()
	p.cur.Page++
	// 新页从内容区域顶部开始
	p.cur.Y = p.top
}

// Advance moves the cursor down by dy.
func (p *Paginator) Advance(dy float64) {
	p.cur.Y += dy
	p.travel += dy
}

func (p *Paginator) Y() float64         { return p.cur.Y }
func (p *Paginator) Cursor() Cursor     { return p.cur }
func (p *Paginator) Top() float64       { return p.top }
func (p *Paginator) Bottom() float64    { return p.bottom }
func (p *Paginator) Travel() float64    { return p.travel }
func (p *Paginator) Usable() float64    { return p.bottom - p.top }
func (p *Paginator) Pages() int         { return p.cur.Page + 1 }
func (p *Paginator) Remaining() float64 { return p.bottom - p.cur.Y }
