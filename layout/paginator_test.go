package layout

import "testing"

func TestPaginatorBreaksExactlyOnce(t *testing.T) {
	c := newFakeCanvas()
	top, bottom, h := 15.0, 282.0, 5.0 // content height 267
	p := NewPaginator(c, top, bottom)

	units := int((bottom-top)/h) + 1
	breaks := 0
	for i := 0; i < units; i++ {
		if p.EnsureRoom(h) {
			breaks++
			if p.Y() != top {
				t.Fatalf("cursor not reset after break: y=%g", p.Y())
			}
		}
		p.Advance(h)
	}
	if breaks != 1 || c.page != 1 || p.Pages() != 2 {
		t.Fatalf("breaks=%d canvas pages=%d paginator pages=%d", breaks, c.page+1, p.Pages())
	}
	if got := p.Cursor(); got.Page != 1 || got.Y != top+h {
		t.Fatalf("cursor = %+v", got)
	}
	if p.Travel() != float64(units)*h {
		t.Fatalf("travel = %g", p.Travel())
	}
}

func TestPaginatorExactFit(t *testing.T) {
	p := NewPaginator(newFakeCanvas(), 10, 30)
	if p.EnsureRoom(20) {
		t.Fatalf("a unit ending exactly at the bottom must fit")
	}
	p.Advance(20)
	if p.Remaining() != 0 || p.Fits(0.1) {
		t.Fatalf("remaining=%g", p.Remaining())
	}
	if !p.EnsureRoom(0.1) || p.Y() != 10 {
		t.Fatalf("expected a new page at the top")
	}
	if p.Usable() != 20 {
		t.Fatalf("usable = %g", p.Usable())
	}
}
