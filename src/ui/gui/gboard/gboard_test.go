package gboard

import (
	"image/color"
	"septic/src/base"
	"septic/src/logic/layout"
	"septic/src/ui/gui/gcanvas"
	"testing"
)

type shape struct {
	kind       string // "rect" or "circle"
	x, y, r    float64
	paint      gcanvas.Paint
	translated [2]float64
}

type recorder struct {
	tx, ty float64
	shapes []shape
}

func (c *recorder) Translate(dx, dy float64) { c.tx += dx; c.ty += dy }

func (c *recorder) RoundRect(x, y, w, h, r float64, p gcanvas.Paint) {
	c.shapes = append(c.shapes, shape{kind: "rect", x: x, y: y, r: r, paint: p, translated: [2]float64{c.tx, c.ty}})
}

func (c *recorder) Circle(cx, cy, r float64, p gcanvas.Paint) {
	c.shapes = append(c.shapes, shape{kind: "circle", x: cx, y: cy, r: r, paint: p, translated: [2]float64{c.tx, c.ty}})
}

func (c *recorder) count(kind string) int {
	n := 0
	for _, s := range c.shapes {
		if s.kind == kind {
			n++
		}
	}
	return n
}

func (c *recorder) highlights() []shape {
	var out []shape
	for _, s := range c.shapes {
		if s.kind == "circle" && s.paint.Color == HighlightColor {
			out = append(out, s)
		}
	}
	return out
}

func TestStartPosition(t *testing.T) {
	var c recorder
	Render(&c, 64, base.NewSnapshot(base.PlayerOne))

	if got := c.count("rect"); got != base.Cells+base.Players {
		t.Fatalf("rects: got %d", got)
	}
	// every tier holds two pieces: shadow + top, fill + outline each
	if got := c.count("circle"); got != base.Players*base.Sizes*2*2 {
		t.Fatalf("circles: got %d", got)
	}
	if len(c.highlights()) != 0 {
		t.Fatal("nothing is selected")
	}
	for _, s := range c.shapes {
		if s.kind == "rect" && (s.paint.Color != BorderColor || s.paint.StrokeWidth != 2 || s.r != 16) {
			t.Fatalf("border paint: %+v", s)
		}
	}
}

func TestShadowOffset(t *testing.T) {
	const u = 96.0
	s := base.NewSnapshot(base.PlayerOne)
	s.Reserve[base.PlayerTwo][base.Medium] = 1

	var c recorder
	Render(&c, u, s)

	x, y := layout.ReserveSlot(u, base.PlayerTwo, base.Medium)
	wantR := radius[base.Medium] * u / 2
	var ys []float64
	for _, sh := range c.shapes {
		if sh.kind == "circle" && sh.r == wantR && sh.x == x+u/2 && !sh.paint.Stroke {
			ys = append(ys, sh.y)
		}
	}
	if len(ys) != 1 || ys[0] != y+u/2 {
		t.Fatalf("single piece must sit on the slot, got centers %v", ys)
	}

	x, y = layout.ReserveSlot(u, base.PlayerOne, base.Large)
	wantR = radius[base.Large] * u / 2
	ys = ys[:0]
	for _, sh := range c.shapes {
		if sh.kind == "circle" && sh.r == wantR && sh.x == x+u/2 && !sh.paint.Stroke {
			ys = append(ys, sh.y)
		}
	}
	if len(ys) != 2 || ys[0] != y+u/2 || ys[1] != y+u/2-u/16 {
		t.Fatalf("shadow then raised top expected, got %v", ys)
	}
}

func TestReserveHighlightOnlyForMover(t *testing.T) {
	const u = 64.0
	s := base.NewSnapshot(base.PlayerOne)
	s.Selected = base.ReserveTarget(base.PlayerOne, base.Large)

	var c recorder
	Render(&c, u, s)
	hl := c.highlights()
	if len(hl) != 1 {
		t.Fatalf("want one highlight, got %d", len(hl))
	}
	x, y := layout.ReserveSlot(u, base.PlayerOne, base.Large)
	if hl[0].x != x+u/2 || hl[0].y != y+u/2-u/16 || hl[0].paint.StrokeWidth != u/48 {
		t.Fatalf("highlight at the wrong place: %+v", hl[0])
	}

	// player 1 to move: the selected tier belongs to its own column
	s.ToMove = base.PlayerTwo
	c = recorder{}
	Render(&c, u, s)
	hl = c.highlights()
	x, _ = layout.ReserveSlot(u, base.PlayerTwo, base.Large)
	if len(hl) != 1 || hl[0].x != x+u/2 {
		t.Fatalf("highlight must follow the mover: %+v", hl)
	}
}

func TestCellHighlightNeedsOwnPiece(t *testing.T) {
	s := base.NewSnapshot(base.PlayerOne)
	s.Cells[4].Push(base.Piece{Player: base.PlayerTwo, Size: base.Small})
	s.Selected = base.CellTarget(4)

	var c recorder
	Render(&c, 64, s)
	if len(c.highlights()) != 0 {
		t.Fatal("opponent's piece must not be highlighted")
	}

	s.Cells[4].Push(base.Piece{Player: base.PlayerOne, Size: base.Large})
	c = recorder{}
	Render(&c, 64, s)
	if len(c.highlights()) != 1 {
		t.Fatal("mover's selected piece must be highlighted")
	}
}

func TestZeroUnitDrawsNothing(t *testing.T) {
	var c recorder
	Render(&c, 0, base.NewSnapshot(base.PlayerOne))
	if len(c.shapes) != 0 {
		t.Fatalf("got %d shapes", len(c.shapes))
	}
}

func TestGGPixels(t *testing.T) {
	f := layout.Fit(0, 0, 400, 208)
	w, h := f.Size()
	cv := gcanvas.NewGG(int(w), int(h))

	s := base.NewSnapshot(base.PlayerOne)
	s.Cells[4].Push(base.Piece{Player: base.PlayerTwo, Size: base.Large})
	cv.Translate(f.OriginX, f.OriginY)
	Render(cv, f.Unit, s)

	img := cv.Image()
	x, y := layout.BoardCell(f.Unit, 4)
	r, g, b, a := img.At(int(f.OriginX+x+f.Unit/2), int(f.OriginY+y+f.Unit/2)).RGBA()
	if a == 0 || r < 0xf000 || g > 0x1000 || b > 0x1000 {
		t.Fatalf("center of cell 4 should be red, got %x %x %x %x", r, g, b, a)
	}
	// the gap between cells stays transparent
	_, _, _, a = img.At(int(f.OriginX+x-f.Unit/16), int(f.OriginY+y+f.Unit/2)).RGBA()
	if a != 0 {
		t.Fatalf("gap between cells painted, alpha %x", a)
	}
}

func TestExportFitsAndFills(t *testing.T) {
	bg := color.RGBA{1, 2, 3, 0xff}
	s := base.NewSnapshot(base.PlayerOne)
	s.Cells[0].Push(base.Piece{Player: base.PlayerOne, Size: base.Large})
	img := Export(s, 650, 500, bg).Image()

	if b := img.Bounds(); b.Dx() != 650 || b.Dy() != 500 {
		t.Fatalf("bounds %v", b)
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != bg {
		t.Fatalf("corner %v", got)
	}
	f := layout.Fit(0, 0, 650, 500)
	x, y := layout.BoardCell(f.Unit, 0)
	r, g, b, _ := img.At(int(f.OriginX+x+f.Unit/2), int(f.OriginY+y+f.Unit/2)).RGBA()
	if g < 0xf000 || r > 0x1000 || b > 0x1000 {
		t.Fatalf("cell 0 should be green, got %x %x %x", r, g, b)
	}
}
