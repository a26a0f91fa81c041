package layout

import (
	"septic/src/base"
	"testing"
)

type rect struct{ x, y, w, h float64 }

func (a rect) overlaps(b rect) bool {
	return a.x <= b.x+b.w && b.x <= a.x+a.w && a.y <= b.y+b.h && b.y <= a.y+a.h
}

func TestFitComputesUnitAndOriginTogether(t *testing.T) {
	f := Fit(10, 20, 1000, 500)
	// min(1000/6.25=160, 500/3.25=153.8) floored
	if f.Unit != 153 {
		t.Fatalf("unit: got %v, want 153", f.Unit)
	}
	w, h := f.Size()
	if f.OriginX != 10+(1000-w)/2 || f.OriginY != 20+(500-h)/2 {
		t.Fatalf("origin not centered: %+v", f)
	}

	if z := Fit(0, 0, 0, 0); z.Unit != 0 {
		t.Fatalf("zero area: got unit %v", z.Unit)
	}
}

func TestCellsInsideCompositionAndDisjoint(t *testing.T) {
	for _, unit := range []float64{1, 7, 32, 144} {
		var rects []rect
		for i := 0; i < base.Cells; i++ {
			x, y := BoardCell(unit, i)
			rects = append(rects, rect{x, y, unit, unit})
		}
		for pl := base.PlayerOne; pl <= base.PlayerTwo; pl++ {
			for s := base.Small; s <= base.Large; s++ {
				x, y := ReserveSlot(unit, pl, s)
				rects = append(rects, rect{x, y, unit, unit})
			}
		}
		for i, r := range rects {
			if r.x < 0 || r.y < 0 || r.x+r.w > unit*WidthUnits || r.y+r.h > unit*HeightUnits {
				t.Errorf("unit %v: rect %d %+v outside composition", unit, i, r)
			}
			for j := i + 1; j < len(rects); j++ {
				if r.overlaps(rects[j]) {
					t.Errorf("unit %v: rects %d and %d overlap", unit, i, j)
				}
			}
		}
	}
}

func TestBoardCellCoordinates(t *testing.T) {
	x, y := BoardCell(100, 5)
	if x != 150+2*112.5 || y != 112.5 {
		t.Fatalf("cell 5: got (%v, %v)", x, y)
	}
	x, y = ReserveSlot(100, base.PlayerTwo, base.Large)
	if x != 525 || y != 225 {
		t.Fatalf("reserve p1 large: got (%v, %v)", x, y)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for cell 9")
		}
	}()
	BoardCell(10, 9)
}

func TestResolveInsideEveryCell(t *testing.T) {
	f := Fit(37, 11, 800, 400)
	for i := 0; i < base.Cells; i++ {
		x, y := BoardCell(f.Unit, i)
		for _, d := range [][2]float64{{0.5, 0.5}, {1, 1}, {f.Unit - 1, f.Unit - 1}, {f.Unit / 2, 1}} {
			got := Resolve(f.OriginX+x+d[0], f.OriginY+y+d[1], f, base.PlayerOne)
			if got != base.CellTarget(i) {
				t.Errorf("cell %d offset %v: got %v", i, d, got)
			}
		}
	}
}

func TestResolveReservesOnlyForMover(t *testing.T) {
	f := Fit(0, 0, 625, 325)
	for s := base.Small; s <= base.Large; s++ {
		x, y := ReserveSlot(f.Unit, base.PlayerTwo, s)
		px, py := f.OriginX+x+f.Unit/2, f.OriginY+y+f.Unit/2
		if got := Resolve(px, py, f, base.PlayerTwo); got != base.ReserveTarget(base.PlayerTwo, s) {
			t.Errorf("mover p1, size %v: got %v", s, got)
		}
		if got := Resolve(px, py, f, base.PlayerOne); !got.IsNone() {
			t.Errorf("non-mover reserve must not resolve, got %v", got)
		}
	}
}

func TestResolveOutsideEveryRect(t *testing.T) {
	f := Fit(0, 0, 625, 325)
	u := f.Unit
	misses := [][2]float64{
		{-5, -5},
		{u * 1.25, u / 2},            // between reserve and board
		{u*1.5 + u*1.0625, u / 2},    // gap between cells 0 and 1
		{u*1.5 + u/2, u * 1.0625},    // gap between rows
		{u / 2, u*3.25 + 10},         // below everything
		{u * 6.25 * 2, u * 3.25 * 2}, // far away
		{u*5.25 - u/8, u*2.25 + u/2}, // left of player 1 column
	}
	for _, m := range misses {
		for _, pl := range []base.Player{base.PlayerOne, base.PlayerTwo} {
			if got := Resolve(f.OriginX+m[0], f.OriginY+m[1], f, pl); !got.IsNone() {
				t.Errorf("point %v mover %v: expected none, got %v", m, pl, got)
			}
		}
	}
}

func TestResolveZeroUnit(t *testing.T) {
	if got := Resolve(0, 0, Frame{}, base.PlayerOne); !got.IsNone() {
		t.Fatalf("zero unit must resolve to none, got %v", got)
	}
}
