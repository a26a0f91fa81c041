// Package gboard paints a snapshot: the 3x3 board, both reserve columns and
// their pieces, in composition coordinates. Callers translate the canvas to
// the frame origin first.
package gboard

import (
	"image/color"
	"septic/src/base"
	"septic/src/logic/layout"
	"septic/src/ui/gui/gcanvas"
)

var (
	BorderColor    = color.RGBA{150, 110, 150, 0xff}
	OutlineColor   = color.RGBA{0, 0, 0, 0xff}
	HighlightColor = color.RGBA{0xff, 0xff, 0, 128}
	PlayerColors   = [base.Players]color.RGBA{
		{0, 0xff, 0, 0xff}, // player 0
		{0xff, 0, 0, 0xff}, // player 1
	}
)

// piece radius per size, as a fraction of half a unit
var radius = [base.Sizes]float64{0.35, 0.60, 0.85}

// Render draws s at the given unit. A non-positive unit draws nothing.
func Render(c gcanvas.Canvas, unit float64, s base.Snapshot) {
	if unit <= 0 {
		return
	}
	border := gcanvas.Paint{Color: BorderColor, Stroke: true, StrokeWidth: unit / 32, AntiAlias: true}

	for i := 0; i < base.Cells; i++ {
		x, y := layout.BoardCell(unit, i)
		c.RoundRect(x, y, unit, unit, unit/4, border)
		if p, ok := s.Top(i); ok {
			Piece(c, unit, x, y, p, s.IsSelectedCell(i) && p.Player == s.Player())
		}
	}

	for pl := base.PlayerOne; pl <= base.PlayerTwo; pl++ {
		x, y, w, h := layout.ReserveColumn(unit, pl)
		c.RoundRect(x, y, w, h, unit/4, border)

		for sz := base.Small; sz <= base.Large; sz++ {
			left := s.Left(pl, sz)
			x, y := layout.ReserveSlot(unit, pl, sz)
			p := base.Piece{Player: pl, Size: sz}
			// a second piece in the tier peeks out below the top one
			if left > 1 {
				Piece(c, unit, x, y, p, false)
				y -= unit / 16
			}
			if left > 0 {
				Piece(c, unit, x, y, p, s.IsSelectedReserve(sz) && pl == s.Player())
			}
		}
	}
}

// Piece draws p centered in the unit square at (x, y).
func Piece(c gcanvas.Canvas, unit, x, y float64, p base.Piece, highlight bool) {
	cx, cy := x+unit/2, y+unit/2
	r := radius[p.Size] * unit / 2

	c.Circle(cx, cy, r, gcanvas.Paint{Color: PlayerColors[p.Player], AntiAlias: true})
	c.Circle(cx, cy, r, gcanvas.Paint{Color: OutlineColor, Stroke: true, StrokeWidth: unit / 72, AntiAlias: true})
	if highlight {
		c.Circle(cx, cy, r, gcanvas.Paint{Color: HighlightColor, Stroke: true, StrokeWidth: unit / 48, AntiAlias: true})
	}
}

// Export paints s into a new w x h image, fitted and centered, over bg.
func Export(s base.Snapshot, w, h int, bg color.Color) *gcanvas.GG {
	c := gcanvas.NewGG(w, h)
	if bg != nil {
		c.Clear(bg)
	}
	f := layout.Fit(0, 0, float64(w), float64(h))
	c.Translate(f.OriginX, f.OriginY)
	Render(c, f.Unit, s)
	return c
}
