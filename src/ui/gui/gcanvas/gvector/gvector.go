// Package gvector implements gcanvas.Canvas on an ebiten image with the
// vector package, so the board is drawn crisp at any unit.
package gvector

import (
	"image"
	"image/color"
	"septic/src/ui/gui/gcanvas"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type Canvas struct {
	dst    *ebiten.Image
	tx, ty float64
}

var _ gcanvas.Canvas = (*Canvas)(nil)

func New(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

func (c *Canvas) Translate(dx, dy float64) {
	c.tx += dx
	c.ty += dy
}

func (c *Canvas) Circle(cx, cy, r float64, p gcanvas.Paint) {
	x, y := float32(cx+c.tx), float32(cy+c.ty)
	col := color.NRGBA(p.Color)
	if p.Stroke {
		vector.StrokeCircle(c.dst, x, y, float32(r), float32(p.StrokeWidth), col, p.AntiAlias)
		return
	}
	vector.DrawFilledCircle(c.dst, x, y, float32(r), col, p.AntiAlias)
}

func (c *Canvas) RoundRect(x, y, w, h, r float64, p gcanvas.Paint) {
	var path vector.Path
	x0, y0 := float32(x+c.tx), float32(y+c.ty)
	x1, y1 := x0+float32(w), y0+float32(h)
	rr := float32(min(r, w/2, h/2))

	path.MoveTo(x0+rr, y0)
	path.LineTo(x1-rr, y0)
	path.ArcTo(x1, y0, x1, y0+rr, rr)
	path.LineTo(x1, y1-rr)
	path.ArcTo(x1, y1, x1-rr, y1, rr)
	path.LineTo(x0+rr, y1)
	path.ArcTo(x0, y1, x0, y1-rr, rr)
	path.LineTo(x0, y0+rr)
	path.ArcTo(x0, y0, x0+rr, y0, rr)
	path.Close()

	var (
		vs []ebiten.Vertex
		is []uint16
	)
	if p.Stroke {
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:    float32(p.StrokeWidth),
			LineJoin: vector.LineJoinRound,
		})
	} else {
		vs, is = path.AppendVerticesAndIndicesForFilling(nil, nil)
	}

	cr, cg, cb, ca := float32(p.Color.R)/0xff, float32(p.Color.G)/0xff, float32(p.Color.B)/0xff, float32(p.Color.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = p.AntiAlias
	c.dst.DrawTriangles(vs, is, whiteSubImage, op)
}
