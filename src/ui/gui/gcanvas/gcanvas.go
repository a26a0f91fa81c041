// Package gcanvas is the drawing surface the board renderer paints on.
package gcanvas

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Paint colors are straight alpha: {255, 255, 0, 128} is half transparent yellow.
type Paint struct {
	Color       color.RGBA
	Stroke      bool // outline instead of fill
	StrokeWidth float64
	AntiAlias   bool
}

// Canvas accepts shapes in its current coordinate system. Translate moves
// the origin relative to the current one.
type Canvas interface {
	Translate(dx, dy float64)
	RoundRect(x, y, w, h, r float64, p Paint)
	Circle(cx, cy, r float64, p Paint)
}

// ---- gg ----

// GG paints into an in-memory RGBA image. gg always anti-aliases.
type GG struct {
	dc *gg.Context
}

func NewGG(w, h int) *GG {
	return &GG{dc: gg.NewContext(w, h)}
}

func (c *GG) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *GG) Translate(dx, dy float64) {
	c.dc.Translate(dx, dy)
}

func (c *GG) RoundRect(x, y, w, h, r float64, p Paint) {
	c.dc.DrawRoundedRectangle(x, y, w, h, r)
	c.paint(p)
}

func (c *GG) Circle(cx, cy, r float64, p Paint) {
	c.dc.DrawCircle(cx, cy, r)
	c.paint(p)
}

func (c *GG) paint(p Paint) {
	c.dc.SetRGBA255(int(p.Color.R), int(p.Color.G), int(p.Color.B), int(p.Color.A))
	if p.Stroke {
		c.dc.SetLineWidth(p.StrokeWidth)
		c.dc.Stroke()
		return
	}
	c.dc.Fill()
}

func (c *GG) Image() image.Image {
	return c.dc.Image()
}

func (c *GG) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
