package ghelper

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	// keep the stroke inside the image
	in := strokeW / 2
	dc.DrawRoundedRectangle(in, in, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	if strokeW > 0 {
		dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
		dc.SetLineWidth(strokeW)
		dc.Stroke()
	}
	return ebiten.NewImageFromImage(dc.Image())
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

var pixel = func() *ebiten.Image {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return px
}()

func EbitenutilDrawRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(pixel, op)
}

func EbitenutilDrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	thickness = math.Min(thickness, math.Min(w, h)/2)

	EbitenutilDrawRect(screen, x, y, w, thickness, col)
	EbitenutilDrawRect(screen, x, y+h-thickness, w, thickness, col)
	EbitenutilDrawRect(screen, x, y+thickness, thickness, h-thickness*2, col)
	EbitenutilDrawRect(screen, x+w-thickness, y+thickness, thickness, h-thickness*2, col)
}

// AppendButton adds a themed button and returns its index.
func AppendButton(ctx *GUIGameContext, label string, x, y, w, h int, buttons []*Button) (int, []*Button) {
	b := &Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		Scale:       1.0,
		TargetScale: 1.0,
		AnimSpeed:   10.0,
	}
	b.Image = RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	return len(buttons), append(buttons, b)
}

func lerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return c1
	}
	if t >= 1 {
		return c2
	}
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*(1.0-t) + float64(b)*t) }
	return color.RGBA{mix(c1.R, c2.R), mix(c1.G, c2.G), mix(c1.B, c2.B), mix(c1.A, c2.A)}
}

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
