package ghelper

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke
	Active     bool          // drawn with the accent color, e.g. the current route
	Disabled   bool

	Hover   bool
	Pressed bool

	Scale         float64
	TargetScale   float64
	OffsetY       float64 // pressed effect
	TargetOffsetY float64
	AnimSpeed     float64 // per second
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// HandleInput is called every Update and reports a finished click: the press
// started on the button and the release happened inside it.
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py) && !b.Disabled
	b.Hover = inside

	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 3.0
	}
	if justReleased {
		wasPressed := b.Pressed
		b.Pressed = false
		b.TargetOffsetY = 0
		if wasPressed && inside {
			b.TargetScale = 1.03
			return true
		}
		b.TargetScale = 1.0
	}
	if !b.Pressed {
		b.TargetOffsetY = 0
		if inside {
			b.TargetScale = 1.02
		} else {
			b.TargetScale = 1.0
		}
	}
	return false
}

func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	t := 1.0 - math.Exp(-b.AnimSpeed*dt)
	b.Scale = b.Scale*(1.0-t) + b.TargetScale*t
	b.OffsetY = b.OffsetY*(1.0-t) + b.TargetOffsetY*t

	// settle the click bounce back to rest
	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, fg, accent color.RGBA) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	if b.Disabled {
		op.ColorScale.ScaleAlpha(0.5)
	}
	screen.DrawImage(b.Image, op)

	col := fg
	if b.Active {
		col = accent
		vector.StrokeLine(screen, float32(b.X+12), float32(b.Y+b.H-6), float32(b.X+b.W-12), float32(b.Y+b.H-6), 2, accent, true)
	}
	if b.Disabled {
		col = lerpColor(fg, color.RGBA{0x80, 0x80, 0x80, 0xff}, 0.6)
	}
	bounds := text.BoundString(face, b.Label)
	tx := int(cx) - bounds.Dx()/2
	ty := int(cy) + bounds.Dy()/2
	text.Draw(screen, b.Label, face, tx, ty, col)
}

// ---- MessageBox ----

type imageRect struct{ X, Y, W, H int }

type MessageBox struct {
	Label string

	Open      bool
	Animating bool
	Scale     float64 // 0..1
	Opening   bool
	OnClose   func()

	lastModalRect imageRect
}

const (
	msgPaddingX = 64
	msgPaddingY = 40
	okW, okH    = 120, 44
)

func (mb *MessageBox) AnimateMessage() {
	const dt = 1.0 / 60.0
	const speed = 6.0
	if !mb.Animating {
		return
	}
	if mb.Opening {
		mb.Scale += speed * dt
		if mb.Scale >= 1.0 {
			mb.Scale = 1.0
			mb.Animating = false
		}
		return
	}
	mb.Scale -= speed * dt
	if mb.Scale <= 0.0 {
		mb.Scale = 0.0
		mb.Animating = false
		mb.Open = false
		if mb.OnClose != nil {
			mb.OnClose()
		}
	}
}

func (mb *MessageBox) ShowMessage(msg string, onClose func()) {
	mb.Label = msg
	mb.Open = true
	mb.Opening = true
	mb.Animating = true
	mb.Scale = 0.0
	mb.OnClose = onClose
}

func (mb *MessageBox) IsOverlayed() bool {
	return mb.Open || mb.Animating
}

func (mb *MessageBox) CollapseMessage() {
	mb.Opening = false
	mb.Animating = true
}

// layout computes the modal rectangle for the current scale, centered in a
// w x h screen.
func (mb *MessageBox) layout(face font.Face, w, h int) imageRect {
	b := text.BoundString(face, mb.Label)
	mw := max(b.Dx(), 200) + msgPaddingX
	mh := b.Dy() + msgPaddingY + 64

	scale := min(max(mb.Scale, 0), 1)
	currW := max(int(float64(mw)*scale), 6)
	currH := max(int(float64(mh)*scale), 6)
	return imageRect{X: (w - currW) / 2, Y: (h - currH) / 2, W: currW, H: currH}
}

func okRect(r imageRect) imageRect {
	return imageRect{X: r.X + (r.W-okW)/2, Y: r.Y + r.H - okH - 20, W: okW, H: okH}
}

// Update closes the box when OK is released or Enter is pressed.
func (mb *MessageBox) Update(ctx *GUIGameContext, mx, my int, justReleased bool) {
	mb.AnimateMessage()
	if !mb.Open || (!mb.Opening && mb.Animating) {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		mb.CollapseMessage()
		return
	}
	r := mb.lastModalRect
	if r.W == 0 {
		return
	}
	ok := okRect(r)
	if justReleased && PointInRect(mx, my, ok.X, ok.Y, ok.W, ok.H) {
		mb.CollapseMessage()
	}
}

func (mb *MessageBox) Draw(ctx *GUIGameContext, screen *ebiten.Image) {
	if !mb.IsOverlayed() {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	EbitenutilDrawRect(screen, 0, 0, float64(sw), float64(sh), ctx.Theme.ModalBg)

	face := ctx.AssetsWorker.Fonts().Normal
	r := mb.layout(face, sw, sh)
	mb.lastModalRect = r

	modalImg := RenderRoundedRect(r.W, r.H, 16, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	screen.DrawImage(modalImg, op)

	if mb.Scale <= 0.85 {
		return
	}
	b := text.BoundString(face, mb.Label)
	text.Draw(screen, mb.Label, face, r.X+msgPaddingX/2, r.Y+20+b.Dy(), ctx.Theme.MenuText)

	ok := okRect(r)
	okImg := RenderRoundedRect(ok.W, ok.H, 12, ctx.Theme.Accent, ctx.Theme.ButtonStroke, 2)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ok.X), float64(ok.Y))
	screen.DrawImage(okImg, op)
	label := ctx.AssetsWorker.Lang().T("button.ok")
	lb := text.BoundString(ctx.AssetsWorker.Fonts().Bold, label)
	text.Draw(screen, label, ctx.AssetsWorker.Fonts().Bold, ok.X+(ok.W-lb.Dx())/2, ok.Y+(ok.H+lb.Dy())/2, color.White)
}

// ---- Circular Loader ----

// CircularLoader spins Segments dots on a circle of Radius around (X, Y).
// Positive SpeedRPS turns clockwise.
type CircularLoader struct {
	X, Y     int
	Radius   float64
	DotSize  float64
	SpeedRPS float64
	Segments int
	Color    color.RGBA

	Active bool

	phase float64
}

func NewCircularLoader(x, y int, radius, speedRPS float64, segments int, col color.RGBA) *CircularLoader {
	if segments <= 0 {
		segments = 6
	}
	return &CircularLoader{
		X:        x,
		Y:        y,
		Radius:   radius,
		DotSize:  math.Max(3, radius*0.35),
		SpeedRPS: speedRPS,
		Segments: segments,
		Color:    col,
	}
}

func (c *CircularLoader) Update(dt float64) {
	if !c.Active {
		return
	}
	c.phase = math.Mod(c.phase-2*math.Pi*c.SpeedRPS*dt, 2*math.Pi)
	if c.phase < 0 {
		c.phase += 2 * math.Pi
	}
}

func (c *CircularLoader) Draw(screen *ebiten.Image) {
	if !c.Active {
		return
	}
	seg := 2 * math.Pi / float64(c.Segments)
	for i := c.Segments - 1; i >= 0; i-- {
		head := 1.0 - float64(i)/float64(c.Segments) // 1 at the head, towards 0 at the tail
		angle := c.phase + float64(i)*seg
		x := float64(c.X) + math.Cos(angle)*c.Radius
		y := float64(c.Y) + math.Sin(angle)*c.Radius

		col := c.Color
		col.A = uint8(float64(col.A) * (0.25 + 0.75*head))
		// vector colors are premultiplied
		a := float64(col.A) / 0xff
		col.R, col.G, col.B = uint8(float64(col.R)*a), uint8(float64(col.G)*a), uint8(float64(col.B)*a)
		r := c.DotSize / 2 * (0.6 + 0.9*head)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), col, true)
	}
}

// ---- List ----

// List is a vertically scrolling list of fixed-height rows. Scroll is in
// pixels and clamped to the content.
type List struct {
	X, Y, W, H int
	RowH       int
	Rows       int

	Scroll float64
	Hover  int // -1 when the cursor is off every row
}

func NewList(x, y, w, h, rowH int) *List {
	return &List{X: x, Y: y, W: w, H: h, RowH: rowH, Hover: -1}
}

func (l *List) maxScroll() float64 {
	return math.Max(0, float64(l.Rows*l.RowH-l.H))
}

// Update applies the wheel and returns the clicked row or -1.
func (l *List) Update(mx, my int, justReleased bool) int {
	l.Hover = -1
	if !PointInRect(mx, my, l.X, l.Y, l.W, l.H) {
		l.Scroll = min(max(l.Scroll, 0), l.maxScroll())
		return -1
	}
	_, wy := ebiten.Wheel()
	l.Scroll = min(max(l.Scroll-wy*float64(l.RowH), 0), l.maxScroll())

	row := int((float64(my-l.Y) + l.Scroll) / float64(l.RowH))
	if row >= 0 && row < l.Rows {
		l.Hover = row
		if justReleased {
			return row
		}
	}
	return -1
}

// Visible calls draw for every row at least partly inside the list, with
// the row's top y on screen. Rows are clipped by drawing into a sub image.
func (l *List) Visible(screen *ebiten.Image, draw func(dst *ebiten.Image, row, y int)) {
	clip := screen.SubImage(rect(l.X, l.Y, l.W, l.H)).(*ebiten.Image)
	first := int(l.Scroll) / l.RowH
	for row := first; row < l.Rows; row++ {
		y := l.Y + row*l.RowH - int(l.Scroll)
		if y >= l.Y+l.H {
			break
		}
		draw(clip, row, y)
	}
}
