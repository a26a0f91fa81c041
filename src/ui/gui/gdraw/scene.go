package gdraw

import (
	"fmt"
	"image"
	"septic/src/ui/gui/gbase"
	"septic/src/ui/gui/ghelper"
	"septic/src/ui/gui/gtrans"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ---- Scene ----

// NotChanged is returned by a scene that stays on its route.
const NotChanged gtrans.Route = -1

// Input is the pointer state of one tick in body coordinates.
type Input struct {
	MX, MY       int
	JustClicked  bool
	JustReleased bool
	Dt           float64 // seconds since the previous tick
}

type Scene interface {
	Update(ctx *ghelper.GUIGameContext, in Input) (gtrans.Route, error)
	Draw(ctx *ghelper.GUIGameContext, dst *ebiten.Image)
}

func newScene(r gtrans.Route, ctx *ghelper.GUIGameContext, w, h int) Scene {
	switch r {
	case gtrans.Home:
		return NewGUIHomeDrawer(ctx, w, h)
	case gtrans.Gob:
		return NewGUIGobDrawer(ctx, w, h)
	case gtrans.Crab:
		return NewGUILabelDrawer(ctx, "crab.label", false)
	}
	return NewGUILabelDrawer(ctx, "notfound", true)
}

// ---- Scene manager ----

// SceneManager owns the sidebar and the body. The body shows the routed
// scene; on a route change both scenes are drawn offscreen and slid by the
// transition controller.
type SceneManager struct {
	ctx   *ghelper.GUIGameContext
	trans *gtrans.Controller

	current gtrans.Route
	scenes  map[gtrans.Route]Scene

	nav       []*ghelper.Button
	navRoutes []gtrans.Route

	bodyW, bodyH int
	offTop       *ebiten.Image
	offBottom    *ebiten.Image

	// rebuild scenes when these change
	theme gbase.Palette
	lang  string

	prevMouseDown bool
	lastTick      time.Time
}

func NewSceneManager(ctx *ghelper.GUIGameContext, initial gtrans.Route) *SceneManager {
	m := &SceneManager{
		ctx:      ctx,
		trans:    gtrans.New(initial),
		current:  initial,
		scenes:   make(map[gtrans.Route]Scene),
		bodyW:    ctx.Config.WindowW - gbase.SidebarW,
		bodyH:    ctx.Config.WindowH,
		lastTick: time.Now(),
	}
	m.offTop = ebiten.NewImage(m.bodyW, m.bodyH)
	m.offBottom = ebiten.NewImage(m.bodyW, m.bodyH)
	m.rebuild()
	ctx.Logx.Infof("start on route %v", initial)
	return m
}

func (m *SceneManager) rebuild() {
	m.theme = m.ctx.Theme
	m.lang = m.ctx.AssetsWorker.Lang().GetLang().String()

	m.nav = nil
	m.navRoutes = []gtrans.Route{gtrans.Home, gtrans.Gob, gtrans.Crab}
	keys := []string{"nav.home", "nav.gob", "nav.crab"}
	x, y, w, h := gbase.Padding*2, 96, gbase.SidebarW-gbase.Padding*4, 48
	for i, k := range keys {
		_, m.nav = ghelper.AppendButton(m.ctx, m.ctx.AssetsWorker.Lang().T(k), x, y+i*(h+14), w, h, m.nav)
	}

	for r := range m.scenes {
		m.scenes[r] = newScene(r, m.ctx, m.bodyW, m.bodyH)
	}
}

func (m *SceneManager) scene(r gtrans.Route) Scene {
	s, ok := m.scenes[r]
	if !ok {
		s = newScene(r, m.ctx, m.bodyW, m.bodyH)
		m.scenes[r] = s
	}
	return s
}

// Navigate switches the body to route to.
func (m *SceneManager) Navigate(to gtrans.Route) {
	if to == m.current || to == NotChanged {
		return
	}
	m.ctx.Logx.Debugf("route %v -> %v", m.current, to)
	m.trans.Route(m.current, to)
	m.current = to
	m.prune()
}

// prune releases every scene the controller no longer mounts.
func (m *SceneManager) prune() {
	keep := make(map[gtrans.Route]bool)
	for _, r := range m.trans.Mounted() {
		keep[r] = true
		m.scene(r)
	}
	for r := range m.scenes {
		if !keep[r] {
			delete(m.scenes, r)
		}
	}
}

func (m *SceneManager) Update() error {
	now := time.Now()
	dt := now.Sub(m.lastTick)
	m.lastTick = now

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked := mouseDown && !m.prevMouseDown
	justReleased := !mouseDown && m.prevMouseDown
	m.prevMouseDown = mouseDown

	if m.trans.State() == gtrans.Animating {
		m.trans.Tick(dt)
		if m.trans.State() != gtrans.Animating {
			m.prune()
		}
	}

	for i, b := range m.nav {
		b.Active = m.navRoutes[i] == m.current
		if b.HandleInput(mx, my, justClicked, justReleased) {
			m.Navigate(m.navRoutes[i])
		}
		b.UpdateAnim(dt.Seconds())
	}

	// the body takes input only while it is still
	if m.trans.State() == gtrans.Animating {
		return nil
	}
	in := Input{
		MX:           mx - gbase.SidebarW,
		MY:           my,
		JustClicked:  justClicked,
		JustReleased: justReleased,
		Dt:           dt.Seconds(),
	}
	next, err := m.scene(m.current).Update(m.ctx, in)
	if err != nil {
		return err
	}
	m.Navigate(next)

	if m.ctx.Theme != m.theme || m.ctx.AssetsWorker.Lang().GetLang().String() != m.lang {
		m.rebuild()
	}
	return nil
}

func (m *SceneManager) Draw(screen *ebiten.Image) {
	screen.Fill(m.ctx.Theme.Bg)
	m.drawSidebar(screen)

	body := screen.SubImage(rect(gbase.SidebarW, 0, m.bodyW, m.bodyH)).(*ebiten.Image)
	f := m.trans.Frame(float64(m.bodyH))

	m.drawOffscreen(f.Top, m.offTop, body, -f.Offset)
	if !f.Single {
		m.drawOffscreen(f.Bottom, m.offBottom, body, float64(m.bodyH)-f.Offset)
	}

	if m.ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f %v %.2f", ebiten.ActualTPS(), m.trans.State(), m.trans.Progress()))
	}
}

func (m *SceneManager) drawOffscreen(r gtrans.Route, off, body *ebiten.Image, y float64) {
	off.Clear()
	m.scene(r).Draw(m.ctx, off)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(gbase.SidebarW), y)
	body.DrawImage(off, op)
}

func (m *SceneManager) drawSidebar(screen *ebiten.Image) {
	ghelper.EbitenutilDrawRect(screen, 0, 0, gbase.SidebarW, float64(m.bodyH), m.ctx.Theme.Sidebar)
	text.Draw(screen, "septic", m.ctx.AssetsWorker.Fonts().Headline, gbase.Padding*2, 60, m.ctx.Theme.Accent)
	for _, b := range m.nav {
		b.DrawAnimated(screen, m.ctx.AssetsWorker.Fonts().Bold, m.ctx.Theme.ButtonText, m.ctx.Theme.Accent)
	}
}

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
