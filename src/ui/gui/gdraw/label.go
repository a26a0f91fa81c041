package gdraw

import (
	"septic/src/ui/gui/ghelper"
	"septic/src/ui/gui/gtrans"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GUILabelDrawer is a page holding one centered line: the crab page and the
// not found page.
type GUILabelDrawer struct {
	key      string
	headline bool
}

func NewGUILabelDrawer(ctx *ghelper.GUIGameContext, key string, headline bool) *GUILabelDrawer {
	return &GUILabelDrawer{key: key, headline: headline}
}

func (ld *GUILabelDrawer) Update(ctx *ghelper.GUIGameContext, in Input) (gtrans.Route, error) {
	return NotChanged, nil
}

func (ld *GUILabelDrawer) Draw(ctx *ghelper.GUIGameContext, dst *ebiten.Image) {
	dst.Fill(ctx.Theme.Bg)
	face := ctx.AssetsWorker.Fonts().Bold
	if ld.headline {
		face = ctx.AssetsWorker.Fonts().Headline
	}
	s := ctx.AssetsWorker.Lang().T(ld.key)
	b := text.BoundString(face, s)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	text.Draw(dst, s, face, (w-b.Dx())/2, (h+b.Dy())/2, ctx.Theme.MenuText)
}
