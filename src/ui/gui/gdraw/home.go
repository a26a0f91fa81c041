package gdraw

import (
	"errors"
	"fmt"
	"septic/src/ui/gui/gbase"
	"septic/src/ui/gui/ghelper"
	"septic/src/ui/gui/ghelper/gdialog"
	"septic/src/ui/gui/gtrans"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUIHomeDrawer struct {
	msg     *ghelper.MessageBox
	buttons []*ghelper.Button

	btnPlayIdx   int
	btnEngineIdx int
	btnThemeIdx  int
	btnLangIdx   int
	btnExitIdx   int

	w, h int
}

func NewGUIHomeDrawer(ctx *ghelper.GUIGameContext, w, h int) *GUIHomeDrawer {
	hd := &GUIHomeDrawer{msg: &ghelper.MessageBox{}, w: w, h: h}

	btnW, btnH, gap := 320, 56, 16
	n := 5
	x := (w - btnW) / 2
	y := (h-(n*btnH+(n-1)*gap))/2 + 40
	t := ctx.AssetsWorker.Lang().T
	hd.btnPlayIdx, hd.buttons = ghelper.AppendButton(ctx, t("button.play"), x, y, btnW, btnH, hd.buttons)
	y += btnH + gap
	hd.btnEngineIdx, hd.buttons = ghelper.AppendButton(ctx, t("button.engine"), x, y, btnW, btnH, hd.buttons)
	y += btnH + gap
	hd.btnThemeIdx, hd.buttons = ghelper.AppendButton(ctx, t("button.theme"), x, y, btnW, btnH, hd.buttons)
	y += btnH + gap
	hd.btnLangIdx, hd.buttons = ghelper.AppendButton(ctx, fmt.Sprintf("%s: %s", t("button.lang"), t("lang.type")), x, y, btnW, btnH, hd.buttons)
	y += btnH + gap
	hd.btnExitIdx, hd.buttons = ghelper.AppendButton(ctx, t("button.exit"), x, y, btnW, btnH, hd.buttons)
	return hd
}

func (hd *GUIHomeDrawer) Update(ctx *ghelper.GUIGameContext, in Input) (gtrans.Route, error) {
	if hd.msg.IsOverlayed() {
		hd.msg.Update(ctx, in.MX, in.MY, in.JustReleased)
		return NotChanged, nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		hd.toggleTheme(ctx)
	}

	for i, b := range hd.buttons {
		clicked := b.HandleInput(in.MX, in.MY, in.JustClicked, in.JustReleased)
		b.UpdateAnim(in.Dt)
		if !clicked {
			continue
		}
		ctx.Logx.Debugf("%s (%d) clicked", b.Label, i)
		switch i {
		case hd.btnPlayIdx:
			return gtrans.Gob, nil
		case hd.btnEngineIdx:
			hd.pickEngine(ctx)
		case hd.btnThemeIdx:
			hd.toggleTheme(ctx)
		case hd.btnLangIdx:
			lw := ctx.AssetsWorker.Lang()
			if err := lw.SetLang(lw.GetLang().Next()); err != nil {
				ctx.Logx.Errorf("error set language: %v", err)
				break
			}
			ctx.Config.Lang = lw.GetLang().String()
			hd.saveConfig(ctx)
		case hd.btnExitIdx:
			return NotChanged, gbase.ErrExit
		}
	}
	return NotChanged, nil
}

func (hd *GUIHomeDrawer) toggleTheme(ctx *ghelper.GUIGameContext) {
	ctx.SetTheme(ctx.Theme.Toggle())
	hd.saveConfig(ctx)
}

func (hd *GUIHomeDrawer) saveConfig(ctx *ghelper.GUIGameContext) {
	if err := ctx.Config.Save(); err != nil {
		ctx.Logx.Errorf("error save config: %v", err)
	}
}

// pickEngine blocks on the native file dialog like any modal window.
func (hd *GUIHomeDrawer) pickEngine(ctx *ghelper.GUIGameContext) {
	t := ctx.AssetsWorker.Lang().T
	path, err := gdialog.PickExecutable(t("button.engine"))
	if errors.Is(err, gdialog.ErrCancelled) {
		return
	}
	if err == nil {
		err = ctx.ConnectEngine(path, ctx.Config.EngineArgs)
	}
	if err != nil {
		ctx.Logx.Errorf("error connect engine: %v", err)
		hd.msg.ShowMessage(fmt.Sprintf("%s: %v", t("msg.engine.error"), err), nil)
		return
	}
	ctx.Config.EnginePath = path
	hd.saveConfig(ctx)
	hd.msg.ShowMessage(fmt.Sprintf("%s: %s", t("msg.engine.saved"), ctx.EngineName), nil)
}

func (hd *GUIHomeDrawer) Draw(ctx *ghelper.GUIGameContext, dst *ebiten.Image) {
	dst.Fill(ctx.Theme.Bg)
	t := ctx.AssetsWorker.Lang().T
	fonts := ctx.AssetsWorker.Fonts()

	title := "Gobblet Gobblers"
	b := text.BoundString(fonts.Headline, title)
	top := hd.buttons[0].Y
	text.Draw(dst, title, fonts.Headline, (hd.w-b.Dx())/2, top-110, ctx.Theme.MenuText)

	greeting := t("home.greeting")
	b = text.BoundString(fonts.Normal, greeting)
	text.Draw(dst, greeting, fonts.Normal, (hd.w-b.Dx())/2, top-70, ctx.Theme.MenuText)

	name := ctx.EngineName
	if name == "" {
		name = t("home.engine.empty")
	}
	line := fmt.Sprintf("%s: %s", t("home.engine"), name)
	b = text.BoundString(fonts.Normal, line)
	text.Draw(dst, line, fonts.Normal, (hd.w-b.Dx())/2, top-36, ctx.Theme.Accent)

	for _, btn := range hd.buttons {
		btn.DrawAnimated(dst, fonts.Bold, ctx.Theme.ButtonText, ctx.Theme.Accent)
	}
	hd.msg.Draw(ctx, dst)
}
