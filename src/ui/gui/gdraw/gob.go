package gdraw

import (
	"errors"
	"fmt"
	"septic/src/base"
	"septic/src/engine"
	"septic/src/logic/convert/convpos"
	"septic/src/logic/layout"
	"septic/src/ui/gui/gbase"
	"septic/src/ui/gui/gboard"
	"septic/src/ui/gui/gcanvas/gvector"
	"septic/src/ui/gui/ghelper"
	"septic/src/ui/gui/ghelper/gclipboard"
	"septic/src/ui/gui/gtrans"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUIGobDrawer struct {
	msg     *ghelper.MessageBox
	buttons []*ghelper.Button

	btnToggleIdx int
	btnResetIdx  int
	btnUndoIdx   int
	btnRedoIdx   int

	showAlgo bool
	algo     *GUIAnalyzerPanel

	w, h     int
	panelImg *ebiten.Image
	panelW   int
}

func NewGUIGobDrawer(ctx *ghelper.GUIGameContext, w, h int) *GUIGobDrawer {
	gd := &GUIGobDrawer{msg: &ghelper.MessageBox{}, w: w, h: h, showAlgo: ctx.Config.ShowAlgo}

	t := ctx.AssetsWorker.Lang().T
	x, y, bw, bh, gap := gbase.Padding, gbase.Padding, 150, gbase.ToolbarH-2*gbase.Padding, 10
	gd.btnToggleIdx, gd.buttons = ghelper.AppendButton(ctx, t("gob.toggle"), x, y, bw, bh, gd.buttons)
	x += bw + gap
	gd.btnResetIdx, gd.buttons = ghelper.AppendButton(ctx, t("gob.reset"), x, y, bw, bh, gd.buttons)
	x += bw + gap
	gd.btnUndoIdx, gd.buttons = ghelper.AppendButton(ctx, t("gob.undo"), x, y, bw, bh, gd.buttons)
	x += bw + gap
	gd.btnRedoIdx, gd.buttons = ghelper.AppendButton(ctx, t("gob.redo"), x, y, bw, bh, gd.buttons)

	ay := gbase.ToolbarH + gbase.Padding
	gd.algo = NewGUIAnalyzerPanel(ctx, w-gbase.Padding-gbase.AlgoPanel, ay, gbase.AlgoPanel, h-ay-gbase.Padding)
	return gd
}

// boardRect is the panel left of the algorithm panel.
func (gd *GUIGobDrawer) boardRect() (x, y, w, h int) {
	x, y = gbase.Padding, gbase.ToolbarH+gbase.Padding
	w = gd.w - 2*gbase.Padding
	if gd.showAlgo {
		w -= gbase.AlgoPanel + gbase.Padding
	}
	return x, y, w, gd.h - y - gbase.Padding
}

// boardFrame fits the composition inside the board panel with a margin.
func (gd *GUIGobDrawer) boardFrame() layout.Frame {
	x, y, w, h := gd.boardRect()
	m := gbase.Padding * 2
	return layout.Fit(float64(x+m), float64(y+m), float64(w-2*m), float64(h-2*m))
}

func (gd *GUIGobDrawer) snapshot(ctx *ghelper.GUIGameContext) base.Snapshot {
	if !ctx.HasEngine() {
		return base.NewSnapshot(base.PlayerOne)
	}
	return ctx.Builder.Snapshot()
}

func (gd *GUIGobDrawer) Update(ctx *ghelper.GUIGameContext, in Input) (gtrans.Route, error) {
	if gd.msg.IsOverlayed() {
		gd.msg.Update(ctx, in.MX, in.MY, in.JustReleased)
		return NotChanged, nil
	}

	for i, b := range gd.buttons {
		b.Disabled = gd.disabled(ctx, i)
		clicked := b.HandleInput(in.MX, in.MY, in.JustClicked, in.JustReleased)
		b.UpdateAnim(in.Dt)
		if !clicked {
			continue
		}
		switch i {
		case gd.btnToggleIdx:
			gd.showAlgo = !gd.showAlgo
			ctx.Config.ShowAlgo = gd.showAlgo
			if err := ctx.Config.Save(); err != nil {
				ctx.Logx.Errorf("error save config: %v", err)
			}
		case gd.btnResetIdx:
			gd.report(ctx, "reset", ctx.Builder.Reset())
		case gd.btnUndoIdx:
			gd.report(ctx, "undo", ctx.Builder.Undo())
		case gd.btnRedoIdx:
			gd.report(ctx, "redo", ctx.Builder.Redo())
		}
	}
	if !ctx.HasEngine() {
		if gd.showAlgo {
			gd.algo.Update(ctx, in)
		}
		return NotChanged, nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		gd.copySnapshot(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft) && ctx.Builder.CanUndo():
		gd.report(ctx, "undo", ctx.Builder.Undo())
	case inpututil.IsKeyJustPressed(ebiten.KeyRight) && ctx.Builder.CanRedo():
		gd.report(ctx, "redo", ctx.Builder.Redo())
	}

	x, y, w, h := gd.boardRect()
	if in.JustClicked && ghelper.PointInRect(in.MX, in.MY, x, y, w, h) {
		s := ctx.Builder.Snapshot()
		target := layout.Resolve(float64(in.MX), float64(in.MY), gd.boardFrame(), s.Player())
		gd.report(ctx, "select "+convpos.ConvertTargetToString(target), ctx.Builder.Select(target))
	}

	if gd.showAlgo {
		if mv, ok := gd.algo.Update(ctx, in); ok {
			gd.report(ctx, "play "+mv.String(), ctx.Builder.Move(mv))
		}
	}
	return NotChanged, nil
}

func (gd *GUIGobDrawer) disabled(ctx *ghelper.GUIGameContext, idx int) bool {
	switch {
	case idx == gd.btnToggleIdx:
		return false
	case !ctx.HasEngine():
		return true
	case idx == gd.btnUndoIdx:
		return !ctx.Builder.CanUndo()
	case idx == gd.btnRedoIdx:
		return !ctx.Builder.CanRedo()
	}
	return false
}

// report logs err. An illegal selection just drops the selection; anything
// else is shown to the user, and the snapshot stays as it was.
func (gd *GUIGobDrawer) report(ctx *ghelper.GUIGameContext, what string, err error) {
	switch {
	case err == nil:
		ctx.Logx.Debugf("game %s: %s -> %s", ctx.Builder.ID(), what, ctx.Builder.String())
	case errors.Is(err, engine.ErrIllegalMove):
		ctx.Logx.Debugf("game %s: %s: %v", ctx.Builder.ID(), what, err)
		ctx.Builder.ClearSelection()
	default:
		ctx.Logx.Errorf("game %s: %s: %v", ctx.Builder.ID(), what, err)
		gd.msg.ShowMessage(fmt.Sprintf("%s: %v", ctx.AssetsWorker.Lang().T("msg.engine.error"), err), nil)
	}
}

func (gd *GUIGobDrawer) copySnapshot(ctx *ghelper.GUIGameContext) {
	if err := gclipboard.WriteAll(ctx.Builder.String()); err != nil {
		ctx.Logx.Errorf("error copy to clipboard: %v", err)
		gd.msg.ShowMessage(err.Error(), nil)
		return
	}
	gd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("msg.copied"), nil)
}

func (gd *GUIGobDrawer) Draw(ctx *ghelper.GUIGameContext, dst *ebiten.Image) {
	dst.Fill(ctx.Theme.Bg)
	fonts := ctx.AssetsWorker.Fonts()
	t := ctx.AssetsWorker.Lang().T

	for _, b := range gd.buttons {
		b.DrawAnimated(dst, fonts.Bold, ctx.Theme.ButtonText, ctx.Theme.Accent)
	}

	s := gd.snapshot(ctx)
	status := t("gob.status." + convpos.ConvertStatusToString(s.Status))
	if !s.Status.Terminal() {
		status = fmt.Sprintf("%s: %s", t("gob.turn"), s.Player())
	}
	last := gd.buttons[len(gd.buttons)-1]
	text.Draw(dst, status, fonts.Normal, last.X+last.W+24, last.Y+last.H/2+6, ctx.Theme.MenuText)

	x, y, w, h := gd.boardRect()
	if gd.panelImg == nil || gd.panelW != w {
		gd.panelImg = ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.Board, ctx.Theme.ButtonStroke, 2)
		gd.panelW = w
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gd.panelImg, op)

	f := gd.boardFrame()
	c := gvector.New(dst)
	c.Translate(f.OriginX, f.OriginY)
	gboard.Render(c, f.Unit, s)

	if gd.showAlgo {
		gd.algo.Draw(ctx, dst)
	}
	gd.msg.Draw(ctx, dst)
}
