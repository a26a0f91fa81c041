package gdraw

import (
	"fmt"
	"image/color"
	"septic/src/analysis"
	"septic/src/base"
	"septic/src/logic/convert/convpos"
	"septic/src/logic/rank"
	"septic/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var (
	algoBg  = color.RGBA{0x2b, 0x25, 0x2e, 0xff}
	algoRow = color.RGBA{0x3a, 0x32, 0x3e, 0xff}
)

const (
	algoTitleH = 72
	algoRowH   = 52
)

// GUIAnalyzerPanel lists the ranked legal moves of the current snapshot.
// Clicking a row plays its move.
type GUIAnalyzerPanel struct {
	x, y, w, h int

	list   *ghelper.List
	loader *ghelper.CircularLoader
	view   analysis.View
	phase  analysis.Phase

	bgImg  *ebiten.Image
	rowImg *ebiten.Image
}

func NewGUIAnalyzerPanel(ctx *ghelper.GUIGameContext, x, y, w, h int) *GUIAnalyzerPanel {
	ap := &GUIAnalyzerPanel{x: x, y: y, w: w, h: h}
	ap.list = ghelper.NewList(x+8, y+algoTitleH, w-16, h-algoTitleH-8, algoRowH)
	ap.loader = ghelper.NewCircularLoader(x+w-24, y+52, 7, 1.2, 8, ctx.Theme.Accent)
	ap.bgImg = ghelper.RenderRoundedRect(w, h, 12, algoBg, ctx.Theme.ButtonStroke, 2)
	ap.rowImg = ghelper.RenderRoundedRect(w-16, algoRowH-6, 8, algoRow, algoRow, 0)
	return ap
}

// Update feeds the analyzer and returns the move of a clicked row.
func (ap *GUIAnalyzerPanel) Update(ctx *ghelper.GUIGameContext, in Input) (base.Move, bool) {
	if !ctx.HasEngine() {
		ap.view, ap.phase = analysis.View{}, analysis.PhaseFailed
		ap.loader.Active = false
		return base.Move{}, false
	}
	s := ctx.Builder.Snapshot()
	ctx.Analyzer.Observe(s)
	ap.view = ctx.Analyzer.View()
	ap.phase = ap.view.Phase(s.Status)

	ap.loader.Active = ap.phase == analysis.PhaseEvaluating
	ap.loader.Update(in.Dt)

	ap.list.Rows = len(ap.view.Entries)
	if row := ap.list.Update(in.MX, in.MY, in.JustReleased); row >= 0 && ap.phase != analysis.PhaseOver {
		return ap.view.Entries[row].Move, true
	}
	return base.Move{}, false
}

func (ap *GUIAnalyzerPanel) statusLine(ctx *ghelper.GUIGameContext) string {
	t := ctx.AssetsWorker.Lang().T
	switch ap.phase {
	case analysis.PhaseEvaluating:
		if ap.view.Total == 0 {
			return t("algo.evaluating") + "..."
		}
		return fmt.Sprintf("%s %d/%d", t("algo.evaluating"), ap.view.Done, ap.view.Total)
	case analysis.PhaseNoMoves:
		return t("algo.empty")
	case analysis.PhaseOver:
		return t("gob.status." + convpos.ConvertStatusToString(ctx.Builder.Status()))
	case analysis.PhaseFailed:
		if !ctx.HasEngine() {
			return t("algo.noengine")
		}
		return t("msg.engine.error")
	}
	return fmt.Sprintf("%d", ap.view.Total)
}

func (ap *GUIAnalyzerPanel) Draw(ctx *ghelper.GUIGameContext, dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ap.x), float64(ap.y))
	dst.DrawImage(ap.bgImg, op)

	fonts := ctx.AssetsWorker.Fonts()
	white := color.RGBA{0xee, 0xee, 0xee, 0xff}
	text.Draw(dst, ctx.AssetsWorker.Lang().T("algo.title"), fonts.Bold, ap.x+14, ap.y+30, white)
	text.Draw(dst, ap.statusLine(ctx), fonts.MonoLow, ap.x+14, ap.y+56, rank.ColorDraw)
	ap.loader.Draw(dst)

	entries := ap.view.Entries
	ap.list.Visible(dst, func(clip *ebiten.Image, row, y int) {
		e := entries[row]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(ap.list.X), float64(y))
		clip.DrawImage(ap.rowImg, op)
		if row == ap.list.Hover {
			ghelper.EbitenutilDrawRectStroke(clip, float64(ap.list.X), float64(y), float64(ap.list.W), algoRowH-6, 2, ctx.Theme.Accent)
		}
		text.Draw(clip, fmt.Sprintf("%2d. %s", row+1, e.MoveLabel()), fonts.Mono, ap.list.X+10, y+19, white)
		text.Draw(clip, e.EvalLabel(), fonts.MonoLow, ap.list.X+10, y+38, rank.KindColor(e.Eval.Kind))
	})
}
