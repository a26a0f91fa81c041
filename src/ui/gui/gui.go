package gui

import (
	"septic/src/logx"
	"septic/src/ui/gui/gbase/gconf"
	"septic/src/ui/gui/gdraw"
	"septic/src/ui/gui/ghelper"
	"septic/src/ui/gui/gtrans"

	"github.com/hajimehoshi/ebiten/v2"
)

type Options struct {
	Route      string // initial route, e.g. "/gob"
	EnginePath string // overrides the configured engine
}

type GUIProcessing struct {
	mgr *gdraw.SceneManager
	ctx *ghelper.GUIGameContext
}

func NewGUI(opts Options, logx logx.Logger) (*GUIProcessing, error) {
	cfg, err := gconf.NewGUIConfig()
	if err != nil {
		return nil, err
	}
	if opts.EnginePath != "" {
		cfg.EnginePath = opts.EnginePath
	}
	as, err := ghelper.NewGUIAssetsWorker(cfg)
	if err != nil {
		return nil, err
	}
	ctx := ghelper.NewGUIGameContext(as, cfg, logx)
	if cfg.EnginePath != "" {
		// the GUI still runs without an engine; Home offers to pick another
		if err := ctx.ConnectEngine(cfg.EnginePath, cfg.EngineArgs); err != nil {
			logx.Errorf("error connect engine %s: %v", cfg.EnginePath, err)
		}
	}
	mgr := gdraw.NewSceneManager(ctx, gtrans.ParseRoute(opts.Route))
	return &GUIProcessing{mgr: mgr, ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	defer gp.ctx.CloseEngine()
	ebiten.SetWindowIcon(gp.ctx.AssetsWorker.WindowIcons())
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("septic")
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.mgr.Update()
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.mgr.Draw(screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
