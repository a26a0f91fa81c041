package ghelper

import (
	"path/filepath"
	"septic/src"
	"septic/src/analysis"
	"septic/src/engine/gbp"
	"septic/src/logx"
	"septic/src/ui/gui/gbase"
	"septic/src/ui/gui/gbase/gconf"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *src.GameBuilder   // nil until an engine is connected
	Analyzer     *analysis.Analyzer // nil until an engine is connected
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
	EngineName   string

	rules *gbp.Exec
}

func NewGUIGameContext(a *GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}

func (ctx *GUIGameContext) HasEngine() bool {
	return ctx.Builder != nil
}

// ConnectEngine starts the engine at path, opens a new game on it and
// replaces the current engine only when everything succeeded.
func (ctx *GUIGameContext) ConnectEngine(path string, args []string) error {
	rules := gbp.NewExec(ctx.Logx, path, args...)
	if err := rules.Init(); err != nil {
		return err
	}
	gb := src.NewGameBuilder(ctx.Logx, rules)
	if err := gb.CreateNew(true); err != nil {
		rules.Close()
		return err
	}

	ctx.CloseEngine()
	ctx.rules = rules
	ctx.Builder = gb
	ctx.Analyzer = analysis.New(ctx.Logx, rules, gbp.Factory(ctx.Logx, path, args...), ctx.Config.SearchDepth, ctx.Config.Workers)
	ctx.EngineName = rules.Name()
	if ctx.EngineName == "" {
		ctx.EngineName = filepath.Base(path)
	}
	return nil
}

func (ctx *GUIGameContext) CloseEngine() {
	if ctx.Analyzer != nil {
		ctx.Analyzer.Close()
		ctx.Analyzer = nil
	}
	if ctx.rules != nil {
		ctx.rules.Close()
		ctx.rules = nil
	}
	ctx.Builder = nil
	ctx.EngineName = ""
}

// SetTheme switches the palette and remembers it in the config.
func (ctx *GUIGameContext) SetTheme(p gbase.Palette) {
	ctx.Theme = p
	ctx.Config.Theme = p.String()
}
