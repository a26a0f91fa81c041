package ghelper

import (
	"image"
	"septic/src/ui/gui/gbase/gconf"
	"septic/src/ui/gui/ghelper/gfont"
	"septic/src/ui/gui/ghelper/gimages"
	"septic/src/ui/gui/ghelper/glang"
)

const langDir = "assets/lang"

type GUIAssetsWorker struct {
	fonts *gfont.Fonts
	icons []image.Image
	lang  *glang.GUILangWorker
}

func NewGUIAssetsWorker(cfg *gconf.Config) (*GUIAssetsWorker, error) {
	l, err := glang.NewGUILangWorker(langDir, cfg.Lang)
	if err != nil {
		return nil, err
	}
	f, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{fonts: f, icons: gimages.WindowIcons(), lang: l}, nil
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) WindowIcons() []image.Image {
	return aw.icons
}
