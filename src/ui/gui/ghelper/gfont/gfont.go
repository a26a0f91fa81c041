package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Mono     font.Face // ranked list
	MonoLow  font.Face
	Normal   font.Face
	Bold     font.Face // titles
	Headline font.Face
}

func face(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func LoadFonts() (*Fonts, error) {
	var (
		fonts = &Fonts{}
		err   error
	)
	if fonts.Mono, err = face(gomono.TTF, 14); err != nil {
		return nil, err
	}
	if fonts.MonoLow, err = face(gomono.TTF, 12); err != nil {
		return nil, err
	}
	if fonts.Normal, err = face(goregular.TTF, 16); err != nil {
		return nil, err
	}
	if fonts.Bold, err = face(gobold.TTF, 18); err != nil {
		return nil, err
	}
	if fonts.Headline, err = face(gobold.TTF, 36); err != nil {
		return nil, err
	}
	return fonts, nil
}
