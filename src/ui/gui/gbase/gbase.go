package gbase

import (
	"errors"
	"image/color"
)

// ErrExit is returned from Update to leave the ebiten loop.
var ErrExit = errors.New("exit request")

const (
	WindowW = 1400
	WindowH = 900

	SidebarW  = 200
	Padding   = 10
	AlgoPanel = 250
	ToolbarH  = 64
)

type Palette struct {
	Bg           color.RGBA
	Sidebar      color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
	Board        color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	}
	return ""
}

// PaletteFromString falls back to the light palette.
func PaletteFromString(p string) Palette {
	if p == "dark" {
		return DarkPalette
	}
	return LightPalette
}

// Toggle returns the other palette.
func (p Palette) Toggle() Palette {
	if p == DarkPalette {
		return LightPalette
	}
	return DarkPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf4, 0xf1, 0xf6, 0xff},
	Sidebar:      color.RGBA{0xe6, 0xdf, 0xea, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x96, 0x6e, 0x96, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x8a, 0x4f, 0x9e, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
	Board:        color.RGBA{0xfb, 0xfa, 0xfc, 0xff},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x16, 0x13, 0x18, 0xff},
	Sidebar:      color.RGBA{0x22, 0x1d, 0x25, 0xff},
	ButtonFill:   color.RGBA{0x26, 0x22, 0x2a, 0xff},
	ButtonStroke: color.RGBA{0xc8, 0xa8, 0xc8, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0xb9, 0x7c, 0xcf, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
	Board:        color.RGBA{0x1e, 0x1a, 0x21, 0xff},
}
