// Package gimages draws the raster images the window needs, using the same
// piece painter as the board.
package gimages

import (
	"image"
	"septic/src/base"
	"septic/src/ui/gui/gboard"
	"septic/src/ui/gui/gcanvas"
)

var IconSizes = []int{16, 32, 48, 64}

// Icon is a large red piece gobbling a green one, size x size pixels.
func Icon(size int) image.Image {
	c := gcanvas.NewGG(size, size)
	u := float64(size)
	gboard.Piece(c, u, 0, 0, base.Piece{Player: base.PlayerOne, Size: base.Large}, false)
	gboard.Piece(c, u, 0, 0, base.Piece{Player: base.PlayerTwo, Size: base.Medium}, false)
	return c.Image()
}

func WindowIcons() []image.Image {
	icons := make([]image.Image, 0, len(IconSizes))
	for _, s := range IconSizes {
		icons = append(icons, Icon(s))
	}
	return icons
}
