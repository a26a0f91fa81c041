// Package layout maps logical board cells and reserve slots to pixel space.
//
// The composition is 6.25 units wide and 3.25 units high: player 0 reserve
// column, 3x3 board, player 1 reserve column. Every cell and slot is a
// unit x unit square.
package layout

import (
	"fmt"
	"math"
	"septic/src/base"
)

const (
	WidthUnits  = 6.25
	HeightUnits = 3.25

	boardLeft = 1.5
	step      = 1.125 // cell size plus gap
	rightLeft = 5.25
)

// Frame is the Unit and Origin of one repaint. Use Fit to get one, so the two
// are never mixed across frames.
type Frame struct {
	Unit    float64
	OriginX float64
	OriginY float64
}

// Fit centers the composition inside the area (x, y, w, h) with the biggest
// integer unit that fits.
func Fit(x, y, w, h float64) Frame {
	unit := math.Floor(math.Min(w/WidthUnits, h/HeightUnits))
	if unit < 0 {
		unit = 0
	}
	return Frame{
		Unit:    unit,
		OriginX: x + (w-unit*WidthUnits)/2,
		OriginY: y + (h-unit*HeightUnits)/2,
	}
}

// Size returns the pixel size of the composition.
func (f Frame) Size() (w, h float64) {
	return f.Unit * WidthUnits, f.Unit * HeightUnits
}

// BoardCell returns the top-left corner of a board cell, relative to the origin.
func BoardCell(unit float64, index int) (x, y float64) {
	if !base.IsValidCell(index) {
		panic(fmt.Sprintf("layout: board index out of range: %d", index))
	}
	w, h := float64(index%3), float64(index/3)
	return unit*boardLeft + w*unit*step, h * unit * step
}

// ReserveSlot returns the top-left corner of a reserve tier, relative to the origin.
func ReserveSlot(unit float64, player base.Player, size base.PieceSize) (x, y float64) {
	if !base.IsValidPlayer(player) || !base.IsValidSize(size) {
		panic(fmt.Sprintf("layout: reserve slot out of range: player %d size %d", player, size))
	}
	if player == base.PlayerTwo {
		x = unit * rightLeft
	}
	return x, float64(size) * unit * step
}

// ReserveColumn returns the rectangle of a player's whole reserve column.
func ReserveColumn(unit float64, player base.Player) (x, y, w, h float64) {
	x, y = ReserveSlot(unit, player, base.Small)
	return x, y, unit, unit * HeightUnits
}
