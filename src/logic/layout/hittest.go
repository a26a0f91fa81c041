package layout

import "septic/src/base"

func contains(px, py, x, y, unit float64) bool {
	return px >= x && px <= x+unit && py >= y && py <= y+unit
}

// Resolve maps a pointer position to the reserve tier of the mover or a
// board cell. Only the mover's reserve is tested. Slots are scanned before
// cells, both in ascending order, and the first hit wins.
func Resolve(px, py float64, f Frame, mover base.Player) base.Target {
	if f.Unit <= 0 {
		return base.NoTarget
	}
	lx, ly := px-f.OriginX, py-f.OriginY

	for s := base.Small; s <= base.Large; s++ {
		x, y := ReserveSlot(f.Unit, mover, s)
		if contains(lx, ly, x, y, f.Unit) {
			return base.ReserveTarget(mover, s)
		}
	}
	for i := 0; i < base.Cells; i++ {
		x, y := BoardCell(f.Unit, i)
		if contains(lx, ly, x, y, f.Unit) {
			return base.CellTarget(i)
		}
	}
	return base.NoTarget
}
