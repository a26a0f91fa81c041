package cli

import (
	"fmt"
	"io"
	"septic/src/base"
	"strings"
)

const (
	reset    = "\033[0m"
	greenF   = "\033[92m"
	redF     = "\033[91m"
	dimF     = "\033[90m"
	selectBg = "\033[43m"
	cellBg   = "\033[48;5;96m" // close to the GUI border color
)

var sizeGlyph = [base.Sizes]string{"s", "m", "L"}

func pieceColor(p base.Player) string {
	if p == base.PlayerOne {
		return greenF
	}
	return redF
}

// PrintSnapshot draws the board with cell numbers, both reserves and the
// side to move.
func PrintSnapshot(w io.Writer, s base.Snapshot) {
	var b strings.Builder
	b.WriteString("\n")
	for row := 0; row < 3; row++ {
		b.WriteString("  ")
		for col := 0; col < 3; col++ {
			i := row*3 + col
			bg := cellBg
			if s.IsSelectedCell(i) {
				bg = selectBg
			}
			if p, ok := s.Top(i); ok {
				fmt.Fprintf(&b, "%s%s %s %s ", bg, pieceColor(p.Player), sizeGlyph[p.Size], reset)
			} else {
				fmt.Fprintf(&b, "%s%s %d %s ", bg, dimF, i, reset)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for pl := base.PlayerOne; pl <= base.PlayerTwo; pl++ {
		fmt.Fprintf(&b, "  %s%s%s reserve:", pieceColor(pl), pl, reset)
		for sz := base.Small; sz <= base.Large; sz++ {
			mark := " "
			if pl == s.Player() && s.IsSelectedReserve(sz) {
				mark = "*"
			}
			fmt.Fprintf(&b, " %s%s x%d", mark, sizeGlyph[sz], s.Left(pl, sz))
		}
		b.WriteString("\n")
	}
	if s.Status.Terminal() {
		fmt.Fprintf(&b, "  status: %s\n", s.Status)
	} else {
		fmt.Fprintf(&b, "  to move: %s%s%s\n", pieceColor(s.Player()), s.Player(), reset)
	}
	io.WriteString(w, b.String()) //nolint:errcheck
}
