// Package rank orders evaluated moves for display.
package rank

import (
	"fmt"
	"image/color"
	"septic/src/base"
	"sort"
)

type Entry struct {
	Move base.Move
	Eval base.Evaluation
}

// Score maps an evaluation to a comparable number: fast wins first, slow
// losses last.
func Score(e base.Evaluation) int {
	switch e.Kind {
	case base.EvalWin:
		return 100 - e.Depth
	case base.EvalLoss:
		return -100 + e.Depth
	case base.EvalTooFar:
		return -50 + e.Depth
	default:
		return -e.Depth
	}
}

// Less orders a before b: higher score, then more visited nodes.
func Less(a, b base.Evaluation) bool {
	sa, sb := Score(a), Score(b)
	if sa != sb {
		return sa > sb
	}
	return a.Nodes > b.Nodes
}

// Rank returns a sorted copy of entries; the input is left untouched.
// Entries equal on score and nodes keep their input order.
func Rank(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i].Eval, out[j].Eval)
	})
	return out
}

// ---- display ----

func (e Entry) MoveLabel() string {
	return e.Move.String()
}

func (e Entry) EvalLabel() string {
	return fmt.Sprintf("%v: %d, %.2f, %dk", e.Eval.Kind, e.Eval.Depth, e.Eval.Time, e.Eval.Nodes/1_000)
}

var (
	ColorWin   = color.RGBA{0xff, 0xff, 0x00, 0xff}
	ColorLoss  = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	ColorDraw  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	ColorOther = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

func KindColor(k base.EvalKind) color.RGBA {
	switch k {
	case base.EvalWin:
		return ColorWin
	case base.EvalLoss:
		return ColorLoss
	case base.EvalDraw:
		return ColorDraw
	default:
		return ColorOther
	}
}
