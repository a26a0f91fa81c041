package base

type EvalKind uint8

const (
	EvalUnknown EvalKind = iota
	EvalWin
	EvalLoss
	EvalDraw
	EvalTooFar
	// the oracle failed or timed out for this move
	EvalUnavailable
)

func (k EvalKind) String() string {
	switch k {
	case EvalWin:
		return "Win"
	case EvalLoss:
		return "Loss"
	case EvalDraw:
		return "Draw"
	case EvalTooFar:
		return "TooFar"
	case EvalUnavailable:
		return "Unavailable"
	default:
		return "Unknown"
	}
}

// Evaluation is an oracle verdict on a position.
type Evaluation struct {
	Kind  EvalKind
	Depth int
	Time  float64 // seconds
	Nodes uint64
}

// Flip turns a verdict on the position after a move into the verdict for the
// player who made it: one ply deeper, Win and Loss swapped.
func (e Evaluation) Flip() Evaluation {
	e.Depth++
	switch e.Kind {
	case EvalWin:
		e.Kind = EvalLoss
	case EvalLoss:
		e.Kind = EvalWin
	}
	return e
}
