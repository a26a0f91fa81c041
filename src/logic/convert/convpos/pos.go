package convpos

import (
	"errors"
	"fmt"
	"septic/src/base"
	"strconv"
	"strings"
)

// Text forms:
//
//	position  c0,c1,...,c8/RRRRRR/P
//	snapshot  <position> <status> <target>
//	move      n<size><to> | b<size><from><to>
//	target    - | r<player><size> | c<cell>
//
// A cell is "-" or its stack bottom to top, "abc" for player 0 small..large
// and "ABC" for player 1.

const START_POSITION string = "-,-,-,-,-,-,-,-,-/222222/0"

var ErrEmpty = errors.New("empty string")

var pieceRunes = [base.Players][base.Sizes]byte{
	{'a', 'b', 'c'},
	{'A', 'B', 'C'},
}

func pieceFromRune(r byte) (base.Piece, bool) {
	for pl := 0; pl < base.Players; pl++ {
		for s := 0; s < base.Sizes; s++ {
			if pieceRunes[pl][s] == r {
				return base.Piece{Player: base.Player(pl), Size: base.PieceSize(s)}, true
			}
		}
	}
	return base.Piece{}, false
}

func ConvertPositionToString(p base.Position) string {
	var b strings.Builder
	for i := 0; i < base.Cells; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		st := p.Cells[i]
		if st.Len == 0 {
			b.WriteByte('-')
			continue
		}
		for j := 0; j < int(st.Len); j++ {
			pc := st.Pieces[j]
			b.WriteByte(pieceRunes[pc.Player][pc.Size])
		}
	}
	b.WriteByte('/')
	for pl := 0; pl < base.Players; pl++ {
		for s := 0; s < base.Sizes; s++ {
			b.WriteString(strconv.Itoa(int(p.Reserve[pl][s])))
		}
	}
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(int(p.ToMove)))
	return b.String()
}

func ConvertStringToPosition(s string) (base.Position, error) {
	var p base.Position
	s = strings.TrimSpace(s)
	if s == "" {
		return p, ErrEmpty
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return p, fmt.Errorf("position %q: want 3 fields, got %d", s, len(parts))
	}

	cells := strings.Split(parts[0], ",")
	if len(cells) != base.Cells {
		return p, fmt.Errorf("position %q: want %d cells, got %d", s, base.Cells, len(cells))
	}
	for i, c := range cells {
		if c == "-" {
			continue
		}
		if c == "" || len(c) > base.Sizes {
			return p, fmt.Errorf("cell %d: bad stack %q", i, c)
		}
		for j := 0; j < len(c); j++ {
			pc, ok := pieceFromRune(c[j])
			if !ok {
				return p, fmt.Errorf("cell %d: bad piece %q", i, c[j])
			}
			if top, ok := p.Cells[i].Top(); ok && top.Size >= pc.Size {
				return p, fmt.Errorf("cell %d: %q cannot cover a piece of the same or bigger size", i, c[j])
			}
			p.Cells[i].Push(pc)
		}
	}

	if len(parts[1]) != base.Players*base.Sizes {
		return p, fmt.Errorf("reserve %q: want %d digits", parts[1], base.Players*base.Sizes)
	}
	for i := 0; i < len(parts[1]); i++ {
		d := parts[1][i]
		if d < '0' || d > '9' {
			return p, fmt.Errorf("reserve %q: bad digit %q", parts[1], d)
		}
		p.Reserve[i/base.Sizes][i%base.Sizes] = d - '0'
	}

	switch parts[2] {
	case "0":
		p.ToMove = base.PlayerOne
	case "1":
		p.ToMove = base.PlayerTwo
	default:
		return p, fmt.Errorf("player to move %q: want 0 or 1", parts[2])
	}
	return p, nil
}

// ---- status ----

func ConvertStatusToString(gs base.GameStatus) string {
	switch gs {
	case base.WinOne:
		return "win0"
	case base.WinTwo:
		return "win1"
	case base.Draw:
		return "draw"
	default:
		return "play"
	}
}

func ConvertStringToStatus(s string) (base.GameStatus, error) {
	switch s {
	case "play":
		return base.InProgress, nil
	case "win0":
		return base.WinOne, nil
	case "win1":
		return base.WinTwo, nil
	case "draw":
		return base.Draw, nil
	default:
		return base.InProgress, fmt.Errorf("bad status %q", s)
	}
}

// ---- target ----

func ConvertTargetToString(t base.Target) string {
	switch t.Kind {
	case base.TargetReserve:
		return fmt.Sprintf("r%d%d", t.Player, t.Size)
	case base.TargetCell:
		return fmt.Sprintf("c%d", t.Cell)
	default:
		return "-"
	}
}

func ConvertStringToTarget(s string) (base.Target, error) {
	switch {
	case s == "-":
		return base.NoTarget, nil
	case len(s) == 3 && s[0] == 'r':
		pl, sz := s[1]-'0', s[2]-'0'
		if pl >= base.Players || sz >= base.Sizes {
			return base.NoTarget, fmt.Errorf("bad reserve target %q", s)
		}
		return base.ReserveTarget(base.Player(pl), base.PieceSize(sz)), nil
	case len(s) == 2 && s[0] == 'c':
		c := int(s[1]) - '0'
		if !base.IsValidCell(c) {
			return base.NoTarget, fmt.Errorf("bad cell target %q", s)
		}
		return base.CellTarget(c), nil
	default:
		return base.NoTarget, fmt.Errorf("bad target %q", s)
	}
}

// ---- snapshot ----

func ConvertSnapshotToString(s base.Snapshot) string {
	return ConvertPositionToString(s.Position) + " " +
		ConvertStatusToString(s.Status) + " " +
		ConvertTargetToString(s.Selected)
}

// ConvertFieldsToSnapshot decodes a snapshot already split into its 3 fields.
func ConvertFieldsToSnapshot(fld []string) (base.Snapshot, error) {
	var s base.Snapshot
	if len(fld) != 3 {
		return s, fmt.Errorf("snapshot: want 3 fields, got %d", len(fld))
	}
	pos, err := ConvertStringToPosition(fld[0])
	if err != nil {
		return s, err
	}
	st, err := ConvertStringToStatus(fld[1])
	if err != nil {
		return s, err
	}
	tg, err := ConvertStringToTarget(fld[2])
	if err != nil {
		return s, err
	}
	return base.Snapshot{Position: pos, Status: st, Selected: tg}, nil
}

func ConvertStringToSnapshot(str string) (base.Snapshot, error) {
	fld := strings.Fields(str)
	if len(fld) == 0 {
		return base.Snapshot{}, ErrEmpty
	}
	return ConvertFieldsToSnapshot(fld)
}

// ---- move ----

func ConvertMoveToString(m base.Move) string {
	if m.IsNew {
		return fmt.Sprintf("n%d%d", m.Size, m.To)
	}
	return fmt.Sprintf("b%d%d%d", m.Size, m.From, m.To)
}

func ConvertStringToMove(s string) (base.Move, error) {
	digit := func(b byte) int { return int(b) - '0' }
	switch {
	case len(s) == 3 && s[0] == 'n':
		sz, to := digit(s[1]), digit(s[2])
		if sz < 0 || sz >= base.Sizes || !base.IsValidCell(to) {
			return base.Move{}, fmt.Errorf("bad move %q", s)
		}
		return base.NewPieceMove(base.PieceSize(sz), to), nil
	case len(s) == 4 && s[0] == 'b':
		sz, from, to := digit(s[1]), digit(s[2]), digit(s[3])
		if sz < 0 || sz >= base.Sizes || !base.IsValidCell(from) || !base.IsValidCell(to) {
			return base.Move{}, fmt.Errorf("bad move %q", s)
		}
		return base.BoardMove(base.PieceSize(sz), from, to), nil
	default:
		return base.Move{}, fmt.Errorf("bad move %q", s)
	}
}

// ---- evaluation ----

var evalKinds = map[string]base.EvalKind{
	"win":     base.EvalWin,
	"loss":    base.EvalLoss,
	"draw":    base.EvalDraw,
	"toofar":  base.EvalTooFar,
	"unknown": base.EvalUnknown,
}

// ConvertEvalToString writes "<kind> depth <d> time <sec> nodes <n>".
func ConvertEvalToString(e base.Evaluation) string {
	return fmt.Sprintf("%s depth %d time %.3f nodes %d",
		strings.ToLower(e.Kind.String()), e.Depth, e.Time, e.Nodes)
}

// ConvertFieldsToEval is tolerant about the order of the depth/time/nodes
// pairs and skips keys it does not know.
func ConvertFieldsToEval(fld []string) (base.Evaluation, error) {
	var e base.Evaluation
	if len(fld) == 0 {
		return e, ErrEmpty
	}
	kind, ok := evalKinds[strings.ToLower(fld[0])]
	if !ok {
		return e, fmt.Errorf("bad eval kind %q", fld[0])
	}
	e.Kind = kind
	for i := 1; i+1 < len(fld); i += 2 {
		val := fld[i+1]
		var err error
		switch fld[i] {
		case "depth":
			e.Depth, err = strconv.Atoi(val)
		case "time":
			e.Time, err = strconv.ParseFloat(val, 64)
		case "nodes":
			e.Nodes, err = strconv.ParseUint(val, 10, 64)
		}
		if err != nil {
			return e, fmt.Errorf("bad eval %s %q: %w", fld[i], val, err)
		}
	}
	return e, nil
}
