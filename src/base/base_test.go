package base

import "testing"

func TestFlipSwapsWinAndLoss(t *testing.T) {
	e := Evaluation{Kind: EvalWin, Depth: 3, Time: 0.5, Nodes: 42}.Flip()
	if e.Kind != EvalLoss {
		t.Fatalf("expected Loss, got %v", e.Kind)
	}
	if e.Depth != 4 {
		t.Fatalf("expected depth 4, got %d", e.Depth)
	}
	if e.Nodes != 42 || e.Time != 0.5 {
		t.Fatalf("telemetry changed: %+v", e)
	}

	if k := (Evaluation{Kind: EvalLoss}).Flip().Kind; k != EvalWin {
		t.Fatalf("expected Win, got %v", k)
	}
	for _, k := range []EvalKind{EvalDraw, EvalTooFar, EvalUnknown, EvalUnavailable} {
		if got := (Evaluation{Kind: k}).Flip(); got.Kind != k || got.Depth != 1 {
			t.Errorf("%v: got %+v", k, got)
		}
	}
}

func TestPositionIsComparable(t *testing.T) {
	a := StartPosition(PlayerOne)
	b := StartPosition(PlayerOne)
	if a != b {
		t.Fatal("equal positions compare different")
	}
	b.Cells[4].Push(Piece{Player: PlayerTwo, Size: Large})
	if a == b {
		t.Fatal("different positions compare equal")
	}

	s1 := Snapshot{Position: a}
	s2 := Snapshot{Position: a, Selected: CellTarget(3)}
	if s1.Position != s2.Position {
		t.Fatal("selection must not affect the position key")
	}
}

func TestStackTop(t *testing.T) {
	var s Stack
	if _, ok := s.Top(); ok {
		t.Fatal("empty stack has a top")
	}
	s.Push(Piece{Player: PlayerOne, Size: Small})
	s.Push(Piece{Player: PlayerTwo, Size: Medium})
	top, ok := s.Top()
	if !ok || top.Player != PlayerTwo || top.Size != Medium {
		t.Fatalf("unexpected top %+v", top)
	}
}

func TestTargetConstructorsPanicOutOfRange(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	mustPanic("cell 9", func() { CellTarget(9) })
	mustPanic("cell -1", func() { CellTarget(-1) })
	mustPanic("size 3", func() { ReserveTarget(PlayerOne, 3) })
	mustPanic("player 2", func() { ReserveTarget(2, Small) })
}

func TestMoveString(t *testing.T) {
	if s := NewPieceMove(Large, 4).String(); s != "New: s2 t4" {
		t.Errorf("got %q", s)
	}
	if s := BoardMove(Medium, 0, 8).String(); s != "Board: s1 f0 t8" {
		t.Errorf("got %q", s)
	}
}
