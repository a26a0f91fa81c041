package src

import (
	"errors"
	"septic/src/base"
	"septic/src/engine"
	"septic/src/logx"
	"testing"
)

// pickRules selects own reserve tiers and completes a placement when a
// reserve tier is selected and an empty cell is clicked.
type pickRules struct{}

func (pickRules) NewGame(first bool) (base.Snapshot, error) {
	if first {
		return base.NewSnapshot(base.PlayerOne), nil
	}
	return base.NewSnapshot(base.PlayerTwo), nil
}

func (pickRules) LegalMoves(s base.Snapshot) ([]base.Move, error) {
	var moves []base.Move
	for i := 0; i < base.Cells; i++ {
		if _, ok := s.Top(i); !ok {
			moves = append(moves, base.NewPieceMove(base.Small, i))
		}
	}
	return moves, nil
}

func (pickRules) Apply(s base.Snapshot, mv base.Move) (base.Snapshot, error) {
	if _, ok := s.Top(mv.To); ok || !mv.IsNew || s.Left(s.ToMove, mv.Size) == 0 {
		return s, engine.ErrIllegalMove
	}
	s.Cells[mv.To].Push(base.Piece{Player: s.ToMove, Size: mv.Size})
	s.Reserve[s.ToMove][mv.Size]--
	s.ToMove = s.ToMove.Other()
	s.Selected = base.NoTarget
	return s, nil
}

func (r pickRules) Select(s base.Snapshot, t base.Target) (base.Snapshot, error) {
	if t.Kind == base.TargetCell && s.Selected.Kind == base.TargetReserve {
		return r.Apply(s, base.NewPieceMove(s.Selected.Size, t.Cell))
	}
	s.Selected = t
	return s, nil
}

func newGame(t *testing.T) *GameBuilder {
	t.Helper()
	gb := NewGameBuilder(logx.NewNop(), pickRules{})
	if err := gb.CreateNew(true); err != nil {
		t.Fatal(err)
	}
	return gb
}

func TestNoGame(t *testing.T) {
	gb := NewGameBuilder(logx.NewNop(), pickRules{})
	if err := gb.Select(base.CellTarget(0)); !errors.Is(err, ErrNoGame) {
		t.Fatalf("expected ErrNoGame, got %v", err)
	}
}

func TestSelectThenPlace(t *testing.T) {
	gb := newGame(t)
	id := gb.ID()

	if err := gb.Select(base.ReserveTarget(base.PlayerOne, base.Medium)); err != nil {
		t.Fatal(err)
	}
	if !gb.Snapshot().IsSelectedReserve(base.Medium) {
		t.Fatal("reserve tier not selected")
	}
	if gb.CanUndo() {
		t.Fatal("a selection alone must not create history")
	}

	if err := gb.Select(base.CellTarget(4)); err != nil {
		t.Fatal(err)
	}
	s := gb.Snapshot()
	if p, ok := s.Top(4); !ok || p.Size != base.Medium || s.Player() != base.PlayerTwo {
		t.Fatalf("placement missing: %+v", s)
	}
	if got := gb.MovesString(); got != "1. n14" {
		t.Fatalf("moves: %q", got)
	}
	if gb.ID() != id {
		t.Fatal("id changed within a game")
	}
}

func TestNoneTargetClearsSelection(t *testing.T) {
	gb := newGame(t)
	_ = gb.Select(base.ReserveTarget(base.PlayerOne, base.Large))
	if err := gb.Select(base.NoTarget); err != nil {
		t.Fatal(err)
	}
	if !gb.Snapshot().Selected.IsNone() {
		t.Fatal("selection not cleared")
	}
}

func TestMoveUndoRedoReset(t *testing.T) {
	gb := newGame(t)
	start := gb.Snapshot()

	if err := gb.MoveString("n00"); err != nil {
		t.Fatal(err)
	}
	if err := gb.Move(base.NewPieceMove(base.Large, 8)); err != nil {
		t.Fatal(err)
	}
	if err := gb.Move(base.NewPieceMove(base.Small, 0)); !errors.Is(err, engine.ErrIllegalMove) {
		t.Fatalf("expected illegal move, got %v", err)
	}

	if err := gb.Undo(); err != nil {
		t.Fatal(err)
	}
	if err := gb.Undo(); err != nil {
		t.Fatal(err)
	}
	if gb.Snapshot().Position != start.Position {
		t.Fatal("undo did not return to the start")
	}
	if err := gb.Undo(); err == nil {
		t.Fatal("undo past the start must fail")
	}
	if err := gb.Redo(); err != nil {
		t.Fatal(err)
	}
	if _, ok := gb.Snapshot().Top(0); !ok {
		t.Fatal("redo lost the move")
	}

	// a new move after undo truncates the redo branch
	if err := gb.Move(base.NewPieceMove(base.Medium, 5)); err != nil {
		t.Fatal(err)
	}
	if gb.CanRedo() {
		t.Fatal("redo branch survived a new move")
	}

	id := gb.ID()
	if err := gb.Reset(); err != nil {
		t.Fatal(err)
	}
	if gb.Snapshot() != start || gb.CanUndo() || gb.ID() == id {
		t.Fatal("reset must start a fresh game")
	}
}

func TestCreateFromString(t *testing.T) {
	gb := NewGameBuilder(logx.NewNop(), pickRules{})
	const str = "aC,-,-,-,-,-,-,-,B/122211/1 win1 -"
	if err := gb.CreateFromString(str); err != nil {
		t.Fatal(err)
	}
	if gb.String() != str || gb.Status() != base.WinTwo {
		t.Fatalf("loaded %q status %v", gb.String(), gb.Status())
	}
	moves, err := gb.LegalMoves()
	if err != nil || len(moves) != 0 {
		t.Fatalf("finished game must have no moves: %v %v", moves, err)
	}
	if err := gb.MoveString("n01"); err == nil {
		t.Fatal("move after the end must fail")
	}
}

func TestIsLegal(t *testing.T) {
	gb := NewGameBuilder(logx.NewNop(), pickRules{})
	if _, err := gb.IsLegal(base.NewPieceMove(base.Small, 0)); !errors.Is(err, ErrNoGame) {
		t.Fatalf("expected ErrNoGame, got %v", err)
	}
	gb = newGame(t)
	if ok, err := gb.IsLegal(base.NewPieceMove(base.Small, 0)); err != nil || !ok {
		t.Fatalf("small on 0 must be legal: %v %v", ok, err)
	}
	if ok, _ := gb.IsLegal(base.NewPieceMove(base.Large, 8)); ok {
		t.Fatal("large pieces are not in the legal list")
	}
}
