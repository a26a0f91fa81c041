package rank

import (
	"reflect"
	"septic/src/base"
	"testing"
)

func entry(to int, k base.EvalKind, depth int, nodes uint64) Entry {
	return Entry{
		Move: base.NewPieceMove(base.Small, to),
		Eval: base.Evaluation{Kind: k, Depth: depth, Nodes: nodes},
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		e    base.Evaluation
		want int
	}{
		{base.Evaluation{Kind: base.EvalWin, Depth: 2}, 98},
		{base.Evaluation{Kind: base.EvalLoss, Depth: 3}, -97},
		{base.Evaluation{Kind: base.EvalTooFar, Depth: 10}, -40},
		{base.Evaluation{Kind: base.EvalDraw, Depth: 4}, -4},
		{base.Evaluation{Kind: base.EvalUnavailable, Depth: 1}, -1},
	}
	for _, c := range cases {
		if got := Score(c.e); got != c.want {
			t.Errorf("%v depth %d: got %d, want %d", c.e.Kind, c.e.Depth, got, c.want)
		}
	}
}

func TestFasterWinFirst(t *testing.T) {
	in := []Entry{entry(0, base.EvalWin, 4, 10), entry(1, base.EvalWin, 2, 10)}
	out := Rank(in)
	if out[0].Move.To != 1 {
		t.Fatalf("depth 2 win must rank before depth 4 win: %v", out)
	}
}

func TestNodesBreakTies(t *testing.T) {
	in := []Entry{entry(0, base.EvalLoss, 3, 500), entry(1, base.EvalLoss, 3, 900)}
	out := Rank(in)
	if out[0].Eval.Nodes != 900 {
		t.Fatalf("entry with more nodes must rank first: %v", out)
	}
}

func TestRankIsPermutationAndIdempotent(t *testing.T) {
	in := []Entry{
		entry(0, base.EvalDraw, 9, 1),
		entry(1, base.EvalWin, 3, 7),
		entry(2, base.EvalLoss, 1, 5),
		entry(3, base.EvalTooFar, 9, 100),
		entry(4, base.EvalDraw, 9, 1),
		entry(5, base.EvalWin, 3, 8),
	}
	orig := append([]Entry(nil), in...)

	out := Rank(in)
	if !reflect.DeepEqual(in, orig) {
		t.Fatal("Rank mutated its input")
	}
	if len(out) != len(in) {
		t.Fatalf("length changed: %d != %d", len(out), len(in))
	}
	seen := make(map[int]int)
	for _, e := range out {
		seen[e.Move.To]++
	}
	for _, e := range in {
		if seen[e.Move.To] != 1 {
			t.Fatalf("move %v missing or duplicated", e.Move)
		}
	}
	if !reflect.DeepEqual(Rank(out), out) {
		t.Fatal("ranking a ranked list changed it")
	}
	if !reflect.DeepEqual(Rank(in), out) {
		t.Fatal("ranking is not deterministic")
	}

	wantOrder := []int{5, 1, 0, 4, 3, 2}
	for i, e := range out {
		if e.Move.To != wantOrder[i] {
			t.Fatalf("position %d: got move to %d, want %d (%v)", i, e.Move.To, wantOrder[i], out)
		}
	}
}

func TestRankEmpty(t *testing.T) {
	if out := Rank(nil); len(out) != 0 {
		t.Fatalf("expected empty, got %v", out)
	}
}

func TestLabels(t *testing.T) {
	e := Entry{
		Move: base.BoardMove(base.Large, 2, 6),
		Eval: base.Evaluation{Kind: base.EvalWin, Depth: 3, Time: 0.126, Nodes: 12_345},
	}
	if s := e.MoveLabel(); s != "Board: s2 f2 t6" {
		t.Errorf("move label %q", s)
	}
	if s := e.EvalLabel(); s != "Win: 3, 0.13, 12k" {
		t.Errorf("eval label %q", s)
	}
	if KindColor(base.EvalTooFar) != ColorOther {
		t.Error("TooFar must use the neutral color")
	}
}
