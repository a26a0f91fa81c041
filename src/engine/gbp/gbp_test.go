package gbp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"septic/src/base"
	"septic/src/engine"
	"septic/src/logic/convert/convpos"
	"septic/src/logx"
	"strings"
	"testing"
	"time"
)

const fakeEnv = "GBP_FAKE_ENGINE"

// The test binary doubles as the engine when fakeEnv is set.
func TestMain(m *testing.M) {
	if os.Getenv(fakeEnv) == "1" {
		fakeEngine()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// fakeEngine knows just enough to place new pieces on empty cells.
// Positions with player 1 to move have no eval; depth 99 answers slowly.
func fakeEngine() {
	out := bufio.NewWriter(os.Stdout)
	say := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
		out.Flush()
	}
	scr := bufio.NewScanner(os.Stdin)
	for scr.Scan() {
		fld := strings.Fields(scr.Text())
		if len(fld) == 0 {
			continue
		}
		switch fld[0] {
		case "gbp":
			say("id name fake")
			say("gbpok")
		case "isready":
			say("readyok")
		case "newgame":
			first := base.PlayerOne
			if len(fld) > 1 && fld[1] == "second" {
				first = base.PlayerTwo
			}
			say("state %s", convpos.ConvertSnapshotToString(base.NewSnapshot(first)))
		case "moves":
			s, err := convpos.ConvertFieldsToSnapshot(fld[1:])
			if err != nil {
				say("error %v", err)
				continue
			}
			var toks []string
			for i := 0; i < base.Cells; i++ {
				if _, ok := s.Top(i); ok {
					continue
				}
				for sz := base.Small; sz <= base.Large; sz++ {
					if s.Left(s.ToMove, sz) > 0 {
						toks = append(toks, convpos.ConvertMoveToString(base.NewPieceMove(sz, i)))
					}
				}
			}
			say("moves %s", strings.Join(toks, " "))
		case "apply":
			if len(fld) != 5 {
				say("error apply wants snapshot and move")
				continue
			}
			s, err := convpos.ConvertFieldsToSnapshot(fld[1:4])
			if err != nil {
				say("error %v", err)
				continue
			}
			mv, err := convpos.ConvertStringToMove(fld[4])
			if err != nil {
				say("error %v", err)
				continue
			}
			if _, ok := s.Top(mv.To); ok || !mv.IsNew {
				say("error illegal %s", fld[4])
				continue
			}
			s.Cells[mv.To].Push(base.Piece{Player: s.ToMove, Size: mv.Size})
			s.Reserve[s.ToMove][mv.Size]--
			s.ToMove = s.ToMove.Other()
			s.Selected = base.NoTarget
			say("state %s", convpos.ConvertSnapshotToString(s))
		case "select":
			s, err := convpos.ConvertFieldsToSnapshot(fld[1:4])
			if err != nil {
				say("error %v", err)
				continue
			}
			t, err := convpos.ConvertStringToTarget(fld[4])
			if err != nil {
				say("error %v", err)
				continue
			}
			s.Selected = t
			say("state %s", convpos.ConvertSnapshotToString(s))
		case "eval":
			pos, err := convpos.ConvertStringToPosition(fld[1])
			if err != nil {
				say("error %v", err)
				continue
			}
			if pos.ToMove == base.PlayerTwo {
				say("error no verdict")
				continue
			}
			if fld[3] == "99" {
				time.Sleep(300 * time.Millisecond)
			}
			say("info nodes 10")
			say("eval win depth 1 time 0.010 nodes 42")
		case "flush":
		case "quit":
			return
		default:
			say("error unknown command %s", fld[0])
		}
	}
}

func startFake(t *testing.T) *Exec {
	t.Helper()
	e := NewExec(logx.NewNop(), os.Args[0], "-test.run=^$")
	e.Env = append(os.Environ(), fakeEnv+"=1")
	if err := e.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestHandshake(t *testing.T) {
	e := startFake(t)
	if e.Name() != "fake" {
		t.Fatalf("name: %q", e.Name())
	}
}

func TestRulesRoundTrip(t *testing.T) {
	e := startFake(t)

	s, err := e.NewGame(false)
	if err != nil {
		t.Fatal(err)
	}
	if s.Player() != base.PlayerTwo || s.Status != base.InProgress {
		t.Fatalf("new game: %+v", s)
	}

	moves, err := e.LegalMoves(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != base.Cells*base.Sizes {
		t.Fatalf("want %d moves, got %d", base.Cells*base.Sizes, len(moves))
	}

	s, err = e.Select(s, base.ReserveTarget(base.PlayerTwo, base.Large))
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsSelectedReserve(base.Large) {
		t.Fatalf("selection lost: %v", s.Selected)
	}

	s, err = e.Apply(s, base.NewPieceMove(base.Large, 4))
	if err != nil {
		t.Fatal(err)
	}
	top, ok := s.Top(4)
	if !ok || top != (base.Piece{Player: base.PlayerTwo, Size: base.Large}) {
		t.Fatalf("cell 4: %v %v", top, ok)
	}
	if s.Left(base.PlayerTwo, base.Large) != 1 || s.Player() != base.PlayerOne {
		t.Fatalf("after apply: %+v", s)
	}

	_, err = e.Apply(s, base.NewPieceMove(base.Small, 4))
	if !errors.Is(err, engine.ErrIllegalMove) {
		t.Fatalf("expected illegal move, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	e := startFake(t)

	ev, err := e.Evaluate(context.Background(), base.StartPosition(base.PlayerOne), 9)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != base.EvalWin || ev.Depth != 1 || ev.Nodes != 42 {
		t.Fatalf("eval: %+v", ev)
	}

	if _, err := e.Evaluate(context.Background(), base.StartPosition(base.PlayerTwo), 9); err == nil {
		t.Fatal("expected engine error")
	}
	e.Flush()
}

func TestEvaluateCancelKeepsStreamInSync(t *testing.T) {
	e := startFake(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := e.Evaluate(ctx, base.StartPosition(base.PlayerOne), 99); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline, got %v", err)
	}

	// the late answer to the cancelled eval must not be taken for this one
	s, err := e.NewGame(true)
	if err != nil {
		t.Fatal(err)
	}
	if s.Player() != base.PlayerOne {
		t.Fatalf("new game: %+v", s)
	}
}

func TestClosed(t *testing.T) {
	e := startFake(t)
	e.Close()
	if _, err := e.NewGame(true); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning, got %v", err)
	}
	e.Close()
}

func TestInitBadPath(t *testing.T) {
	if err := NewExec(logx.NewNop(), "").Init(); err == nil {
		t.Fatal("expected error for empty path")
	}
	e := NewExec(logx.NewNop(), "/nonexistent/engine")
	if err := e.Init(); err == nil {
		t.Fatal("expected error for missing executable")
	}
	// a failed start keeps no pipes and leaves the session closable
	if e.cmd != nil || e.in != nil {
		t.Fatalf("failed start left state behind: cmd %v in %v", e.cmd, e.in)
	}
	e.Close()
}

func TestFactorySessionsAreIndependent(t *testing.T) {
	f := Factory(logx.NewNop(), "/opt/gobbler", "--hash", "16")
	a, b := f().(*Exec), f().(*Exec)
	if a == b {
		t.Fatal("factory must not share sessions")
	}
	if a.path != "/opt/gobbler" || len(b.args) != 2 {
		t.Fatalf("got %q %v", a.path, b.args)
	}
}
