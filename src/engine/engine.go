// Package engine declares the capabilities the front-end needs from the
// external rules engine and search oracle.
package engine

import (
	"context"
	"errors"
	"septic/src/base"
	"time"
)

const (
	HandshakeTimeout = 2 * time.Second  // gbp / isready
	RequestTimeout   = 5 * time.Second  // newgame, moves, apply, select
	EvaluateTimeout  = 60 * time.Second // eval at full depth
	CloseTimeout     = 2 * time.Second

	DefaultDepth = 9
)

var ErrIllegalMove = errors.New("illegal move")

// Rules is the game rules engine. Snapshots are values: every call returns a
// new one and never touches its argument.
type Rules interface {
	NewGame(startingPlayer bool) (base.Snapshot, error)
	LegalMoves(s base.Snapshot) ([]base.Move, error)
	Apply(s base.Snapshot, mv base.Move) (base.Snapshot, error)
	// Select updates the selection. The rules may also complete a move when a
	// piece is already selected and the target is a legal destination.
	Select(s base.Snapshot, t base.Target) (base.Snapshot, error)
}

// Oracle evaluates a position from the perspective of its side to move.
// One session serves one goroutine at a time.
type Oracle interface {
	Init() error
	Evaluate(ctx context.Context, pos base.Position, maxDepth int) (base.Evaluation, error)
	// Flush drops the search cache between unrelated positions.
	Flush()
	Close()
}

// IsLegal reports whether mv is among the legal moves of s.
func IsLegal(r Rules, s base.Snapshot, mv base.Move) (bool, error) {
	moves, err := r.LegalMoves(s)
	if err != nil {
		return false, err
	}
	for _, m := range moves {
		if m == mv {
			return true, nil
		}
	}
	return false, nil
}
