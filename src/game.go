package src

import (
	"errors"
	"fmt"
	"septic/src/base"
	"septic/src/engine"
	"septic/src/logic/convert/convpos"
	"septic/src/logic/history"
	"septic/src/logx"

	"github.com/google/uuid"
)

var ErrNoGame = errors.New("no game created")

// GameBuilder owns the single mutable game of the application. Snapshots
// coming from the rules are values and are replaced, never edited.
// at first use Create* methods
type GameBuilder struct {
	id      uuid.UUID
	rules   engine.Rules
	history *history.History
	snap    base.Snapshot
	first   bool
	created bool
	logger  logx.Logger
}

func NewGameBuilder(logger logx.Logger, rules engine.Rules) *GameBuilder {
	return &GameBuilder{rules: rules, history: history.NewHistory(), first: true, logger: logger}
}

// CreateNew starts a game; startingPlayer picks whether player 0 moves first.
func (gb *GameBuilder) CreateNew(startingPlayer bool) error {
	s, err := gb.rules.NewGame(startingPlayer)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	gb.first = startingPlayer
	gb.start(s)
	gb.logger.Infof("game %s: new, first mover %v", gb.id, s.Player())
	return nil
}

// CreateFromString loads a snapshot in convpos text form.
func (gb *GameBuilder) CreateFromString(str string) error {
	s, err := convpos.ConvertStringToSnapshot(str)
	if err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}
	gb.start(s)
	gb.logger.Infof("game %s: loaded %q", gb.id, str)
	return nil
}

func (gb *GameBuilder) start(s base.Snapshot) {
	gb.id = uuid.New()
	gb.snap = s
	gb.created = true
	gb.history.Reset(s)
}

// Reset starts over with the same first mover.
func (gb *GameBuilder) Reset() error {
	return gb.CreateNew(gb.first)
}

func (gb *GameBuilder) ID() string {
	return gb.id.String()
}

func (gb *GameBuilder) Created() bool {
	return gb.created
}

func (gb *GameBuilder) Snapshot() base.Snapshot {
	return gb.snap
}

func (gb *GameBuilder) Status() base.GameStatus {
	return gb.snap.Status
}

// String is the convpos text of the current snapshot.
func (gb *GameBuilder) String() string {
	return convpos.ConvertSnapshotToString(gb.snap)
}

func (gb *GameBuilder) LegalMoves() ([]base.Move, error) {
	if !gb.created {
		return nil, ErrNoGame
	}
	if gb.snap.Status.Terminal() {
		return nil, nil
	}
	return gb.rules.LegalMoves(gb.snap)
}

// Select forwards a resolved click to the rules. A none target clears the
// selection. When the rules complete a move the new position goes to history.
func (gb *GameBuilder) Select(t base.Target) error {
	if !gb.created {
		return ErrNoGame
	}
	if t.IsNone() {
		gb.ClearSelection()
		return nil
	}
	next, err := gb.rules.Select(gb.snap, t)
	if err != nil {
		return fmt.Errorf("select %v: %w", t, err)
	}
	if next.Position != gb.snap.Position {
		mv, ok := inferMove(gb.snap, t)
		gb.history.Push(mv, ok, next)
		gb.logger.Infof("game %s: move %v by selection", gb.id, mv)
	}
	gb.snap = next
	return nil
}

func (gb *GameBuilder) ClearSelection() {
	gb.snap = gb.snap.WithoutSelection()
}

// Move plays mv directly, as when an entry of the algorithm list is clicked.
func (gb *GameBuilder) Move(mv base.Move) error {
	if !gb.created {
		return ErrNoGame
	}
	if gb.snap.Status.Terminal() {
		return fmt.Errorf("move %v: game is over (%v)", mv, gb.snap.Status)
	}
	next, err := gb.rules.Apply(gb.snap, mv)
	if err != nil {
		return fmt.Errorf("move %v: %w", mv, err)
	}
	gb.logger.Infof("game %s: move %v", gb.id, mv)
	gb.history.Push(mv, true, next)
	gb.snap = next.WithoutSelection()
	return nil
}

// IsLegal reports whether mv can be played from the current snapshot.
func (gb *GameBuilder) IsLegal(mv base.Move) (bool, error) {
	if !gb.created {
		return false, ErrNoGame
	}
	if gb.snap.Status.Terminal() {
		return false, nil
	}
	return engine.IsLegal(gb.rules, gb.snap, mv)
}

// MoveString plays a move in convpos text form.
func (gb *GameBuilder) MoveString(str string) error {
	mv, err := convpos.ConvertStringToMove(str)
	if err != nil {
		return err
	}
	return gb.Move(mv)
}

func (gb *GameBuilder) Undo() error {
	gb.logger.Debug("call undo")
	s, err := gb.history.Undo()
	if err != nil {
		return err
	}
	gb.snap = s
	return nil
}

func (gb *GameBuilder) Redo() error {
	gb.logger.Debug("call redo")
	s, err := gb.history.Redo()
	if err != nil {
		return err
	}
	gb.snap = s
	return nil
}

func (gb *GameBuilder) CanUndo() bool { return gb.history.CanUndo() }
func (gb *GameBuilder) CanRedo() bool { return gb.history.CanRedo() }

// all moves of this game
func (gb *GameBuilder) MovesString() string {
	return gb.history.MovesString()
}

// inferMove names the move a selection completed: the piece selected before
// goes to the clicked cell.
func inferMove(before base.Snapshot, t base.Target) (base.Move, bool) {
	if t.Kind != base.TargetCell {
		return base.Move{}, false
	}
	sel := before.Selected
	switch sel.Kind {
	case base.TargetReserve:
		return base.NewPieceMove(sel.Size, t.Cell), true
	case base.TargetCell:
		p, ok := before.Top(sel.Cell)
		if !ok {
			return base.Move{}, false
		}
		return base.BoardMove(p.Size, sel.Cell, t.Cell), true
	default:
		return base.Move{}, false
	}
}
