package base

// Stack holds the pieces of one cell, bottom to top. Sizes strictly grow
// upward, so a stack never holds more than Sizes pieces.
type Stack struct {
	Pieces [Sizes]Piece
	Len    uint8
}

func (s Stack) Top() (Piece, bool) {
	if s.Len == 0 {
		return Piece{}, false
	}
	return s.Pieces[s.Len-1], true
}

func (s *Stack) Push(p Piece) {
	if int(s.Len) >= Sizes {
		panic("base: stack overflow")
	}
	s.Pieces[s.Len] = p
	s.Len++
}

// Position is the game state key. It is comparable with ==.
type Position struct {
	Cells   [Cells]Stack
	Reserve [Players][Sizes]uint8
	ToMove  Player
}

// StartPosition is an empty board with full reserves.
func StartPosition(first Player) Position {
	var p Position
	for pl := 0; pl < Players; pl++ {
		for s := 0; s < Sizes; s++ {
			p.Reserve[pl][s] = PiecesPerSize
		}
	}
	p.ToMove = first
	return p
}

// Top returns the topmost piece on a cell.
func (p Position) Top(cell int) (Piece, bool) {
	if !IsValidCell(cell) {
		panic("base: cell out of range")
	}
	return p.Cells[cell].Top()
}

// Left returns how many pieces of size s the player still has in reserve.
func (p Position) Left(pl Player, s PieceSize) int {
	if !IsValidPlayer(pl) || !IsValidSize(s) {
		panic("base: reserve index out of range")
	}
	return int(p.Reserve[pl][s])
}

// Snapshot is one consistent view of the game handed out by the rules engine.
// Renderers and the hit tester read a single Snapshot per frame.
type Snapshot struct {
	Position
	Status   GameStatus
	Selected Target
}

func NewSnapshot(first Player) Snapshot {
	return Snapshot{Position: StartPosition(first), Status: InProgress}
}

func (s Snapshot) Player() Player {
	return s.ToMove
}

// IsSelectedCell reports whether cell is the active selection.
func (s Snapshot) IsSelectedCell(cell int) bool {
	return s.Selected.Kind == TargetCell && s.Selected.Cell == cell
}

// IsSelectedReserve reports whether the reserve tier of the mover is selected.
func (s Snapshot) IsSelectedReserve(size PieceSize) bool {
	return s.Selected.Kind == TargetReserve && s.Selected.Size == size
}

func (s Snapshot) WithoutSelection() Snapshot {
	s.Selected = NoTarget
	return s
}
