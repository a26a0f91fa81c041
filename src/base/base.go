package base

import "fmt"

const (
	Players = 2
	Sizes   = 3
	Cells   = 9

	// pieces of each size a player starts with
	PiecesPerSize = 2
)

type Player uint8

const (
	PlayerOne Player = 0
	PlayerTwo Player = 1
)

func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) String() string {
	return fmt.Sprintf("p%d", uint8(p))
}

func IsValidPlayer(p Player) bool {
	return p < Players
}

type PieceSize uint8

const (
	Small  PieceSize = 0
	Medium PieceSize = 1
	Large  PieceSize = 2
)

func (s PieceSize) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "invalid"
	}
}

func IsValidSize(s PieceSize) bool {
	return s < Sizes
}

func IsValidCell(i int) bool {
	return i >= 0 && i < Cells
}

type Piece struct {
	Player Player
	Size   PieceSize
}

type GameStatus uint8

const (
	InProgress GameStatus = iota
	WinOne
	WinTwo
	Draw
)

func (gs GameStatus) Terminal() bool {
	return gs != InProgress
}

func (gs GameStatus) String() string {
	switch gs {
	case InProgress:
		return "in progress"
	case WinOne:
		return "player 0 wins"
	case WinTwo:
		return "player 1 wins"
	case Draw:
		return "draw"
	default:
		return "invalid"
	}
}

// ---- Target ----

type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetReserve
	TargetCell
)

// Target is a logical click target: a reserve pile of one size or a board cell.
type Target struct {
	Kind   TargetKind
	Player Player
	Size   PieceSize
	Cell   int
}

var NoTarget = Target{}

func ReserveTarget(p Player, s PieceSize) Target {
	if !IsValidPlayer(p) || !IsValidSize(s) {
		panic(fmt.Sprintf("base: reserve target out of range: player %d size %d", p, s))
	}
	return Target{Kind: TargetReserve, Player: p, Size: s}
}

func CellTarget(i int) Target {
	if !IsValidCell(i) {
		panic(fmt.Sprintf("base: cell target out of range: %d", i))
	}
	return Target{Kind: TargetCell, Cell: i}
}

func (t Target) IsNone() bool {
	return t.Kind == TargetNone
}

func (t Target) String() string {
	switch t.Kind {
	case TargetReserve:
		return fmt.Sprintf("reserve(%v, %v)", t.Player, t.Size)
	case TargetCell:
		return fmt.Sprintf("cell(%d)", t.Cell)
	default:
		return "none"
	}
}

// ---- Move ----

// Move places a new piece from the reserve (IsNew) or moves the top piece
// of cell From to cell To.
type Move struct {
	IsNew bool
	Size  PieceSize
	From  int
	To    int
}

func NewPieceMove(s PieceSize, to int) Move {
	return Move{IsNew: true, Size: s, From: -1, To: to}
}

func BoardMove(s PieceSize, from, to int) Move {
	return Move{Size: s, From: from, To: to}
}

func (m Move) String() string {
	if m.IsNew {
		return fmt.Sprintf("New: s%d t%d", m.Size, m.To)
	}
	return fmt.Sprintf("Board: s%d f%d t%d", m.Size, m.From, m.To)
}
