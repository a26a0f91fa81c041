package history

import (
	"errors"
	"fmt"
	"septic/src/base"
	"septic/src/logic/convert/convpos"
	"strings"
)

var (
	ErrEmpty        = errors.New("empty history")
	ErrInvalidIndex = errors.New("invalid index")
)

// truncate history module
type History struct {
	entries []Entry
	current int // index of the shown entry
}

type Entry struct {
	Move     base.Move
	HasMove  bool // false for the starting entry and positions set directly
	Snapshot base.Snapshot
}

func NewHistory() *History {
	return &History{entries: make([]Entry, 0), current: -1}
}

func (h *History) Len() int     { return len(h.entries) }
func (h *History) Current() int { return h.current }

func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Reset drops everything and starts from s.
func (h *History) Reset(s base.Snapshot) {
	h.entries = append(h.entries[:0], Entry{Snapshot: s.WithoutSelection()})
	h.current = 0
}

// Push stores the position reached by mv. Entries after the current one are dropped.
func (h *History) Push(mv base.Move, hasMove bool, s base.Snapshot) {
	if h.current+1 < len(h.entries) {
		h.entries = h.entries[:h.current+1]
	}
	h.entries = append(h.entries, Entry{Move: mv, HasMove: hasMove, Snapshot: s.WithoutSelection()})
	h.current = len(h.entries) - 1
}

func (h *History) Goto(index int) (base.Snapshot, error) {
	if len(h.entries) == 0 {
		return base.Snapshot{}, ErrEmpty
	}
	if index < 0 || index >= len(h.entries) {
		return base.Snapshot{}, ErrInvalidIndex
	}
	h.current = index
	return h.entries[index].Snapshot, nil
}

func (h *History) Undo() (base.Snapshot, error) {
	return h.Goto(h.current - 1)
}

func (h *History) Redo() (base.Snapshot, error) {
	return h.Goto(h.current + 1)
}

func (h *History) CanUndo() bool { return h.current > 0 }
func (h *History) CanRedo() bool { return h.current+1 < len(h.entries) }

// MovesString returns the played moves up to the current entry.
// example: "1. n24 n04 2. b248"
func (h *History) MovesString() string {
	if h == nil || h.current <= 0 {
		return ""
	}
	var b strings.Builder
	printed := 0
	for i := 1; i <= h.current; i++ {
		e := h.entries[i]
		if !e.HasMove {
			continue
		}
		if printed > 0 {
			b.WriteByte(' ')
		}
		// numbered by printed moves, unnamed entries do not shift the count
		if printed%2 == 0 {
			fmt.Fprintf(&b, "%d. ", printed/2+1)
		}
		printed++
		b.WriteString(convpos.ConvertMoveToString(e.Move))
	}
	return b.String()
}
