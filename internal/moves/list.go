package moves

import (
	"sort"
	"strings"
)

// MoveList is a catalog of moves ordered longest sequence first. The order
// is fixed at construction, so the first match of a linear scan is the
// longest one; equal lengths keep declaration order. A MoveList is read-only
// after construction and may be shared by every player.
type MoveList struct {
	moves   []Move
	longest int
}

// NewMoveList builds a catalog from the given moves.
func NewMoveList(moves ...Move) *MoveList {
	sorted := make([]Move, len(moves))
	copy(sorted, moves)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Len() > sorted[j].Len()
	})

	longest := 0
	if len(sorted) > 0 {
		longest = sorted[0].Len()
	}

	return &MoveList{moves: sorted, longest: longest}
}

// Detect returns the longest move whose sequence matches the tail of h.
// Matching may consume h's contents; see History.Matches.
func (l *MoveList) Detect(h *History) (Move, bool) {
	for _, m := range l.moves {
		if h.Matches(m) {
			return m, true
		}
	}
	return Move{}, false
}

// LongestMoveLength returns the sequence length of the longest move, which
// is the history capacity a player needs.
func (l *MoveList) LongestMoveLength() int {
	return l.longest
}

// Len returns the number of moves in the catalog.
func (l *MoveList) Len() int {
	return len(l.moves)
}

// Moves returns the catalog in match order.
func (l *MoveList) Moves() []Move {
	out := make([]Move, len(l.moves))
	copy(out, l.moves)
	return out
}

// Lookup finds a move by name, ignoring case.
func (l *MoveList) Lookup(name string) (Move, bool) {
	for _, m := range l.moves {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Move{}, false
}
