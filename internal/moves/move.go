// Package moves implements fighting-game style move detection: a per-player
// input history with merge and expiry timing, and a catalog of named moves
// matched longest-first against the tail of that history.
package moves

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-combos/internal/core"
)

// Move is a named sequence of input symbols.
type Move struct {
	Name     string
	Sequence []core.Buttons

	// SubMove leaves the matched input in the history so it can still be
	// part of a longer move (a single Jump that later becomes Double Jump).
	SubMove bool
}

// NewMove validates and builds a move. The sequence must be non-empty and
// every step must carry a canonical direction.
func NewMove(name string, subMove bool, sequence ...core.Buttons) (Move, error) {
	if name == "" {
		return Move{}, errors.New("moves: move name is empty")
	}
	if len(sequence) == 0 {
		return Move{}, fmt.Errorf("moves: move %q has an empty sequence", name)
	}
	for i, step := range sequence {
		if step == 0 {
			return Move{}, fmt.Errorf("moves: move %q step %d is empty", name, i+1)
		}
		if !core.IsCanonicalDirection(step.Direction()) {
			return Move{}, fmt.Errorf("moves: move %q step %d has invalid direction %#x", name, i+1, uint32(step.Direction()))
		}
	}

	seq := make([]core.Buttons, len(sequence))
	copy(seq, sequence)
	return Move{Name: name, Sequence: seq, SubMove: subMove}, nil
}

// MustMove is NewMove for static move tables; it panics on invalid input.
func MustMove(name string, subMove bool, sequence ...core.Buttons) Move {
	m, err := NewMove(name, subMove, sequence...)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of steps in the move.
func (m Move) Len() int {
	return len(m.Sequence)
}

// String renders the move as "Fireball: Down, DownRight, Right+X".
func (m Move) String() string {
	return m.Name + ": " + core.FormatSequence(m.Sequence)
}

// Classic returns the built-in fighting-game move set.
func Classic() []Move {
	return []Move{
		MustMove("Jump", true, core.ButtonA),
		MustMove("Punch", true, core.ButtonX),
		MustMove("Double Jump", false, core.ButtonA, core.ButtonA),
		MustMove("Jump Kick", false, core.ButtonA|core.ButtonX),
		MustMove("Quad Punch", false, core.ButtonX, core.ButtonY, core.ButtonX, core.ButtonY),
		MustMove("Fireball", false, core.DirDown, core.DirDownRight, core.DirRight|core.ButtonX),
		MustMove("Long Jump", false, core.DirUp, core.DirUp, core.ButtonA),
		MustMove("Back Flip", false, core.DirDown, core.DirDown|core.ButtonA),
		MustMove("30 Lives", false,
			core.DirUp, core.DirUp, core.DirDown, core.DirDown,
			core.DirLeft, core.DirRight, core.DirLeft, core.DirRight,
			core.ButtonB, core.ButtonA),
	}
}
