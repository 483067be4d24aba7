package moves

import (
	"time"

	"github.com/vovakirdan/tui-combos/internal/core"
)

// Tracker binds one player's History to a shared MoveList.
type Tracker struct {
	list    *MoveList
	history *History
	seen    uint64 // history revision already scanned
}

// NewTracker creates a tracker. A zero timing.Capacity is replaced by the
// catalog's longest move length.
func NewTracker(list *MoveList, timing Timing) *Tracker {
	if timing.Capacity == 0 {
		timing.Capacity = list.LongestMoveLength()
	}
	return &Tracker{
		list:    list,
		history: NewHistory(timing),
	}
}

// Step records this tick's held-state symbol and returns the detected move,
// if any. The catalog is only scanned on ticks that changed the history, so
// a sub-move left in the buffer is reported once rather than every tick.
func (t *Tracker) Step(snapshot core.Buttons, now time.Duration) (Move, bool) {
	t.history.Update(snapshot, now)
	if t.history.Revision() == t.seen {
		return Move{}, false
	}
	m, ok := t.list.Detect(t.history)
	t.seen = t.history.Revision()
	return m, ok
}

// History exposes the player's input history for display.
func (t *Tracker) History() *History {
	return t.history
}

// List returns the shared catalog.
func (t *Tracker) List() *MoveList {
	return t.list
}

// Reset clears the history and its timing state.
func (t *Tracker) Reset() {
	t.history = NewHistory(t.history.Timing())
	t.seen = 0
}

// Detection is a move found while replaying a sequence.
type Detection struct {
	Move  Move
	At    time.Duration
	Index int // position in the replayed sequence that completed the move
}

// Replay feeds seq through a fresh tracker, one symbol every interval. Each
// symbol is held for the first half of its interval and released for the
// second, so repeated buttons register as separate presses.
func Replay(list *MoveList, timing Timing, seq []core.Buttons, interval time.Duration) []Detection {
	t := NewTracker(list, timing)
	var found []Detection
	for i, sym := range seq {
		at := time.Duration(i) * interval
		if m, ok := t.Step(sym, at); ok {
			found = append(found, Detection{Move: m, At: at, Index: i})
		}
		t.Step(0, at+interval/2)
	}
	return found
}
