package moves

import (
	"time"

	"github.com/vovakirdan/tui-combos/internal/core"
)

// Default timing, matching the classic input sequence sample.
const (
	DefaultBufferTimeout = 500 * time.Millisecond
	DefaultMergeWindow   = 100 * time.Millisecond
)

// Timing configures a History.
type Timing struct {
	// BufferTimeout clears the history when no input arrives for longer.
	BufferTimeout time.Duration

	// MergeWindow is how close two presses must be to count as one symbol.
	MergeWindow time.Duration

	// Capacity bounds the history length. Zero means "longest move in the
	// catalog" when used through NewTracker.
	Capacity int
}

// DefaultTiming returns the classic timing with capacity left to the catalog.
func DefaultTiming() Timing {
	return Timing{
		BufferTimeout: DefaultBufferTimeout,
		MergeWindow:   DefaultMergeWindow,
	}
}

// History is the input buffer of a single player. It records one symbol per
// distinct input, coalescing near-simultaneous presses and forgetting input
// that went stale. Not safe for concurrent use; each player owns one.
type History struct {
	timing Timing

	// entries is a fixed ring; entries[(start+i)%cap] is the i-th oldest.
	entries []core.Buttons
	start   int
	count   int

	lastInput time.Duration
	previous  core.Buttons // held-state snapshot of the previous Update
	revision  uint64
}

// NewHistory creates an empty history. A capacity below one is raised to one.
func NewHistory(timing Timing) *History {
	if timing.Capacity < 1 {
		timing.Capacity = 1
	}
	return &History{
		timing:  timing,
		entries: make([]core.Buttons, timing.Capacity),
	}
}

// Timing returns the configuration of this history.
func (h *History) Timing() Timing {
	return h.timing
}

// Len returns the number of recorded symbols.
func (h *History) Len() int {
	return h.count
}

// Cap returns the maximum number of recorded symbols.
func (h *History) Cap() int {
	return len(h.entries)
}

// LastInputTime returns when the current merge cluster started.
func (h *History) LastInputTime() time.Duration {
	return h.lastInput
}

// At returns the i-th oldest symbol. It panics when i is out of range.
func (h *History) At(i int) core.Buttons {
	if i < 0 || i >= h.count {
		panic("moves: history index out of range")
	}
	return h.entries[h.index(i)]
}

// Entries returns the recorded symbols, oldest first.
func (h *History) Entries() []core.Buttons {
	out := make([]core.Buttons, h.count)
	for i := range out {
		out[i] = h.entries[h.index(i)]
	}
	return out
}

// Revision increases whenever the recorded symbols change.
func (h *History) Revision() uint64 {
	return h.revision
}

// Clear drops every recorded symbol. Timing state is kept.
func (h *History) Clear() {
	if h.count > 0 {
		h.revision++
	}
	h.start = 0
	h.count = 0
}

// Update feeds the held-state symbol for one tick at elapsed time now.
//
// Action buttons only register on the tick they go down. A change of
// direction, including releasing it, always starts a new entry; otherwise a
// press landing inside the merge window of the last entry is ORed into it
// without moving the window's anchor.
func (h *History) Update(snapshot core.Buttons, now time.Duration) {
	elapsed := now - h.lastInput
	if elapsed > h.timing.BufferTimeout {
		h.Clear()
	}

	symbol := snapshot.Actions() &^ h.previous.Actions()
	merge := h.count > 0 && elapsed < h.timing.MergeWindow

	if dir := snapshot.Direction(); dir != h.previous.Direction() {
		symbol |= dir
		merge = false
	}
	h.previous = snapshot

	if symbol == 0 {
		return
	}

	if merge {
		last := h.index(h.count - 1)
		h.entries[last] |= symbol
		h.revision++
		return
	}

	h.push(symbol)
	h.lastInput = now
}

// Matches reports whether the most recent symbols equal the move's sequence.
// A successful match of a move that is not a sub-move consumes the whole
// history, so one burst of input cannot trigger two top-level moves.
func (h *History) Matches(m Move) bool {
	n := len(m.Sequence)
	if n == 0 || h.count < n {
		return false
	}

	for i := 1; i <= n; i++ {
		if h.entries[h.index(h.count-i)] != m.Sequence[n-i] {
			return false
		}
	}

	if !m.SubMove {
		h.Clear()
	}
	return true
}

// push appends a symbol, evicting the oldest one when full.
func (h *History) push(symbol core.Buttons) {
	if h.count == len(h.entries) {
		h.start = (h.start + 1) % len(h.entries)
		h.count--
	}
	h.entries[h.index(h.count)] = symbol
	h.count++
	h.revision++
}

func (h *History) index(i int) int {
	return (h.start + i) % len(h.entries)
}
