package core

import "fmt"

// StickThreshold is the analog deflection past which a stick axis counts as
// a pressed direction.
const StickThreshold = 0.5

// RawDirections holds the raw directional signals of one device. Opposing
// signals may be asserted together; ReduceDirection resolves them.
type RawDirections struct {
	Up, Down, Left, Right bool
}

// Or merges two sets of raw signals.
func (r RawDirections) Or(other RawDirections) RawDirections {
	return RawDirections{
		Up:    r.Up || other.Up,
		Down:  r.Down || other.Down,
		Left:  r.Left || other.Left,
		Right: r.Right || other.Right,
	}
}

// ReduceDirection collapses raw signals into one of the nine canonical
// directions. Each axis is resolved on its own. When both signals of an axis
// are asserted, Up wins over Down and Left wins over Right.
func ReduceDirection(raw RawDirections) Buttons {
	dir := DirNone

	if raw.Up {
		dir |= DirUp
	} else if raw.Down {
		dir |= DirDown
	}

	if raw.Left {
		dir |= DirLeft
	} else if raw.Right {
		dir |= DirRight
	}

	return dir
}

// Combine unions a direction with action-button bits.
func Combine(direction, actions Buttons) Buttons {
	return direction | actions
}

// DirectionOf strips every non-directional bit from a symbol.
func DirectionOf(b Buttons) Buttons {
	return b & DirectionMask
}

// IsCanonicalDirection reports whether b is exactly one of the nine
// canonical directions (including DirNone).
func IsCanonicalDirection(b Buttons) bool {
	if b&^DirectionMask != 0 {
		return false
	}
	return !(b&DirUp != 0 && b&DirDown != 0) && !(b&DirLeft != 0 && b&DirRight != 0)
}

// Directions returns the nine canonical directions, DirNone first.
func Directions() []Buttons {
	return []Buttons{
		DirNone,
		DirUp, DirUpRight, DirRight, DirDownRight,
		DirDown, DirDownLeft, DirLeft, DirUpLeft,
	}
}

// DirectionDelta returns the screen-space step for a canonical direction
// (y grows downwards). Passing anything else is a programming error.
func DirectionDelta(direction Buttons) (dx, dy int) {
	switch direction {
	case DirNone:
		return 0, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUpLeft:
		return -1, -1
	case DirUpRight:
		return 1, -1
	case DirDownLeft:
		return -1, 1
	case DirDownRight:
		return 1, 1
	}
	panic(fmt.Sprintf("core: %#x is not a canonical direction", uint32(direction)))
}

// DirectionArrow returns a single-rune glyph for a canonical direction.
func DirectionArrow(direction Buttons) rune {
	switch direction {
	case DirUp:
		return '↑'
	case DirDown:
		return '↓'
	case DirLeft:
		return '←'
	case DirRight:
		return '→'
	case DirUpLeft:
		return '↖'
	case DirUpRight:
		return '↗'
	case DirDownLeft:
		return '↙'
	case DirDownRight:
		return '↘'
	default:
		return '·'
	}
}
