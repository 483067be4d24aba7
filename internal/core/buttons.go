// Package core provides fundamental types for the combos platform: input
// symbols, the direction codec, per-tick input frames and the screen buffer.
// It has no external dependencies so game and engine logic stay pure and
// testable.
package core

import (
	"fmt"
	"strings"
)

// Buttons is a per-frame input symbol: a directional component in the low
// four bits plus any number of action-button bits.
type Buttons uint32

// Directional bits. Diagonals are unions of two cardinal bits.
const (
	DirUp Buttons = 1 << iota
	DirDown
	DirLeft
	DirRight

	DirNone      Buttons = 0
	DirUpLeft            = DirUp | DirLeft
	DirUpRight           = DirUp | DirRight
	DirDownLeft          = DirDown | DirLeft
	DirDownRight         = DirDown | DirRight
)

// Action button bits.
const (
	ButtonA Buttons = 1 << (iota + 4)
	ButtonB
	ButtonX
	ButtonY
	ButtonLB
	ButtonRB
)

// Masks separating the two halves of a symbol.
const (
	DirectionMask = DirUp | DirDown | DirLeft | DirRight
	ActionMask    = ButtonA | ButtonB | ButtonX | ButtonY | ButtonLB | ButtonRB
)

// actionNames lists action buttons in display order.
var actionNames = []struct {
	bit  Buttons
	name string
}{
	{ButtonA, "A"},
	{ButtonB, "B"},
	{ButtonX, "X"},
	{ButtonY, "Y"},
	{ButtonLB, "LB"},
	{ButtonRB, "RB"},
}

// directionNames maps canonical directions to their display names.
var directionNames = map[Buttons]string{
	DirUp:        "Up",
	DirDown:      "Down",
	DirLeft:      "Left",
	DirRight:     "Right",
	DirUpLeft:    "UpLeft",
	DirUpRight:   "UpRight",
	DirDownLeft:  "DownLeft",
	DirDownRight: "DownRight",
}

// Has reports whether every bit of other is set in b.
func (b Buttons) Has(other Buttons) bool {
	return other != 0 && b&other == other
}

// Direction returns the directional component of the symbol.
func (b Buttons) Direction() Buttons {
	return DirectionOf(b)
}

// Actions returns the action-button component of the symbol.
func (b Buttons) Actions() Buttons {
	return b & ActionMask
}

// String renders the symbol as "DownRight+X", "A+B" or "None".
func (b Buttons) String() string {
	if b == 0 {
		return "None"
	}

	parts := make([]string, 0, 4)
	if dir := b.Direction(); dir != DirNone {
		name, ok := directionNames[dir]
		if !ok {
			name = fmt.Sprintf("Dir(%#x)", uint32(dir))
		}
		parts = append(parts, name)
	}
	for _, a := range actionNames {
		if b&a.bit != 0 {
			parts = append(parts, a.name)
		}
	}
	if rest := b &^ (DirectionMask | ActionMask); rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "+")
}

// ParseButtons parses the String form of a symbol. Tokens are separated by
// '+' and matched case-insensitively. Cardinal tokens may be combined
// ("Down+Right" equals "DownRight") as long as the result is a canonical
// direction.
func ParseButtons(s string) (Buttons, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty input symbol")
	}
	if strings.EqualFold(s, "none") {
		return 0, nil
	}

	var b Buttons
	for _, tok := range strings.Split(s, "+") {
		tok = strings.TrimSpace(tok)
		bit, ok := lookupToken(tok)
		if !ok {
			return 0, fmt.Errorf("unknown input token %q", tok)
		}
		b |= bit
	}

	if !IsCanonicalDirection(b.Direction()) {
		return 0, fmt.Errorf("invalid direction combination in %q", s)
	}
	return b, nil
}

// lookupToken resolves one token of ParseButtons.
func lookupToken(tok string) (Buttons, bool) {
	for dir, name := range directionNames {
		if strings.EqualFold(tok, name) {
			return dir, true
		}
	}
	for _, a := range actionNames {
		if strings.EqualFold(tok, a.name) {
			return a.bit, true
		}
	}
	return 0, false
}

// FormatSequence renders a sequence of symbols separated by ", ".
func FormatSequence(seq []Buttons) string {
	parts := make([]string, len(seq))
	for i, b := range seq {
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}
