// Package hud draws the widgets shared by the combo games: input symbols,
// history strips and move tables.
package hud

import (
	"strings"

	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/moves"
)

// Colors used for symbol parts.
const (
	DirectionColor = core.ColorBrightCyan
	ButtonColor    = core.ColorBrightYellow
	EmptyColor     = core.ColorGray
)

// SymbolLabel is the compact form of a symbol: the direction arrow followed
// by the action names, e.g. "↘X" or "A+B".
func SymbolLabel(b core.Buttons) string {
	var sb strings.Builder
	if dir := b.Direction(); dir != core.DirNone {
		sb.WriteRune(core.DirectionArrow(dir))
	}
	if act := b.Actions(); act != 0 {
		sb.WriteString(act.String())
	}
	if sb.Len() == 0 {
		return "·"
	}
	return sb.String()
}

// SequenceLabel joins symbol labels with spaces, matching DrawSequence.
func SequenceLabel(seq []core.Buttons) string {
	parts := make([]string, len(seq))
	for i, b := range seq {
		parts[i] = SymbolLabel(b)
	}
	return strings.Join(parts, " ")
}

// DrawSymbol draws one symbol at (x, y) and returns the cells used.
func DrawSymbol(dst *core.Screen, x, y int, b core.Buttons) int {
	n := 0
	if dir := b.Direction(); dir != core.DirNone {
		dst.SetColored(x, y, core.DirectionArrow(dir), DirectionColor)
		n++
	}
	if act := b.Actions(); act != 0 {
		n += dst.DrawTextColored(x+n, y, act.String(), ButtonColor)
	}
	if n == 0 {
		dst.SetColored(x, y, '·', EmptyColor)
		n = 1
	}
	return n
}

// DrawSequence draws symbols separated by spaces and returns the cells used.
func DrawSequence(dst *core.Screen, x, y int, seq []core.Buttons) int {
	n := 0
	for i, b := range seq {
		if i > 0 {
			n++
		}
		n += DrawSymbol(dst, x+n, y, b)
	}
	return n
}

// DrawHistory draws the buffer oldest to newest inside [ ], padding unused
// slots with dots so the capacity stays visible.
func DrawHistory(dst *core.Screen, x, y int, h *moves.History) int {
	n := dst.DrawTextColored(x, y, "[", core.ColorWhite)
	for i := 0; i < h.Cap(); i++ {
		if i > 0 {
			n++
		}
		if i < h.Len() {
			n += DrawSymbol(dst, x+n, y, h.At(i))
		} else {
			dst.SetColored(x+n, y, '·', EmptyColor)
			n++
		}
	}
	n += dst.DrawTextColored(x+n, y, "]", core.ColorWhite)
	return n
}

// DrawHealthBar draws a bar of width cells filled proportionally to hp/max.
func DrawHealthBar(dst *core.Screen, x, y, width, hp, maxHP int, c core.Color) {
	if maxHP <= 0 || width <= 0 {
		return
	}
	filled := hp * width / maxHP
	for i := 0; i < width; i++ {
		if i < filled {
			dst.SetColored(x+i, y, '█', c)
		} else {
			dst.SetColored(x+i, y, '░', EmptyColor)
		}
	}
}
