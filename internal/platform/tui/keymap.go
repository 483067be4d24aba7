package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-combos/internal/core"
)

// DefaultHoldTicks is how long a key counts as held after its last press.
// Terminals report no key release, so a held key is a key whose autorepeat
// keeps refreshing this window.
const DefaultHoldTicks = 6

// controlBits is the number of bits a player's held state can carry.
const controlBits = 10

// binding is the gameplay control a key drives.
type binding struct {
	player core.PlayerID
	bits   core.Buttons
}

// gameplayBindings maps key names to per-player controls.
var gameplayBindings = map[string]binding{
	// Player 1 directions
	"up":    {core.Player1, core.DirUp},
	"down":  {core.Player1, core.DirDown},
	"left":  {core.Player1, core.DirLeft},
	"right": {core.Player1, core.DirRight},
	"k":     {core.Player1, core.DirUp},
	"j":     {core.Player1, core.DirDown},
	"h":     {core.Player1, core.DirLeft},
	"l":     {core.Player1, core.DirRight},
	"y":     {core.Player1, core.DirUpLeft},
	"u":     {core.Player1, core.DirUpRight},
	"b":     {core.Player1, core.DirDownLeft},
	"n":     {core.Player1, core.DirDownRight},

	// Player 1 buttons
	"z": {core.Player1, core.ButtonA},
	"x": {core.Player1, core.ButtonB},
	"c": {core.Player1, core.ButtonX},
	"v": {core.Player1, core.ButtonY},
	"a": {core.Player1, core.ButtonLB},
	"s": {core.Player1, core.ButtonRB},

	// Player 2 directions, numpad layout
	"7": {core.Player2, core.DirUpLeft},
	"8": {core.Player2, core.DirUp},
	"9": {core.Player2, core.DirUpRight},
	"4": {core.Player2, core.DirLeft},
	"6": {core.Player2, core.DirRight},
	"1": {core.Player2, core.DirDownLeft},
	"2": {core.Player2, core.DirDown},
	"3": {core.Player2, core.DirDownRight},

	// Player 2 buttons
	"[": {core.Player2, core.ButtonA},
	"]": {core.Player2, core.ButtonB},
	";": {core.Player2, core.ButtonX},
	"'": {core.Player2, core.ButtonY},
}

// KeyMapper translates Bubble Tea key messages to platform actions and
// per-player held controls. This centralizes key bindings and makes them
// testable.
type KeyMapper struct {
	holdTicks int
	timers    [2][controlBits]int
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithHold(DefaultHoldTicks)
}

// NewKeyMapperWithHold creates a key mapper whose keys stay held for the
// given number of ticks after each press.
func NewKeyMapperWithHold(ticks int) *KeyMapper {
	if ticks < 1 {
		ticks = 1
	}
	return &KeyMapper{holdTicks: ticks}
}

// MapKey translates a key message to a platform action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Press refreshes the hold window of the control bound to key.
// Returns false if the key drives no gameplay control.
func (km *KeyMapper) Press(key string) bool {
	b, ok := gameplayBindings[key]
	if !ok {
		return false
	}
	timers := &km.timers[b.player-1]
	for i := 0; i < controlBits; i++ {
		if b.bits&(1<<i) != 0 {
			timers[i] = km.holdTicks
		}
	}
	return true
}

// MapKeyToMultiFrame applies a key message: platform actions go to
// Player 1's frame, gameplay keys refresh their hold window.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	if km.Press(msg.String()) {
		return false
	}
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		p1 := frame.Player(core.Player1)
		p1.Set(action)
		frame.SetPlayer(core.Player1, p1)
	}
	return isQuit
}

// Held returns the controls a player is currently holding.
func (km *KeyMapper) Held(id core.PlayerID) core.Buttons {
	if id != core.Player1 && id != core.Player2 {
		return 0
	}
	var held core.Buttons
	for i, t := range km.timers[id-1] {
		if t > 0 {
			held |= 1 << i
		}
	}
	return held
}

// Fill writes the held controls of both players into frame and ages every
// hold window by one tick.
func (km *KeyMapper) Fill(frame *core.MultiInputFrame) {
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		in := frame.Player(id)
		in.Device = core.DeviceFromSymbol(km.Held(id))
		frame.SetPlayer(id, in)

		timers := &km.timers[id-1]
		for i := range timers {
			if timers[i] > 0 {
				timers[i]--
			}
		}
	}
}

// Release drops every held control.
func (km *KeyMapper) Release() {
	km.timers = [2][controlBits]int{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionStats
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	case "tab":
		return MenuActionStats
	}
	return MenuActionNone
}
