package core

// PlayerID identifies a local player slot.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// String returns "P1", "P2", ...
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Action represents a platform-level command, abstracted from physical key
// presses. Gameplay input travels separately as a DeviceState.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// DeviceState is the raw control snapshot of one player for one tick: the
// keyboard arrows, the D-pad, the analog stick and the held action buttons.
type DeviceState struct {
	Keys    RawDirections
	DPad    RawDirections
	StickX  float64 // -1 (left) .. 1 (right)
	StickY  float64 // -1 (down) .. 1 (up)
	Buttons Buttons // held action buttons; direction bits are ignored
}

// Raw merges every directional source of the device.
func (d DeviceState) Raw() RawDirections {
	stick := RawDirections{
		Up:    d.StickY > StickThreshold,
		Down:  d.StickY < -StickThreshold,
		Left:  d.StickX < -StickThreshold,
		Right: d.StickX > StickThreshold,
	}
	return d.Keys.Or(d.DPad).Or(stick)
}

// Direction returns the canonical direction held on this tick.
func (d DeviceState) Direction() Buttons {
	return ReduceDirection(d.Raw())
}

// Symbol returns the held state as an input symbol.
func (d DeviceState) Symbol() Buttons {
	return Combine(d.Direction(), d.Buttons.Actions())
}

// DeviceFromSymbol builds the keyboard-only device state that produces b.
func DeviceFromSymbol(b Buttons) DeviceState {
	return DeviceState{
		Keys: RawDirections{
			Up:    b.Has(DirUp),
			Down:  b.Has(DirDown),
			Left:  b.Has(DirLeft),
			Right: b.Has(DirRight),
		},
		Buttons: b.Actions(),
	}
}

// InputFrame represents the input of a single player during one simulation
// tick: platform actions plus the raw device snapshot.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Device is the held control state on this tick.
	Device DeviceState
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets actions and device state for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Device = DeviceState{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Device = f.Device
	return clone
}

// MultiInputFrame contains input from all local players for a single tick.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return NewInputFrame()
	}
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Player1 returns the input frame for Player 1.
func (m MultiInputFrame) Player1() InputFrame {
	return m.Player(Player1)
}

// Player2 returns the input frame for Player 2.
func (m MultiInputFrame) Player2() InputFrame {
	return m.Player(Player2)
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}
