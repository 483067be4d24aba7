package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-combos/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperBindings(t *testing.T) {
	tests := []struct {
		key      string
		player   core.PlayerID
		expected core.Buttons
	}{
		{"up", core.Player1, core.DirUp},
		{"h", core.Player1, core.DirLeft},
		{"n", core.Player1, core.DirDownRight},
		{"y", core.Player1, core.DirUpLeft},
		{"z", core.Player1, core.ButtonA},
		{"s", core.Player1, core.ButtonRB},
		{"8", core.Player2, core.DirUp},
		{"3", core.Player2, core.DirDownRight},
		{"[", core.Player2, core.ButtonA},
		{"'", core.Player2, core.ButtonY},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			km := NewKeyMapper()
			if !km.Press(tt.key) {
				t.Fatalf("Press(%q) = false, expected a gameplay key", tt.key)
			}
			if got := km.Held(tt.player); got != tt.expected {
				t.Errorf("Held(%v) = %v, expected %v", tt.player, got, tt.expected)
			}
		})
	}
}

func TestKeyMapperUnboundKeys(t *testing.T) {
	km := NewKeyMapper()
	for _, key := range []string{"5", "q", "p", "r", "enter", "esc"} {
		if km.Press(key) {
			t.Errorf("Press(%q) = true, expected no gameplay binding", key)
		}
	}
	if km.Held(core.Player1) != 0 || km.Held(core.Player2) != 0 {
		t.Error("unbound keys should not hold anything")
	}
}

func TestKeyMapperHoldWindow(t *testing.T) {
	km := NewKeyMapperWithHold(3)
	km.Press("down")

	for i := 0; i < 3; i++ {
		frame := core.NewMultiInputFrame()
		km.Fill(&frame)
		if got := frame.Player1().Device.Symbol(); got != core.DirDown {
			t.Fatalf("tick %d: symbol = %v, expected Down", i, got)
		}
	}

	frame := core.NewMultiInputFrame()
	km.Fill(&frame)
	if got := frame.Player1().Device.Symbol(); got != 0 {
		t.Errorf("symbol after hold window = %v, expected release", got)
	}
}

func TestKeyMapperRepeatRefreshesHold(t *testing.T) {
	km := NewKeyMapperWithHold(2)
	km.Press("x")

	for i := 0; i < 5; i++ {
		frame := core.NewMultiInputFrame()
		km.Fill(&frame)
		if got := frame.Player1().Device.Symbol(); got != core.ButtonB {
			t.Fatalf("tick %d: symbol = %v, expected B", i, got)
		}
		km.Press("x") // autorepeat
	}
}

func TestKeyMapperChord(t *testing.T) {
	km := NewKeyMapper()
	km.Press("down")
	km.Press("right")
	km.Press("c")

	frame := core.NewMultiInputFrame()
	km.Fill(&frame)

	expected := core.DirDownRight | core.ButtonX
	if got := frame.Player1().Device.Symbol(); got != expected {
		t.Errorf("symbol = %v, expected %v", got, expected)
	}
	if got := frame.Player2().Device.Symbol(); got != 0 {
		t.Errorf("P2 symbol = %v, expected nothing", got)
	}
}

func TestKeyMapperRelease(t *testing.T) {
	km := NewKeyMapper()
	km.Press("z")
	km.Press("[")
	km.Release()

	if km.Held(core.Player1) != 0 || km.Held(core.Player2) != 0 {
		t.Error("Release() should drop every held control")
	}
}

func TestMapKeyToMultiFrame(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewKeyMapper()
			frame := core.NewMultiInputFrame()
			if quit := km.MapKeyToMultiFrame(tt.msg, &frame); quit != tt.quit {
				t.Errorf("quit = %v, expected %v", quit, tt.quit)
			}
			if !frame.Player1().Has(tt.action) {
				t.Errorf("P1 frame missing %v", tt.action)
			}
		})
	}
}

func TestDiagonalKeyIsNotBack(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewMultiInputFrame()
	km.MapKeyToMultiFrame(runeKey("b"), &frame)

	if frame.Player1().Has(core.ActionBack) {
		t.Error("b is the down-left diagonal, not Back")
	}
	if got := km.Held(core.Player1); got != core.DirDownLeft {
		t.Errorf("Held(P1) = %v, expected DownLeft", got)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionStats},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
