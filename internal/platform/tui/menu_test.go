package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tui-combos/internal/games/trial"
)

func TestMenuListsGames(t *testing.T) {
	m := NewMenuModel(testConfig())

	view := m.View()
	for _, title := range []string{"Move Trainer", "Combo Trial", "Move Duel (2P)"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu view missing %q", title)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testConfig())

	// duel, trainer, trial
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().GameID != "trainer" {
		t.Fatalf("Selected() = %+v, expected trainer", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should exit the menu")
	}
}

func TestMenuStats(t *testing.T) {
	m := NewMenuModel(testConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsStats() {
		t.Error("tab should open the stats screen")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abcdef", 4, "abcdef"},
		{"★", 3, " ★"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}
