package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/games/duel"
	"github.com/vovakirdan/tui-combos/internal/games/trainer"
	"github.com/vovakirdan/tui-combos/internal/platform/feed"
	"github.com/vovakirdan/tui-combos/internal/storage"
)

type recordingFeed struct {
	events []feed.Event
}

func (r *recordingFeed) Publish(ev feed.Event) {
	r.events = append(r.events, ev)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "combos.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func tick(m Model, n int) Model {
	for i := 0; i < n; i++ {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}
	return m
}

func TestModelRecordsDetectedMoves(t *testing.T) {
	store := openStore(t)
	spectators := &recordingFeed{}

	m := NewModel(trainer.New(), Session{Store: store, Feed: spectators}, testConfig())
	m.Init()

	m, _ = press(m, runeKey("c"))
	m = tick(m, 10)

	if len(spectators.events) != 1 {
		t.Fatalf("published %d events, expected 1", len(spectators.events))
	}
	ev := spectators.events[0]
	if ev.Game != "trainer" || ev.User != LocalUser || ev.Move != "Punch" || ev.Player != core.Player1 {
		t.Errorf("event = %+v, expected a local P1 Punch in trainer", ev)
	}

	counts, err := store.MoveCounts("trainer")
	if err != nil {
		t.Fatalf("MoveCounts() failed: %v", err)
	}
	if len(counts) != 1 || counts[0].Move != "Punch" || counts[0].Count != 1 {
		t.Errorf("MoveCounts() = %+v, expected one Punch", counts)
	}
	if m.State().Score != 1 {
		t.Errorf("Score = %d, expected 1 discovered move", m.State().Score)
	}
}

func TestModelDrivesBothDuelPlayers(t *testing.T) {
	spectators := &recordingFeed{}
	m := NewModel(duel.New(), Session{Feed: spectators, User: "alice"}, testConfig())
	m.Init()

	m, _ = press(m, runeKey("c"))
	m, _ = press(m, runeKey(";"))
	tick(m, 1)

	if len(spectators.events) != 2 {
		t.Fatalf("published %d events, expected 2", len(spectators.events))
	}
	if spectators.events[0].Player != core.Player1 || spectators.events[1].Player != core.Player2 {
		t.Errorf("events = %+v, expected P1 then P2", spectators.events)
	}
	if spectators.events[0].User != "alice" {
		t.Errorf("User = %q, expected alice", spectators.events[0].User)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(trainer.New(), Session{}, testConfig())
	m.Init()

	m, cmd := press(m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	m := NewModel(trainer.New(), Session{}, testConfig())
	m.Init()
	m = tick(m, 1)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc should be ignored while playing")
	}
	m = tick(m, 1)

	m, _ = press(m, runeKey("p"))
	m = tick(m, 1)
	if !m.State().Paused {
		t.Fatal("p should pause the game")
	}

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc should leave a paused game")
	}
	if cmd == nil {
		t.Error("a standalone model should quit when leaving the game")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(trainer.New(), Session{}, testConfig())
	m.Init()
	m = tick(m, 1)

	if !strings.Contains(m.View(), "Fireball") {
		t.Error("View() should render the move catalog")
	}
}

func TestRecordMovesWithoutSinks(t *testing.T) {
	// A bare session must tolerate missing store, logger and feed.
	Session{}.RecordMoves("trainer", []core.MoveEvent{{Player: core.Player1, Move: "Jump", Length: 1}})
}
