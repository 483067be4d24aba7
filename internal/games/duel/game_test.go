package duel

import (
	"testing"

	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

func frame(p1, p2 core.Buttons) core.MultiInputFrame {
	multi := core.NewMultiInputFrame()
	in1 := core.NewInputFrame()
	in1.Device = core.DeviceFromSymbol(p1)
	in2 := core.NewInputFrame()
	in2.Device = core.DeviceFromSymbol(p2)
	multi.SetPlayer(core.Player1, in1)
	multi.SetPlayer(core.Player2, in2)
	return multi
}

// perform plays seq for one player at a 200ms cadence while the other idles.
func perform(g *Game, id core.PlayerID, seq []core.Buttons) []core.MoveEvent {
	var events []core.MoveEvent
	press := func(b core.Buttons) {
		in := frame(b, 0)
		if id == core.Player2 {
			in = frame(0, b)
		}
		events = append(events, g.StepMulti(in).Moves...)
	}
	for _, b := range seq {
		for i := 0; i < 3; i++ {
			press(b)
		}
		for i := 0; i < 9; i++ {
			press(0)
		}
	}
	return events
}

func TestDuelIsMultiPlayer(t *testing.T) {
	var g registry.Game = New()
	if _, ok := g.(registry.MultiPlayerGame); !ok {
		t.Error("duel should implement MultiPlayerGame")
	}
}

func TestDuelFireballDamage(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	fireball := []core.Buttons{core.DirDown, core.DirDownRight, core.DirRight | core.ButtonX}
	events := perform(g, core.Player1, fireball)

	if len(events) != 1 || events[0].Move != "Fireball" || events[0].Player != core.Player1 {
		t.Fatalf("events = %+v, expected one P1 Fireball", events)
	}
	if g.Health(core.Player2) != MaxHealth-30 {
		t.Errorf("P2 health = %d, expected %d", g.Health(core.Player2), MaxHealth-30)
	}
	if g.Health(core.Player1) != MaxHealth {
		t.Errorf("P1 health = %d, expected %d", g.Health(core.Player1), MaxHealth)
	}
	if g.State().Score != 30 {
		t.Errorf("Score = %d, expected 30", g.State().Score)
	}
}

func TestDuelSimultaneousExchange(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	res := g.StepMulti(frame(core.ButtonX, core.ButtonX))
	if len(res.Moves) != 2 {
		t.Fatalf("Moves = %+v, expected one per player", res.Moves)
	}
	if res.Moves[0].Player != core.Player1 || res.Moves[1].Player != core.Player2 {
		t.Errorf("events not in player order: %+v", res.Moves)
	}
	if g.Health(core.Player1) != 90 || g.Health(core.Player2) != 90 {
		t.Errorf("health = %d/%d, expected 90/90", g.Health(core.Player1), g.Health(core.Player2))
	}
}

func TestDuelHistoriesAreIndependent(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.StepMulti(frame(core.DirDown, core.ButtonA))
	if got := g.Tracker(core.Player1).History().Entries(); len(got) != 1 || got[0] != core.DirDown {
		t.Errorf("P1 history = %v, expected [Down]", got)
	}
	if got := g.Tracker(core.Player2).History().Entries(); len(got) != 1 || got[0] != core.ButtonA {
		t.Errorf("P2 history = %v, expected [A]", got)
	}
	if g.Tracker(core.Player1).List() != g.Tracker(core.Player2).List() {
		t.Error("players should share the catalog")
	}
}

func TestDuelKnockout(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	konami := []core.Buttons{
		core.DirUp, core.DirUp, core.DirDown, core.DirDown,
		core.DirLeft, core.DirRight, core.DirLeft, core.DirRight,
		core.ButtonB, core.ButtonA,
	}
	perform(g, core.Player2, konami)

	if !g.State().GameOver {
		t.Fatal("30 Lives should knock out a full-health player")
	}
	if g.Winner() != core.Player2 {
		t.Errorf("Winner() = %v, expected P2", g.Winner())
	}
	if g.Health(core.Player1) != 0 {
		t.Errorf("P1 health = %d, expected 0", g.Health(core.Player1))
	}

	res := g.StepMulti(frame(core.ButtonX, 0))
	if len(res.Moves) != 0 {
		t.Error("finished duel should ignore input")
	}
}

func TestDuelSinglePlayerStep(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Device = core.DeviceFromSymbol(core.ButtonX)
	res := g.Step(in)

	if len(res.Moves) != 1 || res.Moves[0].Player != core.Player1 {
		t.Errorf("Step() moves = %+v, expected a P1 Punch", res.Moves)
	}
}

func TestDuelRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.StepMulti(frame(core.ButtonX, 0))

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if got := dst.GetCell(0, 0).Rune; got != '┌' {
		t.Errorf("GetCell(0,0) = %q, expected panel corner", got)
	}
	if got := dst.GetCell(2, 2).Rune; got != 'H' {
		t.Errorf("GetCell(2,2) = %q, expected HP label", got)
	}
}
