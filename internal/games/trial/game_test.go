package trial

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/moves"
	"github.com/vovakirdan/tui-combos/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func step(g *Game, b core.Buttons) core.StepResult {
	in := core.NewInputFrame()
	in.Device = core.DeviceFromSymbol(b)
	return g.Step(in)
}

// perform presses each symbol for 3 ticks and releases it for 9, a 200ms
// cadence that never merges and never times out.
func perform(g *Game, seq []core.Buttons) []core.MoveEvent {
	var events []core.MoveEvent
	for _, b := range seq {
		for i := 0; i < 3; i++ {
			events = append(events, step(g, b).Moves...)
		}
		for i := 0; i < 9; i++ {
			events = append(events, step(g, 0).Moves...)
		}
	}
	return events
}

func TestTrialTargetsAreEligible(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	for i := 0; i < 10; i++ {
		target := g.Target()
		if target.Len() < 2 {
			t.Fatalf("target %q has length %d, expected at least 2", target.Name, target.Len())
		}
		perform(g, target.Sequence)
	}
}

func TestTrialClearScoresAndAdvances(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	target := g.Target()
	events := perform(g, target.Sequence)

	found := false
	for _, ev := range events {
		if ev.Move == target.Name {
			found = true
		}
	}
	if !found {
		t.Fatalf("events %+v do not contain target %q", events, target.Name)
	}

	expected := 10 * target.Len()
	if g.State().Score != expected {
		t.Errorf("Score = %d, expected %d", g.State().Score, expected)
	}
	if g.Cleared() != 1 {
		t.Errorf("Cleared() = %d, expected 1", g.Cleared())
	}
	if g.State().GameOver {
		t.Error("game should continue after a clear")
	}
	if g.Remaining() <= 0 || g.Remaining() > g.Limit() {
		t.Errorf("Remaining() = %v, expected a fresh timer up to %v", g.Remaining(), g.Limit())
	}
}

func TestTrialTargetNeverRepeats(t *testing.T) {
	lo := registry.DefaultLoadout()
	fireball, _ := lo.Moves.Lookup("Fireball")
	longJump, _ := lo.Moves.Lookup("Long Jump")
	lo.Moves = moves.NewMoveList(fireball, longJump)

	for seed := int64(1); seed <= 20; seed++ {
		g := New()
		g.Configure(lo)
		g.Reset(testConfig(seed))

		for i := 0; i < 8; i++ {
			prev := g.Target().Name
			perform(g, g.Target().Sequence)
			if g.Cleared() != i+1 {
				t.Fatalf("seed %d: Cleared() = %d, expected %d", seed, g.Cleared(), i+1)
			}
			if g.Target().Name == prev {
				t.Errorf("seed %d clear %d: target repeated %q", seed, i+1, prev)
			}
		}
	}
}

func TestTrialSingleCandidateRepeats(t *testing.T) {
	lo := registry.DefaultLoadout()
	fireball, _ := lo.Moves.Lookup("Fireball")
	lo.Moves = moves.NewMoveList(fireball)

	g := New()
	g.Configure(lo)
	g.Reset(testConfig(5))

	perform(g, g.Target().Sequence)
	if g.Cleared() != 1 || g.Target().Name != "Fireball" {
		t.Errorf("Target() = %q after %d clears, expected Fireball again", g.Target().Name, g.Cleared())
	}
}

func TestTrialDeterminism(t *testing.T) {
	run := func() []string {
		g := New()
		g.Reset(testConfig(12345))
		var names []string
		for i := 0; i < 5; i++ {
			names = append(names, g.Target().Name)
			perform(g, g.Target().Sequence)
		}
		return names
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Determinism failed: targets differ. Run1=%v, Run2=%v", a, b)
		}
	}
}

func TestTrialTimeoutEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	if g.Limit() != 5*time.Second {
		t.Fatalf("Limit() = %v, expected 5s at level 0", g.Limit())
	}

	ticks := 0
	for !g.State().GameOver && ticks < 1000 {
		step(g, 0)
		ticks++
	}
	if !g.State().GameOver {
		t.Fatal("game should end when the timer runs out")
	}
	// Tick 300 is the first at which 5s have elapsed.
	if ticks != 301 {
		t.Errorf("game ended after %d ticks, expected 301", ticks)
	}

	score := g.State().Score
	perform(g, g.Target().Sequence)
	if g.State().Score != score {
		t.Error("steps after game over should be ignored")
	}
}

func TestTrialDifficultyShrinksTimer(t *testing.T) {
	lo := registry.DefaultLoadout()
	lo.Trial.Difficulty.Progression.MaxAt = 10

	g := New()
	g.Configure(lo)
	g.Reset(testConfig(3))

	perform(g, g.Target().Sequence)
	if g.Cleared() != 1 {
		t.Fatalf("Cleared() = %d, expected 1", g.Cleared())
	}
	if g.Limit() != 2*time.Second {
		t.Errorf("Limit() = %v, expected 2s at max difficulty", g.Limit())
	}
}

func TestTrialFixedDifficulty(t *testing.T) {
	lo := registry.DefaultLoadout()
	lo.Trial.Difficulty.Enabled = false
	lo.Trial.Difficulty.Progression.MaxAt = 10

	g := New()
	g.Configure(lo)
	g.Reset(testConfig(3))

	perform(g, g.Target().Sequence)
	if g.Limit() != 5*time.Second {
		t.Errorf("Limit() = %v, expected 5s with progression disabled", g.Limit())
	}
}

func TestTrialRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	found := false
	for y := 0; y < dst.Height(); y++ {
		if strings.Contains(dst.Row(y), g.Target().Name) {
			found = true
		}
	}
	if !found {
		t.Errorf("render should show target %q", g.Target().Name)
	}
}
