// Package trial implements Combo Trial: the game calls out a move from the
// catalog and the player must perform it before the timer runs out.
// Each cleared move scores points per sequence step and the timer shrinks
// as the score climbs. Missing the deadline ends the run.
package trial

import (
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-combos/internal/config"
	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/games/hud"
	"github.com/vovakirdan/tui-combos/internal/moves"
	"github.com/vovakirdan/tui-combos/internal/registry"
)

// Game implements the Combo Trial.
type Game struct {
	loadout    registry.Loadout
	difficulty *config.DifficultyManager
	tracker    *moves.Tracker
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	candidates []moves.Move

	target     moves.Move
	roundStart time.Duration
	limit      time.Duration

	tick     int
	now      time.Duration
	held     core.Buttons
	score    int
	cleared  int
	gameOver bool
	paused   bool
}

// New creates a new trial with the default loadout.
func New() *Game {
	return &Game{loadout: registry.DefaultLoadout()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "trial"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Combo Trial"
}

// Configure replaces the move catalog, timing and trial settings.
func (g *Game) Configure(lo registry.Loadout) {
	g.loadout = lo
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.difficulty = config.NewDifficultyManager(g.loadout.Trial.Difficulty)
	g.tracker = moves.NewTracker(g.loadout.Moves, g.loadout.Timing)
	g.candidates = eligible(g.loadout.Moves, g.loadout.Trial.Round.MinLength)
	g.target = moves.Move{}
	g.tick = 0
	g.now = 0
	g.held = 0
	g.score = 0
	g.cleared = 0
	g.gameOver = false
	g.paused = false
	g.nextTarget()
}

// eligible returns the moves at least minLength long, or the whole catalog
// when none qualify.
func eligible(list *moves.MoveList, minLength int) []moves.Move {
	all := list.Moves()
	var out []moves.Move
	for _, m := range all {
		if m.Len() >= minLength {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}

// nextTarget picks a new move, avoiding an immediate repeat, and restarts
// the timer.
func (g *Game) nextTarget() {
	if len(g.candidates) == 0 {
		g.target = moves.Move{}
		return
	}
	g.target = pickOther(g.rng, g.candidates, g.target.Name)
	g.roundStart = g.now

	round := g.loadout.Trial.Round
	g.limit = g.difficulty.TimeLimit(
		time.Duration(round.TimeLimitMs)*time.Millisecond,
		time.Duration(round.MinTimeLimitMs)*time.Millisecond,
		g.score, g.tick,
	)
}

// pickOther draws uniformly from candidates, leaving out the move named prev
// unless it is the only one.
func pickOther(rng *rand.Rand, candidates []moves.Move, prev string) moves.Move {
	others := make([]moves.Move, 0, len(candidates))
	for _, m := range candidates {
		if m.Name != prev {
			others = append(others, m)
		}
	}
	if len(others) == 0 {
		return candidates[0]
	}
	return others[rng.Intn(len(others))]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.now = g.runtime.TickTime(g.tick)
	g.tick++
	g.held = in.Device.Symbol()

	var result core.StepResult
	if m, ok := g.tracker.Step(g.held, g.now); ok {
		result.Moves = append(result.Moves, core.MoveEvent{
			Player: core.Player1,
			Move:   m.Name,
			Length: m.Len(),
			At:     g.now,
		})
		if m.Name == g.target.Name {
			g.score += g.loadout.Trial.Round.PointsPerStep * m.Len()
			g.cleared++
			g.nextTarget()
		}
	}

	if g.Remaining() <= 0 {
		g.gameOver = true
	}

	result.State = g.State()
	return result
}

// Target returns the move the player must perform.
func (g *Game) Target() moves.Move {
	return g.target
}

// Cleared returns the number of targets performed.
func (g *Game) Cleared() int {
	return g.cleared
}

// Limit returns the time allowed for the current target.
func (g *Game) Limit() time.Duration {
	return g.limit
}

// Remaining returns the time left for the current target.
func (g *Game) Remaining() time.Duration {
	return g.limit - (g.now - g.roundStart)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightWhite)
	cleared := fmt.Sprintf(" Cleared: %d ", g.cleared)
	dst.DrawText(dst.Width()-len(cleared)-2, 0, cleared)

	midY := dst.Height()/2 - 3
	dst.DrawTextCentered(midY, "Perform:", core.ColorWhite)
	dst.DrawTextCentered(midY+2, g.target.Name, core.ColorBrightMagenta)

	seqW := utf8.RuneCountInString(hud.SequenceLabel(g.target.Sequence))
	hud.DrawSequence(dst, (dst.Width()-seqW)/2, midY+4, g.target.Sequence)

	// Timer bar
	barW := dst.Width() - 20
	if barW > 0 && g.limit > 0 {
		left := max(g.Remaining(), 0)
		color := core.ColorBrightGreen
		if left < g.limit/3 {
			color = core.ColorBrightRed
		}
		hud.DrawHealthBar(dst, 10, midY+6, barW, int(left.Milliseconds()), int(g.limit.Milliseconds()), color)
	}

	base := dst.Height() - 2
	dst.DrawTextColored(2, base, "History:", core.ColorWhite)
	hud.DrawHistory(dst, 11, base, g.tracker.History())

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}

	if g.gameOver {
		dst.DrawMessage("TIME UP", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("trial", func() registry.Game {
		return New()
	})
}
