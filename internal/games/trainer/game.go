// Package trainer implements the Move Trainer: a sandbox where one player
// performs moves from the catalog and sees the input history live.
// Discovering a move for the first time scores a point.
package trainer

import (
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/games/hud"
	"github.com/vovakirdan/tui-combos/internal/moves"
	"github.com/vovakirdan/tui-combos/internal/registry"
)

// Game implements the Move Trainer.
type Game struct {
	loadout    registry.Loadout
	tracker    *moves.Tracker
	discovered mapset.Set[string]
	runtime    core.RuntimeConfig

	tick     int
	now      time.Duration
	held     core.Buttons
	last     moves.Move
	lastAt   time.Duration
	hasLast  bool
	detected int // total detections, repeats included
	paused   bool
}

// New creates a new trainer with the default loadout.
func New() *Game {
	return &Game{loadout: registry.DefaultLoadout()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "trainer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Move Trainer"
}

// Configure replaces the move catalog and timing.
func (g *Game) Configure(lo registry.Loadout) {
	g.loadout = lo
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tracker = moves.NewTracker(g.loadout.Moves, g.loadout.Timing)
	g.discovered = mapset.New[string]()
	g.tick = 0
	g.now = 0
	g.held = 0
	g.last = moves.Move{}
	g.lastAt = 0
	g.hasLast = false
	g.detected = 0
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
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
		g.last = m
		g.lastAt = g.now
		g.hasLast = true
		g.detected++
		g.discovered.Put(m.Name)
		result.Moves = append(result.Moves, core.MoveEvent{
			Player: core.Player1,
			Move:   m.Name,
			Length: m.Len(),
			At:     g.now,
		})
	}

	result.State = g.State()
	return result
}

// Discovered reports whether the named move has been performed.
func (g *Game) Discovered(name string) bool {
	return g.discovered.Has(name)
}

// Detected returns the total number of detections, repeats included.
func (g *Game) Detected() int {
	return g.detected
}

// Tracker exposes the player's tracker.
func (g *Game) Tracker() *moves.Tracker {
	return g.tracker
}

// LastMove returns the move shown in the banner, if it is still on screen.
func (g *Game) LastMove() (moves.Move, bool) {
	if !g.hasLast || g.now-g.lastAt >= g.loadout.MoveTimeout {
		return moves.Move{}, false
	}
	return g.last, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	list := g.loadout.Moves
	header := fmt.Sprintf(" Moves: %d/%d ", g.discovered.Size(), list.Len())
	dst.DrawTextColored(2, 0, header, core.ColorBrightWhite)

	// Catalog, longest first, marking discovered moves
	y := 2
	for _, m := range list.Moves() {
		if y >= dst.Height()-4 {
			break
		}
		mark, color := "  ", core.ColorGray
		if g.discovered.Has(m.Name) {
			mark, color = "✓ ", core.ColorBrightGreen
		}
		dst.DrawTextColored(2, y, mark+m.Name, color)
		hud.DrawSequence(dst, 18, y, m.Sequence)
		y++
	}

	// Banner for the last detected move
	if m, ok := g.LastMove(); ok {
		dst.DrawTextCentered(dst.Height()-4, "★ "+m.Name+" ★", core.ColorBrightMagenta)
	}

	// Live input
	base := dst.Height() - 2
	dst.DrawTextColored(2, base, "Held:", core.ColorWhite)
	hud.DrawSymbol(dst, 8, base, g.held)
	dst.DrawTextColored(16, base, "History:", core.ColorWhite)
	hud.DrawHistory(dst, 25, base, g.tracker.History())

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current game state. The trainer never ends.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.discovered.Size(),
		Paused: g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("trainer", func() registry.Game {
		return New()
	})
}
