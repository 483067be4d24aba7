// Package duel implements Move Duel: two local players share one keyboard
// and one move catalog. Every detected move hits the opponent for ten
// points of damage per sequence step; the first player to run out of
// health loses.
package duel

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/games/hud"
	"github.com/vovakirdan/tui-combos/internal/moves"
	"github.com/vovakirdan/tui-combos/internal/registry"
)

// Gameplay constants
const (
	MaxHealth      = 100
	DamagePerStep  = 10
	panelMinHeight = 8
)

// fighter is one player's side of the duel.
type fighter struct {
	id      core.PlayerID
	tracker *moves.Tracker
	health  int
	dealt   int
	held    core.Buttons
	last    moves.Move
	lastAt  time.Duration
	hasLast bool
}

// Game implements the Move Duel.
type Game struct {
	loadout  registry.Loadout
	runtime  core.RuntimeConfig
	players  [2]*fighter
	tick     int
	now      time.Duration
	winner   core.PlayerID
	gameOver bool
	paused   bool
}

// New creates a new duel with the default loadout.
func New() *Game {
	return &Game{loadout: registry.DefaultLoadout()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "duel"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Move Duel"
}

// Configure replaces the move catalog and timing.
func (g *Game) Configure(lo registry.Loadout) {
	g.loadout = lo
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	for i, id := range []core.PlayerID{core.Player1, core.Player2} {
		g.players[i] = &fighter{
			id:      id,
			tracker: moves.NewTracker(g.loadout.Moves, g.loadout.Timing),
			health:  MaxHealth,
		}
	}
	g.tick = 0
	g.now = 0
	g.winner = 0
	g.gameOver = false
	g.paused = false
}

// Step drives the duel with Player 1 input only.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	multi := core.NewMultiInputFrame()
	multi.SetPlayer(core.Player1, in)
	return g.StepMulti(multi)
}

// StepMulti advances the game by one tick with input from both players.
func (g *Game) StepMulti(in core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Player1().Has(core.ActionPause) || in.Player2().Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.now = g.runtime.TickTime(g.tick)
	g.tick++

	// Both players are scanned before damage is applied so a simultaneous
	// exchange lands on both sides.
	var result core.StepResult
	for _, p := range g.players {
		p.held = in.Player(p.id).Device.Symbol()
		m, ok := p.tracker.Step(p.held, g.now)
		if !ok {
			continue
		}
		p.last = m
		p.lastAt = g.now
		p.hasLast = true
		result.Moves = append(result.Moves, core.MoveEvent{
			Player: p.id,
			Move:   m.Name,
			Length: m.Len(),
			At:     g.now,
		})
	}

	for _, ev := range result.Moves {
		attacker := g.fighter(ev.Player)
		defender := g.opponent(ev.Player)
		damage := DamagePerStep * ev.Length
		defender.health = max(defender.health-damage, 0)
		attacker.dealt += damage
	}

	p1, p2 := g.players[0], g.players[1]
	switch {
	case p1.health == 0 && p2.health == 0:
		g.gameOver = true // draw
	case p2.health == 0:
		g.gameOver = true
		g.winner = core.Player1
	case p1.health == 0:
		g.gameOver = true
		g.winner = core.Player2
	}

	result.State = g.State()
	return result
}

func (g *Game) fighter(id core.PlayerID) *fighter {
	if id == core.Player2 {
		return g.players[1]
	}
	return g.players[0]
}

func (g *Game) opponent(id core.PlayerID) *fighter {
	if id == core.Player2 {
		return g.players[0]
	}
	return g.players[1]
}

// Health returns a player's remaining health.
func (g *Game) Health(id core.PlayerID) int {
	return g.fighter(id).health
}

// Winner returns the winning player, or zero for a draw or a running duel.
func (g *Game) Winner() core.PlayerID {
	return g.winner
}

// Tracker exposes a player's tracker.
func (g *Game) Tracker(id core.PlayerID) *moves.Tracker {
	return g.fighter(id).tracker
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	half := dst.Width() / 2
	g.renderPanel(dst, g.players[0], 0, half, core.PlayerColor(core.Player1))
	g.renderPanel(dst, g.players[1], half, dst.Width()-half, core.PlayerColor(core.Player2))

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}

	if g.gameOver {
		title := "DRAW"
		if g.winner != 0 {
			title = g.winner.String() + " WINS"
		}
		dst.DrawMessage(title, "Press R to rematch")
	}
}

func (g *Game) renderPanel(dst *core.Screen, p *fighter, x, w int, color core.Color) {
	h := dst.Height()
	if w < 12 || h < panelMinHeight {
		return
	}
	dst.DrawBox(core.NewRect(x, 0, w, h), color)
	dst.DrawTextColored(x+2, 0, " "+p.id.String()+" ", color)

	dst.DrawText(x+2, 2, fmt.Sprintf("HP %3d", p.health))
	hud.DrawHealthBar(dst, x+9, 2, w-11, p.health, MaxHealth, color)

	if p.hasLast && g.now-p.lastAt < g.loadout.MoveTimeout {
		dst.DrawTextColored(x+2, h/2, "★ "+p.last.Name, core.ColorBrightMagenta)
	}

	dst.DrawText(x+2, h-3, "Held:")
	hud.DrawSymbol(dst, x+8, h-3, p.held)
	hud.DrawHistory(dst, x+2, h-2, p.tracker.History())
}

// State returns the current game state. Score is the damage Player 1 dealt.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.players[0].dealt,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("duel", func() registry.Game {
		return New()
	})
}
