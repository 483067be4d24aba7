package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/platform/feed"
	"github.com/vovakirdan/tui-combos/internal/registry"
	"github.com/vovakirdan/tui-combos/internal/storage"
)

// LocalUser is the user name recorded for moves played on this terminal.
const LocalUser = "local"

// Publisher receives detected moves for live spectators.
type Publisher interface {
	Publish(ev feed.Event)
}

// Session carries everything a game run needs besides the game itself.
// Any of Store, Logger and Feed may be nil.
type Session struct {
	Store   *storage.Store
	Logger  *log.Logger
	Feed    Publisher
	User    string
	Loadout registry.Loadout
}

// withDefaults fills the user name, logger and loadout.
func (s Session) withDefaults() Session {
	if s.User == "" {
		s.User = LocalUser
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Loadout.Moves == nil {
		s.Loadout = registry.DefaultLoadout()
	}
	return s
}

// RecordMoves writes detected moves to the move log, the debug log and the
// live feed. Storage failures are logged and otherwise ignored.
func (s Session) RecordMoves(gameID string, events []core.MoveEvent) {
	for _, ev := range events {
		if s.Logger != nil {
			s.Logger.Debug("move detected",
				"game", gameID,
				"user", s.User,
				"player", ev.Player,
				"move", ev.Move,
				"length", ev.Length,
				"at", ev.At,
			)
		}
		if s.Store != nil {
			_, err := s.Store.RecordMove(storage.MoveRecord{
				GameID: gameID,
				User:   s.User,
				Player: int(ev.Player),
				Move:   ev.Move,
				Length: ev.Length,
			})
			if err != nil && s.Logger != nil {
				s.Logger.Warn("could not record move", "move", ev.Move, "error", err)
			}
		}
		if s.Feed != nil {
			s.Feed.Publish(feed.NewEvent(gameID, s.User, ev))
		}
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	session    Session
	config     core.RuntimeConfig
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	embedded   bool // running inside a SessionModel
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, sess Session, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		session:    sess.withDefaults(),
		config:     cfg,
		inputFrame: core.NewMultiInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.session.Logger.Info("game started", "game", m.game.ID(), "user", m.session.User)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToMultiFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Esc leaves a paused or finished game
	if m.inputFrame.Player1().Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events. Games lay out from the
// screen they are given, so the run is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Player1().Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.keyMapper.Release()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.keyMapper.Fill(&m.inputFrame)

	var result core.StepResult
	if mp, ok := m.game.(registry.MultiPlayerGame); ok {
		result = mp.StepMulti(m.inputFrame)
	} else {
		result = m.game.Step(m.inputFrame.Player1())
	}
	m.gameState = result.State
	m.session.RecordMoves(m.game.ID(), result.Moves)

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the final score of a finished run.
func (m Model) saveScore() {
	score := m.gameState.Score
	m.session.Logger.Info("game over", "game", m.game.ID(), "user", m.session.User, "score", score)
	if score <= 0 || m.session.Store == nil {
		return
	}
	if _, err := m.session.Store.SaveScore(m.game.ID(), score); err != nil {
		m.session.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".combos", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.session.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, sess Session, cfg core.RuntimeConfig) error {
	model := NewModel(game, sess, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
