package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-combos/internal/platform/tui"
	"github.com/vovakirdan/tui-combos/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (Player 1):
  Arrows/hjkl  - Directions
  y/u/b/n      - Diagonals (up-left, up-right, down-left, down-right)
  z/x/c/v      - A/B/X/Y
  a/s          - LB/RB

Controls (Player 2, duel):
  1-9          - Directions, numpad layout
  [ ] ; '      - A/B/X/Y

Platform:
  P            - Pause
  Esc          - Leave a paused or finished game
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  combos play trainer
  combos play trial --difficulty hard
  combos play duel --timing lenient
  combos play trainer --config ./my-moves.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		exitf("unknown game %q\nRun 'combos list' to see available games.", gameID)
	}

	lo, err := loadLoadout()
	if err != nil {
		exitf("%v", err)
	}

	game, err := registry.CreateWith(gameID, lo)
	if err != nil {
		exitf("creating game: %v", err)
	}

	logger := newLogger("combos", true)
	defer logger.Close()

	store := openStore()
	runErr := tui.Run(game, tui.Session{
		Store:   store,
		Logger:  logger.Logger,
		Loadout: lo,
	}, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
