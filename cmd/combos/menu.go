package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-combos/internal/platform/tui"
	"github.com/vovakirdan/tui-combos/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leave a paused or finished game with Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Move stats and high scores
  Q            - Quit

Examples:
  combos menu
  combos menu --fps 30
  combos menu --db ./combos.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	lo, err := loadLoadout()
	if err != nil {
		exitf("%v", err)
	}

	logger := newLogger("combos", true)
	defer logger.Close()

	store := openStore()
	sess := tui.Session{Store: store, Logger: logger.Logger, Loadout: lo}
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsStats {
			goBack, statsErr := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
			if statsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", statsErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from stats
		}

		game, err := registry.CreateWith(menuResult.GameID, lo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was requested
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, sess, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
