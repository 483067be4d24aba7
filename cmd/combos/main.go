// combos is a terminal playground for fighting-game style move detection.
//
// Usage:
//
//	combos list                 - List available games
//	combos play <game>          - Play a game
//	combos menu                 - Start menu to pick games interactively
//	combos serve                - Start SSH server and live move feed
//	combos scores <game>        - Show high scores for a game
//	combos stats [game]         - Show how often each move was performed
//	combos moves                - Print the move catalog
//	combos moves check <seq>... - Replay a sequence and print detected moves
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.combos/combos.db)
//	--config <path>    - Custom move catalog YAML
//	--timing <preset>  - Input timing: lenient, normal, strict
//	--log-file <path>  - Write logs to a rotating file
//	--debug            - Log every detected move
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-combos/internal/games/duel"
	_ "github.com/vovakirdan/tui-combos/internal/games/trainer"
	_ "github.com/vovakirdan/tui-combos/internal/games/trial"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagTrialConfig string
	flagTiming      string
	flagDifficulty  string
	flagLogFile     string
	flagDebug       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "combos",
	Short: "Combos - perform fighting-game moves in your terminal",
	Long: `Combos detects fighting-game style moves (Fireball, Double Jump,
30 Lives...) from held keys and plays small games around them.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server and websocket move feed
  scores   - View high scores
  stats    - View move statistics
  moves    - Print or test the move catalog

Examples:
  combos list
  combos play trainer
  combos play trial --timing lenient --difficulty easy
  combos moves check Down DownRight Right+X
  combos serve --ssh :2222 --feed :8080`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.combos/combos.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom move catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagTrialConfig, "trial-config", "", "Path to custom trial YAML")
	rootCmd.PersistentFlags().StringVar(&flagTiming, "timing", "", "Timing preset: lenient, normal, strict")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Trial preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to a rotating file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(movesCmd)
}
