package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-combos/internal/registry"
	"github.com/vovakirdan/tui-combos/internal/storage"
)

var (
	flagRecent int
	flagClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show how often each move was performed",
	Long: `Display per-move totals from the move log. Without a game, shows the
most recent moves across every game.

Examples:
  combos stats trainer
  combos stats --recent 50
  combos stats duel --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 20, "Number of recent moves to list")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the game's move log")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		printRecent(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		exitf("unknown game %q\nRun 'combos list' to see available games.", gameID)
	}

	if flagClear {
		if err := store.ClearMoves(gameID); err != nil {
			exitf("%v", err)
		}
		fmt.Printf("Move log cleared for %s.\n", gameID)
		return
	}

	counts, err := store.MoveCounts(gameID)
	if err != nil {
		exitf("%v", err)
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		exitf("%v", err)
	}

	fmt.Printf("Move Stats - %s\n", gameID)
	fmt.Printf("Games: %d  High: %d  Moves: %d\n", stats.GamesCount, stats.HighScore, stats.MovesCount)
	fmt.Println()

	if len(counts) == 0 {
		fmt.Println("No moves recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-6s  %s\n", "Move", "Count", "Last seen")
	fmt.Printf("  %-16s  %-6s  %s\n", "----", "-----", "---------")
	for _, c := range counts {
		fmt.Printf("  %-16s  %-6d  %s\n", c.Move, c.Count, c.LastSeen.Format("2006-01-02 15:04"))
	}
}

func printRecent(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		exitf("%v", err)
	}
	if len(all) > 0 {
		ids := make([]string, 0, len(all))
		for id := range all {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Println("Games played")
		fmt.Println()
		for _, id := range ids {
			gs := all[id]
			fmt.Printf("  %-8s  %3d games  best %-6d  avg %.1f\n", id, gs.GamesCount, gs.HighScore, gs.AvgScore)
		}
		fmt.Println()
	}

	recent, err := store.RecentMoves(flagRecent)
	if err != nil {
		exitf("%v", err)
	}

	fmt.Println("Recent moves")
	fmt.Println()
	if len(recent) == 0 {
		fmt.Println("No moves recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-10s  %-3s  %s\n", "When", "Game", "User", "P", "Move")
	for _, r := range recent {
		fmt.Printf("  %-16s  %-8s  %-10s  %-3d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, r.User, r.Player, r.Move)
	}
}
