package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-combos/internal/config"
	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/moves"
	"github.com/vovakirdan/tui-combos/internal/registry"
)

var (
	flagStepMs   int
	flagDefaults string
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Print the move catalog",
	Long: `Print the active move catalog in detection order (longest first),
after applying --config and --timing.

Use --defaults to print a built-in config as a starting point for your own.

Examples:
  combos moves
  combos moves --config ./my-moves.yaml --timing strict
  combos moves --defaults moves > ~/.combos/configs/moves.yaml`,
	Args: cobra.NoArgs,
	Run:  runMoves,
}

var movesCheckCmd = &cobra.Command{
	Use:   "check <step>...",
	Short: "Replay a sequence and print the detected moves",
	Long: `Feed a sequence of steps through a fresh tracker, one step every
--step-ms milliseconds, and print every move it detects.

Steps use the catalog syntax: a direction (Up, DownRight, ...), buttons
(A, B, X, Y, LB, RB) or both joined with "+".

Examples:
  combos moves check Down DownRight Right+X
  combos moves check A A
  combos moves check A A --step-ms 600`,
	Args: cobra.MinimumNArgs(1),
	Run:  runMovesCheck,
}

func init() {
	movesCheckCmd.Flags().IntVar(&flagStepMs, "step-ms", 200, "Time between steps in milliseconds")
	movesCmd.Flags().StringVar(&flagDefaults, "defaults", "", "Print a built-in config (moves or trial) and exit")
	movesCmd.AddCommand(movesCheckCmd)
}

func runMoves(_ *cobra.Command, _ []string) {
	if flagDefaults != "" {
		data := config.GetDefaultYAML(flagDefaults)
		if data == nil {
			exitf("unknown config %q (want moves or trial)", flagDefaults)
		}
		os.Stdout.Write(data)
		return
	}

	lo, err := loadLoadout()
	if err != nil {
		exitf("%v", err)
	}

	fmt.Printf("Timing: buffer %v, merge window %v, history %d\n",
		lo.Timing.BufferTimeout, lo.Timing.MergeWindow, historySize(lo))
	fmt.Println()

	maxName := 4
	for _, m := range lo.Moves.Moves() {
		maxName = max(maxName, len(m.Name))
	}

	fmt.Printf("  %-*s  %-3s  %-4s  %s\n", maxName, "Move", "Len", "Sub", "Sequence")
	fmt.Printf("  %-*s  %-3s  %-4s  %s\n", maxName, "----", "---", "---", "--------")
	for _, m := range lo.Moves.Moves() {
		sub := ""
		if m.SubMove {
			sub = "yes"
		}
		fmt.Printf("  %-*s  %-3d  %-4s  %s\n", maxName, m.Name, m.Len(), sub, core.FormatSequence(m.Sequence))
	}
}

// historySize is the capacity trackers will use for this loadout.
func historySize(lo registry.Loadout) int {
	if lo.Timing.Capacity > 0 {
		return lo.Timing.Capacity
	}
	return lo.Moves.LongestMoveLength()
}

// parseSteps parses one symbol per argument. Empty steps are rejected
// because no move can contain them.
func parseSteps(args []string) ([]core.Buttons, error) {
	if len(args) == 0 {
		return nil, errors.New("no steps given")
	}
	seq := make([]core.Buttons, 0, len(args))
	for i, arg := range args {
		b, err := core.ParseButtons(arg)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if b == 0 {
			return nil, fmt.Errorf("step %d: empty step", i+1)
		}
		seq = append(seq, b)
	}
	return seq, nil
}

func runMovesCheck(_ *cobra.Command, args []string) {
	lo, err := loadLoadout()
	if err != nil {
		exitf("%v", err)
	}
	if flagStepMs <= 0 {
		exitf("--step-ms must be positive")
	}

	seq, err := parseSteps(args)
	if err != nil {
		exitf("%v", err)
	}

	interval := time.Duration(flagStepMs) * time.Millisecond
	found := moves.Replay(lo.Moves, lo.Timing, seq, interval)

	fmt.Printf("Sequence: %s (every %v)\n", core.FormatSequence(seq), interval)
	fmt.Println()
	if len(found) == 0 {
		fmt.Println("No moves detected.")
		return
	}
	for _, d := range found {
		fmt.Printf("  %6v  step %-2d  %s\n", d.At, d.Index+1, d.Move.Name)
	}
}
