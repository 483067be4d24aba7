package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-combos/internal/config"
	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/logging"
	"github.com/vovakirdan/tui-combos/internal/registry"
	"github.com/vovakirdan/tui-combos/internal/storage"
)

// loadLoadout builds the move catalog, timing and trial rules from the
// config flags.
func loadLoadout() (registry.Loadout, error) {
	movesCfg, err := config.LoadMoves(flagConfig)
	if err != nil {
		return registry.Loadout{}, err
	}
	if flagTiming != "" {
		if err := config.ApplyTimingPreset(&movesCfg, config.TimingPreset(flagTiming)); err != nil {
			return registry.Loadout{}, err
		}
	}

	list, timing, err := movesCfg.Build()
	if err != nil {
		return registry.Loadout{}, err
	}

	trialCfg, err := config.LoadTrial(flagTrialConfig)
	if err != nil {
		return registry.Loadout{}, err
	}
	if flagDifficulty != "" {
		config.ApplyTrialPreset(&trialCfg, config.DifficultyPreset(flagDifficulty))
	}

	return registry.Loadout{
		Moves:       list,
		Timing:      timing,
		MoveTimeout: movesCfg.MoveTimeout(),
		Trial:       trialCfg,
	}, nil
}

// newLogger creates the process logger. Interactive commands pass quiet so
// log lines only reach the log file and never tear the alt screen.
func newLogger(prefix string, quiet bool) *logging.Logger {
	level := "info"
	if flagDebug {
		level = "debug"
	}
	return logging.New(logging.Options{
		Prefix: prefix,
		Level:  level,
		File:   flagLogFile,
		Quiet:  quiet,
	})
}

// openStore opens the database, warning and continuing without it on error.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
