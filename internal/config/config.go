// Package config provides YAML-based configuration for the move catalog,
// input timing and the trial game, plus difficulty management.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-combos/internal/core"
	"github.com/vovakirdan/tui-combos/internal/moves"
)

// MovesConfig contains the move catalog and the input timing.
type MovesConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
	Moves   []MoveConfig  `yaml:"moves"`
}

// TimingConfig defines the history buffer timing.
type TimingConfig struct {
	BufferTimeoutMs int `yaml:"buffer_timeout_ms"`
	MergeWindowMs   int `yaml:"merge_window_ms"`
	Capacity        int `yaml:"capacity"` // 0 = longest move in the catalog
}

// DisplayConfig defines how long detected moves stay on screen.
type DisplayConfig struct {
	MoveTimeoutMs int `yaml:"move_timeout_ms"`
}

// MoveConfig is one catalog entry. Sequence steps use the symbol syntax of
// core.ParseButtons ("Down", "Right+X", "A+B").
type MoveConfig struct {
	Name     string   `yaml:"name"`
	Sequence []string `yaml:"sequence"`
	SubMove  bool     `yaml:"sub_move,omitempty"`
}

// TrialConfig contains all configuration for the Combo Trial game.
type TrialConfig struct {
	Round      TrialRound       `yaml:"round"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TrialRound defines per-round parameters of the trial.
type TrialRound struct {
	TimeLimitMs    int `yaml:"time_limit_ms"`     // Time to perform a move at level 0
	MinTimeLimitMs int `yaml:"min_time_limit_ms"` // Floor for the time limit
	PointsPerStep  int `yaml:"points_per_step"`   // Score per sequence step
	MinLength      int `yaml:"min_length"`        // Shortest move eligible as a target
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeReduction float64 `yaml:"time_reduction"` // Fraction of the time limit removed at max difficulty
}

// MoveTimeout returns the display duration of a detected move.
func (c MovesConfig) MoveTimeout() time.Duration {
	if c.Display.MoveTimeoutMs <= 0 {
		return time.Second
	}
	return time.Duration(c.Display.MoveTimeoutMs) * time.Millisecond
}

// EngineTiming converts the YAML timing into engine timing, filling
// defaults for unset values.
func (c MovesConfig) EngineTiming() moves.Timing {
	t := moves.DefaultTiming()
	if c.Timing.BufferTimeoutMs > 0 {
		t.BufferTimeout = time.Duration(c.Timing.BufferTimeoutMs) * time.Millisecond
	}
	if c.Timing.MergeWindowMs > 0 {
		t.MergeWindow = time.Duration(c.Timing.MergeWindowMs) * time.Millisecond
	}
	if c.Timing.Capacity > 0 {
		t.Capacity = c.Timing.Capacity
	}
	return t
}

// Build parses the catalog into a MoveList and returns it with the timing.
func (c MovesConfig) Build() (*moves.MoveList, moves.Timing, error) {
	if len(c.Moves) == 0 {
		return nil, moves.Timing{}, fmt.Errorf("config: move catalog is empty")
	}

	seen := make(map[string]bool, len(c.Moves))
	list := make([]moves.Move, 0, len(c.Moves))
	for i, mc := range c.Moves {
		key := strings.ToLower(mc.Name)
		if seen[key] {
			return nil, moves.Timing{}, fmt.Errorf("config: duplicate move %q", mc.Name)
		}
		seen[key] = true

		seq := make([]core.Buttons, 0, len(mc.Sequence))
		for j, step := range mc.Sequence {
			b, err := core.ParseButtons(step)
			if err != nil {
				return nil, moves.Timing{}, fmt.Errorf("config: move %q step %d: %w", mc.Name, j+1, err)
			}
			seq = append(seq, b)
		}

		m, err := moves.NewMove(mc.Name, mc.SubMove, seq...)
		if err != nil {
			return nil, moves.Timing{}, fmt.Errorf("config: move #%d: %w", i+1, err)
		}
		list = append(list, m)
	}

	ml := moves.NewMoveList(list...)
	timing := c.EngineTiming()
	if timing.Capacity > 0 && timing.Capacity < ml.LongestMoveLength() {
		return nil, moves.Timing{}, fmt.Errorf("config: capacity %d is shorter than the longest move (%d)",
			timing.Capacity, ml.LongestMoveLength())
	}
	return ml, timing, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// TimingPreset is a named input leniency.
type TimingPreset string

const (
	TimingLenient TimingPreset = "lenient"
	TimingNormal  TimingPreset = "normal"
	TimingStrict  TimingPreset = "strict"
)

// timingScale returns the multiplier a preset applies to timeout and merge
// window.
func timingScale(preset TimingPreset) (float64, bool) {
	switch preset {
	case TimingLenient:
		return 1.5, true
	case TimingNormal, "":
		return 1.0, true
	case TimingStrict:
		return 0.6, true
	default:
		return 0, false
	}
}
