package config

import (
	_ "embed"
)

//go:embed defaults/moves.yaml
var defaultMovesYAML []byte

//go:embed defaults/trial.yaml
var defaultTrialYAML []byte

// DefaultMovesConfig returns the classic catalog with classic timing.
func DefaultMovesConfig() MovesConfig {
	return MovesConfig{
		Timing: TimingConfig{
			BufferTimeoutMs: 500,
			MergeWindowMs:   100,
			Capacity:        0,
		},
		Display: DisplayConfig{
			MoveTimeoutMs: 1000,
		},
		Moves: []MoveConfig{
			{Name: "Jump", Sequence: []string{"A"}, SubMove: true},
			{Name: "Punch", Sequence: []string{"X"}, SubMove: true},
			{Name: "Double Jump", Sequence: []string{"A", "A"}},
			{Name: "Jump Kick", Sequence: []string{"A+X"}},
			{Name: "Quad Punch", Sequence: []string{"X", "Y", "X", "Y"}},
			{Name: "Fireball", Sequence: []string{"Down", "DownRight", "Right+X"}},
			{Name: "Long Jump", Sequence: []string{"Up", "Up", "A"}},
			{Name: "Back Flip", Sequence: []string{"Down", "Down+A"}},
			{Name: "30 Lives", Sequence: []string{"Up", "Up", "Down", "Down", "Left", "Right", "Left", "Right", "B", "A"}},
		},
	}
}

// DefaultTrialConfig returns the default Combo Trial configuration.
func DefaultTrialConfig() TrialConfig {
	return TrialConfig{
		Round: TrialRound{
			TimeLimitMs:    5000,
			MinTimeLimitMs: 1500,
			PointsPerStep:  10,
			MinLength:      2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				TimeReduction: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "moves":
		return defaultMovesYAML
	case "trial":
		return defaultTrialYAML
	default:
		return nil
	}
}
