package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMoves loads the move catalog and timing.
// Search order: customPath -> ~/.combos/configs/moves.yaml -> ./configs/moves.yaml -> embedded default
func LoadMoves(customPath string) (MovesConfig, error) {
	var cfg MovesConfig
	if err := load("moves.yaml", customPath, defaultMovesYAML, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Moves) == 0 {
		return DefaultMovesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadTrial loads Combo Trial configuration.
// Search order: customPath -> ~/.combos/configs/trial.yaml -> ./configs/trial.yaml -> embedded default
func LoadTrial(customPath string) (TrialConfig, error) {
	var cfg TrialConfig
	if err := load("trial.yaml", customPath, defaultTrialYAML, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Round.TimeLimitMs <= 0 {
		return DefaultTrialConfig(), nil
	}
	return cfg, nil
}

// load decodes the first readable source into out. Only an explicit custom
// path is allowed to fail; the other sources fall through silently.
func load(filename, customPath string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML; callers fall back to hardcoded values.
	_ = yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".combos", "configs", filename)
}

// ApplyTimingPreset scales the buffer timeout and merge window.
func ApplyTimingPreset(cfg *MovesConfig, preset TimingPreset) error {
	scale, ok := timingScale(preset)
	if !ok {
		return fmt.Errorf("unknown timing preset %q (want lenient, normal or strict)", preset)
	}
	base := cfg.EngineTiming()
	cfg.Timing.BufferTimeoutMs = int(math.Round(float64(base.BufferTimeout.Milliseconds()) * scale))
	cfg.Timing.MergeWindowMs = int(math.Round(float64(base.MergeWindow.Milliseconds()) * scale))
	return nil
}

// ApplyTrialPreset modifies the config based on a difficulty preset.
func ApplyTrialPreset(cfg *TrialConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Round.MinLength = 1
	case DifficultyHard:
		cfg.Round.MinLength = 3
	}
}
