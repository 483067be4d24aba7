package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-combos/internal/core"
)

func TestEmbeddedMovesMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadMoves("")
	if err != nil {
		t.Fatalf("LoadMoves() failed: %v", err)
	}
	def := DefaultMovesConfig()

	if len(cfg.Moves) != len(def.Moves) {
		t.Fatalf("embedded catalog has %d moves, expected %d", len(cfg.Moves), len(def.Moves))
	}
	for i := range def.Moves {
		if cfg.Moves[i].Name != def.Moves[i].Name {
			t.Errorf("move %d = %q, expected %q", i, cfg.Moves[i].Name, def.Moves[i].Name)
		}
		if strings.Join(cfg.Moves[i].Sequence, ",") != strings.Join(def.Moves[i].Sequence, ",") {
			t.Errorf("%s sequence = %v, expected %v", def.Moves[i].Name, cfg.Moves[i].Sequence, def.Moves[i].Sequence)
		}
		if cfg.Moves[i].SubMove != def.Moves[i].SubMove {
			t.Errorf("%s sub_move = %v, expected %v", def.Moves[i].Name, cfg.Moves[i].SubMove, def.Moves[i].SubMove)
		}
	}
	if cfg.Timing != def.Timing {
		t.Errorf("Timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
}

func TestBuildDefaultCatalog(t *testing.T) {
	list, timing, err := DefaultMovesConfig().Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if list.Len() != 9 {
		t.Errorf("Len() = %d, expected 9", list.Len())
	}
	if timing.BufferTimeout != 500*time.Millisecond {
		t.Errorf("BufferTimeout = %v, expected 500ms", timing.BufferTimeout)
	}
	if timing.MergeWindow != 100*time.Millisecond {
		t.Errorf("MergeWindow = %v, expected 100ms", timing.MergeWindow)
	}

	fireball, ok := list.Lookup("Fireball")
	if !ok {
		t.Fatal("Fireball missing from catalog")
	}
	last := fireball.Sequence[len(fireball.Sequence)-1]
	if last != core.DirRight|core.ButtonX {
		t.Errorf("Fireball last step = %v, expected Right+X", last)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  MovesConfig
	}{
		{"empty catalog", MovesConfig{}},
		{"unknown token", MovesConfig{Moves: []MoveConfig{{Name: "Bad", Sequence: []string{"Z"}}}}},
		{"empty sequence", MovesConfig{Moves: []MoveConfig{{Name: "Empty"}}}},
		{"duplicate", MovesConfig{Moves: []MoveConfig{
			{Name: "Jump", Sequence: []string{"A"}},
			{Name: "jump", Sequence: []string{"B"}},
		}}},
		{"capacity too small", MovesConfig{
			Timing: TimingConfig{Capacity: 1},
			Moves:  []MoveConfig{{Name: "Two", Sequence: []string{"A", "B"}}},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := tc.cfg.Build(); err == nil {
				t.Error("Build() should fail")
			}
		})
	}
}

func TestLoadMovesCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.yaml")
	data := `
timing:
  buffer_timeout_ms: 800
moves:
  - name: Uppercut
    sequence: [Right, Down, DownRight+Y]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMoves(path)
	if err != nil {
		t.Fatalf("LoadMoves() failed: %v", err)
	}
	list, timing, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if list.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", list.Len())
	}
	if timing.BufferTimeout != 800*time.Millisecond {
		t.Errorf("BufferTimeout = %v, expected 800ms", timing.BufferTimeout)
	}
	if timing.MergeWindow != 100*time.Millisecond {
		t.Errorf("MergeWindow = %v, expected default 100ms", timing.MergeWindow)
	}
}

func TestLoadMovesCustomPathErrors(t *testing.T) {
	if _, err := LoadMoves(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadMoves() with a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("moves: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMoves(path); err == nil {
		t.Error("LoadMoves() with invalid YAML should fail")
	}
}

func TestLoadMovesUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".combos", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "moves:\n  - name: Taunt\n    sequence: [LB+RB]\n"
	if err := os.WriteFile(filepath.Join(dir, "moves.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMoves("")
	if err != nil {
		t.Fatalf("LoadMoves() failed: %v", err)
	}
	if len(cfg.Moves) != 1 || cfg.Moves[0].Name != "Taunt" {
		t.Errorf("Moves = %+v, expected the user catalog", cfg.Moves)
	}
}

func TestLoadTrialDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadTrial("")
	if err != nil {
		t.Fatalf("LoadTrial() failed: %v", err)
	}
	if cfg != DefaultTrialConfig() {
		t.Errorf("LoadTrial() = %+v, expected %+v", cfg, DefaultTrialConfig())
	}
}

func TestApplyTimingPreset(t *testing.T) {
	tests := []struct {
		preset        TimingPreset
		timeoutMs     int
		mergeWindowMs int
	}{
		{TimingLenient, 750, 150},
		{TimingNormal, 500, 100},
		{TimingStrict, 300, 60},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMovesConfig()
			if err := ApplyTimingPreset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplyTimingPreset() failed: %v", err)
			}
			if cfg.Timing.BufferTimeoutMs != tc.timeoutMs {
				t.Errorf("BufferTimeoutMs = %d, expected %d", cfg.Timing.BufferTimeoutMs, tc.timeoutMs)
			}
			if cfg.Timing.MergeWindowMs != tc.mergeWindowMs {
				t.Errorf("MergeWindowMs = %d, expected %d", cfg.Timing.MergeWindowMs, tc.mergeWindowMs)
			}
		})
	}

	cfg := DefaultMovesConfig()
	if err := ApplyTimingPreset(&cfg, "turbo"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyTrialPreset(t *testing.T) {
	cfg := DefaultTrialConfig()
	ApplyTrialPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultTrialConfig()
	ApplyTrialPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Round.MinLength != 3 {
		t.Errorf("MinLength = %d, expected 3", cfg.Round.MinLength)
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultTrialConfig().Difficulty
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{250, 0.5},
		{500, 1.0},
		{1000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d = NewDifficultyManager(cfg)
	if got := d.Level(500, 0); got != 0.3 {
		t.Errorf("disabled Level() = %v, expected 0.3", got)
	}
}

func TestDifficultyTimeLimit(t *testing.T) {
	d := NewDifficultyManager(DefaultTrialConfig().Difficulty)
	base := 5 * time.Second
	floor := 1500 * time.Millisecond

	if got := d.TimeLimit(base, floor, 0, 0); got != base {
		t.Errorf("TimeLimit at level 0 = %v, expected %v", got, base)
	}
	if got := d.TimeLimit(base, floor, 500, 0); got != 2*time.Second {
		t.Errorf("TimeLimit at level 1 = %v, expected 2s", got)
	}

	d = NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{TimeReduction: 0.9},
	})
	if got := d.TimeLimit(base, floor, 0, 0); got != floor {
		t.Errorf("TimeLimit = %v, expected floor %v", got, floor)
	}
}
