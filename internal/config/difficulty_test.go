package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0},
	}

	dm := NewDifficultyManager(cfg)
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 60},
	})

	if got := dm.Level(1000, 30); got != 0.5 {
		t.Errorf("Level after 30s = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultPongConfig().Difficulty
	applyDifficulty(&cfg, DifficultyFixed)
	cfg.InitialLevel = 0.4
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(100, 100); got != 0.4 {
		t.Errorf("disabled Level = %v, expected initial 0.4", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	dm := NewDifficultyManager(DefaultPongConfig().Difficulty)

	if got := dm.Speed(500, 0, 0); got != 500 {
		t.Errorf("Speed at score 0 = %v, expected 500", got)
	}
	if got := dm.Speed(500, 30, 0); got != 1000 {
		t.Errorf("Speed at max difficulty = %v, expected 1000", got)
	}
}
