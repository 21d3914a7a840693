package scoring

import (
	"testing"
	"time"
)

func TestScoreWrongAnswer(t *testing.T) {
	if got := Score(false, 5, time.Second, 12); got != 0 {
		t.Errorf("wrong answer scored %d, want 0", got)
	}
}

func TestScoreBaseAndMultiplier(t *testing.T) {
	tests := []struct {
		difficulty int
		want       int
	}{
		{1, 100},
		{2, 120},
		{3, 150},
		{4, 180},
		{5, 200},
		{9, 100}, // unknown difficulty falls back to 1.0
	}

	for _, tc := range tests {
		// Slow answer, no streak: base * multiplier only.
		got := Score(true, tc.difficulty, 10*time.Second, 1)
		if got != tc.want {
			t.Errorf("difficulty %d: score = %d, want %d", tc.difficulty, got, tc.want)
		}
	}
}

func TestScoreQuickBonus(t *testing.T) {
	if got := Score(true, 1, 3*time.Second, 1); got != 150 {
		t.Errorf("quick answer scored %d, want 150", got)
	}
	if got := Score(true, 1, 5*time.Second, 1); got != 100 {
		t.Errorf("exactly-threshold answer scored %d, want 100", got)
	}
}

func TestScoreStreakBonus(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{1, 100},
		{2, 100},
		{3, 125},  // first streak step
		{5, 175},
		{12, 350}, // capped at 10 steps
		{40, 350},
	}

	for _, tc := range tests {
		got := Score(true, 1, 10*time.Second, tc.streak)
		if got != tc.want {
			t.Errorf("streak %d: score = %d, want %d", tc.streak, got, tc.want)
		}
	}
}

func TestLevelFromScore(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 1},
		{2000, 1},
		{2829, 2},  // 1000 * 2^1.5 ≈ 2828.4
		{5197, 3},  // 1000 * 3^1.5 ≈ 5196.2
		{8000, 4},  // 1000 * 4^1.5 = 8000 exactly
		{11181, 5}, // 1000 * 5^1.5 ≈ 11180.3
		{1000000, 5},
	}

	for _, tc := range tests {
		if got := LevelFromScore(tc.total); got != tc.want {
			t.Errorf("LevelFromScore(%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestProgressToNextLevel(t *testing.T) {
	if got := ProgressToNextLevel(50000, 5); got != 100 {
		t.Errorf("max level progress = %v, want 100", got)
	}
	if got := ProgressToNextLevel(0, 1); got != 0 {
		t.Errorf("below-requirement progress = %v, want 0", got)
	}
	mid := ProgressToNextLevel(2000, 1)
	if mid <= 0 || mid >= 100 {
		t.Errorf("mid progress = %v, want strictly between 0 and 100", mid)
	}
}
