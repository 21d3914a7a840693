// Package scoring computes per-question scores and level progression.
// All functions are pure: session state lives with the caller, never here.
package scoring

import "time"

const (
	// BasePoints is awarded for any correct answer before bonuses.
	BasePoints = 100

	// QuickBonus is added when the answer arrives under QuickThreshold.
	QuickBonus = 50

	// QuickThreshold is the response time that counts as a quick answer.
	QuickThreshold = 5 * time.Second

	// StreakBonusPerStep is the per-step streak bonus from MinStreak on.
	StreakBonusPerStep = 25

	// MinStreak is the streak length at which streak bonuses begin.
	MinStreak = 3

	// maxStreakSteps caps the streak bonus multiplier.
	maxStreakSteps = 10
)

// difficultyMultipliers scales the base points per difficulty level.
var difficultyMultipliers = map[int]float64{
	1: 1.0,
	2: 1.2,
	3: 1.5,
	4: 1.8,
	5: 2.0,
}

// Score computes the points for a single answered question. Wrong
// answers score zero regardless of speed or streak. streak is the
// consecutive-correct count including this answer.
func Score(correct bool, difficulty int, timeTaken time.Duration, streak int) int {
	if !correct {
		return 0
	}

	mult, ok := difficultyMultipliers[difficulty]
	if !ok {
		mult = 1.0
	}
	score := BasePoints * mult

	if timeTaken < QuickThreshold {
		score += QuickBonus
	}

	if streak >= MinStreak {
		steps := streak - (MinStreak - 1)
		if steps > maxStreakSteps {
			steps = maxStreakSteps
		}
		score += float64(steps * StreakBonusPerStep)
	}

	return int(score)
}
