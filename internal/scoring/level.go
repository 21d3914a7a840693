package scoring

import "math"

// baseRequirement anchors the level curve: reaching level n takes
// baseRequirement * n^1.5 total points.
const baseRequirement = 1000

// MaxLevel caps player levels at the hardest difficulty.
const MaxLevel = 5

// LevelRequirement returns the total score needed to reach level.
func LevelRequirement(level int) float64 {
	return baseRequirement * math.Pow(float64(level), 1.5)
}

// LevelFromScore derives the player's level from their total score,
// capped at MaxLevel.
func LevelFromScore(totalScore int) int {
	level := 1
	for float64(totalScore) >= LevelRequirement(level+1) {
		level++
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// ProgressToNextLevel returns the percentage (0-100) of the way from
// the current level's requirement to the next. At MaxLevel it is 100.
func ProgressToNextLevel(totalScore, currentLevel int) float64 {
	if currentLevel >= MaxLevel {
		return 100
	}

	cur := LevelRequirement(currentLevel)
	next := LevelRequirement(currentLevel + 1)
	progress := (float64(totalScore) - cur) / (next - cur) * 100

	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
