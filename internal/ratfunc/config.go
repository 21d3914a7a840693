package ratfunc

// DifficultyConfig bounds the complexity of generated functions at one
// difficulty level.
type DifficultyConfig struct {
	// MaxDegree is the maximum total degree of either polynomial.
	MaxDegree int

	// MaxFactors is the maximum number of linear factors multiplied in.
	MaxFactors int

	// HoleProb is the probability of injecting a shared linear factor
	// into both numerator and denominator, producing a hole.
	HoleProb float64
}

// MinDifficulty and MaxDifficulty bound the supported difficulty range.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// difficultyConfigs is the static per-level table. Not mutated at runtime.
var difficultyConfigs = map[int]DifficultyConfig{
	1: {MaxDegree: 2, MaxFactors: 2, HoleProb: 0.3},
	2: {MaxDegree: 3, MaxFactors: 3, HoleProb: 0.4},
	3: {MaxDegree: 4, MaxFactors: 4, HoleProb: 0.5},
	4: {MaxDegree: 5, MaxFactors: 5, HoleProb: 0.6},
	5: {MaxDegree: 6, MaxFactors: 6, HoleProb: 0.7},
}

// ConfigFor returns the difficulty configuration for the given level.
// Out-of-range levels fall back to level 1 rather than failing; the
// engine never rejects caller input.
func ConfigFor(difficulty int) DifficultyConfig {
	if cfg, ok := difficultyConfigs[difficulty]; ok {
		return cfg
	}
	return difficultyConfigs[MinDifficulty]
}

// ClampDifficulty normalizes any int to the supported 1..5 range.
func ClampDifficulty(difficulty int) int {
	if difficulty < MinDifficulty {
		return MinDifficulty
	}
	if difficulty > MaxDifficulty {
		return MaxDifficulty
	}
	return difficulty
}
