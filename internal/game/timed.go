package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/psen/funcquest/internal/achievements"
	"github.com/psen/funcquest/internal/ratfunc"
	"github.com/psen/funcquest/internal/scoring"
)

// TimedVariant identifies one of the timed challenge formats.
type TimedVariant string

const (
	Blitz    TimedVariant = "blitz"
	Sprint   TimedVariant = "sprint"
	Marathon TimedVariant = "marathon"
)

// TimedConfig is the time limit and question count of a variant.
type TimedConfig struct {
	Duration  time.Duration
	Questions int
}

var timedConfigs = map[TimedVariant]TimedConfig{
	Blitz:    {Duration: 30 * time.Second, Questions: 5},
	Sprint:   {Duration: 60 * time.Second, Questions: 10},
	Marathon: {Duration: 300 * time.Second, Questions: 25},
}

// TimedConfigFor returns the config for a variant.
func TimedConfigFor(v TimedVariant) (TimedConfig, bool) {
	cfg, ok := timedConfigs[v]
	return cfg, ok
}

// TimedVariants lists the variants in menu order.
func TimedVariants() []TimedVariant {
	return []TimedVariant{Blitz, Sprint, Marathon}
}

// timedDifficulty picks the difficulty of question i (0-based) for a
// variant. Blitz draws uniformly from 1-3; sprint and marathon ramp up
// with position.
func timedDifficulty(v TimedVariant, i int, rng *rand.Rand) int {
	switch v {
	case Sprint:
		return min(ratfunc.MaxDifficulty, i/2+1)
	case Marathon:
		return min(ratfunc.MaxDifficulty, i/5+1)
	default:
		return 1 + rng.IntN(3)
	}
}

// TimedChallenge is a fixed question set raced against the clock. The
// run ends on timer expiry or when every question is answered.
type TimedChallenge struct {
	ID      string
	Variant TimedVariant
	Config  TimedConfig
	Player  string

	rounds    []Round
	index     int
	startedAt time.Time
	stats     *achievements.PlayerStats

	Answered   int
	Correct    int
	Score      int
	Streak     int
	BestStreak int
}

// NewTimedChallenge pre-generates the full question set for a variant.
func NewTimedChallenge(dealer *Dealer, rng *rand.Rand, variant TimedVariant, player string, stats *achievements.PlayerStats) (*TimedChallenge, error) {
	cfg, ok := timedConfigs[variant]
	if !ok {
		return nil, fmt.Errorf("unknown timed variant %q", variant)
	}

	rounds := make([]Round, cfg.Questions)
	for i := range rounds {
		rounds[i] = dealer.Deal(timedDifficulty(variant, i, rng), ratfunc.KindRandom)
	}

	return &TimedChallenge{
		ID:      uuid.NewString(),
		Variant: variant,
		Config:  cfg,
		Player:  player,
		rounds:  rounds,
		stats:   stats,
	}, nil
}

// Start begins the clock.
func (c *TimedChallenge) Start(now time.Time) {
	c.startedAt = now
}

// Remaining returns the time left, never negative.
func (c *TimedChallenge) Remaining(now time.Time) time.Duration {
	left := c.Config.Duration - now.Sub(c.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the timer has run out.
func (c *TimedChallenge) Expired(now time.Time) bool {
	return now.Sub(c.startedAt) >= c.Config.Duration
}

// Done reports whether the run is over, by expiry or exhaustion.
func (c *TimedChallenge) Done(now time.Time) bool {
	return c.Expired(now) || c.index >= len(c.rounds)
}

// Current returns the round awaiting an answer, false if exhausted.
func (c *TimedChallenge) Current() (Round, bool) {
	if c.index >= len(c.rounds) {
		return Round{}, false
	}
	return c.rounds[c.index], true
}

// Progress returns answered-of-total for display.
func (c *TimedChallenge) Progress() (answered, total int) {
	return c.index, len(c.rounds)
}

// Submit scores the answer for the current round and advances.
func (c *TimedChallenge) Submit(choice string, timeTaken time.Duration) (Result, bool) {
	round, ok := c.Current()
	if !ok {
		return Result{}, false
	}
	c.index++

	correct := round.Question.IsCorrect(choice)
	c.Answered++
	if correct {
		c.Correct++
		c.Streak++
		if c.Streak > c.BestStreak {
			c.BestStreak = c.Streak
		}
	} else {
		c.Streak = 0
	}

	points := scoring.Score(correct, round.Difficulty, timeTaken, c.Streak)
	c.Score += points

	res := Result{
		Correct:     correct,
		Points:      points,
		Answer:      round.Question.Answer,
		Explanation: round.Question.Explanation,
		Streak:      c.Streak,
	}
	if c.stats != nil {
		res.Unlocked = c.stats.Record(round.Question.Kind, correct, timeTaken, points)
	}
	return res, true
}

// Accuracy returns the fraction of correct answers, 0 if none.
func (c *TimedChallenge) Accuracy() float64 {
	if c.Answered == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Answered)
}
