package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/psen/funcquest/internal/achievements"
	"github.com/psen/funcquest/internal/ratfunc"
	"github.com/psen/funcquest/internal/scoring"
)

// Result describes the outcome of one submitted answer.
type Result struct {
	Correct     bool
	Points      int
	Answer      string
	Explanation string
	Streak      int
	Unlocked    []achievements.Achievement
}

// Practice is an endless run at a fixed difficulty and focus kind. Each
// submitted answer is scored, fed into the player's lifetime stats, and
// followed by a fresh round.
type Practice struct {
	ID         string
	Player     string
	Difficulty int
	Kind       ratfunc.FeatureKind

	dealer *Dealer
	stats  *achievements.PlayerStats

	current  Round
	Answered int
	Correct  int
	Streak   int
	Score    int
}

// NewPractice starts a practice run and deals the first round. Stats may
// be nil, in which case no achievements are tracked.
func NewPractice(dealer *Dealer, player string, difficulty int, kind ratfunc.FeatureKind, stats *achievements.PlayerStats) *Practice {
	p := &Practice{
		ID:         uuid.NewString(),
		Player:     player,
		Difficulty: ratfunc.ClampDifficulty(difficulty),
		Kind:       kind,
		dealer:     dealer,
		stats:      stats,
	}
	p.current = dealer.Deal(p.Difficulty, kind)
	return p
}

// Current returns the round awaiting an answer.
func (p *Practice) Current() Round {
	return p.current
}

// Submit scores the chosen answer, updates streak and stats, and deals
// the next round.
func (p *Practice) Submit(choice string, timeTaken time.Duration) Result {
	round := p.current
	correct := round.Question.IsCorrect(choice)

	p.Answered++
	if correct {
		p.Correct++
		p.Streak++
	} else {
		p.Streak = 0
	}

	points := scoring.Score(correct, round.Difficulty, timeTaken, p.Streak)
	p.Score += points

	res := Result{
		Correct:     correct,
		Points:      points,
		Answer:      round.Question.Answer,
		Explanation: round.Question.Explanation,
		Streak:      p.Streak,
	}
	if p.stats != nil {
		res.Unlocked = p.stats.Record(round.Question.Kind, correct, timeTaken, points)
	}

	p.current = p.dealer.Deal(p.Difficulty, p.Kind)
	return res
}

// Accuracy returns the fraction of correct answers so far, 0 if none.
func (p *Practice) Accuracy() float64 {
	if p.Answered == 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Answered)
}
