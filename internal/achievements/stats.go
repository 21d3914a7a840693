package achievements

import (
	"time"

	"github.com/psen/funcquest/internal/ratfunc"
	"github.com/psen/funcquest/internal/scoring"
)

// PlayerStats accumulates one player's question history across a
// session (or longer, when the caller seeds it from the store).
type PlayerStats struct {
	TotalQuestions int
	TotalCorrect   int
	TotalScore     int
	TotalTime      time.Duration

	QuickAnswers   int
	CurrentStreak  int
	MaxStreak      int
	CurrentLevel   int
	MaxEarnedLevel int

	AsymptotesCorrect int
	InterceptsCorrect int
	HolesCorrect      int

	QuestionsByKind map[ratfunc.FeatureKind]int
	CorrectByKind   map[ratfunc.FeatureKind]int

	Earned map[ID]bool
}

// NewPlayerStats returns an empty stats record at level 1.
func NewPlayerStats() *PlayerStats {
	return &PlayerStats{
		CurrentLevel:    1,
		QuestionsByKind: make(map[ratfunc.FeatureKind]int),
		CorrectByKind:   make(map[ratfunc.FeatureKind]int),
		Earned:          make(map[ID]bool),
	}
}

// Record folds one answered question into the stats and returns any
// achievements newly earned by it. Each achievement is returned at
// most once per PlayerStats lifetime.
func (s *PlayerStats) Record(kind ratfunc.FeatureKind, correct bool, timeTaken time.Duration, scoreEarned int) []Achievement {
	s.TotalQuestions++
	s.TotalTime += timeTaken
	s.TotalScore += scoreEarned
	s.QuestionsByKind[kind]++

	if correct {
		s.TotalCorrect++
		s.CurrentStreak++
		if s.CurrentStreak > s.MaxStreak {
			s.MaxStreak = s.CurrentStreak
		}
		if timeTaken < scoring.QuickThreshold {
			s.QuickAnswers++
		}
		s.CorrectByKind[kind]++

		switch kind {
		case ratfunc.KindVerticalAsymptotes, ratfunc.KindHorizontalAsymptote:
			s.AsymptotesCorrect++
		case ratfunc.KindXIntercepts:
			s.InterceptsCorrect++
		case ratfunc.KindHoles:
			s.HolesCorrect++
		}
	} else {
		s.CurrentStreak = 0
	}

	s.CurrentLevel = scoring.LevelFromScore(s.TotalScore)

	return s.check()
}

// check evaluates every achievement condition against the current
// stats, marking and returning the ones crossed for the first time.
func (s *PlayerStats) check() []Achievement {
	var earned []Achievement

	award := func(id ID) {
		if s.Earned[id] {
			return
		}
		s.Earned[id] = true
		if a := Get(id); a != nil {
			earned = append(earned, *a)
			s.TotalScore += a.Points
		}
	}

	if s.TotalCorrect >= 1 {
		award(FirstCorrect)
	}
	if s.QuickAnswers >= 5 {
		award(SpeedDemon)
	}
	if s.MaxStreak >= 10 {
		award(Perfectionist)
	}
	if s.AsymptotesCorrect >= 20 {
		award(AsymptoteMaster)
	}
	if s.InterceptsCorrect >= 15 {
		award(InterceptHunter)
	}
	if s.HolesCorrect >= 10 {
		award(HoleFinder)
	}
	if s.CurrentLevel > s.MaxEarnedLevel {
		s.MaxEarnedLevel = s.CurrentLevel
		if s.CurrentLevel > 1 {
			award(LevelUp)
		}
	}

	return earned
}

// Reconcile marks every achievement whose condition the current
// counters already meet, without granting points. Callers use it after
// seeding counters from persisted history so past milestones are not
// re-announced (or re-scored) on the next answer.
func (s *PlayerStats) Reconcile() {
	if s.TotalCorrect >= 1 {
		s.Earned[FirstCorrect] = true
	}
	if s.QuickAnswers >= 5 {
		s.Earned[SpeedDemon] = true
	}
	if s.MaxStreak >= 10 {
		s.Earned[Perfectionist] = true
	}
	if s.AsymptotesCorrect >= 20 {
		s.Earned[AsymptoteMaster] = true
	}
	if s.InterceptsCorrect >= 15 {
		s.Earned[InterceptHunter] = true
	}
	if s.HolesCorrect >= 10 {
		s.Earned[HoleFinder] = true
	}
	if s.CurrentLevel > s.MaxEarnedLevel {
		s.MaxEarnedLevel = s.CurrentLevel
	}
	if s.MaxEarnedLevel > 1 {
		s.Earned[LevelUp] = true
	}
}

// Accuracy returns the fraction of questions answered correctly (0-1).
func (s *PlayerStats) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalQuestions)
}

// AverageTime returns the mean response time across all questions.
func (s *PlayerStats) AverageTime() time.Duration {
	if s.TotalQuestions == 0 {
		return 0
	}
	return s.TotalTime / time.Duration(s.TotalQuestions)
}
