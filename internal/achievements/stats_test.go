package achievements

import (
	"testing"
	"time"

	"github.com/psen/funcquest/internal/ratfunc"
)

func containsID(list []Achievement, id ID) bool {
	for _, a := range list {
		if a.ID == id {
			return true
		}
	}
	return false
}

func TestFirstCorrectAwardedOnce(t *testing.T) {
	s := NewPlayerStats()

	earned := s.Record(ratfunc.KindHoles, true, 10*time.Second, 100)
	if !containsID(earned, FirstCorrect) {
		t.Fatal("first correct answer should award FirstCorrect")
	}

	earned = s.Record(ratfunc.KindHoles, true, 10*time.Second, 100)
	if containsID(earned, FirstCorrect) {
		t.Error("FirstCorrect awarded twice")
	}
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	s := NewPlayerStats()
	s.Record(ratfunc.KindHoles, true, 10*time.Second, 100)
	s.Record(ratfunc.KindHoles, true, 10*time.Second, 100)
	if s.CurrentStreak != 2 {
		t.Fatalf("streak = %d, want 2", s.CurrentStreak)
	}

	s.Record(ratfunc.KindHoles, false, 10*time.Second, 0)
	if s.CurrentStreak != 0 {
		t.Errorf("streak after miss = %d, want 0", s.CurrentStreak)
	}
	if s.MaxStreak != 2 {
		t.Errorf("max streak = %d, want 2", s.MaxStreak)
	}
}

func TestPerfectionistAtTenInARow(t *testing.T) {
	s := NewPlayerStats()
	var last []Achievement
	for i := 0; i < 10; i++ {
		last = s.Record(ratfunc.KindXIntercepts, true, 10*time.Second, 100)
	}
	if !containsID(last, Perfectionist) {
		t.Error("10 correct in a row should award Perfectionist")
	}
}

func TestSpeedDemonCountsOnlyQuickCorrect(t *testing.T) {
	s := NewPlayerStats()
	for i := 0; i < 4; i++ {
		s.Record(ratfunc.KindHoles, true, 2*time.Second, 100)
	}
	// Quick but wrong: must not count.
	s.Record(ratfunc.KindHoles, false, time.Second, 0)
	if s.QuickAnswers != 4 {
		t.Fatalf("quick answers = %d, want 4", s.QuickAnswers)
	}

	earned := s.Record(ratfunc.KindHoles, true, time.Second, 100)
	if !containsID(earned, SpeedDemon) {
		t.Error("fifth quick correct answer should award SpeedDemon")
	}
}

func TestKindCountersFeedKindAchievements(t *testing.T) {
	s := NewPlayerStats()

	// Both asymptote kinds feed AsymptoteMaster.
	var last []Achievement
	for i := 0; i < 10; i++ {
		s.Record(ratfunc.KindVerticalAsymptotes, true, 10*time.Second, 0)
		last = s.Record(ratfunc.KindHorizontalAsymptote, true, 10*time.Second, 0)
	}
	if s.AsymptotesCorrect != 20 {
		t.Fatalf("asymptotes correct = %d, want 20", s.AsymptotesCorrect)
	}
	if !containsID(last, AsymptoteMaster) {
		t.Error("20 correct asymptotes should award AsymptoteMaster")
	}
}

func TestHoleFinderThreshold(t *testing.T) {
	s := NewPlayerStats()
	var last []Achievement
	for i := 0; i < 10; i++ {
		last = s.Record(ratfunc.KindHoles, true, 10*time.Second, 0)
	}
	if !containsID(last, HoleFinder) {
		t.Error("10 correct holes should award HoleFinder")
	}
}

func TestLevelUpOnLevelBoundary(t *testing.T) {
	s := NewPlayerStats()

	// Not awarded while still level 1.
	earned := s.Record(ratfunc.KindHoles, true, 10*time.Second, 100)
	if containsID(earned, LevelUp) {
		t.Fatal("LevelUp awarded at level 1")
	}

	// Cross the level 2 requirement in one large scoring event.
	earned = s.Record(ratfunc.KindHoles, true, 10*time.Second, 3000)
	if !containsID(earned, LevelUp) {
		t.Error("crossing a level boundary should award LevelUp")
	}
	if s.CurrentLevel != 2 {
		t.Errorf("level = %d, want 2", s.CurrentLevel)
	}
}

func TestReconcileMarksPastMilestonesWithoutPoints(t *testing.T) {
	s := NewPlayerStats()
	s.TotalCorrect = 12
	s.HolesCorrect = 10
	s.TotalScore = 3200
	s.CurrentLevel = 2

	s.Reconcile()

	if !s.Earned[FirstCorrect] || !s.Earned[HoleFinder] || !s.Earned[LevelUp] {
		t.Fatalf("seeded milestones not marked earned: %v", s.Earned)
	}
	if s.TotalScore != 3200 {
		t.Errorf("reconcile changed score: %d", s.TotalScore)
	}

	// The next answer must not re-announce them.
	earned := s.Record(ratfunc.KindHoles, true, 10*time.Second, 100)
	if containsID(earned, FirstCorrect) || containsID(earned, HoleFinder) {
		t.Error("reconciled achievements re-awarded")
	}
}

func TestReconcileFreshStatsEarnsNothing(t *testing.T) {
	s := NewPlayerStats()
	s.Reconcile()
	if len(s.Earned) != 0 {
		t.Errorf("fresh stats earned %v", s.Earned)
	}
}

func TestAccuracy(t *testing.T) {
	s := NewPlayerStats()
	if s.Accuracy() != 0 {
		t.Error("empty stats accuracy should be 0")
	}
	s.Record(ratfunc.KindHoles, true, time.Second, 100)
	s.Record(ratfunc.KindHoles, false, time.Second, 0)
	if got := s.Accuracy(); got != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", got)
	}
}
