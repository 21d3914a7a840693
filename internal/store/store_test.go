package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='answer_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "answer_events" {
		t.Errorf("table name = %q, want 'answer_events'", name)
	}
}

func TestAppendAndSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEvent{
		{Player: "ada", Mode: "practice", Kind: "vertical_asymptotes", Difficulty: 1, Correct: true, TimeTaken: 3 * time.Second, Score: 150},
		{Player: "ada", Mode: "practice", Kind: "holes", Difficulty: 2, Correct: false, TimeTaken: 9 * time.Second, Score: 0},
		{Player: "ada", Mode: "timed", Kind: "holes", Difficulty: 3, Correct: true, TimeTaken: 6 * time.Second, Score: 150},
		{Player: "bob", Mode: "practice", Kind: "x_intercepts", Difficulty: 1, Correct: true, TimeTaken: 2 * time.Second, Score: 150},
	}
	for i, ev := range events {
		if err := repo.Append(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	sum, err := repo.Summary(ctx, "ada")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalAnswers != 3 {
		t.Errorf("total answers = %d, want 3", sum.TotalAnswers)
	}
	if sum.TotalCorrect != 2 {
		t.Errorf("total correct = %d, want 2", sum.TotalCorrect)
	}
	if sum.TotalScore != 300 {
		t.Errorf("total score = %d, want 300", sum.TotalScore)
	}
	if sum.AvgTimeMS != 6000 {
		t.Errorf("avg time = %v, want 6000", sum.AvgTimeMS)
	}
}

func TestSummaryEmptyPlayer(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	sum, err := repo.Summary(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalAnswers != 0 || sum.TotalScore != 0 {
		t.Errorf("expected zero summary, got %+v", sum)
	}
}

func TestByKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		ev := AnswerEvent{Player: "ada", Mode: "practice", Kind: "holes", Difficulty: 1, Correct: i%2 == 0}
		if err := repo.Append(ctx, ev); err != nil {
			t.Fatalf("append holes %d: %v", i, err)
		}
	}
	ev := AnswerEvent{Player: "ada", Mode: "practice", Kind: "horizontal_asymptote", Difficulty: 2, Correct: true}
	if err := repo.Append(ctx, ev); err != nil {
		t.Fatalf("append asymptote: %v", err)
	}

	stats, err := repo.ByKind(ctx, "ada")
	if err != nil {
		t.Fatalf("by kind: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("kinds = %d, want 2", len(stats))
	}
	// Sorted by kind, so holes comes first.
	if stats[0].Kind != "holes" || stats[0].Total != 4 || stats[0].Correct != 2 {
		t.Errorf("holes stats = %+v", stats[0])
	}
	if stats[1].Kind != "horizontal_asymptote" || stats[1].Total != 1 || stats[1].Correct != 1 {
		t.Errorf("asymptote stats = %+v", stats[1])
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ev := AnswerEvent{Player: "ada", Mode: "practice", Kind: "holes", Difficulty: 1, Score: i * 10}
		if err := repo.Append(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, "ada", 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("len = %d, want 3", len(recent))
	}
	// Newest first.
	if recent[0].Score != 40 || recent[2].Score != 20 {
		t.Errorf("scores = %d,%d,%d, want 40,30,20", recent[0].Score, recent[1].Score, recent[2].Score)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be populated")
	}
}
