package leaderboard

import (
	"os"
	"path/filepath"
	"testing"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "leaderboard.json"))
}

func TestUpdateScoreCreatesAndAccumulates(t *testing.T) {
	m := testManager(t)

	m.UpdateScore("ada", 300, 2, "practice")
	m.UpdateScore("ada", 500, 3, "timed")

	stats, ok := m.Stats("ada")
	if !ok {
		t.Fatal("expected stats for ada")
	}
	if stats.TotalScore != 800 {
		t.Errorf("total score = %d, want 800", stats.TotalScore)
	}
	if stats.GamesPlayed != 2 {
		t.Errorf("games played = %d, want 2", stats.GamesPlayed)
	}
	if stats.BestScore != 500 {
		t.Errorf("best score = %d, want 500", stats.BestScore)
	}
	if stats.MaxLevel != 3 {
		t.Errorf("max level = %d, want 3", stats.MaxLevel)
	}
	if stats.LastPlayed == nil {
		t.Error("last played not set")
	}
}

func TestEntriesSortedByTotalScore(t *testing.T) {
	m := testManager(t)
	m.UpdateScore("ada", 100, 1, "practice")
	m.UpdateScore("grace", 900, 1, "practice")
	m.UpdateScore("alan", 500, 1, "practice")

	entries := m.Entries()
	want := []string{"grace", "alan", "ada"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].PlayerName != name {
			t.Errorf("entry %d = %s, want %s", i, entries[i].PlayerName, name)
		}
	}

	if rank, ok := m.Rank("alan"); !ok || rank != 2 {
		t.Errorf("alan rank = %d (%v), want 2", rank, ok)
	}
	if _, ok := m.Rank("nobody"); ok {
		t.Error("unknown player should have no rank")
	}
}

func TestHistoryTrimmedToFifty(t *testing.T) {
	m := testManager(t)
	for i := 0; i < 60; i++ {
		m.UpdateScore("ada", i, 1, "practice")
	}

	all := m.History("ada", 0)
	if len(all) != maxGameRecords {
		t.Fatalf("history length = %d, want %d", len(all), maxGameRecords)
	}
	// Oldest retained record should be game #10 (score 10).
	if all[0].Score != 10 {
		t.Errorf("oldest retained score = %d, want 10", all[0].Score)
	}

	last := m.History("ada", 5)
	if len(last) != 5 || last[4].Score != 59 {
		t.Errorf("limited history = %v, want final 5 games", last)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.json")

	m := New(path)
	m.UpdateScore("ada", 250, 2, "multiplayer")

	reopened := New(path)
	stats, ok := reopened.Stats("ada")
	if !ok {
		t.Fatal("record lost across reopen")
	}
	if stats.TotalScore != 250 || stats.MaxLevel != 2 {
		t.Errorf("reloaded stats = %+v", stats)
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := New(path)
	if len(m.Entries()) != 0 {
		t.Error("corrupt file should yield an empty board")
	}
}

func TestResetPlayer(t *testing.T) {
	m := testManager(t)
	m.UpdateScore("ada", 100, 1, "practice")
	m.ResetPlayer("ada")

	if _, ok := m.Stats("ada"); ok {
		t.Error("reset player still present")
	}
}

func TestSummarize(t *testing.T) {
	m := testManager(t)
	m.UpdateScore("ada", 100, 1, "practice")
	m.UpdateScore("ada", 100, 1, "practice")
	m.UpdateScore("grace", 900, 1, "timed")

	s := m.Summarize()
	if s.TotalPlayers != 2 {
		t.Errorf("players = %d, want 2", s.TotalPlayers)
	}
	if s.TotalGames != 3 {
		t.Errorf("games = %d, want 3", s.TotalGames)
	}
	if s.HighestScore != 900 {
		t.Errorf("highest = %d, want 900", s.HighestScore)
	}
	if s.MostActivePlayer != "ada" {
		t.Errorf("most active = %s, want ada", s.MostActivePlayer)
	}
	if s.AverageScore != 550 {
		t.Errorf("average = %v, want 550", s.AverageScore)
	}
}
