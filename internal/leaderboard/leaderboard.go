// Package leaderboard persists player standings in a flat JSON file
// keyed by player name. Persistence is best effort: a missing or
// corrupt file yields an empty board, and failed writes are logged and
// swallowed so gameplay never stalls on disk problems.
package leaderboard

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// maxGameRecords caps the per-player history so the file stays small.
const maxGameRecords = 50

// GameRecord is one finished game.
type GameRecord struct {
	Score int       `json:"score"`
	Level int       `json:"level"`
	Mode  string    `json:"mode"`
	Date  time.Time `json:"date"`
}

// PlayerRecord is the persisted state for one player.
type PlayerRecord struct {
	TotalScore  int          `json:"total_score"`
	GamesPlayed int          `json:"games_played"`
	BestScore   int          `json:"best_score"`
	MaxLevel    int          `json:"max_level"`
	LastPlayed  *time.Time   `json:"last_played"`
	GameScores  []GameRecord `json:"game_scores"`
}

// Entry is one row of the rendered leaderboard.
type Entry struct {
	PlayerName  string
	TotalScore  int
	GamesPlayed int
	BestScore   int
	MaxLevel    int
	AvgScore    float64
	LastPlayed  *time.Time
}

// Summary aggregates the whole board.
type Summary struct {
	TotalPlayers     int
	TotalGames       int
	AverageScore     float64
	HighestScore     int
	MostActivePlayer string
}

// Manager owns the leaderboard file. Safe for concurrent use.
type Manager struct {
	path string

	mu   sync.Mutex
	data map[string]*PlayerRecord
}

// New opens the leaderboard at path, loading existing data if present.
func New(path string) *Manager {
	m := &Manager{
		path: path,
		data: make(map[string]*PlayerRecord),
	}
	m.load()
	return m
}

func (m *Manager) load() {
	raw, err := os.ReadFile(m.path)
	if err != nil {
		return // first run or unreadable: start empty
	}
	if err := json.Unmarshal(raw, &m.data); err != nil {
		logrus.WithError(err).Warn("leaderboard file corrupt, starting empty")
		m.data = make(map[string]*PlayerRecord)
	}
}

// save writes the board back to disk. Must be called with mu held.
func (m *Manager) save() {
	raw, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("leaderboard encode failed")
		return
	}
	if err := os.WriteFile(m.path, raw, 0o644); err != nil {
		logrus.WithError(err).Warn("leaderboard save failed")
	}
}

// UpdateScore records a finished game for the player, creating the
// record on first sight and trimming history to the last 50 games.
func (m *Manager) UpdateScore(player string, score, level int, mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := m.data[player]
	if rec == nil {
		rec = &PlayerRecord{MaxLevel: 1}
		m.data[player] = rec
	}

	now := time.Now()
	rec.TotalScore += score
	rec.GamesPlayed++
	if score > rec.BestScore {
		rec.BestScore = score
	}
	if level > rec.MaxLevel {
		rec.MaxLevel = level
	}
	rec.LastPlayed = &now

	rec.GameScores = append(rec.GameScores, GameRecord{
		Score: score,
		Level: level,
		Mode:  mode,
		Date:  now,
	})
	if len(rec.GameScores) > maxGameRecords {
		rec.GameScores = rec.GameScores[len(rec.GameScores)-maxGameRecords:]
	}

	m.save()
}

// Entries returns all players sorted by total score descending.
func (m *Manager) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, 0, len(m.data))
	for name, rec := range m.data {
		games := rec.GamesPlayed
		if games == 0 {
			games = 1
		}
		out = append(out, Entry{
			PlayerName:  name,
			TotalScore:  rec.TotalScore,
			GamesPlayed: rec.GamesPlayed,
			BestScore:   rec.BestScore,
			MaxLevel:    rec.MaxLevel,
			AvgScore:    float64(rec.TotalScore) / float64(games),
			LastPlayed:  rec.LastPlayed,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalScore != out[j].TotalScore {
			return out[i].TotalScore > out[j].TotalScore
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out
}

// Top returns the first limit entries (all of them when limit <= 0).
func (m *Manager) Top(limit int) []Entry {
	entries := m.Entries()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Rank returns the player's 1-based rank, or false if unknown.
func (m *Manager) Rank(player string) (int, bool) {
	for i, e := range m.Entries() {
		if e.PlayerName == player {
			return i + 1, true
		}
	}
	return 0, false
}

// History returns the player's most recent game records, newest last.
func (m *Manager) History(player string, limit int) []GameRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := m.data[player]
	if rec == nil {
		return nil
	}
	scores := rec.GameScores
	if limit > 0 && len(scores) > limit {
		scores = scores[len(scores)-limit:]
	}
	out := make([]GameRecord, len(scores))
	copy(out, scores)
	return out
}

// PlayerStats describes one player's standing in detail.
type PlayerStats struct {
	Entry
	RecentAvg   float64
	RecentBest  int
	RecentGames int
}

// Stats returns detailed statistics for the player, including
// aggregates over the last 10 games.
func (m *Manager) Stats(player string) (*PlayerStats, bool) {
	m.mu.Lock()
	rec := m.data[player]
	m.mu.Unlock()
	if rec == nil {
		return nil, false
	}

	games := rec.GamesPlayed
	if games == 0 {
		games = 1
	}
	stats := &PlayerStats{
		Entry: Entry{
			PlayerName:  player,
			TotalScore:  rec.TotalScore,
			GamesPlayed: rec.GamesPlayed,
			BestScore:   rec.BestScore,
			MaxLevel:    rec.MaxLevel,
			AvgScore:    float64(rec.TotalScore) / float64(games),
			LastPlayed:  rec.LastPlayed,
		},
	}

	recent := rec.GameScores
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	for _, g := range recent {
		stats.RecentAvg += float64(g.Score)
		if g.Score > stats.RecentBest {
			stats.RecentBest = g.Score
		}
	}
	stats.RecentGames = len(recent)
	if len(recent) > 0 {
		stats.RecentAvg /= float64(len(recent))
	}

	return stats, true
}

// ResetPlayer removes the player's record entirely.
func (m *Manager) ResetPlayer(player string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[player]; !ok {
		return
	}
	delete(m.data, player)
	m.save()
}

// Summarize aggregates the whole board for the leaderboard screen.
func (m *Manager) Summarize() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Summary{TotalPlayers: len(m.data)}
	mostActiveGames := -1
	for name, rec := range m.data {
		s.TotalGames += rec.GamesPlayed
		s.AverageScore += float64(rec.TotalScore)
		if rec.TotalScore > s.HighestScore {
			s.HighestScore = rec.TotalScore
		}
		if rec.GamesPlayed > mostActiveGames {
			mostActiveGames = rec.GamesPlayed
			s.MostActivePlayer = name
		}
	}
	if len(m.data) > 0 {
		s.AverageScore /= float64(len(m.data))
	}
	return s
}
