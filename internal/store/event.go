package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AnswerEvent is one answered question: who answered, in which mode, what
// feature was asked, and how it went.
type AnswerEvent struct {
	ID         int64
	Player     string
	Mode       string
	Kind       string
	Difficulty int
	Correct    bool
	TimeTaken  time.Duration
	Score      int
	CreatedAt  time.Time
}

// PlayerSummary aggregates a player's answer history.
type PlayerSummary struct {
	Player       string
	TotalAnswers int
	TotalCorrect int
	TotalScore   int
	AvgTimeMS    float64
}

// KindStats aggregates answers for one feature kind.
type KindStats struct {
	Kind    string
	Total   int
	Correct int
}

// EventRepo provides append and query access to answer events.
type EventRepo interface {
	// Append records one answered question.
	Append(ctx context.Context, ev AnswerEvent) error
	// Summary aggregates all of a player's answers.
	Summary(ctx context.Context, player string) (PlayerSummary, error)
	// ByKind breaks a player's answers down per feature kind.
	ByKind(ctx context.Context, player string) ([]KindStats, error)
	// Recent returns the player's latest events, newest first.
	Recent(ctx context.Context, player string, limit int) ([]AnswerEvent, error)
	// DeletePlayer removes all of a player's events.
	DeletePlayer(ctx context.Context, player string) error
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) Append(ctx context.Context, ev AnswerEvent) error {
	correct := 0
	if ev.Correct {
		correct = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_events (player, mode, kind, difficulty, correct, time_ms, score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
		ev.Player, ev.Mode, ev.Kind, ev.Difficulty, correct, ev.TimeTaken.Milliseconds(), ev.Score,
	)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) DeletePlayer(ctx context.Context, player string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM answer_events WHERE player = ?`, player)
	if err != nil {
		return fmt.Errorf("delete player events: %w", err)
	}
	return nil
}

func (r *eventRepo) Summary(ctx context.Context, player string) (PlayerSummary, error) {
	sum := PlayerSummary{Player: player}
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(correct), 0),
		        COALESCE(SUM(score), 0),
		        COALESCE(AVG(time_ms), 0)
		 FROM answer_events WHERE player = ?`,
		player,
	).Scan(&sum.TotalAnswers, &sum.TotalCorrect, &sum.TotalScore, &sum.AvgTimeMS)
	if err != nil {
		return PlayerSummary{}, fmt.Errorf("player summary: %w", err)
	}
	return sum, nil
}

func (r *eventRepo) ByKind(ctx context.Context, player string) ([]KindStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, COUNT(*), COALESCE(SUM(correct), 0)
		 FROM answer_events WHERE player = ?
		 GROUP BY kind ORDER BY kind`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("stats by kind: %w", err)
	}
	defer rows.Close()

	var out []KindStats
	for rows.Next() {
		var ks KindStats
		if err := rows.Scan(&ks.Kind, &ks.Total, &ks.Correct); err != nil {
			return nil, fmt.Errorf("scan kind stats: %w", err)
		}
		out = append(out, ks)
	}
	return out, rows.Err()
}

func (r *eventRepo) Recent(ctx context.Context, player string, limit int) ([]AnswerEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, player, mode, kind, difficulty, correct, time_ms, score, created_at
		 FROM answer_events WHERE player = ?
		 ORDER BY id DESC LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var (
			ev      AnswerEvent
			correct int
			timeMS  int64
			created string
		)
		if err := rows.Scan(&ev.ID, &ev.Player, &ev.Mode, &ev.Kind, &ev.Difficulty,
			&correct, &timeMS, &ev.Score, &created); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		ev.Correct = correct != 0
		ev.TimeTaken = time.Duration(timeMS) * time.Millisecond
		if t, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
			ev.CreatedAt = t
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
