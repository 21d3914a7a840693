// Package store persists per-answer match history in SQLite, backing
// the stats command and cross-session totals. The driver is the pure Go
// modernc.org/sqlite, so no CGO is involved.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the answer-event database.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS answer_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player TEXT NOT NULL,
		mode TEXT NOT NULL,
		kind TEXT NOT NULL,
		difficulty INTEGER NOT NULL,
		correct INTEGER NOT NULL,
		time_ms INTEGER NOT NULL,
		score INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`)
	if err != nil {
		return fmt.Errorf("create answer_events: %w", err)
	}
	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_answer_events_player
		ON answer_events (player)`)
	if err != nil {
		return fmt.Errorf("index answer_events: %w", err)
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. FUNCQUEST_DB environment variable
// 2. $XDG_DATA_HOME/funcquest/funcquest.db
// 3. ~/.local/share/funcquest/funcquest.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("FUNCQUEST_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "funcquest", "funcquest.db")
	return p, EnsureDir(p)
}

// DefaultDataDir resolves the directory holding the database and the
// leaderboard file, creating it if needed.
func DefaultDataDir() (string, error) {
	p, err := DefaultDBPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
