package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/psen/funcquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "funcquest",
	Short: "Rational function quiz game",
	Long:  "FuncQuest — a terminal quiz game about the features of rational functions: asymptotes, holes, and intercepts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FUNCQUEST_DB env var)")
	rootCmd.PersistentFlags().String("leaderboard", "", "Path to leaderboard JSON file (default: next to the database)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then FUNCQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLeaderboardPath returns the leaderboard file path: --leaderboard
// flag if set, otherwise leaderboard.json next to the database.
func resolveLeaderboardPath(cmd *cobra.Command, dbPath string) (string, error) {
	if p, _ := cmd.Flags().GetString("leaderboard"); p != "" {
		return p, store.EnsureDir(p)
	}
	return filepath.Join(filepath.Dir(dbPath), "leaderboard.json"), nil
}

// setupLogging sends logrus output to funcquest.log next to the
// database. The TUI owns stdout, so nothing may log there. Level comes
// from FUNCQUEST_LOG_LEVEL (default warn).
func setupLogging(dbPath string) {
	level := logrus.WarnLevel
	if raw := os.Getenv("FUNCQUEST_LOG_LEVEL"); raw != "" {
		if parsed, err := logrus.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	logrus.SetLevel(level)

	logPath := filepath.Join(filepath.Dir(dbPath), "funcquest.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	logrus.SetOutput(f)
}
