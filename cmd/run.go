package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psen/funcquest/internal/app"
	"github.com/psen/funcquest/internal/leaderboard"
	"github.com/psen/funcquest/internal/store"
)

// runApp opens the store and the leaderboard, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	setupLogging(dbPath)

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	lbPath, err := resolveLeaderboardPath(cmd, dbPath)
	if err != nil {
		return fmt.Errorf("resolve leaderboard path: %w", err)
	}
	lb := leaderboard.New(lbPath)

	return app.Run(st.EventRepo(), lb)
}
