package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psen/funcquest/internal/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		lbPath, err := resolveLeaderboardPath(cmd, dbPath)
		if err != nil {
			return fmt.Errorf("resolve leaderboard path: %w", err)
		}

		lb := leaderboard.New(lbPath)
		entries := lb.Top(0)
		if len(entries) == 0 {
			fmt.Println("No games recorded yet.")
			return nil
		}

		fmt.Printf("%-4s %-20s %10s %7s %8s %7s\n", "#", "Player", "Score", "Games", "Best", "Level")
		for i, e := range entries {
			fmt.Printf("%-4d %-20s %10d %7d %8d %7d\n",
				i+1, e.PlayerName, e.TotalScore, e.GamesPlayed, e.BestScore, e.MaxLevel)
		}

		sum := lb.Summarize()
		fmt.Printf("\n%d players, %d games, high score %d\n",
			sum.TotalPlayers, sum.TotalGames, sum.HighestScore)
		return nil
	},
}
