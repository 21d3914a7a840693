package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psen/funcquest/internal/leaderboard"
	"github.com/psen/funcquest/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <player>",
	Short: "Erase a player's history and leaderboard entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		player := args[0]

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Erase all data for %s? [y/N] ", player)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.EventRepo().DeletePlayer(cmd.Context(), player); err != nil {
			return fmt.Errorf("delete answer history: %w", err)
		}

		lbPath, err := resolveLeaderboardPath(cmd, dbPath)
		if err != nil {
			return fmt.Errorf("resolve leaderboard path: %w", err)
		}
		leaderboard.New(lbPath).ResetPlayer(player)

		fmt.Printf("Erased %s.\n", player)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
