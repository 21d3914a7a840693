package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psen/funcquest/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <player>",
	Short: "Show a player's answer history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		player := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		sum, err := repo.Summary(ctx, player)
		if err != nil {
			return fmt.Errorf("load summary: %w", err)
		}
		if sum.TotalAnswers == 0 {
			fmt.Printf("No answers recorded for %s.\n", player)
			return nil
		}

		accuracy := float64(sum.TotalCorrect) / float64(sum.TotalAnswers) * 100
		fmt.Printf("%s\n", player)
		fmt.Printf("  answered   %d\n", sum.TotalAnswers)
		fmt.Printf("  correct    %d (%.1f%%)\n", sum.TotalCorrect, accuracy)
		fmt.Printf("  score      %d\n", sum.TotalScore)
		fmt.Printf("  avg time   %.1fs\n", sum.AvgTimeMS/1000)

		byKind, err := repo.ByKind(ctx, player)
		if err != nil {
			return fmt.Errorf("load per-kind stats: %w", err)
		}
		if len(byKind) > 0 {
			fmt.Println("\n  by feature:")
			for _, ks := range byKind {
				fmt.Printf("    %-22s %d/%d\n", ks.Kind, ks.Correct, ks.Total)
			}
		}
		return nil
	},
}
