package cmd

import (
	"context"
	"fmt"

	"github.com/rahulv/mathquest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the account-wide score",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		score, err := s.SessionRepo().UserScore(context.Background())
		if err != nil {
			return fmt.Errorf("query score: %w", err)
		}

		fmt.Printf("Total score:        %d\n", score.TotalScore)
		fmt.Printf("Problems attempted: %d\n", score.ProblemsAttempted)
		fmt.Printf("Problems solved:    %d\n", score.ProblemsSolved)
		if score.ProblemsAttempted > 0 {
			rate := float64(score.ProblemsSolved) / float64(score.ProblemsAttempted) * 100
			fmt.Printf("Solve rate:         %.0f%%\n", rate)
		}
		return nil
	},
}
