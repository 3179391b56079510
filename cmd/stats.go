package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/ksa/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show assessment statistics by sector",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		repo := s.EventRepo()

		stats, err := repo.AssessmentStatsBySector(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		sessions, err := repo.CountSessions(ctx)
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}

		if len(stats) == 0 {
			fmt.Printf("No assessments recorded yet (%d sessions).\n", sessions)
			return nil
		}

		fmt.Println("Assessments by Sector")
		fmt.Println(strings.Repeat("─", 84))
		fmt.Printf("%-28s  %8s  %6s  %7s  %5s  %-20s\n",
			"Sector", "Attempts", "Passed", "Avg", "Best", "Reached")
		fmt.Println(strings.Repeat("─", 84))

		var attempts, passes int
		for _, st := range stats {
			fmt.Printf("%-28s  %8d  %6d  %7.1f  %5d  %-20s\n",
				truncate(st.Sector, 28), st.Attempts, st.Passes, st.AvgScore, st.BestScore, st.HighestPhase)
			attempts += st.Attempts
			passes += st.Passes
		}
		fmt.Println(strings.Repeat("─", 84))
		fmt.Printf("%-28s  %8d  %6d\n", "TOTAL", attempts, passes)
		fmt.Printf("\nSessions: %d\n", sessions)

		if recent <= 0 {
			return nil
		}

		events, err := repo.QueryAssessmentEvents(ctx, store.QueryOpts{Limit: recent})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}
		fmt.Println()
		fmt.Println("Recent Attempts")
		fmt.Println(strings.Repeat("─", 84))
		for _, e := range events {
			result := "pass"
			if !e.Passed {
				result = "fail"
			}
			fmt.Printf("%-19s  %-24s  %-18s  %3d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.Sector, 24), e.Phase, e.Score, result)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("recent", "n", 10, "Number of recent attempts to list (0 to hide)")
}
