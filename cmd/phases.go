package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/phase"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/spf13/cobra"
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "List the proficiency phases in order",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-5s  %-20s  %s\n", "Step", "Phase", "Passing earns")
		fmt.Println(strings.Repeat("─", 60))
		for i, p := range phase.All() {
			next, ok := phase.Next(p)
			earns := fmt.Sprintf("%s + %d points", next, progress.PointsPerPass)
			if !ok {
				earns = fmt.Sprintf("%d points (top of the ladder)", progress.PointsPerPass)
			}
			fmt.Printf("%-5d  %-20s  %s\n", i+1, p, earns)
		}
		fmt.Printf("\nA score of %d or more out of 100 passes.\n", assessment.PassThreshold)
	},
}
