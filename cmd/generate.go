package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/phase"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <sector>",
	Short: "Generate an assessment for a sector (no database)",
	Long: `Generate a ten-question assessment and print it as JSON.

With --interactive the questions are asked on the terminal and the answers
are scored and remediated like a real attempt. This is a stateless tool:
no database, no progress tracking, no events.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("phase", string(phase.First()), "Phase to assess at")
	generateCmd.Flags().BoolP("interactive", "i", false, "Take the assessment on the terminal")
	generateCmd.Flags().Bool("offline", false, "Use built-in sample questions instead of an AI provider")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sector := strings.TrimSpace(args[0])
	phaseVal, _ := cmd.Flags().GetString("phase")
	interactive, _ := cmd.Flags().GetBool("interactive")
	offline, _ := cmd.Flags().GetBool("offline")

	p, err := phase.Parse(phaseVal)
	if err != nil {
		return err
	}

	// No EventRepo: logging skipped.
	ctx := cmd.Context()
	provider, err := buildProvider(ctx, offline, llm.Options{})
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	cfg := assessment.DefaultConfig()
	questions, err := assessment.NewGenerator(provider, cfg).Generate(ctx, sector, p)
	if err != nil {
		return err
	}
	quiz := &assessment.Quiz{Sector: sector, Phase: p, Questions: questions}

	if !interactive {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(quiz)
	}
	return takeQuiz(ctx, provider, cfg, quiz)
}

func takeQuiz(ctx context.Context, provider llm.Provider, cfg assessment.Config, quiz *assessment.Quiz) error {
	scanner := bufio.NewScanner(os.Stdin)
	answers := assessment.AnswerSet{}

	fmt.Printf("Sector: %s (%s)\n\n", quiz.Sector, quiz.Phase)

	for i, q := range quiz.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(quiz.Questions))
		fmt.Println(q.Text)
		for j, o := range q.Options {
			fmt.Printf("  %c) %s\n", 'a'+j, o)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if len(answer) != 1 || answer[0] < 'a' || int(answer[0]-'a') >= len(q.Options) {
			fmt.Print("(skipped)\n\n")
			continue
		}
		answers[q.ID] = int(answer[0] - 'a')
		fmt.Println()
	}

	sc, err := assessment.NewEvaluator(provider, cfg, nil).Evaluate(ctx, quiz.Sector, quiz.Phase, quiz.Questions, answers)
	if err != nil {
		return err
	}

	verdict := "\033[31mnot passed\033[0m"
	if sc.Passed {
		verdict = "\033[32mpassed\033[0m"
	}
	fmt.Printf("── Score: %d/100, %d of %d correct, %s ──\n\n", sc.Score, sc.Correct, sc.Total, verdict)
	fmt.Println(sc.GapAnalysis)
	printList("Online", sc.Prescriptions.Online)
	printList("Offline", sc.Prescriptions.Offline)
	if sc.RemediationFallback {
		fmt.Printf("\n(general guidance: %v)\n", sc.RemediationErr)
	}
	return nil
}

func printList(heading string, items []string) {
	fmt.Printf("\n%s:\n", heading)
	for _, it := range items {
		fmt.Printf("  • %s\n", it)
	}
}
