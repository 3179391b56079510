package assessment

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/ksa/internal/phase"
)

func TestDemoProvider_RoundTrip(t *testing.T) {
	provider := NewDemoProvider()
	cfg := DefaultConfig()

	qs, err := NewGenerator(provider, cfg).Generate(context.Background(), "Data Analytics", phase.Basic)
	if err != nil {
		t.Fatalf("demo generation failed: %v", err)
	}
	if len(qs) != QuizSize {
		t.Fatalf("got %d questions", len(qs))
	}
	for i, q := range qs {
		if q.CorrectAnswer != i%OptionCount {
			t.Errorf("question %d: correct = %d", q.ID, q.CorrectAnswer)
		}
		if q.Options[q.CorrectAnswer] != "The correct option" {
			t.Errorf("question %d: correct option text = %q", q.ID, q.Options[q.CorrectAnswer])
		}
		if !strings.Contains(q.Text, "Data Analytics") {
			t.Errorf("question %d does not mention the sector: %q", q.ID, q.Text)
		}
	}

	sc, err := NewEvaluator(provider, cfg, nil).Evaluate(context.Background(), "Data Analytics", phase.Basic, qs, answersWithCorrect(qs, 7))
	if err != nil {
		t.Fatalf("demo evaluation failed: %v", err)
	}
	if sc.Score != 70 || !sc.Passed || sc.RemediationFallback {
		t.Errorf("scorecard = %+v", sc)
	}
	if !strings.Contains(sc.GapAnalysis, "Data Analytics") {
		t.Errorf("gap analysis = %q", sc.GapAnalysis)
	}
}

func TestPromptField(t *testing.T) {
	if got := promptField("Sector: Soft Skills\nPhase: Basic", "Phase"); got != "Basic" {
		t.Errorf("got %q", got)
	}
	if got := promptField("nothing here", "Sector"); got != "General" {
		t.Errorf("got %q", got)
	}
}
