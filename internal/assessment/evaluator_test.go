package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/phase"
)

func TestScore(t *testing.T) {
	qs := sampleQuestions(QuizSize)

	tests := []struct {
		name    string
		answers AnswerSet
		correct int
		score   int
		passed  bool
	}{
		{"all correct", answersWithCorrect(qs, 10), 10, 100, true},
		{"seven correct is the threshold", answersWithCorrect(qs, 7), 7, 70, true},
		{"six correct fails", answersWithCorrect(qs, 6), 6, 60, false},
		{"none correct", answersWithCorrect(qs, 0), 0, 0, false},
		{"unanswered count as wrong", AnswerSet{1: qs[0].CorrectAnswer, 2: qs[1].CorrectAnswer}, 2, 20, false},
		{"empty answer set", AnswerSet{}, 0, 0, false},
		{"unknown ids ignored", AnswerSet{99: 0, 1: qs[0].CorrectAnswer}, 1, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, total, score := Score(qs, tt.answers)
			if correct != tt.correct || total != QuizSize || score != tt.score {
				t.Errorf("Score() = (%d, %d, %d), want (%d, %d, %d)",
					correct, total, score, tt.correct, QuizSize, tt.score)
			}
			if Passed(score) != tt.passed {
				t.Errorf("Passed(%d) = %v, want %v", score, !tt.passed, tt.passed)
			}
		})
	}
}

func TestScore_RoundsOddTotals(t *testing.T) {
	qs := sampleQuestions(3)
	_, _, score := Score(qs, answersWithCorrect(qs, 2))
	if score != 67 {
		t.Errorf("2 of 3 = %d, want 67", score)
	}
	_, _, score = Score(qs, answersWithCorrect(qs, 1))
	if score != 33 {
		t.Errorf("1 of 3 = %d, want 33", score)
	}
}

func TestEvaluate_WithRemediation(t *testing.T) {
	qs := sampleQuestions(QuizSize)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(remediationJSON)})
	ev := NewEvaluator(mock, DefaultConfig(), nil)

	sc, err := ev.Evaluate(context.Background(), "Cloud Computing", phase.Beginner, qs, answersWithCorrect(qs, 8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Score != 80 || !sc.Passed || sc.Correct != 8 || sc.Total != 10 {
		t.Errorf("scorecard = %+v", sc)
	}
	if sc.RemediationFallback || sc.RemediationErr != nil {
		t.Error("did not expect the fallback")
	}
	if !strings.Contains(sc.GapAnalysis, "IAM") {
		t.Errorf("gap analysis = %q", sc.GapAnalysis)
	}
	if len(sc.Prescriptions.Online) != 2 || len(sc.Prescriptions.Offline) != 1 {
		t.Errorf("prescriptions = %+v", sc.Prescriptions)
	}
	if sc.AssessmentID == "" {
		t.Error("expected an assessment id")
	}

	req, _ := mock.LastCall()
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Score: 80/100") {
		t.Errorf("eval message missing score: %q", msg)
	}
	// The two missed questions are listed with their correct option.
	if !strings.Contains(msg, "scenario 9") || !strings.Contains(msg, "scenario 10") || strings.Contains(msg, "scenario 8?") {
		t.Errorf("eval message should list only missed questions: %q", msg)
	}
}

func TestEvaluate_ScoreIndependentOfRemediation(t *testing.T) {
	qs := sampleQuestions(QuizSize)
	answers := answersWithCorrect(qs, 6)

	ok := NewEvaluator(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(remediationJSON)}), DefaultConfig(), nil)
	broken := NewEvaluator(llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")}), DefaultConfig(), nil)

	a, err := ok.Evaluate(context.Background(), "Cloud Computing", phase.Basic, qs, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := broken.Evaluate(context.Background(), "Cloud Computing", phase.Basic, qs, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Score != b.Score || a.Passed != b.Passed || a.Score != 60 || a.Passed {
		t.Errorf("scores differ or wrong: %d/%v vs %d/%v", a.Score, a.Passed, b.Score, b.Passed)
	}
}

func TestEvaluate_Fallback(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}}},
		{"schema mismatch", llm.MockResponse{Content: json.RawMessage(`{"gapAnalysis": "x"}`)}},
		{"empty gap analysis", llm.MockResponse{Content: json.RawMessage(`{"gapAnalysis": "", "prescriptions": {"online": [], "offline": []}}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := sampleQuestions(QuizSize)
			ev := NewEvaluator(llm.NewMockProvider(tt.resp), DefaultConfig(), nil)

			sc, err := ev.Evaluate(context.Background(), "Soft Skills", phase.Master, qs, answersWithCorrect(qs, 9))
			if err != nil {
				t.Fatalf("remediation failure must not fail evaluation: %v", err)
			}
			if sc.Score != 90 || !sc.Passed {
				t.Errorf("score = %d passed = %v", sc.Score, sc.Passed)
			}
			if sc.GapAnalysis != FallbackGapAnalysis {
				t.Errorf("gap analysis = %q", sc.GapAnalysis)
			}
			if sc.Prescriptions.Online == nil || sc.Prescriptions.Offline == nil ||
				len(sc.Prescriptions.Online) != 0 || len(sc.Prescriptions.Offline) != 0 {
				t.Errorf("expected empty non-nil prescriptions, got %+v", sc.Prescriptions)
			}
			if !sc.RemediationFallback {
				t.Error("expected RemediationFallback")
			}
			var remErr *EvaluationRemediationError
			if !errors.As(sc.RemediationErr, &remErr) {
				t.Errorf("expected *EvaluationRemediationError, got %v", sc.RemediationErr)
			}
		})
	}
}

func TestEvaluate_EmptyQuiz(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := NewEvaluator(mock, DefaultConfig(), nil).Evaluate(context.Background(), "Cloud Computing", phase.Beginner, nil, AnswerSet{})
	if !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("expected ErrEmptyQuiz, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called for an empty quiz")
	}
}

func TestEvaluate_UniqueAssessmentIDs(t *testing.T) {
	qs := sampleQuestions(QuizSize)
	ev := NewEvaluator(NewDemoProvider(), DefaultConfig(), nil)

	seen := map[string]bool{}
	for range 5 {
		sc, err := ev.Evaluate(context.Background(), "Cloud Computing", phase.Beginner, qs, AnswerSet{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[sc.AssessmentID] {
			t.Fatalf("duplicate assessment id %s", sc.AssessmentID)
		}
		seen[sc.AssessmentID] = true
	}
}

func TestEvaluate_PurposeLabel(t *testing.T) {
	var purpose string
	rec := &purposeRecorder{inner: llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(remediationJSON)}), got: &purpose}
	qs := sampleQuestions(QuizSize)
	if _, err := NewEvaluator(rec, DefaultConfig(), nil).Evaluate(context.Background(), "Soft Skills", phase.Basic, qs, AnswerSet{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purpose != llm.PurposeAssessmentEval {
		t.Errorf("purpose = %q", purpose)
	}
}
