package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/logger"
	"github.com/abhisek/ksa/internal/phase"
)

// FallbackGapAnalysis replaces the gap analysis when the remediation call fails.
const FallbackGapAnalysis = "Review your basic concepts in the areas of missed questions."

// Evaluator grades an answered quiz.
type Evaluator interface {
	// Evaluate scores answers locally and attaches remediation content. It
	// only fails with ErrEmptyQuiz; remediation failures degrade to the
	// fallback text.
	Evaluate(ctx context.Context, sector string, p phase.Phase, questions []Question, answers AnswerSet) (*Scorecard, error)
}

// LLMEvaluator implements Evaluator with one provider call for remediation.
type LLMEvaluator struct {
	provider llm.Provider
	config   Config
	log      *logger.Logger
}

// NewEvaluator builds an evaluator. log may be nil.
func NewEvaluator(provider llm.Provider, cfg Config, log *logger.Logger) *LLMEvaluator {
	if log == nil {
		log = logger.Nop()
	}
	return &LLMEvaluator{provider: provider, config: cfg, log: log}
}

// Score counts answers matching the correct option and normalizes to
// 0..100, rounding half up. Unanswered questions count as wrong.
func Score(questions []Question, answers AnswerSet) (correct, total, score int) {
	total = len(questions)
	for _, q := range questions {
		if got, ok := answers[q.ID]; ok && got == q.CorrectAnswer {
			correct++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	score = int(math.Round(100 * float64(correct) / float64(total)))
	return correct, total, score
}

// Passed reports whether score meets PassThreshold.
func Passed(score int) bool {
	return score >= PassThreshold
}

func (e *LLMEvaluator) Evaluate(ctx context.Context, sector string, p phase.Phase, questions []Question, answers AnswerSet) (*Scorecard, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}

	correct, total, score := Score(questions, answers)
	sc := &Scorecard{
		AssessmentID: uuid.NewString(),
		Score:        score,
		Passed:       Passed(score),
		Correct:      correct,
		Total:        total,
	}

	rem, err := e.remediate(ctx, sector, p, sc, missed(questions, answers))
	if err != nil {
		e.log.Warn("remediation unavailable, using fallback",
			"sector", sector, "phase", p, "score", score, "error", err)
		sc.GapAnalysis = FallbackGapAnalysis
		sc.Prescriptions = Prescriptions{Online: []string{}, Offline: []string{}}
		sc.RemediationFallback = true
		sc.RemediationErr = err
		return sc, nil
	}

	sc.GapAnalysis = rem.GapAnalysis
	sc.Prescriptions = rem.Prescriptions
	return sc, nil
}

type remediationOutput struct {
	GapAnalysis   string        `json:"gapAnalysis"`
	Prescriptions Prescriptions `json:"prescriptions"`
}

func (e *LLMEvaluator) remediate(ctx context.Context, sector string, p phase.Phase, sc *Scorecard, missedQs []Question) (*remediationOutput, error) {
	req := llm.Request{
		System:      evalSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildEvalMessage(sector, p, sc, missedQs)}},
		Schema:      RemediationSchema,
		MaxTokens:   e.config.EvalMaxTokens,
		Temperature: e.config.EvalTemperature,
	}

	resp, err := e.provider.Generate(llm.WithPurpose(ctx, llm.PurposeAssessmentEval), req)
	if err != nil {
		return nil, &EvaluationRemediationError{Err: err}
	}

	var out remediationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &EvaluationRemediationError{Err: fmt.Errorf("parse LLM response: %w", err)}
	}
	if out.GapAnalysis == "" {
		return nil, &EvaluationRemediationError{Err: fmt.Errorf("empty gap analysis")}
	}
	if out.Prescriptions.Online == nil {
		out.Prescriptions.Online = []string{}
	}
	if out.Prescriptions.Offline == nil {
		out.Prescriptions.Offline = []string{}
	}
	return &out, nil
}

func missed(questions []Question, answers AnswerSet) []Question {
	var out []Question
	for _, q := range questions {
		if got, ok := answers[q.ID]; !ok || got != q.CorrectAnswer {
			out = append(out, q)
		}
	}
	return out
}
