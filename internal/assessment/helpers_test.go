package assessment

import (
	"encoding/json"
	"fmt"
	"testing"
)

// sampleQuestions builds n valid questions with ids 1..n. The correct option
// of question i is i%4.
func sampleQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:            i + 1,
			Text:          fmt.Sprintf("Which AWS service fits scenario %d?", i+1),
			Options:       []string{"EC2", "S3", "Lambda", "RDS"},
			CorrectAnswer: i % OptionCount,
			Explanation:   "Because of the workload shape.",
		}
	}
	return qs
}

func quizJSON(t *testing.T, qs []Question) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(quizOutput{Questions: qs})
	if err != nil {
		t.Fatalf("marshal quiz: %v", err)
	}
	return b
}

// answersWithCorrect answers every question, the first k correctly.
func answersWithCorrect(qs []Question, k int) AnswerSet {
	a := AnswerSet{}
	for i, q := range qs {
		if i < k {
			a[q.ID] = q.CorrectAnswer
		} else {
			a[q.ID] = (q.CorrectAnswer + 1) % OptionCount
		}
	}
	return a
}

const remediationJSON = `{
	"gapAnalysis": "Weak on IAM policy evaluation and VPC routing.",
	"prescriptions": {
		"online": ["AWS Skill Builder: Security Essentials", "A Cloud Guru: VPC Deep Dive"],
		"offline": ["Two-day cloud networking bootcamp"]
	}
}`
