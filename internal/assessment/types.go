package assessment

import (
	"slices"

	"github.com/abhisek/ksa/internal/phase"
)

const (
	// QuizSize is the number of questions in every quiz.
	QuizSize = 10

	// OptionCount is the number of choices per question.
	OptionCount = 4

	// PassThreshold is the minimum score that passes an assessment.
	PassThreshold = 70
)

// Question is one multiple-choice question. It is read-only once generated.
type Question struct {
	// ID is unique within its quiz and keys the AnswerSet.
	ID int `json:"id"`

	Text string `json:"text"`

	// Options holds exactly OptionCount choices.
	Options []string `json:"options"`

	// CorrectAnswer indexes Options.
	CorrectAnswer int `json:"correctAnswer"`

	// Explanation is shown after the quiz is scored.
	Explanation string `json:"explanation"`
}

// Quiz is the set of questions generated for one sector and phase.
type Quiz struct {
	Sector    string      `json:"sector"`
	Phase     phase.Phase `json:"phase"`
	Questions []Question  `json:"questions"`
}

// Clone returns a copy that shares no slices with q.
func (q *Quiz) Clone() *Quiz {
	out := *q
	out.Questions = slices.Clone(q.Questions)
	for i := range out.Questions {
		out.Questions[i].Options = slices.Clone(out.Questions[i].Options)
	}
	return &out
}

// Question returns the question with the given id.
func (q *Quiz) Question(id int) (Question, bool) {
	for _, qq := range q.Questions {
		if qq.ID == id {
			return qq, true
		}
	}
	return Question{}, false
}

// AnswerSet maps a question ID to the selected option index. Unanswered
// questions have no entry.
type AnswerSet map[int]int

// Clone returns an independent copy.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Prescriptions are remediation resources split by delivery mode.
type Prescriptions struct {
	Online  []string `json:"online"`
	Offline []string `json:"offline"`
}

// Scorecard is the graded outcome of one quiz attempt.
type Scorecard struct {
	AssessmentID  string        `json:"assessmentId"`
	Score         int           `json:"score"`
	Passed        bool          `json:"passed"`
	GapAnalysis   string        `json:"gapAnalysis"`
	Prescriptions Prescriptions `json:"prescriptions"`

	Correct int `json:"correct"`
	Total   int `json:"total"`

	// RemediationFallback is set when GapAnalysis and Prescriptions are the
	// generic substitute because the remediation call failed.
	RemediationFallback bool `json:"remediationFallback"`

	// RemediationErr is the *EvaluationRemediationError behind a fallback.
	RemediationErr error `json:"-"`
}
