package assessment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/ksa/internal/llm"
)

// NewDemoProvider returns a MockProvider that answers generation and
// remediation requests with canned content, so the portal can be tried
// without an API key.
func NewDemoProvider() *llm.MockProvider {
	m := llm.NewMockProvider()
	m.Responder = demoRespond
	return m
}

func demoRespond(req llm.Request) (json.RawMessage, error) {
	if req.Schema == nil {
		return nil, fmt.Errorf("demo provider needs a schema")
	}

	var prompt string
	if len(req.Messages) > 0 {
		prompt = req.Messages[len(req.Messages)-1].Content
	}
	sector := promptField(prompt, "Sector")

	switch req.Schema.Name {
	case QuizSchema.Name:
		questions := make([]Question, QuizSize)
		for i := range questions {
			questions[i] = Question{
				ID:   i + 1,
				Text: fmt.Sprintf("[demo] %s question %d: which option is correct?", sector, i+1),
				Options: []string{
					"The correct option",
					"A plausible distractor",
					"A common misconception",
					"An unrelated answer",
				},
				CorrectAnswer: i % OptionCount,
				Explanation:   "Demo content: the correct option rotates through the four positions.",
			}
			// Put the correct text where CorrectAnswer points.
			q := &questions[i]
			q.Options[0], q.Options[q.CorrectAnswer] = q.Options[q.CorrectAnswer], q.Options[0]
		}
		return json.Marshal(quizOutput{Questions: questions})

	case RemediationSchema.Name:
		return json.Marshal(remediationOutput{
			GapAnalysis: fmt.Sprintf("[demo] Revisit the fundamentals of %s covered by the missed questions.", sector),
			Prescriptions: Prescriptions{
				Online:  []string{fmt.Sprintf("Self-paced %s fundamentals course", sector)},
				Offline: []string{fmt.Sprintf("%s mentoring with a senior practitioner", sector)},
			},
		})
	}
	return nil, fmt.Errorf("demo provider: unknown schema %q", req.Schema.Name)
}

// promptField extracts "Key: value" from a prompt built by this package.
func promptField(prompt, key string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if v, ok := strings.CutPrefix(line, key+": "); ok {
			return strings.TrimSpace(v)
		}
	}
	return "General"
}
