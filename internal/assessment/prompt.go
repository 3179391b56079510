package assessment

import (
	"fmt"
	"strings"

	"github.com/abhisek/ksa/internal/phase"
)

const genSystemPrompt = `You write workplace skills assessments that measure Knowledge, Skills and Abilities (KSA).

Rules:
- Write exactly 10 multiple-choice questions.
- Every question has exactly 4 distinct options and exactly one correct option.
- correctAnswer is the 0-based index of the correct option (0, 1, 2 or 3).
- Number the questions with id 1 to 10.
- Calibrate difficulty to the requested phase: level-appropriate, but tricky. Distractors should be plausible mistakes a practitioner at that level would make.
- Mix knowledge recall, applied skill and judgement (ability) questions.
- The explanation says in one or two sentences why the correct option is right.`

const evalSystemPrompt = `You are a career coach reviewing a KSA assessment result.

Rules:
- The gap analysis names the concrete topics the candidate is weak in, based on the missed questions. Keep it under 120 words.
- Online prescriptions are self-paced courses, certifications or resources.
- Offline prescriptions are bootcamps, workshops, mentoring or on-the-job practice.
- Give 2 to 4 items in each list. Name real, well-known resources where possible.`

func buildGenMessage(sector string, p phase.Phase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sector: %s\n", sector)
	fmt.Fprintf(&b, "Phase: %s (%d of %d)\n", p, phase.Index(p)+1, phase.Len)
	b.WriteString("\nGenerate 10 tricky multiple-choice questions for this sector at this phase.")
	return b.String()
}

func buildEvalMessage(sector string, p phase.Phase, sc *Scorecard, missed []Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sector: %s\n", sector)
	fmt.Fprintf(&b, "Phase: %s\n", p)
	fmt.Fprintf(&b, "Score: %d/100 (%d of %d correct)\n", sc.Score, sc.Correct, sc.Total)
	if sc.Passed {
		b.WriteString("Result: passed\n")
	} else {
		b.WriteString("Result: not passed\n")
	}

	b.WriteString("\nMissed questions:\n")
	if len(missed) == 0 {
		b.WriteString("None\n")
	}
	for i, q := range missed {
		if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
			fmt.Fprintf(&b, "%d. %s (correct: %s)\n", i+1, q.Text, q.Options[q.CorrectAnswer])
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
		}
	}

	b.WriteString("\nProvide a gap analysis and prescriptions for levelling up.")
	return b.String()
}
