package assessment

import (
	"fmt"
	"strings"
)

// Validator checks a generated question list. Implementations are stateless
// and safe for concurrent use.
type Validator interface {
	// Name identifies the validator in errors and logs, e.g. "count".
	Name() string

	// Validate returns nil when questions pass.
	Validate(questions []Question) *ValidationError
}

// ValidationError describes why a generated quiz was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// CountValidator requires exactly Want questions.
type CountValidator struct {
	Want int
}

func (v *CountValidator) Name() string { return "count" }

func (v *CountValidator) Validate(questions []Question) *ValidationError {
	if len(questions) != v.Want {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d questions, got %d", v.Want, len(questions)),
		}
	}
	return nil
}

// StructuralValidator checks each question's text, options and answer index.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(questions []Question) *ValidationError {
	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return v.fail(i, "text is empty")
		}
		if len(q.Options) != OptionCount {
			return v.fail(i, fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)))
		}
		seen := make(map[string]bool, OptionCount)
		for j, opt := range q.Options {
			key := strings.ToLower(strings.TrimSpace(opt))
			if key == "" {
				return v.fail(i, fmt.Sprintf("option %d is empty", j))
			}
			if seen[key] {
				return v.fail(i, fmt.Sprintf("duplicate option %q", opt))
			}
			seen[key] = true
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionCount {
			return v.fail(i, fmt.Sprintf("correctAnswer %d out of range [0,%d)", q.CorrectAnswer, OptionCount))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(i int, msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("question %d: %s", i+1, msg)}
}

// UniqueIDValidator rejects repeated question IDs, which would make the
// AnswerSet ambiguous.
type UniqueIDValidator struct{}

func (v *UniqueIDValidator) Name() string { return "unique-id" }

func (v *UniqueIDValidator) Validate(questions []Question) *ValidationError {
	seen := make(map[int]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate question id %d", q.ID),
			}
		}
		seen[q.ID] = true
	}
	return nil
}
