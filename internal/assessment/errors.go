package assessment

import (
	"errors"
	"fmt"

	"github.com/abhisek/ksa/internal/phase"
)

// ErrEmptyQuiz is returned when asked to evaluate a quiz with no questions.
var ErrEmptyQuiz = errors.New("quiz has no questions")

// GenerationError reports that no usable quiz could be produced. Err is
// the provider error, a parse failure or a *ValidationError.
type GenerationError struct {
	Sector string
	Phase  phase.Phase
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s quiz for %q: %v", e.Phase, e.Sector, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// EvaluationRemediationError reports that the gap analysis could not be
// obtained. The score is unaffected.
type EvaluationRemediationError struct {
	Err error
}

func (e *EvaluationRemediationError) Error() string {
	return fmt.Sprintf("remediation unavailable: %v", e.Err)
}

func (e *EvaluationRemediationError) Unwrap() error { return e.Err }
