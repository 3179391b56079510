package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels used by the assessment core.
const (
	PurposeAssessmentGen  = "assessment-gen"
	PurposeAssessmentEval = "assessment-eval"
)

// WithPurpose tags ctx with a purpose label. Logging and metrics decorators
// read it to attribute each call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label on ctx, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
