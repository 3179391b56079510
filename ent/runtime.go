// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/ksa/ent/assessmentevent"
	"github.com/abhisek/ksa/ent/llmrequestevent"
	"github.com/abhisek/ksa/ent/schema"
	"github.com/abhisek/ksa/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescAssessmentID is the schema descriptor for assessment_id field.
	assessmenteventDescAssessmentID := assessmenteventFields[0].Descriptor()
	// assessmentevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessmentevent.AssessmentIDValidator = assessmenteventDescAssessmentID.Validators[0].(func(string) error)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[1].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescUserName is the schema descriptor for user_name field.
	assessmenteventDescUserName := assessmenteventFields[2].Descriptor()
	// assessmentevent.DefaultUserName holds the default value on creation for the user_name field.
	assessmentevent.DefaultUserName = assessmenteventDescUserName.Default.(string)
	// assessmenteventDescSector is the schema descriptor for sector field.
	assessmenteventDescSector := assessmenteventFields[3].Descriptor()
	// assessmentevent.SectorValidator is a validator for the "sector" field. It is called by the builders before save.
	assessmentevent.SectorValidator = assessmenteventDescSector.Validators[0].(func(string) error)
	// assessmenteventDescPhase is the schema descriptor for phase field.
	assessmenteventDescPhase := assessmenteventFields[4].Descriptor()
	// assessmentevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	assessmentevent.PhaseValidator = assessmenteventDescPhase.Validators[0].(func(string) error)
	// assessmenteventDescScore is the schema descriptor for score field.
	assessmenteventDescScore := assessmenteventFields[6].Descriptor()
	// assessmentevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	assessmentevent.ScoreValidator = func() func(int) error {
		validators := assessmenteventDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// assessmenteventDescCorrect is the schema descriptor for correct field.
	assessmenteventDescCorrect := assessmenteventFields[7].Descriptor()
	// assessmentevent.DefaultCorrect holds the default value on creation for the correct field.
	assessmentevent.DefaultCorrect = assessmenteventDescCorrect.Default.(int)
	// assessmenteventDescTotal is the schema descriptor for total field.
	assessmenteventDescTotal := assessmenteventFields[8].Descriptor()
	// assessmentevent.DefaultTotal holds the default value on creation for the total field.
	assessmentevent.DefaultTotal = assessmenteventDescTotal.Default.(int)
	// assessmenteventDescPointsAwarded is the schema descriptor for points_awarded field.
	assessmenteventDescPointsAwarded := assessmenteventFields[10].Descriptor()
	// assessmentevent.DefaultPointsAwarded holds the default value on creation for the points_awarded field.
	assessmentevent.DefaultPointsAwarded = assessmenteventDescPointsAwarded.Default.(int)
	// assessmenteventDescBadge is the schema descriptor for badge field.
	assessmenteventDescBadge := assessmenteventFields[11].Descriptor()
	// assessmentevent.DefaultBadge holds the default value on creation for the badge field.
	assessmentevent.DefaultBadge = assessmenteventDescBadge.Default.(string)
	// assessmenteventDescRemediationFallback is the schema descriptor for remediation_fallback field.
	assessmenteventDescRemediationFallback := assessmenteventFields[12].Descriptor()
	// assessmentevent.DefaultRemediationFallback holds the default value on creation for the remediation_fallback field.
	assessmentevent.DefaultRemediationFallback = assessmenteventDescRemediationFallback.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescUserName is the schema descriptor for user_name field.
	sessioneventDescUserName := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultUserName holds the default value on creation for the user_name field.
	sessionevent.DefaultUserName = sessioneventDescUserName.Default.(string)
	// sessioneventDescRole is the schema descriptor for role field.
	sessioneventDescRole := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultRole holds the default value on creation for the role field.
	sessionevent.DefaultRole = sessioneventDescRole.Default.(string)
	// sessioneventDescPoints is the schema descriptor for points field.
	sessioneventDescPoints := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultPoints holds the default value on creation for the points field.
	sessionevent.DefaultPoints = sessioneventDescPoints.Default.(int)
	// sessioneventDescBadges is the schema descriptor for badges field.
	sessioneventDescBadges := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultBadges holds the default value on creation for the badges field.
	sessionevent.DefaultBadges = sessioneventDescBadges.Default.(int)
}
