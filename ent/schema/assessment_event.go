package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records an acknowledged assessment result and the progress
// change it caused.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty(),
		field.String("user_name").
			Default(""),
		field.String("sector").
			NotEmpty(),
		field.String("phase").
			NotEmpty().
			Comment("Phase the quiz was taken at"),
		field.String("next_phase").
			Comment("Phase after the result was applied"),
		field.Int("score").
			Min(0).
			Max(100),
		field.Int("correct").
			Default(0),
		field.Int("total").
			Default(0),
		field.Bool("passed"),
		field.Int("points_awarded").
			Default(0),
		field.String("badge").
			Default("").
			Comment("Badge granted by this result, empty if none"),
		field.Bool("remediation_fallback").
			Default(false),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("sector"),
	}
}
