package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a quiz session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to StudySessionEvent"),
		field.Int("question_id").
			Comment("Position of the question in the quiz"),
		field.String("question_type").
			NotEmpty().
			Comment("MCQ or OPEN"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("learner_answer").
			Default("").
			Comment("What the student entered or selected"),
		field.Bool("correct").
			Comment("Whether the answer earned the point"),
		field.Int("points").
			Default(0).
			Comment("Points awarded: 0 or 1"),
		field.String("feedback").
			Default("").
			Comment("Explanation or grader feedback shown to the student"),
		field.String("graded_by").
			NotEmpty().
			Comment("exact (index comparison), ai, or fallback (grader unreachable)"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
