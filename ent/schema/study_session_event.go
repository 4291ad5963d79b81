package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySessionEvent records study session lifecycle events (start/finish/abandon).
type StudySessionEvent struct {
	ent.Schema
}

func (StudySessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StudySessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a study session"),
		field.String("action").
			NotEmpty().
			Comment("start, finish, or abandon"),
		field.String("level").
			Default("").
			Comment("School level: 6eme, 5eme, 4eme, 3eme"),
		field.String("subject").
			Default("").
			Comment("Subject name as shown to the student"),
		field.String("topic").
			Default("").
			Comment("Chapter or custom topic the session covered"),
		field.String("source").
			Default("").
			Comment("topic-quiz, brevet-blanc, or annales"),
		field.String("difficulty").
			Default("").
			Comment("Quiz difficulty: intro, revision, mastery"),
		field.Int("question_count").
			Default(0).
			Comment("Questions in the quiz (on finish only)"),
		field.Int("score").
			Default(0).
			Comment("Points earned (on finish only)"),
		field.Int("max_score").
			Default(0).
			Comment("Points available (on finish only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on finish only)"),
	}
}

func (StudySessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("subject"),
	}
}
