package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records practice-run lifecycle events (start/finish).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Client-side UUID grouping events in one run through a question set"),
		field.String("session_id").
			Optional().
			Comment("Backend session handle, empty when no learner identity was available"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic the run practiced"),
		field.String("action").
			NotEmpty().
			Comment("start or finish"),
		field.Int("total_questions").
			Default(0).
			Comment("Question count for the run (on finish only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct count (on finish only)"),
		field.Int("skipped").
			Default(0).
			Comment("Questions left skipped at finalization (on finish only)"),
		field.Int("elapsed_secs").
			Default(0).
			Comment("Wall-clock duration in seconds (on finish only)"),
		field.Bool("passed").
			Default(false).
			Comment("Whether the score met the mastery threshold (on finish only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("topic_id"),
		index.Fields("action"),
	}
}
