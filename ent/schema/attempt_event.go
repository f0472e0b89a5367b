package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent is the local mirror of one checked or skipped question.
// The same record is sent to the platform backend best-effort; the local
// copy survives network failures and feeds the history command.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic the question belongs to"),
		field.Int("question_index").
			NonNegative().
			Comment("Zero-based position in the question sequence"),
		field.String("question_text").
			NotEmpty().
			Comment("The prompt shown"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.String("learner_answer").
			Comment("What the learner entered; empty when skipped"),
		field.Bool("correct").
			Comment("Whether the answer was correct; always false for skips"),
		field.Bool("skipped").
			Comment("Whether the learner skipped instead of answering"),
		field.Int("time_spent_secs").
			NonNegative().
			Comment("Active seconds on the question, excluding unfocused time"),
		field.String("kind").
			NotEmpty().
			Comment("multiple_choice or free_text"),
		field.Bool("logged").
			Default(false).
			Comment("Whether the backend accepted the attempt log"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("topic_id"),
		index.Fields("correct"),
	}
}
