package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressFlag is the per-topic mastery completion flag. One row per
// topic key, flipped to completed on the first passing score.
type ProgressFlag struct {
	ent.Schema
}

func (ProgressFlag) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_key").
			NotEmpty().
			Unique().
			Comment("Namespaced topic identifier, e.g. class-5/pattern-identification"),
		field.Bool("completed").
			Default(false),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ProgressFlag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_key"),
	}
}
