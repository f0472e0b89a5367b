// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "learner_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "skipped", Type: field.TypeBool},
		{Name: "time_spent_secs", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeString},
		{Name: "logged", Type: field.TypeBool, Default: false},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[9]},
			},
		},
	}
	// ProgressFlagsColumns holds the columns for the "progress_flags" table.
	ProgressFlagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_key", Type: field.TypeString, Unique: true},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressFlagsTable holds the schema information for the "progress_flags" table.
	ProgressFlagsTable = &schema.Table{
		Name:       "progress_flags",
		Columns:    ProgressFlagsColumns,
		PrimaryKey: []*schema.Column{ProgressFlagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressflag_topic_key",
				Unique:  false,
				Columns: []*schema.Column{ProgressFlagsColumns[1]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "elapsed_secs", Type: field.TypeInt, Default: 0},
		{Name: "passed", Type: field.TypeBool, Default: false},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		ProgressFlagsTable,
		SessionEventsTable,
	}
)

func init() {
}
