// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldQuestionIndex holds the string denoting the question_index field in the database.
	FieldQuestionIndex = "question_index"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldLearnerAnswer holds the string denoting the learner_answer field in the database.
	FieldLearnerAnswer = "learner_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldTimeSpentSecs holds the string denoting the time_spent_secs field in the database.
	FieldTimeSpentSecs = "time_spent_secs"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldLogged holds the string denoting the logged field in the database.
	FieldLogged = "logged"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldTopicID,
	FieldQuestionIndex,
	FieldQuestionText,
	FieldCorrectAnswer,
	FieldLearnerAnswer,
	FieldCorrect,
	FieldSkipped,
	FieldTimeSpentSecs,
	FieldKind,
	FieldLogged,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// QuestionIndexValidator is a validator for the "question_index" field. It is called by the builders before save.
	QuestionIndexValidator func(int) error
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	CorrectAnswerValidator func(string) error
	// TimeSpentSecsValidator is a validator for the "time_spent_secs" field. It is called by the builders before save.
	TimeSpentSecsValidator func(int) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultLogged holds the default value on creation for the "logged" field.
	DefaultLogged bool
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByQuestionIndex orders the results by the question_index field.
func ByQuestionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionIndex, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByLearnerAnswer orders the results by the learner_answer field.
func ByLearnerAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByTimeSpentSecs orders the results by the time_spent_secs field.
func ByTimeSpentSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSecs, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByLogged orders the results by the logged field.
func ByLogged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogged, opts...).ToFunc()
}
