// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mathsala/mathsala/ent/attemptevent"
	"github.com/mathsala/mathsala/ent/progressflag"
	"github.com/mathsala/mathsala/ent/schema"
	"github.com/mathsala/mathsala/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescRunID is the schema descriptor for run_id field.
	attempteventDescRunID := attempteventFields[0].Descriptor()
	// attemptevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	attemptevent.RunIDValidator = attempteventDescRunID.Validators[0].(func(string) error)
	// attempteventDescTopicID is the schema descriptor for topic_id field.
	attempteventDescTopicID := attempteventFields[1].Descriptor()
	// attemptevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	attemptevent.TopicIDValidator = attempteventDescTopicID.Validators[0].(func(string) error)
	// attempteventDescQuestionIndex is the schema descriptor for question_index field.
	attempteventDescQuestionIndex := attempteventFields[2].Descriptor()
	// attemptevent.QuestionIndexValidator is a validator for the "question_index" field. It is called by the builders before save.
	attemptevent.QuestionIndexValidator = attempteventDescQuestionIndex.Validators[0].(func(int) error)
	// attempteventDescQuestionText is the schema descriptor for question_text field.
	attempteventDescQuestionText := attempteventFields[3].Descriptor()
	// attemptevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	attemptevent.QuestionTextValidator = attempteventDescQuestionText.Validators[0].(func(string) error)
	// attempteventDescCorrectAnswer is the schema descriptor for correct_answer field.
	attempteventDescCorrectAnswer := attempteventFields[4].Descriptor()
	// attemptevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	attemptevent.CorrectAnswerValidator = attempteventDescCorrectAnswer.Validators[0].(func(string) error)
	// attempteventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	attempteventDescTimeSpentSecs := attempteventFields[8].Descriptor()
	// attemptevent.TimeSpentSecsValidator is a validator for the "time_spent_secs" field. It is called by the builders before save.
	attemptevent.TimeSpentSecsValidator = attempteventDescTimeSpentSecs.Validators[0].(func(int) error)
	// attempteventDescKind is the schema descriptor for kind field.
	attempteventDescKind := attempteventFields[9].Descriptor()
	// attemptevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	attemptevent.KindValidator = attempteventDescKind.Validators[0].(func(string) error)
	// attempteventDescLogged is the schema descriptor for logged field.
	attempteventDescLogged := attempteventFields[10].Descriptor()
	// attemptevent.DefaultLogged holds the default value on creation for the logged field.
	attemptevent.DefaultLogged = attempteventDescLogged.Default.(bool)
	progressflagFields := schema.ProgressFlag{}.Fields()
	_ = progressflagFields
	// progressflagDescTopicKey is the schema descriptor for topic_key field.
	progressflagDescTopicKey := progressflagFields[0].Descriptor()
	// progressflag.TopicKeyValidator is a validator for the "topic_key" field. It is called by the builders before save.
	progressflag.TopicKeyValidator = progressflagDescTopicKey.Validators[0].(func(string) error)
	// progressflagDescCompleted is the schema descriptor for completed field.
	progressflagDescCompleted := progressflagFields[1].Descriptor()
	// progressflag.DefaultCompleted holds the default value on creation for the completed field.
	progressflag.DefaultCompleted = progressflagDescCompleted.Default.(bool)
	// progressflagDescUpdatedAt is the schema descriptor for updated_at field.
	progressflagDescUpdatedAt := progressflagFields[2].Descriptor()
	// progressflag.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressflag.DefaultUpdatedAt = progressflagDescUpdatedAt.Default.(func() time.Time)
	// progressflag.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressflag.UpdateDefaultUpdatedAt = progressflagDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescRunID is the schema descriptor for run_id field.
	sessioneventDescRunID := sessioneventFields[0].Descriptor()
	// sessionevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	sessionevent.RunIDValidator = sessioneventDescRunID.Validators[0].(func(string) error)
	// sessioneventDescTopicID is the schema descriptor for topic_id field.
	sessioneventDescTopicID := sessioneventFields[2].Descriptor()
	// sessionevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	sessionevent.TopicIDValidator = sessioneventDescTopicID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTotalQuestions is the schema descriptor for total_questions field.
	sessioneventDescTotalQuestions := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	sessionevent.DefaultTotalQuestions = sessioneventDescTotalQuestions.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescSkipped is the schema descriptor for skipped field.
	sessioneventDescSkipped := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultSkipped holds the default value on creation for the skipped field.
	sessionevent.DefaultSkipped = sessioneventDescSkipped.Default.(int)
	// sessioneventDescElapsedSecs is the schema descriptor for elapsed_secs field.
	sessioneventDescElapsedSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultElapsedSecs holds the default value on creation for the elapsed_secs field.
	sessionevent.DefaultElapsedSecs = sessioneventDescElapsedSecs.Default.(int)
	// sessioneventDescPassed is the schema descriptor for passed field.
	sessioneventDescPassed := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultPassed holds the default value on creation for the passed field.
	sessionevent.DefaultPassed = sessioneventDescPassed.Default.(bool)
}
