// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsala/mathsala/ent/attemptevent"
	"github.com/mathsala/mathsala/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *AttemptEventUpdate) SetRunID(v string) *AttemptEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableRunID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *AttemptEventUpdate) SetTopicID(v string) *AttemptEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTopicID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AttemptEventUpdate) SetQuestionIndex(v int) *AttemptEventUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionIndex(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AttemptEventUpdate) AddQuestionIndex(v int) *AttemptEventUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AttemptEventUpdate) SetQuestionText(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionText(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AttemptEventUpdate) SetCorrectAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrectAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *AttemptEventUpdate) SetLearnerAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLearnerAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *AttemptEventUpdate) SetSkipped(v bool) *AttemptEventUpdate {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSkipped(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *AttemptEventUpdate) SetTimeSpentSecs(v int) *AttemptEventUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeSpentSecs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *AttemptEventUpdate) AddTimeSpentSecs(v int) *AttemptEventUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AttemptEventUpdate) SetKind(v string) *AttemptEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableKind(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLogged sets the "logged" field.
func (_u *AttemptEventUpdate) SetLogged(v bool) *AttemptEventUpdate {
	_u.mutation.SetLogged(v)
	return _u
}

// SetNillableLogged sets the "logged" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLogged(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetLogged(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := attemptevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := attemptevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionIndex(); ok {
		if err := attemptevent.QuestionIndexValidator(v); err != nil {
			return &ValidationError{Name: "question_index", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := attemptevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := attemptevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpentSecs(); ok {
		if err := attemptevent.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.time_spent_secs": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := attemptevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(attemptevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(attemptevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(attemptevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(attemptevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(attemptevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(attemptevent.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(attemptevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(attemptevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attemptevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Logged(); ok {
		_spec.SetField(attemptevent.FieldLogged, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *AttemptEventUpdateOne) SetRunID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableRunID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *AttemptEventUpdateOne) SetTopicID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTopicID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AttemptEventUpdateOne) SetQuestionIndex(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionIndex(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AttemptEventUpdateOne) AddQuestionIndex(v int) *AttemptEventUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AttemptEventUpdateOne) SetQuestionText(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionText(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AttemptEventUpdateOne) SetCorrectAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrectAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *AttemptEventUpdateOne) SetLearnerAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLearnerAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *AttemptEventUpdateOne) SetSkipped(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSkipped(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *AttemptEventUpdateOne) SetTimeSpentSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeSpentSecs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *AttemptEventUpdateOne) AddTimeSpentSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AttemptEventUpdateOne) SetKind(v string) *AttemptEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableKind(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLogged sets the "logged" field.
func (_u *AttemptEventUpdateOne) SetLogged(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetLogged(v)
	return _u
}

// SetNillableLogged sets the "logged" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLogged(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLogged(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := attemptevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := attemptevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionIndex(); ok {
		if err := attemptevent.QuestionIndexValidator(v); err != nil {
			return &ValidationError{Name: "question_index", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := attemptevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := attemptevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpentSecs(); ok {
		if err := attemptevent.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.time_spent_secs": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := attemptevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(attemptevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(attemptevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(attemptevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(attemptevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(attemptevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(attemptevent.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(attemptevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(attemptevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attemptevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Logged(); ok {
		_spec.SetField(attemptevent.FieldLogged, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
