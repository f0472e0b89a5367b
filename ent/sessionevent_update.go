// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathsala/mathsala/ent/predicate"
	"github.com/mathsala/mathsala/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *SessionEventUpdate) SetRunID(v string) *SessionEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableRunID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *SessionEventUpdate) ClearSessionID() *SessionEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SessionEventUpdate) SetTopicID(v string) *SessionEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTopicID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *SessionEventUpdate) SetTotalQuestions(v int) *SessionEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTotalQuestions(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *SessionEventUpdate) AddTotalQuestions(v int) *SessionEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *SessionEventUpdate) SetCorrectAnswers(v int) *SessionEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCorrectAnswers(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *SessionEventUpdate) AddCorrectAnswers(v int) *SessionEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *SessionEventUpdate) SetSkipped(v int) *SessionEventUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSkipped(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *SessionEventUpdate) AddSkipped(v int) *SessionEventUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_u *SessionEventUpdate) SetElapsedSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetElapsedSecs()
	_u.mutation.SetElapsedSecs(v)
	return _u
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableElapsedSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetElapsedSecs(*v)
	}
	return _u
}

// AddElapsedSecs adds value to the "elapsed_secs" field.
func (_u *SessionEventUpdate) AddElapsedSecs(v int) *SessionEventUpdate {
	_u.mutation.AddElapsedSecs(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *SessionEventUpdate) SetPassed(v bool) *SessionEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillablePassed(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := sessionevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := sessionevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(sessionevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(sessionevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(sessionevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(sessionevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(sessionevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(sessionevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(sessionevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedSecs(); ok {
		_spec.SetField(sessionevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(sessionevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(sessionevent.FieldPassed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *SessionEventUpdateOne) SetRunID(v string) *SessionEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableRunID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *SessionEventUpdateOne) ClearSessionID() *SessionEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SessionEventUpdateOne) SetTopicID(v string) *SessionEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTopicID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *SessionEventUpdateOne) SetTotalQuestions(v int) *SessionEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTotalQuestions(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *SessionEventUpdateOne) AddTotalQuestions(v int) *SessionEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *SessionEventUpdateOne) SetCorrectAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCorrectAnswers(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *SessionEventUpdateOne) AddCorrectAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *SessionEventUpdateOne) SetSkipped(v int) *SessionEventUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSkipped(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *SessionEventUpdateOne) AddSkipped(v int) *SessionEventUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_u *SessionEventUpdateOne) SetElapsedSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetElapsedSecs()
	_u.mutation.SetElapsedSecs(v)
	return _u
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableElapsedSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetElapsedSecs(*v)
	}
	return _u
}

// AddElapsedSecs adds value to the "elapsed_secs" field.
func (_u *SessionEventUpdateOne) AddElapsedSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddElapsedSecs(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *SessionEventUpdateOne) SetPassed(v bool) *SessionEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillablePassed(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := sessionevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := sessionevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(sessionevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(sessionevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(sessionevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(sessionevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(sessionevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(sessionevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedSecs(); ok {
		_spec.SetField(sessionevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(sessionevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(sessionevent.FieldPassed, field.TypeBool, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
